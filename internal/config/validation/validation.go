package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (v *ValidationError) Error() string {
	if len(v.Errors) == 0 {
		return v.Message
	}
	keys := make([]string, 0, len(v.Errors))
	for key, messages := range v.Errors {
		keys = append(keys, fmt.Sprintf("%s (%s)", key, strings.Join(messages, "; ")))
	}
	return v.Message + ": " + strings.Join(keys, ", ")
}

type Validation struct {
	Validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()

	// Report fields by their wire name: json for request bodies, mapstructure
	// for configuration.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "mapstructure"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return strings.ToLower(field.Name)
	})

	return &Validation{Validator: v}
}

func (v *Validation) Validate(data interface{}) error {
	err := v.Validator.Struct(data)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	errors := make(map[string][]string)
	for _, err := range validationErrors {
		key := fieldKey(err.Namespace())

		message := ""
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", key)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", key)
		case "url":
			message = fmt.Sprintf("%s must be a valid URL", key)
		case "min":
			message = fmt.Sprintf("%s must be at least %s", key, err.Param())
		case "max":
			message = fmt.Sprintf("%s must not exceed %s", key, err.Param())
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", key, err.Param())
		case "gtefield":
			message = fmt.Sprintf("%s must not be lower than %s", key, err.Param())
		default:
			message = fmt.Sprintf("%s is invalid (%s)", key, err.Tag())
		}

		// Append multiple messages for the same key
		errors[key] = append(errors[key], message)
	}

	return &ValidationError{
		Message: "Validation failed",
		Errors:  errors,
	}
}

// fieldKey drops the root type name from a validator namespace, turning
// "Config.api.base_url" into "api.base_url".
func fieldKey(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
