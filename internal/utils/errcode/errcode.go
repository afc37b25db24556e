package errcode

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// Dispatch Errors
	ErrTransport         = errors.New("transport failure")
	ErrUnexpectedStatus  = errors.New("unexpected status code")
	ErrMalformedResponse = errors.New("malformed response body")

	// Run Errors
	ErrNoneCreated   = errors.New("no entities were created")
	ErrMissingLookup = errors.New("lookup table not resolved")
	ErrFixtureFile   = errors.New("failed to read fixture file")
	ErrInputFile     = errors.New("failed to read input file")

	// Authentication Errors
	ErrAuthorizationHeader  = errors.New("authorization header is required")
	ErrBearerHeader         = errors.New("authorization header must use bearer scheme")
	ErrInvalidToken         = errors.New("invalid token")
	ErrUnexpectedSignMethod = errors.New("unexpected signing method")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrAdminRequired        = errors.New("admin access required")

	// Registration Errors
	ErrUserAlreadyExists  = errors.New("user already exists with this email")
	ErrPasswordEncryption = errors.New("password hashing failed")
	ErrTokenGeneration    = errors.New("could not generate token")

	// Resource Errors
	ErrCountryNotFound   = errors.New("country not found")
	ErrCityNotFound      = errors.New("city not found")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrCountryExists     = errors.New("country already exists")
	ErrCityExists        = errors.New("city already exists")
	ErrUniversityExists  = errors.New("university already exists")
	ErrInvalidIdentifier = errors.New("invalid id format")
	ErrMissingFields     = errors.New("missing required fields")
	ErrBadRequest        = errors.New("bad request")
)

// errorStatusMap maps rehearsal API errors to their HTTP status codes
var errorStatusMap = map[error]int{
	// 400 Bad Request Errors
	ErrUserAlreadyExists: fiber.StatusBadRequest,
	ErrInvalidIdentifier: fiber.StatusBadRequest,
	ErrMissingFields:     fiber.StatusBadRequest,
	ErrBadRequest:        fiber.StatusBadRequest,

	// 401 Unauthorized Errors
	ErrAuthorizationHeader:  fiber.StatusUnauthorized,
	ErrBearerHeader:         fiber.StatusUnauthorized,
	ErrInvalidToken:         fiber.StatusUnauthorized,
	ErrUnexpectedSignMethod: fiber.StatusUnauthorized,
	ErrInvalidCredentials:   fiber.StatusUnauthorized,

	// 403 Forbidden Errors
	ErrAdminRequired: fiber.StatusForbidden,

	// 404 Not Found Errors
	ErrCountryNotFound: fiber.StatusNotFound,
	ErrCityNotFound:    fiber.StatusNotFound,
	ErrTopicNotFound:   fiber.StatusNotFound,

	// 409 Conflict Errors
	ErrCountryExists:    fiber.StatusConflict,
	ErrCityExists:       fiber.StatusConflict,
	ErrUniversityExists: fiber.StatusConflict,

	// 500 Internal Server Errors
	ErrPasswordEncryption: fiber.StatusInternalServerError,
	ErrTokenGeneration:    fiber.StatusInternalServerError,
}

// GetHTTPStatus retrieves the HTTP status code for a given error.
func GetHTTPStatus(err error) (int, bool) {
	statusCode, exists := errorStatusMap[err]
	return statusCode, exists
}
