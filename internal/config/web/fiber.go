package web

import (
	"errors"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"uni-seeder/internal/config/env"
	"uni-seeder/internal/config/validation"
	"uni-seeder/internal/dto"
	"uni-seeder/internal/utils/errcode"
)

// NewFiber initializes the rehearsal API's Fiber app.
func NewFiber(log *logrus.Logger, config *env.Config) *fiber.App {
	var app = fiber.New(fiber.Config{
		AppName:               config.App.Name,
		ErrorHandler:          newErrorHandler(log),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		DisableStartupMessage: true,
	})

	// Recover middleware to prevent crashes from panics
	app.Use(recover.New())
	app.Use(otelfiber.Middleware())

	return app
}

// newErrorHandler renders every failure as {"error": ...}, the body shape
// the seeding scripts print next to a failed status.
func newErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		response := dto.ErrorResponse{
			Error: "Internal server error",
		}

		// Check if the error exists in the custom error map
		if code, exists := errcode.GetHTTPStatus(err); exists {
			log.WithError(err).Warn("Caught errcode error")
			response.Error = err.Error()
			return ctx.Status(code).JSON(response)
		}

		// Handle go-playground validation errors
		var ve *validation.ValidationError
		if errors.As(err, &ve) {
			log.WithError(err).Warn("Caught go-playground validation error")
			response.Error = errcode.ErrMissingFields.Error()
			response.Errors = ve.Errors
			return ctx.Status(fiber.StatusBadRequest).JSON(response)
		}

		// Handle Fiber errors (e.g., JSON parsing, unknown routes)
		var fe *fiber.Error
		if errors.As(err, &fe) {
			log.WithError(fe).Warn("Caught Fiber error")
			response.Error = fe.Message
			return ctx.Status(fe.Code).JSON(response)
		}

		log.WithError(err).Error("Caught no handle error")
		return ctx.Status(fiber.StatusInternalServerError).JSON(response)
	}
}
