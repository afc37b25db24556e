package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"uni-seeder/internal/config/validation"
	"uni-seeder/internal/dto"
	"uni-seeder/internal/service"
	"uni-seeder/internal/utils/errcode"
)

type AuthController struct {
	AccountService *service.AccountService
	Logger         *logrus.Logger
	Validation     *validation.Validation
	Tracer         trace.Tracer
}

func NewAuthController(accountService *service.AccountService, logger *logrus.Logger, validator *validation.Validation) *AuthController {
	return &AuthController{accountService, logger, validator, otel.Tracer("AuthController")}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "Login")
	defer span.End()

	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		c.Logger.WithError(err).Error("Failed to parse login request")
		return errcode.ErrBadRequest
	}

	if err := c.Validation.Validate(req); err != nil {
		c.Logger.WithError(err).Warn("Validation failed for login request")
		return err
	}

	resp, err := c.AccountService.Login(userContext, &req)
	if err != nil {
		c.Logger.WithError(err).Warn("Invalid login attempt")
		return err
	}

	return ctx.JSON(resp)
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	userContext, span := c.Tracer.Start(ctx.UserContext(), "Register")
	defer span.End()

	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		c.Logger.WithError(err).Error("Failed to parse registration request")
		return errcode.ErrBadRequest
	}

	if err := c.Validation.Validate(req); err != nil {
		c.Logger.WithError(err).Warn("Validation failed for registration request")
		return err
	}

	resp, err := c.AccountService.Register(userContext, &req)
	if err != nil {
		c.Logger.WithError(err).Warn("User registration failed")
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(resp)
}
