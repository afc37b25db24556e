package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"uni-seeder/internal/model"
	"uni-seeder/internal/service"
	"uni-seeder/internal/utils/errcode"
)

const (
	bearerKeyword = "Bearer"
	bearerLen     = len(bearerKeyword)
	authKey       = "auth"
)

func AuthMiddleware(jwtService *service.JwtService, log *logrus.Logger) fiber.Handler {
	tracer := otel.Tracer("AuthMiddleware")
	return func(c *fiber.Ctx) error {
		spanCtx, span := tracer.Start(c.UserContext(), "AuthMiddleware")
		defer span.End()

		claims, err := authenticate(spanCtx, c, jwtService, log)
		if err != nil {
			return err
		}

		c.Locals(authKey, claims)
		return c.Next()
	}
}

// AdminMiddleware lets only ADMIN sessions through. When disabled every
// request passes untouched.
func AdminMiddleware(enabled bool, jwtService *service.JwtService, log *logrus.Logger) fiber.Handler {
	tracer := otel.Tracer("AdminMiddleware")
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}

		spanCtx, span := tracer.Start(c.UserContext(), "AdminMiddleware")
		defer span.End()

		claims, err := authenticate(spanCtx, c, jwtService, log)
		if err != nil {
			return err
		}
		if claims.Role != model.RoleAdmin {
			log.WithContext(spanCtx).WithField("user_id", claims.UserID).Warn("admin role required")
			return errcode.ErrAdminRequired
		}

		c.Locals(authKey, claims)
		return c.Next()
	}
}

func authenticate(ctx context.Context, c *fiber.Ctx, jwtService *service.JwtService, log *logrus.Logger) (*service.Claims, error) {
	logger := log.WithContext(ctx)

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		logger.Warn("authorization header missing")
		return nil, errcode.ErrAuthorizationHeader
	}

	if !strings.HasPrefix(authHeader, bearerKeyword) {
		logger.Warn("invalid authorization header format")
		return nil, errcode.ErrBearerHeader
	}

	token := strings.TrimSpace(authHeader[bearerLen:])
	if token == "" {
		logger.Warn("access token missing in header")
		return nil, errcode.ErrInvalidToken
	}

	claims, err := jwtService.ValidateToken(ctx, token)
	if err != nil {
		logger.WithError(err).Warn("access token is invalid or expired")
		return nil, errcode.ErrInvalidToken
	}
	return claims, nil
}

// GetUser retrieves the session claims stored by AuthMiddleware.
func GetUser(ctx *fiber.Ctx) *service.Claims {
	return ctx.Locals(authKey).(*service.Claims)
}
