package service

import (
	"context"
	"net/http"

	"uni-seeder/internal/client"
	"uni-seeder/internal/dto"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// AuthService wraps the remote account endpoints.
type AuthService struct {
	client *client.Client
	logger *logrus.Logger
	tracer trace.Tracer
}

func NewAuthService(client *client.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{client, logger, otel.Tracer("AuthService")}
}

// Register creates an account and returns the created user with its session
// token. The response is nil unless the result is a success.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, client.Result) {
	spanCtx, span := s.tracer.Start(ctx, "AuthService.Register")
	defer span.End()

	resp := new(dto.AuthResponse)
	result := s.client.Do(spanCtx, client.Call{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   req,
		Expect: http.StatusCreated,
	}, resp)
	if !result.OK() {
		s.logger.WithContext(spanCtx).WithFields(logrus.Fields{
			"email":  req.Email,
			"status": result.Status,
		}).Debug("Registration rejected")
		return nil, result
	}
	s.logger.WithContext(spanCtx).WithField("user_id", resp.User.ID.String()).Debug("User registered")
	return resp, result
}

// Login exchanges credentials for a session token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, client.Result) {
	spanCtx, span := s.tracer.Start(ctx, "AuthService.Login")
	defer span.End()

	resp := new(dto.AuthResponse)
	result := s.client.Do(spanCtx, client.Call{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   req,
		Expect: http.StatusOK,
	}, resp)
	if !result.OK() {
		s.logger.WithContext(spanCtx).WithFields(logrus.Fields{
			"email":  req.Email,
			"status": result.Status,
		}).Debug("Login rejected")
		return nil, result
	}
	s.logger.WithContext(spanCtx).WithField("user_id", resp.User.ID.String()).Debug("User logged in")
	return resp, result
}
