package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"uni-seeder/internal/dto"
	"uni-seeder/internal/model"
	"uni-seeder/internal/repository"
	"uni-seeder/internal/utils/errcode"
)

// AccountService is the rehearsal API's side of registration and login.
type AccountService struct {
	userRepository *repository.UserRepository
	jwtService     *JwtService
	log            *logrus.Logger
	tracer         trace.Tracer
	hashPassword   func(password []byte, cost int) ([]byte, error)
}

func NewAccountService(userRepository *repository.UserRepository, jwtService *JwtService, log *logrus.Logger) *AccountService {
	return &AccountService{userRepository, jwtService, log, otel.Tracer("AccountService"), bcrypt.GenerateFromPassword}
}

// Register stores a new account and returns it with a session token.
func (s *AccountService) Register(ctx context.Context, request *dto.RegisterRequest) (*dto.AuthResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "Register")
	defer span.End()

	logger := s.log.WithContext(spanCtx).WithField("email", request.Email)

	if s.userRepository.CountByEmail(spanCtx, request.Email) > 0 {
		logger.Warn("User already exists")
		return nil, errcode.ErrUserAlreadyExists
	}

	hashed, err := s.hashPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("Failed to hash password")
		return nil, errcode.ErrPasswordEncryption
	}

	role := request.Role
	if role == "" {
		role = model.RoleUser
	}

	account := model.Account{
		User: model.User{
			Email:         request.Email,
			Name:          request.Name,
			Role:          role,
			UniversityID:  model.ID(request.University),
			Degree:        request.Degree,
			OpenToContact: request.OpenToContact,
		},
		PasswordHash: string(hashed),
	}
	if err := s.userRepository.Create(spanCtx, &account); err != nil {
		logger.WithError(err).Error("Failed to create user")
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(spanCtx, account.User)
	if err != nil {
		logger.WithError(err).Error("Failed to generate token")
		return nil, errcode.ErrTokenGeneration
	}

	return &dto.AuthResponse{Message: "User registered successfully", User: account.User, Token: token}, nil
}

// Login checks credentials and returns a fresh session token.
func (s *AccountService) Login(ctx context.Context, request *dto.LoginRequest) (*dto.AuthResponse, error) {
	spanCtx, span := s.tracer.Start(ctx, "Login")
	defer span.End()

	logger := s.log.WithContext(spanCtx).WithField("email", request.Email)

	var account model.Account
	if err := s.userRepository.FindByEmail(spanCtx, &account, request.Email); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			logger.Warn("User not found")
			return nil, errcode.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(request.Password)); err != nil {
		logger.Warn("Password mismatch")
		return nil, errcode.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(spanCtx, account.User)
	if err != nil {
		logger.WithError(err).Error("Failed to generate token")
		return nil, errcode.ErrTokenGeneration
	}

	return &dto.AuthResponse{Message: "Login successful", User: account.User, Token: token}, nil
}
