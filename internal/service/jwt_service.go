package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"uni-seeder/internal/config/env"
	"uni-seeder/internal/model"
	"uni-seeder/internal/utils/errcode"
)

const sessionTokenExpiration = 24 * time.Hour

type Claims struct {
	UserID model.ID   `json:"userId"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// JwtService signs and checks the session tokens the rehearsal API issues.
type JwtService struct {
	log    *logrus.Logger
	config *env.Config
	tracer trace.Tracer
}

func NewJwtService(log *logrus.Logger, config *env.Config) *JwtService {
	return &JwtService{log, config, otel.Tracer("JwtService")}
}

// GenerateToken creates a session token for user.
func (j *JwtService) GenerateToken(ctx context.Context, user model.User) (string, error) {
	_, span := j.tracer.Start(ctx, "GenerateToken")
	defer span.End()

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.config.FakeAPI.JWTSecret))
}

// ValidateToken verifies a session token and returns its claims.
func (j *JwtService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	spanCtx, span := j.tracer.Start(ctx, "ValidateToken")
	defer span.End()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			j.log.WithContext(spanCtx).Error("Token method not match")
			return nil, errcode.ErrUnexpectedSignMethod
		}
		return []byte(j.config.FakeAPI.JWTSecret), nil
	})
	if err != nil {
		j.log.WithContext(spanCtx).WithError(err).Warn("Failed to parse with claims")
		return nil, errcode.ErrInvalidToken
	}

	if !token.Valid {
		j.log.WithContext(spanCtx).Warn("Token invalid")
		return nil, errcode.ErrInvalidToken
	}

	return claims, nil
}
