package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"uni-seeder/internal/dto"
	"uni-seeder/internal/model"
	"uni-seeder/internal/repository"
	"uni-seeder/internal/utils/errcode"
)

func newAccountService() (*AccountService, *JwtService) {
	log := silentLogger()
	jwtService := NewJwtService(log, testEnvConfig())
	svc := NewAccountService(repository.NewUserRepository(), jwtService, log)
	svc.hashPassword = func(password []byte, _ int) ([]byte, error) {
		return bcrypt.GenerateFromPassword(password, bcrypt.MinCost)
	}
	return svc, jwtService
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := newAccountService()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:         "student11@uni54.edu",
		Name:          "Kate Thomas",
		Password:      "password123",
		Role:          model.RoleMentor,
		University:    "54",
		Degree:        "Psychology",
		OpenToContact: true,
	})
	require.NoError(t, err)
	require.Equal(t, model.User{
		ID:            "1",
		Email:         "student11@uni54.edu",
		Name:          "Kate Thomas",
		Role:          model.RoleMentor,
		UniversityID:  "54",
		Degree:        "Psychology",
		OpenToContact: true,
	}, resp.User)

	claims, err := jwtService.ValidateToken(ctx, resp.Token)
	require.NoError(t, err)
	require.Equal(t, model.ID("1"), claims.UserID)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "student11@uni54.edu", Name: "Again", Password: "x"})
	require.ErrorIs(t, err, errcode.ErrUserAlreadyExists)
}

func TestAccountService_Register_DefaultRoleAndHashFailure(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{Email: "a@x", Name: "A", Password: "p"})
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, resp.User.Role)

	svc.hashPassword = func([]byte, int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "b@x", Name: "B", Password: "p"})
	require.ErrorIs(t, err, errcode.ErrPasswordEncryption)
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "student1@uni54.edu", Name: "Alice Johnson", Password: "password123"})
	require.NoError(t, err)

	cases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "Success", email: "student1@uni54.edu", password: "password123"},
		{name: "WrongPassword", email: "student1@uni54.edu", password: "nope", wantErr: errcode.ErrInvalidCredentials},
		{name: "UnknownEmail", email: "ghost@uni54.edu", password: "password123", wantErr: errcode.ErrInvalidCredentials},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Login(ctx, &dto.LoginRequest{Email: tc.email, Password: tc.password})
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, resp.Token)
			require.Equal(t, "Alice Johnson", resp.User.Name)
		})
	}
}
