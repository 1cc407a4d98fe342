package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/auth"
)

func TestAuthService_Register(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, zerolog.Nop())
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "sara_5a",
		Password: "secret123",
		Grade:    models.GradeFive,
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.GradeFive, user.Grade)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "secret123"))
	assert.Zero(t, user.QuestionsAsked)
	assert.Zero(t, user.AnswersGiven)
	assert.Zero(t, user.TotalHelpfulness)
	assert.False(t, user.GoldenColleague)
}

func TestAuthService_Register_Validation(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, zerolog.Nop())
	ctx := context.Background()

	tests := []struct {
		name  string
		req   dto.RegisterRequest
		field string
	}{
		{"empty username", dto.RegisterRequest{Username: "  ", Password: "secret123", Grade: 5}, "username"},
		{"short password", dto.RegisterRequest{Username: "ali", Password: "12345", Grade: 5}, "password"},
		{"grade too low", dto.RegisterRequest{Username: "ali", Password: "secret123", Grade: 3}, "grade"},
		{"grade too high", dto.RegisterRequest{Username: "ali", Password: "secret123", Grade: 7}, "grade"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := tc.req
			_, err := svc.Register(ctx, &req)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidation)

			var custom *apperrors.CustomError
			require.ErrorAs(t, err, &custom)
			assert.Equal(t, tc.field, custom.Field)
		})
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Username: "sara_5a", Password: "secret123", Grade: 5})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "sara_5a", Password: "otherpass", Grade: 6})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)

	var custom *apperrors.CustomError
	require.ErrorAs(t, err, &custom)
	assert.Equal(t, "username", custom.Field)
}

func TestAuthService_Login(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, zerolog.Nop())
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{Username: "omar_6b", Password: "secret123", Grade: 6})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Login(ctx, &dto.LoginRequest{Username: "omar_6b", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "omar_6b", Password: "wrong-pass"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown username maps to the same error", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Username: "nobody", Password: "secret123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.False(t, errors.Is(err, apperrors.ErrUserNotFound))
	})
}

func TestAuthService_GetUser(t *testing.T) {
	store := newMemStore()
	svc := NewAuthService(store, zerolog.Nop())
	ctx := context.Background()

	seeded := seedUser(store, "hala_4c", models.RoleUser)

	user, err := svc.GetUser(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "hala_4c", user.Username)

	_, err = svc.GetUser(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
