package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/auth"
)

const minPasswordLength = 6

// AuthService defines the interface for registration and session identity
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userStore UserStore
	logger    zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userStore UserStore, logger zerolog.Logger) AuthService {
	return &authServiceImpl{userStore: userStore, logger: logger}
}

// Register creates a new student account with a hashed credential
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.NewValidationError("username is required").WithField("username")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.NewValidationError("password must be at least 6 characters").WithField("password")
	}
	if !req.Grade.IsValid() {
		return nil, apperrors.NewValidationError("grade must be 4, 5 or 6").WithField("grade")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Grade:        req.Grade,
		Role:         models.RoleUser,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil, &apperrors.CustomError{
				Err:     apperrors.ErrUsernameTaken,
				Message: "username already exists",
				Field:   "username",
			}
		}
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("username", user.Username).Msg("User registered")
	return user, nil
}

// Login verifies credentials. A missing user and a wrong password are
// indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userStore.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")
	return user, nil
}

// GetUser resolves a session's user id to the current account state
func (s *authServiceImpl) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userStore.GetByID(ctx, userID)
}
