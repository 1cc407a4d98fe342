package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kareemh/maarif/internal/app/models"
	appRepos "github.com/kareemh/maarif/internal/app/repositories"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/auth"
)

const defaultAdminUsername = "admin"

// CreateDefaultData seeds the default admin account when it does not exist.
// The password comes from ADMIN_PASSWORD; without it no account is created,
// which is the expected state everywhere except a fresh local setup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		lgr.Debug().Msg("ADMIN_PASSWORD not set, skipping default admin seed")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)
	if _, err := userRepo.GetByUsername(ctx, defaultAdminUsername); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Username:     defaultAdminUsername,
		PasswordHash: hash,
		Grade:        appModels.GradeSix,
		Role:         appModels.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			return nil
		}
		return err
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin account created")
	return nil
}
