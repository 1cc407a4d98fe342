package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// AdminService defines the interface for account administration
type AdminService interface {
	ListUsers(ctx context.Context, identity models.Identity) ([]*models.User, error)
	DeleteUser(ctx context.Context, identity models.Identity, userID int64) error
}

// adminServiceImpl implements AdminService
type adminServiceImpl struct {
	userStore UserStore
	logger    zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(userStore UserStore, logger zerolog.Logger) AdminService {
	return &adminServiceImpl{userStore: userStore, logger: logger}
}

// ListUsers returns every registered account. Admin only.
func (s *adminServiceImpl) ListUsers(ctx context.Context, identity models.Identity) ([]*models.User, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.userStore.List(ctx)
}

// DeleteUser removes an account and everything it produced. Admin only, and
// never the admin's own account: that fails before any row is touched.
func (s *adminServiceImpl) DeleteUser(ctx context.Context, identity models.Identity, userID int64) error {
	if !identity.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}
	if identity.UserID == userID {
		return apperrors.ErrSelfDelete
	}

	if _, err := s.userStore.GetByID(ctx, userID); err != nil {
		return err
	}
	if err := s.userStore.DeleteCascade(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().Int64("deletedUserId", userID).Int64("adminId", identity.UserID).Msg("User deleted")
	return nil
}
