package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// NotificationService defines the interface for reading and producing
// notifications
type NotificationService interface {
	Create(ctx context.Context, senderID int64, req *dto.CreateNotificationRequest) (*models.Notification, error)
	List(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
}

// notificationServiceImpl implements NotificationService
type notificationServiceImpl struct {
	notificationStore NotificationStore
	userStore         UserStore
	logger            zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationStore NotificationStore, userStore UserStore, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		notificationStore: notificationStore,
		userStore:         userStore,
		logger:            logger,
	}
}

// Create addresses a notification to a recipient on behalf of the sender
func (s *notificationServiceImpl) Create(ctx context.Context, senderID int64, req *dto.CreateNotificationRequest) (*models.Notification, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type must be answer, comment or rating").WithField("type")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.NewValidationError("content is required").WithField("content")
	}
	if _, err := s.userStore.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:     req.UserID,
		Kind:       req.Type,
		Content:    content,
		QuestionID: req.QuestionID,
		AnswerID:   req.AnswerID,
		FromUserID: &senderID,
	}
	if err := s.notificationStore.Create(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// List returns the user's notifications, newest first
func (s *notificationServiceImpl) List(ctx context.Context, userID int64) ([]*models.Notification, error) {
	return s.notificationStore.ListByUser(ctx, userID)
}

// MarkRead marks one of the user's notifications as read. Marking an
// already-read notification succeeds; another user's notification reads as
// missing.
func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.notificationStore.MarkRead(ctx, notificationID, userID)
}
