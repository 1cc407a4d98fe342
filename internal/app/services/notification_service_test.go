package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

func newNotificationService(store *memStore) NotificationService {
	return NewNotificationService(store.Notifications(), store, zerolog.Nop())
}

func TestNotificationService_Create(t *testing.T) {
	store := newMemStore()
	svc := newNotificationService(store)
	ctx := context.Background()

	sender := seedUser(store, "omar_6b", models.RoleUser)
	recipient := seedUser(store, "sara_5a", models.RoleUser)
	questionID := int64(7)

	notification, err := svc.Create(ctx, sender.ID, &dto.CreateNotificationRequest{
		UserID:     recipient.ID,
		Type:       models.NotificationAnswer,
		Content:    "omar_6b أجاب على سؤالك",
		QuestionID: &questionID,
	})
	require.NoError(t, err)
	assert.NotZero(t, notification.ID)
	assert.Equal(t, recipient.ID, notification.UserID)
	require.NotNil(t, notification.FromUserID)
	assert.Equal(t, sender.ID, *notification.FromUserID)
	assert.False(t, notification.IsRead)
}

func TestNotificationService_Create_Validation(t *testing.T) {
	store := newMemStore()
	svc := newNotificationService(store)
	ctx := context.Background()

	sender := seedUser(store, "omar_6b", models.RoleUser)
	recipient := seedUser(store, "sara_5a", models.RoleUser)

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.Create(ctx, sender.ID, &dto.CreateNotificationRequest{
			UserID: recipient.ID, Type: "mention", Content: "نص",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.Create(ctx, sender.ID, &dto.CreateNotificationRequest{
			UserID: recipient.ID, Type: models.NotificationComment, Content: "  ",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing recipient", func(t *testing.T) {
		_, err := svc.Create(ctx, sender.ID, &dto.CreateNotificationRequest{
			UserID: 999, Type: models.NotificationComment, Content: "نص",
		})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestNotificationService_List(t *testing.T) {
	store := newMemStore()
	svc := newNotificationService(store)
	ctx := context.Background()

	sender := seedUser(store, "omar_6b", models.RoleUser)
	recipient := seedUser(store, "sara_5a", models.RoleUser)

	first, err := svc.Create(ctx, sender.ID, &dto.CreateNotificationRequest{
		UserID: recipient.ID, Type: models.NotificationAnswer, Content: "الأول",
	})
	require.NoError(t, err)
	second, err := svc.Create(ctx, sender.ID, &dto.CreateNotificationRequest{
		UserID: recipient.ID, Type: models.NotificationComment, Content: "الثاني",
	})
	require.NoError(t, err)

	notifications, err := svc.List(ctx, recipient.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, second.ID, notifications[0].ID)
	assert.Equal(t, first.ID, notifications[1].ID)

	// The sender's own feed stays empty
	empty, err := svc.List(ctx, sender.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestNotificationService_MarkRead(t *testing.T) {
	store := newMemStore()
	svc := newNotificationService(store)
	ctx := context.Background()

	sender := seedUser(store, "omar_6b", models.RoleUser)
	recipient := seedUser(store, "sara_5a", models.RoleUser)
	stranger := seedUser(store, "hala_4c", models.RoleUser)

	notification, err := svc.Create(ctx, sender.ID, &dto.CreateNotificationRequest{
		UserID: recipient.ID, Type: models.NotificationAnswer, Content: "نص",
	})
	require.NoError(t, err)

	t.Run("owner marks read", func(t *testing.T) {
		require.NoError(t, svc.MarkRead(ctx, recipient.ID, notification.ID))
		assert.True(t, store.notifications[notification.ID].IsRead)
	})

	t.Run("marking read twice succeeds", func(t *testing.T) {
		assert.NoError(t, svc.MarkRead(ctx, recipient.ID, notification.ID))
		assert.True(t, store.notifications[notification.ID].IsRead)
	})

	t.Run("someone else's notification reads as missing", func(t *testing.T) {
		err := svc.MarkRead(ctx, stranger.ID, notification.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.MarkRead(ctx, recipient.ID, 999)
		assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
	})
}
