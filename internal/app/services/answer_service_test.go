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

func newAnswerService(store *memStore) AnswerService {
	return NewAnswerService(store.Answers(), store.Questions(), store, store.Notifications(), zerolog.Nop())
}

func seedQuestion(t *testing.T, store *memStore, ownerID int64) *models.Question {
	t.Helper()
	question := &models.Question{UserID: ownerID, Subject: "رياضيات", Content: "كيف أحسب مساحة المثلث؟"}
	require.NoError(t, store.Questions().Create(context.Background(), question))
	return question
}

func TestAnswerService_Create(t *testing.T) {
	store := newMemStore()
	svc := newAnswerService(store)
	ctx := context.Background()

	asker := seedUser(store, "sara_5a", models.RoleUser)
	answerer := seedUser(store, "omar_6b", models.RoleUser)
	question := seedQuestion(t, store, asker.ID)

	answer, err := svc.Create(ctx, answerer.ID, question.ID, &dto.CreateAnswerRequest{
		Content: "مساحة المثلث نصف القاعدة في الارتفاع",
	})
	require.NoError(t, err)
	assert.NotZero(t, answer.ID)
	assert.Equal(t, question.ID, answer.QuestionID)
	assert.Zero(t, answer.Rating)
	assert.Equal(t, 1, answerer.AnswersGiven)

	// The question's owner hears about it
	notifications, err := store.Notifications().ListByUser(ctx, asker.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationAnswer, notifications[0].Kind)
	assert.Contains(t, notifications[0].Content, "omar_6b")
	require.NotNil(t, notifications[0].QuestionID)
	assert.Equal(t, question.ID, *notifications[0].QuestionID)
	assert.False(t, notifications[0].IsRead)
}

func TestAnswerService_Create_OwnQuestionIsSilent(t *testing.T) {
	store := newMemStore()
	svc := newAnswerService(store)
	ctx := context.Background()

	asker := seedUser(store, "sara_5a", models.RoleUser)
	question := seedQuestion(t, store, asker.ID)

	_, err := svc.Create(ctx, asker.ID, question.ID, &dto.CreateAnswerRequest{Content: "وجدت الحل بنفسي"})
	require.NoError(t, err)

	notifications, err := store.Notifications().ListByUser(ctx, asker.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestAnswerService_Create_Errors(t *testing.T) {
	store := newMemStore()
	svc := newAnswerService(store)
	ctx := context.Background()

	answerer := seedUser(store, "omar_6b", models.RoleUser)

	_, err := svc.Create(ctx, answerer.ID, 999, &dto.CreateAnswerRequest{Content: "جواب"})
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)

	question := seedQuestion(t, store, answerer.ID)
	_, err = svc.Create(ctx, answerer.ID, question.ID, &dto.CreateAnswerRequest{Content: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Zero(t, answerer.AnswersGiven)
}

func TestAnswerService_Create_NotificationFailureDoesNotFailWrite(t *testing.T) {
	store := newMemStore()
	svc := newAnswerService(store)
	ctx := context.Background()

	asker := seedUser(store, "sara_5a", models.RoleUser)
	answerer := seedUser(store, "omar_6b", models.RoleUser)
	question := seedQuestion(t, store, asker.ID)

	store.failNotifications = true
	answer, err := svc.Create(ctx, answerer.ID, question.ID, &dto.CreateAnswerRequest{Content: "جواب"})
	require.NoError(t, err)
	assert.NotZero(t, answer.ID)
}

func TestAnswerService_Rate(t *testing.T) {
	store := newMemStore()
	svc := newAnswerService(store)
	ctx := context.Background()

	asker := seedUser(store, "sara_5a", models.RoleUser)
	answerer := seedUser(store, "omar_6b", models.RoleUser)
	question := seedQuestion(t, store, asker.ID)

	answer, err := svc.Create(ctx, answerer.ID, question.ID, &dto.CreateAnswerRequest{Content: "جواب"})
	require.NoError(t, err)

	rated, err := svc.Rate(ctx, asker.ID, answer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, rated.Rating)
	assert.Equal(t, 1, answerer.TotalHelpfulness)

	// The answerer gets a rating notification
	notifications, err := store.Notifications().ListByUser(ctx, answerer.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationRating, notifications[0].Kind)

	t.Run("second attempt moves nothing", func(t *testing.T) {
		_, err := svc.Rate(ctx, asker.ID, answer.ID)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyRated)
		assert.Equal(t, 1, answer.Rating)
		assert.Equal(t, 1, answerer.TotalHelpfulness)

		notifications, err := store.Notifications().ListByUser(ctx, answerer.ID)
		require.NoError(t, err)
		assert.Len(t, notifications, 1)
	})

	t.Run("a different rater still counts", func(t *testing.T) {
		other := seedUser(store, "hala_4c", models.RoleUser)
		rated, err := svc.Rate(ctx, other.ID, answer.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, rated.Rating)
		assert.Equal(t, 2, answerer.TotalHelpfulness)
	})

	t.Run("rating your own answer is silent", func(t *testing.T) {
		own, err := svc.Create(ctx, answerer.ID, question.ID, &dto.CreateAnswerRequest{Content: "إضافة"})
		require.NoError(t, err)

		before, err := store.Notifications().ListByUser(ctx, answerer.ID)
		require.NoError(t, err)

		_, err = svc.Rate(ctx, answerer.ID, own.ID)
		require.NoError(t, err)

		after, err := store.Notifications().ListByUser(ctx, answerer.ID)
		require.NoError(t, err)
		assert.Len(t, after, len(before))
	})

	t.Run("missing answer", func(t *testing.T) {
		_, err := svc.Rate(ctx, asker.ID, 999)
		assert.ErrorIs(t, err, apperrors.ErrAnswerNotFound)
	})
}

func TestAnswerService_ListByQuestion(t *testing.T) {
	store := newMemStore()
	svc := newAnswerService(store)
	ctx := context.Background()

	asker := seedUser(store, "sara_5a", models.RoleUser)
	answerer := seedUser(store, "omar_6b", models.RoleUser)
	rater := seedUser(store, "hala_4c", models.RoleUser)
	question := seedQuestion(t, store, asker.ID)

	first, err := svc.Create(ctx, answerer.ID, question.ID, &dto.CreateAnswerRequest{Content: "جواب أول"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, answerer.ID, question.ID, &dto.CreateAnswerRequest{Content: "جواب ثان"})
	require.NoError(t, err)

	_, err = svc.Rate(ctx, rater.ID, second.ID)
	require.NoError(t, err)

	answers, err := svc.ListByQuestion(ctx, question.ID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, second.ID, answers[0].ID)
	assert.Equal(t, first.ID, answers[1].ID)

	_, err = svc.ListByQuestion(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrQuestionNotFound)
}

func TestAnswerService_Delete(t *testing.T) {
	store := newMemStore()
	svc := newAnswerService(store)
	ctx := context.Background()

	asker := seedUser(store, "sara_5a", models.RoleUser)
	answerer := seedUser(store, "omar_6b", models.RoleUser)
	admin := seedUser(store, "admin", models.RoleAdmin)
	question := seedQuestion(t, store, asker.ID)

	answer, err := svc.Create(ctx, answerer.ID, question.ID, &dto.CreateAnswerRequest{Content: "جواب"})
	require.NoError(t, err)
	_, err = svc.Rate(ctx, asker.ID, answer.ID)
	require.NoError(t, err)

	t.Run("non-admin denied", func(t *testing.T) {
		err := svc.Delete(ctx, models.Identity{UserID: answerer.ID, Role: models.RoleUser}, answer.ID)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})

	t.Run("admin deletes with dependent rows", func(t *testing.T) {
		err := svc.Delete(ctx, models.Identity{UserID: admin.ID, Role: models.RoleAdmin}, answer.ID)
		require.NoError(t, err)

		_, err = store.Answers().GetByID(ctx, answer.ID)
		assert.ErrorIs(t, err, apperrors.ErrAnswerNotFound)
		assert.Empty(t, store.ratings)

		// Lifetime counters keep their value
		assert.Equal(t, 1, answerer.AnswersGiven)
		assert.Equal(t, 1, answerer.TotalHelpfulness)
	})

	t.Run("missing answer", func(t *testing.T) {
		err := svc.Delete(ctx, models.Identity{UserID: admin.ID, Role: models.RoleAdmin}, 999)
		assert.ErrorIs(t, err, apperrors.ErrAnswerNotFound)
	})
}
