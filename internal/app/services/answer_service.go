package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// AnswerService defines the interface for answer and rating operations
type AnswerService interface {
	Create(ctx context.Context, userID, questionID int64, req *dto.CreateAnswerRequest) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]*models.Answer, error)
	Rate(ctx context.Context, raterID, answerID int64) (*models.Answer, error)
	Delete(ctx context.Context, identity models.Identity, id int64) error
}

// answerServiceImpl implements AnswerService
type answerServiceImpl struct {
	answerStore       AnswerStore
	questionStore     QuestionStore
	userStore         UserStore
	notificationStore NotificationStore
	sanitizer         *bluemonday.Policy
	logger            zerolog.Logger
}

// NewAnswerService creates a new AnswerService
func NewAnswerService(
	answerStore AnswerStore,
	questionStore QuestionStore,
	userStore UserStore,
	notificationStore NotificationStore,
	logger zerolog.Logger,
) AnswerService {
	return &answerServiceImpl{
		answerStore:       answerStore,
		questionStore:     questionStore,
		userStore:         userStore,
		notificationStore: notificationStore,
		sanitizer:         bluemonday.StrictPolicy(),
		logger:            logger,
	}
}

// Create stores an answer and notifies the question's owner. The
// notification is fire-and-forget: a failure there is logged and never fails
// the answer creation.
func (s *answerServiceImpl) Create(ctx context.Context, userID, questionID int64, req *dto.CreateAnswerRequest) (*models.Answer, error) {
	content := strings.TrimSpace(s.sanitizer.Sanitize(req.Content))
	if content == "" {
		return nil, apperrors.NewValidationError("content is required").WithField("content")
	}

	question, err := s.questionStore.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	answer := &models.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Content:    content,
	}
	if err := s.answerStore.Create(ctx, answer); err != nil {
		return nil, err
	}

	if question.UserID != userID {
		s.notifyOwner(ctx, question, answer)
	}

	s.logger.Info().
		Int64("answerId", answer.ID).
		Int64("questionId", questionID).
		Int64("userId", userID).
		Msg("Answer created")
	return answer, nil
}

// ListByQuestion returns a question's answers, most helpful first
func (s *answerServiceImpl) ListByQuestion(ctx context.Context, questionID int64) ([]*models.Answer, error) {
	if _, err := s.questionStore.GetByID(ctx, questionID); err != nil {
		return nil, err
	}
	return s.answerStore.ListByQuestion(ctx, questionID)
}

// Rate records a one-time helpful rating. A repeat attempt from the same
// user surfaces as ErrAlreadyRated with no counter movement. The answer's
// owner is notified best-effort on success.
func (s *answerServiceImpl) Rate(ctx context.Context, raterID, answerID int64) (*models.Answer, error) {
	rated, err := s.answerStore.Rate(ctx, answerID, raterID)
	if err != nil {
		return nil, err
	}

	if rated.UserID != raterID {
		s.notifyRated(ctx, rated, raterID)
	}

	s.logger.Info().Int64("answerId", answerID).Int64("raterId", raterID).Msg("Answer rated")
	return rated, nil
}

// Delete removes an answer with its dependent rows. Admin only.
func (s *answerServiceImpl) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if !identity.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.answerStore.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("answerId", id).Int64("adminId", identity.UserID).Msg("Answer deleted")
	return nil
}

func (s *answerServiceImpl) notifyOwner(ctx context.Context, question *models.Question, answer *models.Answer) {
	answerer, err := s.userStore.GetByID(ctx, answer.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userId", answer.UserID).Msg("Failed to load answerer for notification")
		return
	}

	notification := &models.Notification{
		UserID:     question.UserID,
		Kind:       models.NotificationAnswer,
		Content:    fmt.Sprintf("%s أجاب على سؤالك", answerer.Username),
		QuestionID: &question.ID,
		AnswerID:   &answer.ID,
		FromUserID: &answer.UserID,
	}
	if err := s.notificationStore.Create(ctx, notification); err != nil {
		s.logger.Warn().Err(err).Int64("questionId", question.ID).Msg("Failed to create answer notification")
	}
}

func (s *answerServiceImpl) notifyRated(ctx context.Context, answer *models.Answer, raterID int64) {
	notification := &models.Notification{
		UserID:     answer.UserID,
		Kind:       models.NotificationRating,
		Content:    "تم تقييم إجابتك كإجابة مفيدة",
		QuestionID: &answer.QuestionID,
		AnswerID:   &answer.ID,
		FromUserID: &raterID,
	}
	if err := s.notificationStore.Create(ctx, notification); err != nil {
		s.logger.Warn().Err(err).Int64("answerId", answer.ID).Msg("Failed to create rating notification")
	}
}
