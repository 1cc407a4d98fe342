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

// CommentService defines the interface for commenting on questions
type CommentService interface {
	Create(ctx context.Context, userID, questionID int64, req *dto.CreateCommentRequest) (*models.Comment, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]*models.Comment, error)
}

// commentServiceImpl implements CommentService
type commentServiceImpl struct {
	commentStore      CommentStore
	questionStore     QuestionStore
	answerStore       AnswerStore
	userStore         UserStore
	notificationStore NotificationStore
	sanitizer         *bluemonday.Policy
	logger            zerolog.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentStore CommentStore,
	questionStore QuestionStore,
	answerStore AnswerStore,
	userStore UserStore,
	notificationStore NotificationStore,
	logger zerolog.Logger,
) CommentService {
	return &commentServiceImpl{
		commentStore:      commentStore,
		questionStore:     questionStore,
		answerStore:       answerStore,
		userStore:         userStore,
		notificationStore: notificationStore,
		sanitizer:         bluemonday.StrictPolicy(),
		logger:            logger,
	}
}

// Create stores a comment on a question, optionally scoped to one of its
// answers, and notifies the question's owner best-effort.
func (s *commentServiceImpl) Create(ctx context.Context, userID, questionID int64, req *dto.CreateCommentRequest) (*models.Comment, error) {
	content := strings.TrimSpace(s.sanitizer.Sanitize(req.Content))
	if content == "" {
		return nil, apperrors.NewValidationError("content is required").WithField("content")
	}

	question, err := s.questionStore.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if req.AnswerID != nil {
		answer, err := s.answerStore.GetByID(ctx, *req.AnswerID)
		if err != nil {
			return nil, err
		}
		if answer.QuestionID != questionID {
			return nil, apperrors.NewValidationError("answer does not belong to this question").WithField("answerId")
		}
	}

	comment := &models.Comment{
		QuestionID: questionID,
		AnswerID:   req.AnswerID,
		UserID:     userID,
		Content:    content,
	}
	if err := s.commentStore.Create(ctx, comment); err != nil {
		return nil, err
	}

	if question.UserID != userID {
		s.notifyOwner(ctx, question, comment)
	}

	s.logger.Info().
		Int64("commentId", comment.ID).
		Int64("questionId", questionID).
		Int64("userId", userID).
		Msg("Comment created")
	return comment, nil
}

// ListByQuestion returns a question's comments in posting order
func (s *commentServiceImpl) ListByQuestion(ctx context.Context, questionID int64) ([]*models.Comment, error) {
	if _, err := s.questionStore.GetByID(ctx, questionID); err != nil {
		return nil, err
	}
	return s.commentStore.ListByQuestion(ctx, questionID)
}

func (s *commentServiceImpl) notifyOwner(ctx context.Context, question *models.Question, comment *models.Comment) {
	commenter, err := s.userStore.GetByID(ctx, comment.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userId", comment.UserID).Msg("Failed to load commenter for notification")
		return
	}

	notification := &models.Notification{
		UserID:     question.UserID,
		Kind:       models.NotificationComment,
		Content:    fmt.Sprintf("%s علّق على سؤالك", commenter.Username),
		QuestionID: &question.ID,
		AnswerID:   comment.AnswerID,
		FromUserID: &comment.UserID,
	}
	if err := s.notificationStore.Create(ctx, notification); err != nil {
		s.logger.Warn().Err(err).Int64("questionId", question.ID).Msg("Failed to create comment notification")
	}
}
