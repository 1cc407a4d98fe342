package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kareemh/maarif/internal/app/models"
)

// FavoriteService defines the interface for favoriting questions
type FavoriteService interface {
	Add(ctx context.Context, userID, questionID int64) (bool, error)
	Remove(ctx context.Context, userID, questionID int64) (bool, error)
	Status(ctx context.Context, userID, questionID int64) (bool, error)
	ListQuestions(ctx context.Context, userID int64) ([]*models.Question, error)
}

// favoriteServiceImpl implements FavoriteService
type favoriteServiceImpl struct {
	favoriteStore FavoriteStore
	questionStore QuestionStore
	logger        zerolog.Logger
}

// NewFavoriteService creates a new FavoriteService
func NewFavoriteService(favoriteStore FavoriteStore, questionStore QuestionStore, logger zerolog.Logger) FavoriteService {
	return &favoriteServiceImpl{
		favoriteStore: favoriteStore,
		questionStore: questionStore,
		logger:        logger,
	}
}

// Add favorites a question. A duplicate favorite is not an error; it reports
// false and changes nothing.
func (s *favoriteServiceImpl) Add(ctx context.Context, userID, questionID int64) (bool, error) {
	if _, err := s.questionStore.GetByID(ctx, questionID); err != nil {
		return false, err
	}

	added, err := s.favoriteStore.Add(ctx, userID, questionID)
	if err != nil {
		return false, err
	}
	if added {
		s.logger.Debug().Int64("userId", userID).Int64("questionId", questionID).Msg("Question favorited")
	}
	return added, nil
}

// Remove unfavorites a question; reports false when there was nothing to remove
func (s *favoriteServiceImpl) Remove(ctx context.Context, userID, questionID int64) (bool, error) {
	return s.favoriteStore.Remove(ctx, userID, questionID)
}

// Status reports whether the user has favorited the question
func (s *favoriteServiceImpl) Status(ctx context.Context, userID, questionID int64) (bool, error) {
	return s.favoriteStore.Exists(ctx, userID, questionID)
}

// ListQuestions returns the user's favorited questions, most recent first
func (s *favoriteServiceImpl) ListQuestions(ctx context.Context, userID int64) ([]*models.Question, error) {
	return s.favoriteStore.ListQuestions(ctx, userID)
}
