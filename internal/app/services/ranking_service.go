package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kareemh/maarif/internal/app/models"
)

// DefaultRankingLimit is used when a caller asks for a non-positive number
// of ranked users.
const DefaultRankingLimit = 5

// RankingService defines the interface for read-only leaderboard queries.
// Ordering between users with equal counters follows registration order but
// is not part of the contract.
type RankingService interface {
	TopAnswerers(ctx context.Context, limit int) ([]*models.User, error)
	TopAskers(ctx context.Context, limit int) ([]*models.User, error)
	TotalUsers(ctx context.Context) (int64, error)
}

// rankingServiceImpl implements RankingService
type rankingServiceImpl struct {
	userStore UserStore
	logger    zerolog.Logger
}

// NewRankingService creates a new RankingService
func NewRankingService(userStore UserStore, logger zerolog.Logger) RankingService {
	return &rankingServiceImpl{userStore: userStore, logger: logger}
}

// TopAnswerers returns at most limit users with the highest accumulated
// helpfulness
func (s *rankingServiceImpl) TopAnswerers(ctx context.Context, limit int) ([]*models.User, error) {
	return s.userStore.TopByHelpfulness(ctx, normalizeLimit(limit))
}

// TopAskers returns at most limit users with the most questions asked
func (s *rankingServiceImpl) TopAskers(ctx context.Context, limit int) ([]*models.User, error) {
	return s.userStore.TopByQuestions(ctx, normalizeLimit(limit))
}

// TotalUsers returns the number of registered accounts
func (s *rankingServiceImpl) TotalUsers(ctx context.Context) (int64, error) {
	return s.userStore.Count(ctx)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultRankingLimit
	}
	return limit
}
