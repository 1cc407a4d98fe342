package services

import (
	"context"

	"github.com/kareemh/maarif/internal/app/models"
)

// Store interfaces consumed by the services. The concrete implementations
// live in the repositories package; tests substitute in-memory fakes.

// UserStore persists user records and their lifetime counters
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	TopByHelpfulness(ctx context.Context, limit int) ([]*models.User, error)
	TopByQuestions(ctx context.Context, limit int) ([]*models.User, error)
	Count(ctx context.Context) (int64, error)
	DeleteCascade(ctx context.Context, userID int64) error
}

// QuestionStore persists questions and their tag links
type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	List(ctx context.Context, filter models.QuestionFilter) ([]*models.Question, int64, error)
	DeleteCascade(ctx context.Context, id int64) error
}

// AnswerStore persists answers and their one-time ratings
type AnswerStore interface {
	Create(ctx context.Context, answer *models.Answer) error
	GetByID(ctx context.Context, id int64) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID int64) ([]*models.Answer, error)
	Rate(ctx context.Context, answerID, raterID int64) (*models.Answer, error)
	DeleteCascade(ctx context.Context, id int64) error
}

// ReportStore persists moderation reports
type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	ListOpen(ctx context.Context) ([]*models.OpenReport, error)
	Resolve(ctx context.Context, id int64) error
	ResolveAndDelete(ctx context.Context, report *models.Report) error
}

// FavoriteStore persists the user-question favorite pairs
type FavoriteStore interface {
	Add(ctx context.Context, userID, questionID int64) (bool, error)
	Remove(ctx context.Context, userID, questionID int64) (bool, error)
	Exists(ctx context.Context, userID, questionID int64) (bool, error)
	ListQuestions(ctx context.Context, userID int64) ([]*models.Question, error)
}

// CommentStore persists comments
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByQuestion(ctx context.Context, questionID int64) ([]*models.Comment, error)
}

// NotificationStore persists per-user notification records
type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID int64) ([]*models.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
}
