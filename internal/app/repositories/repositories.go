package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances for dependency injection
type Repositories struct {
	UserRepository         *UserRepository
	QuestionRepository     *QuestionRepository
	AnswerRepository       *AnswerRepository
	ReportRepository       *ReportRepository
	FavoriteRepository     *FavoriteRepository
	CommentRepository      *CommentRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		QuestionRepository:     NewQuestionRepository(db),
		AnswerRepository:       NewAnswerRepository(db),
		ReportRepository:       NewReportRepository(db),
		FavoriteRepository:     NewFavoriteRepository(db),
		CommentRepository:      NewCommentRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
