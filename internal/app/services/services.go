package services

import (
	"github.com/rs/zerolog"

	"github.com/kareemh/maarif/internal/app/repositories"
	"github.com/kareemh/maarif/internal/pkg/filestorage"
	"github.com/kareemh/maarif/internal/pkg/imaging"
)

// Services bundles all service instances for dependency injection
type Services struct {
	AuthService         AuthService
	QuestionService     QuestionService
	AnswerService       AnswerService
	ReportService       ReportService
	FavoriteService     FavoriteService
	CommentService      CommentService
	NotificationService NotificationService
	AdminService        AdminService
	RankingService      RankingService
}

// NewServices wires all services to their repositories
func NewServices(
	repos *repositories.Repositories,
	processor imaging.Processor,
	storage filestorage.Storage,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, logger),
		QuestionService: NewQuestionService(
			repos.QuestionRepository, processor, storage, logger),
		AnswerService: NewAnswerService(
			repos.AnswerRepository, repos.QuestionRepository, repos.UserRepository,
			repos.NotificationRepository, logger),
		ReportService: NewReportService(
			repos.ReportRepository, repos.QuestionRepository, repos.AnswerRepository,
			storage, logger),
		FavoriteService: NewFavoriteService(
			repos.FavoriteRepository, repos.QuestionRepository, logger),
		CommentService: NewCommentService(
			repos.CommentRepository, repos.QuestionRepository, repos.AnswerRepository,
			repos.UserRepository, repos.NotificationRepository, logger),
		NotificationService: NewNotificationService(
			repos.NotificationRepository, repos.UserRepository, logger),
		AdminService:   NewAdminService(repos.UserRepository, logger),
		RankingService: NewRankingService(repos.UserRepository, logger),
	}
}
