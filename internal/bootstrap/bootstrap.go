package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kareemh/maarif/docs" // swagger docs registration
	appControllers "github.com/kareemh/maarif/internal/app/controllers"
	appMigrations "github.com/kareemh/maarif/internal/app/migrations"
	appRepos "github.com/kareemh/maarif/internal/app/repositories"
	appRoutes "github.com/kareemh/maarif/internal/app/routes"
	appServices "github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/config"
	"github.com/kareemh/maarif/internal/db"
	appMiddleware "github.com/kareemh/maarif/internal/middleware"
	"github.com/kareemh/maarif/internal/pkg/filestorage"
	"github.com/kareemh/maarif/internal/pkg/imaging"
	"github.com/kareemh/maarif/internal/pkg/logger"
	"github.com/kareemh/maarif/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos    *appRepos.Repositories
	Services *appServices.Services

	AuthController         *appControllers.AuthController
	QuestionController     *appControllers.QuestionController
	AnswerController       *appControllers.AnswerController
	ReportController       *appControllers.ReportController
	FavoriteController     *appControllers.FavoriteController
	CommentController      *appControllers.CommentController
	NotificationController *appControllers.NotificationController
	AdminController        *appControllers.AdminController
	RankingController      *appControllers.RankingController

	AuthMiddleware *appMiddleware.AuthMiddleware
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Startup proceeds without seed data
		lgr.Error().Err(err).Msg("Failed to create default data")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	fileStorageBaseURL := strings.TrimRight(cfg.Server.BaseURL, "/") + "/uploads"
	fileStorage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = fileStorage

	deps.Services = appServices.NewServices(deps.Repos, imaging.NewProcessor(), fileStorage, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.AuthService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.QuestionController = appControllers.NewQuestionController(deps.Services.QuestionService)
	deps.AnswerController = appControllers.NewAnswerController(deps.Services.AnswerService)
	deps.ReportController = appControllers.NewReportController(deps.Services.ReportService)
	deps.FavoriteController = appControllers.NewFavoriteController(deps.Services.FavoriteService)
	deps.CommentController = appControllers.NewCommentController(deps.Services.CommentService)
	deps.NotificationController = appControllers.NewNotificationController(deps.Services.NotificationService)
	deps.AdminController = appControllers.NewAdminController(deps.Services.AdminService)
	deps.RankingController = appControllers.NewRankingController(deps.Services.RankingService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, sessions and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 7,
		HttpOnly: true,
	})
	router.Use(sessions.Sessions(cfg.Session.Name, store))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.QuestionController,
		deps.AnswerController,
		deps.ReportController,
		deps.FavoriteController,
		deps.CommentController,
		deps.NotificationController,
		deps.AdminController,
		deps.RankingController,
		deps.AuthMiddleware,
	)

	return router
}
