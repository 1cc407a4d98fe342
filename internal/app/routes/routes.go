package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/controllers"
	"github.com/kareemh/maarif/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	questionController *controllers.QuestionController,
	answerController *controllers.AnswerController,
	reportController *controllers.ReportController,
	favoriteController *controllers.FavoriteController,
	commentController *controllers.CommentController,
	notificationController *controllers.NotificationController,
	adminController *controllers.AdminController,
	rankingController *controllers.RankingController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.Me)
	}

	// --- Public read routes ---
	api.GET("/questions", questionController.ListQuestions)
	api.GET("/questions/:id", questionController.GetQuestion)
	api.GET("/questions/:id/answers", answerController.ListAnswers)
	api.GET("/questions/:id/comments", commentController.ListComments)

	rankings := api.Group("/rankings")
	{
		rankings.GET("/answerers", rankingController.TopAnswerers)
		rankings.GET("/askers", rankingController.TopAskers)
		rankings.GET("/users/count", rankingController.TotalUsers)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.SessionRequired())
	{
		authenticated.POST("/questions", questionController.CreateQuestion)
		authenticated.POST("/questions/:id/answers", answerController.CreateAnswer)
		authenticated.PATCH("/answers/:id/rate", answerController.RateAnswer)

		authenticated.GET("/questions/:id/favorite", favoriteController.FavoriteStatus)
		authenticated.POST("/questions/:id/favorite", favoriteController.AddFavorite)
		authenticated.DELETE("/questions/:id/favorite", favoriteController.RemoveFavorite)
		authenticated.GET("/favorites", favoriteController.ListFavorites)

		authenticated.POST("/questions/:id/comments", commentController.CreateComment)

		authenticated.POST("/reports", reportController.CreateReport)

		authenticated.GET("/notifications", notificationController.ListNotifications)
		authenticated.POST("/notifications", notificationController.CreateNotification)
		authenticated.PATCH("/notifications/:id/read", notificationController.MarkNotificationRead)
	}

	// --- Admin routes; the role is re-read from the store on every call ---
	admin := api.Group("")
	admin.Use(authMiddleware.AdminRequired())
	{
		admin.GET("/reports", reportController.ListOpenReports)
		admin.PATCH("/reports/:id/resolve", reportController.ResolveReport)
		admin.POST("/reports/:id/resolve-delete", reportController.ResolveAndDelete)

		admin.DELETE("/questions/:id", questionController.DeleteQuestion)
		admin.DELETE("/answers/:id", answerController.DeleteAnswer)

		admin.GET("/admin/users", adminController.ListUsers)
		admin.DELETE("/admin/users/:id", adminController.DeleteUser)
	}
}
