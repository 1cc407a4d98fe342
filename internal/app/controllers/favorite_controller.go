package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/middleware"
)

// FavoriteController handles favoriting questions
type FavoriteController struct {
	favoriteService services.FavoriteService
}

// NewFavoriteController creates a new FavoriteController
func NewFavoriteController(favoriteService services.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// AddFavorite handles favoriting a question
// @Summary Favorite a question
// @Description Saves a question to the caller's favorites. Favoriting twice is not an error; the response reports whether anything changed.
// @Tags favorites
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.FavoriteStatusResponse} "Favorite state"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id}/favorite [post]
func (c *FavoriteController) AddFavorite(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	added, err := c.favoriteService.Add(ctx.Request.Context(), identity.UserID, questionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FavoriteStatusResponse{Favorited: true, Changed: added}))
}

// RemoveFavorite handles unfavoriting a question
// @Summary Unfavorite a question
// @Description Removes a question from the caller's favorites.
// @Tags favorites
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.FavoriteStatusResponse} "Favorite state"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /questions/{id}/favorite [delete]
func (c *FavoriteController) RemoveFavorite(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	removed, err := c.favoriteService.Remove(ctx.Request.Context(), identity.UserID, questionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FavoriteStatusResponse{Favorited: false, Changed: removed}))
}

// FavoriteStatus handles checking whether the caller favorited a question
// @Summary Favorite status
// @Description Reports whether the caller has favorited the question.
// @Tags favorites
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.FavoriteStatusResponse} "Favorite state"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /questions/{id}/favorite [get]
func (c *FavoriteController) FavoriteStatus(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	favorited, err := c.favoriteService.Status(ctx.Request.Context(), identity.UserID, questionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FavoriteStatusResponse{Favorited: favorited}))
}

// ListFavorites handles listing the caller's favorited questions
// @Summary List favorites
// @Description Retrieves the caller's favorited questions, most recently favorited first.
// @Tags favorites
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.QuestionResponse} "Favorited questions"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /favorites [get]
func (c *FavoriteController) ListFavorites(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	questions, err := c.favoriteService.ListQuestions(ctx.Request.Context(), identity.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromQuestions(questions)))
}
