package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/middleware"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/helpers"
)

// QuestionController handles question related operations
type QuestionController struct {
	questionService services.QuestionService
}

// NewQuestionController creates a new QuestionController
func NewQuestionController(questionService services.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion handles posting a new question
// @Summary Ask a question
// @Description Creates a subject-tagged question. An optional base64 image is resized, compressed and stored.
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.APIResponse{data=dto.QuestionResponse} "Question created"
// @Failure 400 {object} dto.ErrorResponse "Invalid question data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	question, err := c.questionService.Create(ctx.Request.Context(), identity.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromQuestion(question)))
}

// ListQuestions handles the filtered, sorted question listing
// @Summary List questions
// @Description Retrieves a page of questions, optionally filtered by subject or tag and sorted newest-first or by answer count.
// @Tags questions
// @Produce json
// @Param subject query string false "Filter by subject"
// @Param tag query string false "Filter by tag name"
// @Param sort query string false "Sort order" Enums(newest, popular) default(newest)
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param size query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.QuestionListResponse} "Questions retrieved"
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := models.QuestionFilter{
		Sort: models.SortNewest,
		Page: page,
		Size: size,
	}
	if subject := ctx.Query("subject"); subject != "" {
		filter.Subject = &subject
	}
	if tag := ctx.Query("tag"); tag != "" {
		filter.Tag = &tag
	}
	if ctx.Query("sort") == string(models.SortPopular) {
		filter.Sort = models.SortPopular
	}

	questions, total, err := c.questionService.List(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.QuestionListResponse{
		Questions:  dto.FromQuestions(questions),
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(response))
}

// GetQuestion handles retrieving one question
// @Summary Get a question
// @Description Retrieves a question by id with its tags and answer count.
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.QuestionResponse} "Question retrieved"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	question, err := c.questionService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromQuestion(question)))
}

// DeleteQuestion handles removing a question with its dependency tree
// @Summary Delete a question
// @Description Removes a question together with its answers, ratings, reports, tags, favorites and comments. Admin only.
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Question deleted"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.questionService.Delete(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "question deleted"}))
}
