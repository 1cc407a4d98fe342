package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/middleware"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// AnswerController handles answer and rating operations
type AnswerController struct {
	answerService services.AnswerService
}

// NewAnswerController creates a new AnswerController
func NewAnswerController(answerService services.AnswerService) *AnswerController {
	return &AnswerController{answerService: answerService}
}

// ListAnswers handles listing a question's answers
// @Summary List answers
// @Description Retrieves a question's answers ordered by rating, most helpful first.
// @Tags answers
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.AnswerResponse} "Answers retrieved"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id}/answers [get]
func (c *AnswerController) ListAnswers(ctx *gin.Context) {
	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	answers, err := c.answerService.ListByQuestion(ctx.Request.Context(), questionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromAnswers(answers)))
}

// CreateAnswer handles posting an answer to a question
// @Summary Answer a question
// @Description Creates an answer and notifies the question's owner when the answerer is someone else.
// @Tags answers
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.CreateAnswerRequest true "Answer data"
// @Success 201 {object} dto.APIResponse{data=dto.AnswerResponse} "Answer created"
// @Failure 400 {object} dto.ErrorResponse "Invalid answer data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id}/answers [post]
func (c *AnswerController) CreateAnswer(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	answer, err := c.answerService.Create(ctx.Request.Context(), identity.UserID, questionID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromAnswer(answer)))
}

// RateAnswer handles the one-time helpful rating of an answer
// @Summary Rate an answer
// @Description Records a one-time helpful rating. A repeat attempt from the same user returns a conflict and moves no counter.
// @Tags answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.APIResponse{data=dto.AnswerResponse} "Updated answer"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 409 {object} dto.ErrorResponse "Already rated"
// @Router /answers/{id}/rate [patch]
func (c *AnswerController) RateAnswer(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	answerID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	answer, err := c.answerService.Rate(ctx.Request.Context(), identity.UserID, answerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromAnswer(answer)))
}

// DeleteAnswer handles removing an answer with its dependent rows
// @Summary Delete an answer
// @Description Removes an answer together with its ratings, reports and answer-scoped comments. Admin only.
// @Tags answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Answer deleted"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Router /answers/{id} [delete]
func (c *AnswerController) DeleteAnswer(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	answerID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.answerService.Delete(ctx.Request.Context(), identity, answerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "answer deleted"}))
}
