package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/middleware"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// CommentController handles commenting on questions
type CommentController struct {
	commentService services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CreateComment handles posting a comment on a question
// @Summary Comment on a question
// @Description Creates a comment on a question, optionally scoped to one of its answers, and notifies the question's owner.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body dto.CreateCommentRequest true "Comment data"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse} "Comment created"
// @Failure 400 {object} dto.ErrorResponse "Invalid comment data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Question or answer not found"
// @Router /questions/{id}/comments [post]
func (c *CommentController) CreateComment(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	comment, err := c.commentService.Create(ctx.Request.Context(), identity.UserID, questionID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromComment(comment)))
}

// ListComments handles listing a question's comments
// @Summary List comments
// @Description Retrieves a question's comments in posting order.
// @Tags comments
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CommentResponse} "Comments retrieved"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id}/comments [get]
func (c *CommentController) ListComments(ctx *gin.Context) {
	questionID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	comments, err := c.commentService.ListByQuestion(ctx.Request.Context(), questionID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromComments(comments)))
}
