package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/middleware"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// NotificationController handles reading and producing notifications
type NotificationController struct {
	notificationService services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// ListNotifications handles listing the caller's notifications
// @Summary List notifications
// @Description Retrieves the caller's notifications, newest first.
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.NotificationResponse} "Notifications retrieved"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Router /notifications [get]
func (c *NotificationController) ListNotifications(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	notifications, err := c.notificationService.List(ctx.Request.Context(), identity.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromNotifications(notifications)))
}

// CreateNotification handles addressing a notification to another user
// @Summary Create a notification
// @Description Addresses a notification to another user on behalf of the caller.
// @Tags notifications
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Notification data"
// @Success 201 {object} dto.APIResponse{data=dto.NotificationResponse} "Notification created"
// @Failure 400 {object} dto.ErrorResponse "Invalid notification data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Recipient not found"
// @Router /notifications [post]
func (c *NotificationController) CreateNotification(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateNotificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	notification, err := c.notificationService.Create(ctx.Request.Context(), identity.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromNotification(notification)))
}

// MarkNotificationRead handles marking one notification as read
// @Summary Mark a notification read
// @Description Marks one of the caller's notifications as read. Marking an already-read notification succeeds.
// @Tags notifications
// @Produce json
// @Param id path int true "Notification ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Notification marked read"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Notification not found"
// @Router /notifications/{id}/read [patch]
func (c *NotificationController) MarkNotificationRead(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.notificationService.MarkRead(ctx.Request.Context(), identity.UserID, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "notification marked as read"}))
}
