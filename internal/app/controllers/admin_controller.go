package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/middleware"
)

// AdminController handles account administration
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// ListUsers handles listing all registered accounts
// @Summary List users
// @Description Retrieves every registered account with its lifetime counters. Admin only.
// @Tags admin
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.UserResponse} "Users retrieved"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	users, err := c.adminService.ListUsers(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromUsers(users)))
}

// DeleteUser handles removing an account with everything it produced
// @Summary Delete a user
// @Description Removes an account and all content, ratings, favorites, reports and notifications tied to it. Admins cannot delete their own account. Admin only.
// @Tags admin
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "User deleted"
// @Failure 400 {object} dto.ErrorResponse "Attempted self-deletion"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.adminService.DeleteUser(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "user deleted"}))
}
