package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/app/services"
	"github.com/kareemh/maarif/internal/middleware"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// ReportController handles the moderation workflow
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// CreateReport handles flagging a question or answer
// @Summary Report content
// @Description Opens a report against a question or answer with a reason of at least 5 characters.
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.CreateReportRequest true "Report data"
// @Success 201 {object} dto.APIResponse{data=dto.ReportResponse} "Report created"
// @Failure 400 {object} dto.ErrorResponse "Invalid report data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Reported content not found"
// @Router /reports [post]
func (c *ReportController) CreateReport(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	var req dto.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	report, err := c.reportService.Create(ctx.Request.Context(), identity.UserID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FromReport(report)))
}

// ListOpenReports handles the moderation queue
// @Summary List open reports
// @Description Retrieves all unresolved reports joined with reporter username and reported content text, newest first. Admin only.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.OpenReportResponse} "Open reports"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /reports [get]
func (c *ReportController) ListOpenReports(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	reports, err := c.reportService.ListOpen(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.FromOpenReports(reports)))
}

// ResolveReport handles closing a report without touching content
// @Summary Resolve a report
// @Description Marks a report resolved. The reported content stays untouched. Admin only.
// @Tags reports
// @Produce json
// @Param id path int true "Report ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Report resolved"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Router /reports/{id}/resolve [patch]
func (c *ReportController) ResolveReport(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.reportService.Resolve(ctx.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "report resolved"}))
}

// ResolveAndDelete handles closing a report by removing the reported content
// @Summary Resolve a report and delete its content
// @Description Deletes the reported question or answer with its dependency tree and marks the report resolved, atomically. Admin only.
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body dto.ResolveAndDeleteRequest true "Target confirmation"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Content deleted and report resolved"
// @Failure 400 {object} dto.ErrorResponse "Target does not match the report"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Report or content not found"
// @Router /reports/{id}/resolve-delete [post]
func (c *ReportController) ResolveAndDelete(ctx *gin.Context) {
	identity, ok := requireIdentity(ctx)
	if !ok {
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.ResolveAndDeleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError("invalid request body"))
		return
	}

	if err := c.reportService.ResolveAndDelete(ctx.Request.Context(), identity, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "content deleted and report resolved"}))
}
