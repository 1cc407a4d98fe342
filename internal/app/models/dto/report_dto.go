package dto

import "github.com/kareemh/maarif/internal/app/models"

// CreateReportRequest is the payload for reporting a question or answer
type CreateReportRequest struct {
	Type      models.ReportKind `json:"type" binding:"required" example:"question"`
	ContentID int64             `json:"contentId" binding:"required" example:"1"`
	Reason    string            `json:"reason" binding:"required" example:"محتوى غير لائق"`
}

// ResolveAndDeleteRequest names the content an admin wants removed together
// with the report being resolved
type ResolveAndDeleteRequest struct {
	Type      models.ReportKind `json:"type" binding:"required" example:"question"`
	ContentID int64             `json:"contentId" binding:"required" example:"1"`
}

// ReportResponse is the public view of a report
type ReportResponse struct {
	ID        int64             `json:"id" example:"1"`
	Type      models.ReportKind `json:"type" example:"question"`
	ContentID int64             `json:"contentId" example:"1"`
	Reason    string            `json:"reason"`
	Resolved  bool              `json:"resolved" example:"false"`
	CreatedAt string            `json:"createdAt" example:"2026-03-11T12:00:00Z"`
}

// OpenReportResponse is the moderation-queue view of an open report
type OpenReportResponse struct {
	ReportResponse
	ReporterName string `json:"reporterName" example:"sara_5a"`
	Content      string `json:"content"`
}

// FromReport converts a models.Report to its public view
func FromReport(r *models.Report) ReportResponse {
	return ReportResponse{
		ID:        r.ID,
		Type:      r.Kind,
		ContentID: r.TargetID,
		Reason:    r.Reason,
		Resolved:  r.Resolved,
		CreatedAt: r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromOpenReports converts joined open reports to their moderation views
func FromOpenReports(reports []*models.OpenReport) []OpenReportResponse {
	out := make([]OpenReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, OpenReportResponse{
			ReportResponse: FromReport(&reports[i].Report),
			ReporterName:   reports[i].ReporterName,
			Content:        reports[i].Content,
		})
	}
	return out
}
