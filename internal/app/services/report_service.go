package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/filestorage"
)

const minReasonLength = 5

// ReportService defines the interface for the moderation workflow
type ReportService interface {
	Create(ctx context.Context, reporterID int64, req *dto.CreateReportRequest) (*models.Report, error)
	ListOpen(ctx context.Context, identity models.Identity) ([]*models.OpenReport, error)
	Resolve(ctx context.Context, identity models.Identity, reportID int64) error
	ResolveAndDelete(ctx context.Context, identity models.Identity, reportID int64, req *dto.ResolveAndDeleteRequest) error
}

// reportServiceImpl implements ReportService
type reportServiceImpl struct {
	reportStore   ReportStore
	questionStore QuestionStore
	answerStore   AnswerStore
	storage       filestorage.Storage
	logger        zerolog.Logger
}

// NewReportService creates a new ReportService
func NewReportService(
	reportStore ReportStore,
	questionStore QuestionStore,
	answerStore AnswerStore,
	storage filestorage.Storage,
	logger zerolog.Logger,
) ReportService {
	return &reportServiceImpl{
		reportStore:   reportStore,
		questionStore: questionStore,
		answerStore:   answerStore,
		storage:       storage,
		logger:        logger,
	}
}

// Create opens a report against a question or answer. The same user may
// report the same content more than once.
func (s *reportServiceImpl) Create(ctx context.Context, reporterID int64, req *dto.CreateReportRequest) (*models.Report, error) {
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type must be question or answer").WithField("type")
	}
	if len(strings.TrimSpace(req.Reason)) < minReasonLength {
		return nil, apperrors.NewValidationError("reason must be at least 5 characters").WithField("reason")
	}

	if err := s.targetExists(ctx, req.Type, req.ContentID); err != nil {
		return nil, err
	}

	report := &models.Report{
		Kind:       req.Type,
		TargetID:   req.ContentID,
		ReporterID: reporterID,
		Reason:     strings.TrimSpace(req.Reason),
	}
	if err := s.reportStore.Create(ctx, report); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("reportId", report.ID).
		Str("kind", string(report.Kind)).
		Int64("targetId", report.TargetID).
		Msg("Report created")
	return report, nil
}

// ListOpen returns the moderation queue, newest first. Admin only.
func (s *reportServiceImpl) ListOpen(ctx context.Context, identity models.Identity) ([]*models.OpenReport, error) {
	if !identity.IsAdmin() {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.reportStore.ListOpen(ctx)
}

// Resolve marks a report resolved without touching the reported content.
// Resolved is terminal; resolving again succeeds as a no-op.
func (s *reportServiceImpl) Resolve(ctx context.Context, identity models.Identity, reportID int64) error {
	if !identity.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	if err := s.reportStore.Resolve(ctx, reportID); err != nil {
		return err
	}

	s.logger.Info().Int64("reportId", reportID).Int64("adminId", identity.UserID).Msg("Report resolved")
	return nil
}

// ResolveAndDelete removes the reported content and resolves the report in
// one transaction. If the delete fails the report stays open. Admin only.
func (s *reportServiceImpl) ResolveAndDelete(ctx context.Context, identity models.Identity, reportID int64, req *dto.ResolveAndDeleteRequest) error {
	if !identity.IsAdmin() {
		return apperrors.ErrPermissionDenied
	}

	report, err := s.reportStore.GetByID(ctx, reportID)
	if err != nil {
		return err
	}
	if req != nil && (req.Type != report.Kind || req.ContentID != report.TargetID) {
		return apperrors.NewValidationError("report target does not match the requested content")
	}

	// Capture the image path before the rows disappear
	var imageURL *string
	if report.Kind == models.ReportKindQuestion {
		if question, err := s.questionStore.GetByID(ctx, report.TargetID); err == nil {
			imageURL = question.ImageURL
		} else if !errors.Is(err, apperrors.ErrQuestionNotFound) {
			return err
		}
	}

	if err := s.reportStore.ResolveAndDelete(ctx, report); err != nil {
		return err
	}

	if imageURL != nil {
		if err := s.storage.Remove(*imageURL); err != nil {
			s.logger.Warn().Err(err).Str("imageUrl", *imageURL).Msg("Failed to remove reported question image file")
		}
	}

	s.logger.Info().
		Int64("reportId", reportID).
		Str("kind", string(report.Kind)).
		Int64("targetId", report.TargetID).
		Int64("adminId", identity.UserID).
		Msg("Report resolved and content deleted")
	return nil
}

func (s *reportServiceImpl) targetExists(ctx context.Context, kind models.ReportKind, targetID int64) error {
	switch kind {
	case models.ReportKindQuestion:
		_, err := s.questionStore.GetByID(ctx, targetID)
		return err
	case models.ReportKindAnswer:
		_, err := s.answerStore.GetByID(ctx, targetID)
		return err
	}
	return apperrors.NewValidationError("type must be question or answer").WithField("type")
}
