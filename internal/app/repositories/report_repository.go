package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/db"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// ReportRepository handles database operations for moderation reports
type ReportRepository struct {
	db *pgxpool.Pool
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts an open report. Duplicate reports from the same user on the
// same content are allowed.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (target_kind, target_id, reporter_id, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, resolved, created_at`

	err := r.db.QueryRow(ctx, query, report.Kind, report.TargetID, report.ReporterID, report.Reason).
		Scan(&report.ID, &report.Resolved, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by its ID
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	query := `
		SELECT id, target_kind, target_id, reporter_id, reason, resolved, created_at
		FROM reports WHERE id = $1`

	var report models.Report
	err := r.db.QueryRow(ctx, query, id).
		Scan(&report.ID, &report.Kind, &report.TargetID, &report.ReporterID,
			&report.Reason, &report.Resolved, &report.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// ListOpen returns unresolved reports joined with the reporter's username and
// the reported content's text, newest first.
func (r *ReportRepository) ListOpen(ctx context.Context) ([]*models.OpenReport, error) {
	query := `
		SELECT r.id, r.target_kind, r.target_id, r.reporter_id, r.reason, r.resolved, r.created_at,
		       u.username,
		       COALESCE(CASE r.target_kind
		           WHEN 'question' THEN (SELECT q.content FROM questions q WHERE q.id = r.target_id)
		           ELSE (SELECT a.content FROM answers a WHERE a.id = r.target_id)
		       END, '') AS content
		FROM reports r
		JOIN users u ON u.id = r.reporter_id
		WHERE r.resolved = FALSE
		ORDER BY r.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query open reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.OpenReport
	for rows.Next() {
		var report models.OpenReport
		err := rows.Scan(&report.ID, &report.Kind, &report.TargetID, &report.ReporterID,
			&report.Reason, &report.Resolved, &report.CreatedAt,
			&report.ReporterName, &report.Content)
		if err != nil {
			return nil, fmt.Errorf("failed to scan open report row: %w", err)
		}
		reports = append(reports, &report)
	}
	return reports, rows.Err()
}

// Resolve marks a report resolved without touching the reported content.
// Resolving an already-resolved report is a no-op.
func (r *ReportRepository) Resolve(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `UPDATE reports SET resolved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to resolve report: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrReportNotFound
	}
	return nil
}

// ResolveAndDelete removes the reported content with its full dependency
// tree and marks the report resolved, atomically. Deleting the content
// removes all reports against it, this one included, so the final resolve
// update may touch zero rows.
func (r *ReportRepository) ResolveAndDelete(ctx context.Context, report *models.Report) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		switch report.Kind {
		case models.ReportKindQuestion:
			if err := deleteQuestionTx(ctx, tx, report.TargetID); err != nil {
				return err
			}
		case models.ReportKindAnswer:
			if err := deleteAnswerTx(ctx, tx, report.TargetID); err != nil {
				return err
			}
		default:
			return apperrors.NewValidationError(fmt.Sprintf("unknown report target kind %q", report.Kind))
		}

		if _, err := tx.Exec(ctx, `UPDATE reports SET resolved = TRUE WHERE id = $1`, report.ID); err != nil {
			return fmt.Errorf("failed to resolve report after delete: %w", err)
		}
		return nil
	})
}
