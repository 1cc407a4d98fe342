package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/dberrors"
)

// CommentRepository handles database operations for comments
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment on a question, optionally scoped to one of its
// answers.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (question_id, answer_id, user_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		comment.QuestionID, comment.AnswerID, comment.UserID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrQuestionNotFound
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

// ListByQuestion returns a question's comments in posting order
func (r *CommentRepository) ListByQuestion(ctx context.Context, questionID int64) ([]*models.Comment, error) {
	query := `
		SELECT id, question_id, answer_id, user_id, content, created_at
		FROM comments
		WHERE question_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.ID, &c.QuestionID, &c.AnswerID, &c.UserID, &c.Content, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}
