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
	"github.com/kareemh/maarif/internal/pkg/dberrors"
)

// AnswerRepository handles database operations for answers and their ratings
type AnswerRepository struct {
	db *pgxpool.Pool
}

// NewAnswerRepository creates a new answer repository
func NewAnswerRepository(db *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{db: db}
}

// Create inserts an answer and bumps the author's lifetime counter in one
// transaction.
func (r *AnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO answers (question_id, user_id, content)
			VALUES ($1, $2, $3)
			RETURNING id, rating, created_at`

		err := tx.QueryRow(ctx, query, answer.QuestionID, answer.UserID, answer.Content).
			Scan(&answer.ID, &answer.Rating, &answer.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert answer: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET answers_given = answers_given + 1 WHERE id = $1`, answer.UserID)
		if err != nil {
			return fmt.Errorf("failed to increment answers_given: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an answer by its ID
func (r *AnswerRepository) GetByID(ctx context.Context, id int64) (*models.Answer, error) {
	query := `SELECT id, question_id, user_id, content, rating, created_at FROM answers WHERE id = $1`

	var a models.Answer
	err := r.db.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.QuestionID, &a.UserID, &a.Content, &a.Rating, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}
	return &a, nil
}

// ListByQuestion returns a question's answers, most helpful first
func (r *AnswerRepository) ListByQuestion(ctx context.Context, questionID int64) ([]*models.Answer, error) {
	query := `
		SELECT id, question_id, user_id, content, rating, created_at
		FROM answers
		WHERE question_id = $1
		ORDER BY rating DESC, created_at ASC`

	rows, err := r.db.Query(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query answers: %w", err)
	}
	defer rows.Close()

	var answers []*models.Answer
	for rows.Next() {
		var a models.Answer
		err := rows.Scan(&a.ID, &a.QuestionID, &a.UserID, &a.Content, &a.Rating, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan answer row: %w", err)
		}
		answers = append(answers, &a)
	}
	return answers, rows.Err()
}

// Rate records a one-time helpful rating from raterID on an answer. The
// unique (answer_id, user_id) pair guards repeats: when the insert hits the
// constraint nothing is written and ErrAlreadyRated is returned, leaving the
// rating and helpfulness counters untouched. On success both counters move
// in the same transaction and the updated answer is returned.
func (r *AnswerRepository) Rate(ctx context.Context, answerID, raterID int64) (*models.Answer, error) {
	var rated models.Answer

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		result, err := tx.Exec(ctx, `
			INSERT INTO answer_ratings (answer_id, user_id) VALUES ($1, $2)
			ON CONFLICT ON CONSTRAINT uq_answer_ratings_answer_user DO NOTHING`,
			answerID, raterID)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrAnswerNotFound
			}
			return fmt.Errorf("failed to insert answer rating: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.ErrAlreadyRated
		}

		err = tx.QueryRow(ctx, `
			UPDATE answers SET rating = rating + 1 WHERE id = $1
			RETURNING id, question_id, user_id, content, rating, created_at`, answerID).
			Scan(&rated.ID, &rated.QuestionID, &rated.UserID, &rated.Content, &rated.Rating, &rated.CreatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrAnswerNotFound
			}
			return fmt.Errorf("failed to increment answer rating: %w", err)
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET total_helpfulness = total_helpfulness + 1 WHERE id = $1`, rated.UserID)
		if err != nil {
			return fmt.Errorf("failed to increment total_helpfulness: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rated, nil
}

// DeleteCascade removes an answer and every row depending on it
func (r *AnswerRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return deleteAnswerTx(ctx, tx, id)
	})
}
