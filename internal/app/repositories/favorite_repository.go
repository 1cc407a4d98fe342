package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/dberrors"
)

// FavoriteRepository handles database operations for favorited questions
type FavoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add favorites a question for a user. Returns false when the pair already
// existed; adding twice is not an error.
func (r *FavoriteRepository) Add(ctx context.Context, userID, questionID int64) (bool, error) {
	result, err := r.db.Exec(ctx, `
		INSERT INTO favorites (user_id, question_id) VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT uq_favorites_user_question DO NOTHING`,
		userID, questionID)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrQuestionNotFound
		}
		return false, fmt.Errorf("failed to insert favorite: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// Remove unfavorites a question. Returns false when no favorite existed.
func (r *FavoriteRepository) Remove(ctx context.Context, userID, questionID int64) (bool, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND question_id = $2`, userID, questionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete favorite: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// Exists reports whether the user has favorited the question
func (r *FavoriteRepository) Exists(ctx context.Context, userID, questionID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND question_id = $2)`,
		userID, questionID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// ListQuestions returns the user's favorited questions, most recently
// favorited first.
func (r *FavoriteRepository) ListQuestions(ctx context.Context, userID int64) ([]*models.Question, error) {
	query := `
		SELECT q.id, q.user_id, q.subject, q.content, q.image_url, q.created_at,
		       (SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id) AS answer_count
		FROM questions q
		JOIN favorites f ON f.question_id = q.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorite questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		var q models.Question
		err := rows.Scan(&q.ID, &q.UserID, &q.Subject, &q.Content, &q.ImageURL, &q.CreatedAt, &q.AnswerCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan favorite question row: %w", err)
		}
		questions = append(questions, &q)
	}
	return questions, rows.Err()
}
