package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kareemh/maarif/internal/app/models"
	"github.com/kareemh/maarif/internal/db"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/helpers"
)

// QuestionRepository handles database operations for questions and their tags
type QuestionRepository struct {
	db   *pgxpool.Pool
	psql squirrel.StatementBuilderType
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		db:   db,
		psql: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a question, links its tags and bumps the asker's lifetime
// counter, all in one transaction. Tag names are upserted into the shared tag
// table.
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insertQuestion := `
			INSERT INTO questions (user_id, subject, content, image_url)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at`

		err := tx.QueryRow(ctx, insertQuestion,
			question.UserID, question.Subject, question.Content, question.ImageURL).
			Scan(&question.ID, &question.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}

		for _, name := range question.Tags {
			// DO UPDATE instead of DO NOTHING so RETURNING always yields the id
			var tagID int64
			err := tx.QueryRow(ctx,
				`INSERT INTO tags (name) VALUES ($1)
				 ON CONFLICT ON CONSTRAINT uq_tags_name DO UPDATE SET name = EXCLUDED.name
				 RETURNING id`, name).Scan(&tagID)
			if err != nil {
				return fmt.Errorf("failed to upsert tag %q: %w", name, err)
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO question_tags (question_id, tag_id) VALUES ($1, $2)
				 ON CONFLICT DO NOTHING`, question.ID, tagID)
			if err != nil {
				return fmt.Errorf("failed to link tag %q: %w", name, err)
			}
		}

		_, err = tx.Exec(ctx,
			`UPDATE users SET questions_asked = questions_asked + 1 WHERE id = $1`, question.UserID)
		if err != nil {
			return fmt.Errorf("failed to increment questions_asked: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a question with its tags and answer count
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query := `
		SELECT q.id, q.user_id, q.subject, q.content, q.image_url, q.created_at,
		       (SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id) AS answer_count
		FROM questions q
		WHERE q.id = $1`

	var q models.Question
	err := r.db.QueryRow(ctx, query, id).
		Scan(&q.ID, &q.UserID, &q.Subject, &q.Content, &q.ImageURL, &q.CreatedAt, &q.AnswerCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	tags, err := r.tagsFor(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	q.Tags = tags
	return &q, nil
}

// List returns a page of questions matching the filter, together with the
// total match count for pagination.
func (r *QuestionRepository) List(ctx context.Context, filter models.QuestionFilter) ([]*models.Question, int64, error) {
	builder := r.psql.Select(
		"q.id", "q.user_id", "q.subject", "q.content", "q.image_url", "q.created_at",
		"(SELECT COUNT(*) FROM answers a WHERE a.question_id = q.id) AS answer_count",
		"COUNT(*) OVER() AS total_count",
	).From("questions q")

	if filter.Subject != nil {
		builder = builder.Where(squirrel.Eq{"q.subject": *filter.Subject})
	}
	if filter.Tag != nil {
		builder = builder.Where(
			`q.id IN (SELECT qt.question_id FROM question_tags qt
			          JOIN tags t ON t.id = qt.tag_id WHERE t.name = ?)`, *filter.Tag)
	}

	switch filter.Sort {
	case models.SortPopular:
		builder = builder.OrderBy("answer_count DESC", "q.created_at DESC")
	default:
		builder = builder.OrderBy("q.created_at DESC")
	}

	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Size)
	builder = builder.Offset(offset).Limit(uint64(limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build question list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	var total int64
	for rows.Next() {
		var q models.Question
		err := rows.Scan(&q.ID, &q.UserID, &q.Subject, &q.Content, &q.ImageURL, &q.CreatedAt,
			&q.AnswerCount, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan question row: %w", err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachTags(ctx, questions); err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

// DeleteCascade removes a question and every row depending on it
func (r *QuestionRepository) DeleteCascade(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return deleteQuestionTx(ctx, tx, id)
	})
}

func (r *QuestionRepository) tagsFor(ctx context.Context, questionID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.name FROM tags t
		JOIN question_tags qt ON qt.tag_id = t.id
		WHERE qt.question_id = $1
		ORDER BY t.name`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query question tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

// attachTags loads tags for a page of questions in a single query
func (r *QuestionRepository) attachTags(ctx context.Context, questions []*models.Question) error {
	if len(questions) == 0 {
		return nil
	}

	ids := make([]int64, len(questions))
	byID := make(map[int64]*models.Question, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
		byID[q.ID] = q
	}

	rows, err := r.db.Query(ctx, `
		SELECT qt.question_id, t.name FROM tags t
		JOIN question_tags qt ON qt.tag_id = t.id
		WHERE qt.question_id = ANY($1)
		ORDER BY t.name`, ids)
	if err != nil {
		return fmt.Errorf("failed to query tags for question page: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var questionID int64
		var name string
		if err := rows.Scan(&questionID, &name); err != nil {
			return fmt.Errorf("failed to scan tag row: %w", err)
		}
		if q, ok := byID[questionID]; ok {
			q.Tags = append(q.Tags, name)
		}
	}
	return rows.Err()
}
