package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kareemh/maarif/internal/pkg/apperrors"
)

// Referential integrity across content tables is maintained in code: children
// are removed before their parents inside one transaction. The statement
// order below matters; later tables reference earlier ones.

// deleteQuestionTx removes a question together with its answers, those
// answers' ratings and reports, its own reports, tag links, favorites and
// comments.
func deleteQuestionTx(ctx context.Context, tx pgx.Tx, questionID int64) error {
	statements := []string{
		`DELETE FROM answer_ratings WHERE answer_id IN (SELECT id FROM answers WHERE question_id = $1)`,
		`DELETE FROM reports WHERE target_kind = 'answer' AND target_id IN (SELECT id FROM answers WHERE question_id = $1)`,
		`DELETE FROM comments WHERE question_id = $1`,
		`DELETE FROM answers WHERE question_id = $1`,
		`DELETE FROM reports WHERE target_kind = 'question' AND target_id = $1`,
		`DELETE FROM question_tags WHERE question_id = $1`,
		`DELETE FROM favorites WHERE question_id = $1`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, questionID); err != nil {
			return fmt.Errorf("cascade delete for question %d: %w", questionID, err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM questions WHERE id = $1`, questionID)
	if err != nil {
		return fmt.Errorf("deleting question %d: %w", questionID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}
	return nil
}

// deleteAnswerTx removes an answer together with its ratings, reports and
// answer-scoped comments.
func deleteAnswerTx(ctx context.Context, tx pgx.Tx, answerID int64) error {
	statements := []string{
		`DELETE FROM answer_ratings WHERE answer_id = $1`,
		`DELETE FROM reports WHERE target_kind = 'answer' AND target_id = $1`,
		`DELETE FROM comments WHERE answer_id = $1`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, answerID); err != nil {
			return fmt.Errorf("cascade delete for answer %d: %w", answerID, err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM answers WHERE id = $1`, answerID)
	if err != nil {
		return fmt.Errorf("deleting answer %d: %w", answerID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrAnswerNotFound
	}
	return nil
}

// deleteUserTx removes a user and everything that references them, directly
// or through their questions and answers. Counters on other users are not
// rolled back; they record lifetime activity.
func deleteUserTx(ctx context.Context, tx pgx.Tx, userID int64) error {
	// Answers the user wrote on other people's questions
	answerIDs, err := collectIDs(ctx, tx, `SELECT id FROM answers WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	for _, id := range answerIDs {
		if err := deleteAnswerTx(ctx, tx, id); err != nil {
			return err
		}
	}

	// Questions the user asked, with their full dependency trees
	questionIDs, err := collectIDs(ctx, tx, `SELECT id FROM questions WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	for _, id := range questionIDs {
		if err := deleteQuestionTx(ctx, tx, id); err != nil {
			return err
		}
	}

	// Rows the user created against other people's content
	statements := []string{
		`DELETE FROM answer_ratings WHERE user_id = $1`,
		`DELETE FROM favorites WHERE user_id = $1`,
		`DELETE FROM comments WHERE user_id = $1`,
		`DELETE FROM reports WHERE reporter_id = $1`,
		`DELETE FROM notifications WHERE user_id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, userID); err != nil {
			return fmt.Errorf("cascade delete for user %d: %w", userID, err)
		}
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleting user %d: %w", userID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func collectIDs(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]int64, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("collecting ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
