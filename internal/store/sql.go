// internal/store/sql.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/voltlearn/backend/internal/domain/questionbank"
)

// SQLStore implements Store on database/sql. Queries use $N placeholders,
// which both the sqlite and pgx drivers accept.
type SQLStore struct {
	db     *sql.DB
	driver Driver
}

var _ Store = (*SQLStore)(nil)

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ============================================================================
// Attempts
// ============================================================================

func (s *SQLStore) SaveAttempt(ctx context.Context, a *Attempt) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO attempts (id, session_id, bank_id, score, total, percentage, passed, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.SessionID, a.BankID, a.Score, a.Total, a.Percentage, boolToInt(a.Passed), a.CompletedAt.UnixMilli(),
	)
	if err != nil {
		return err
	}

	for i, ans := range a.Answers {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO attempt_answers (attempt_id, question_id, position, chosen, correct)
			 VALUES ($1, $2, $3, $4, $5)`,
			a.ID, ans.QuestionID, i, ans.Chosen, boolToInt(ans.Correct),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLStore) GetAttempt(ctx context.Context, id string) (*Attempt, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, bank_id, score, total, percentage, passed, completed_at
		 FROM attempts WHERE id = $1`, id)
	a, err := scanAttempt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, chosen, correct FROM attempt_answers
		 WHERE attempt_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var ans AttemptAnswer
		var correct int
		if err := rows.Scan(&ans.QuestionID, &ans.Chosen, &correct); err != nil {
			return nil, err
		}
		ans.Correct = correct != 0
		a.Answers = append(a.Answers, ans)
	}
	return a, rows.Err()
}

// ListAttempts returns a module's attempts, newest first. limit <= 0 means
// no limit. Answers are not loaded.
func (s *SQLStore) ListAttempts(ctx context.Context, bankID string, limit int) ([]*Attempt, error) {
	query := `SELECT id, session_id, bank_id, score, total, percentage, passed, completed_at
		FROM attempts WHERE bank_id = $1 ORDER BY completed_at DESC, id`
	args := []any{bankID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := []*Attempt{}
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row scanner) (*Attempt, error) {
	var a Attempt
	var passed int
	var completedAt int64
	if err := row.Scan(&a.ID, &a.SessionID, &a.BankID, &a.Score, &a.Total, &a.Percentage, &passed, &completedAt); err != nil {
		return nil, err
	}
	a.Passed = passed != 0
	a.CompletedAt = time.UnixMilli(completedAt).UTC()
	return &a, nil
}

// ============================================================================
// Stats
// ============================================================================

func (s *SQLStore) BankStats(ctx context.Context, bankID string) (questionbank.BankStats, error) {
	stats := questionbank.BankStats{BankID: bankID, Questions: []questionbank.QuestionStats{}}

	var avg float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(passed), 0), COALESCE(AVG(percentage), 0)
		 FROM attempts WHERE bank_id = $1`, bankID,
	).Scan(&stats.Attempts, &stats.Passes, &avg)
	if err != nil {
		return stats, err
	}
	stats.AverageScore = int(avg)

	rows, err := s.db.QueryContext(ctx,
		`SELECT aa.question_id, COUNT(*), SUM(aa.correct)
		 FROM attempt_answers aa
		 JOIN attempts a ON a.id = aa.attempt_id
		 WHERE a.bank_id = $1
		 GROUP BY aa.question_id
		 ORDER BY aa.question_id`, bankID)
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var qs questionbank.QuestionStats
		if err := rows.Scan(&qs.QuestionID, &qs.TimesAnswered, &qs.TimesCorrect); err != nil {
			return stats, err
		}
		stats.Questions = append(stats.Questions, qs)
	}
	return stats, rows.Err()
}
