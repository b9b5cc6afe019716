package store

import (
	"context"
	"errors"
	"time"

	"github.com/voltlearn/backend/internal/domain/questionbank"
)

var (
	ErrNotFound = errors.New("not found")
)

// AttemptAnswer is one question's outcome inside a recorded attempt.
type AttemptAnswer struct {
	QuestionID string
	Chosen     int
	Correct    bool
}

// Attempt is a submitted knowledge-check quiz.
type Attempt struct {
	ID          string
	SessionID   string
	BankID      string
	Score       int
	Total       int
	Percentage  int
	Passed      bool
	Answers     []AttemptAnswer
	CompletedAt time.Time
}

// Store persists completed attempts. Live sessions never touch it.
type Store interface {
	SaveAttempt(ctx context.Context, a *Attempt) error
	GetAttempt(ctx context.Context, id string) (*Attempt, error)
	ListAttempts(ctx context.Context, bankID string, limit int) ([]*Attempt, error)
	BankStats(ctx context.Context, bankID string) (questionbank.BankStats, error)
	Close() error
}
