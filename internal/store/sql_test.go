package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/voltlearn/backend/internal/store"
)

func openTestStore(t *testing.T) *store.SQLStore {
	t.Helper()
	s, err := store.Open(context.Background(), store.DriverSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func attempt(id, bankID string, at time.Time, answers ...store.AttemptAnswer) *store.Attempt {
	a := &store.Attempt{
		ID:          id,
		SessionID:   "session-" + id,
		BankID:      bankID,
		Total:       len(answers),
		Answers:     answers,
		CompletedAt: at,
	}
	for _, ans := range answers {
		if ans.Correct {
			a.Score++
		}
	}
	if a.Total > 0 {
		a.Percentage = a.Score * 100 / a.Total
	}
	a.Passed = a.Percentage >= 70
	return a
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	if _, err := store.Open(context.Background(), "oracle", ""); err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestSaveAndGetAttempt(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	a := attempt("a1", "motor-protection", at,
		store.AttemptAnswer{QuestionID: "q2", Chosen: 1, Correct: true},
		store.AttemptAnswer{QuestionID: "q1", Chosen: 3, Correct: false},
	)
	if err := s.SaveAttempt(ctx, a); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Score != 1 || got.Total != 2 || got.Percentage != 50 || got.Passed {
		t.Errorf("unexpected attempt: %+v", got)
	}
	if !got.CompletedAt.Equal(at) {
		t.Errorf("expected completed at %v, got %v", at, got.CompletedAt)
	}
	if len(got.Answers) != 2 || got.Answers[0].QuestionID != "q2" || got.Answers[1].Chosen != 3 {
		t.Errorf("answers not returned in question order: %+v", got.Answers)
	}
}

func TestGetAttempt_NotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.GetAttempt(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListAttempts_NewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		if err := s.SaveAttempt(ctx, attempt(id, "bms", base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	if err := s.SaveAttempt(ctx, attempt("other", "motor-protection", base)); err != nil {
		t.Fatalf("save: %v", err)
	}

	all, err := s.ListAttempts(ctx, "bms", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].ID != "new" || all[2].ID != "old" {
		t.Errorf("unexpected order: %v", ids(all))
	}

	limited, err := s.ListAttempts(ctx, "bms", 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 attempts, got %d", len(limited))
	}

	none, err := s.ListAttempts(ctx, "unknown", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty non-nil list, got %v", none)
	}
}

func TestBankStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	s.SaveAttempt(ctx, attempt("a1", "ssow", now,
		store.AttemptAnswer{QuestionID: "q1", Correct: true},
		store.AttemptAnswer{QuestionID: "q2", Correct: true},
	))
	s.SaveAttempt(ctx, attempt("a2", "ssow", now,
		store.AttemptAnswer{QuestionID: "q1", Correct: true},
		store.AttemptAnswer{QuestionID: "q2", Correct: false},
	))

	stats, err := s.BankStats(ctx, "ssow")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.Attempts != 2 || stats.Passes != 1 || stats.AverageScore != 75 {
		t.Errorf("unexpected bank stats: %+v", stats)
	}
	if len(stats.Questions) != 2 {
		t.Fatalf("expected 2 question stats, got %d", len(stats.Questions))
	}
	q2 := stats.Questions[1]
	if q2.QuestionID != "q2" || q2.TimesAnswered != 2 || q2.TimesCorrect != 1 {
		t.Errorf("unexpected q2 stats: %+v", q2)
	}

	empty, err := s.BankStats(ctx, "nothing")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if empty.Attempts != 0 || len(empty.Questions) != 0 {
		t.Errorf("expected empty stats, got %+v", empty)
	}
}

func ids(as []*store.Attempt) []string {
	out := make([]string, len(as))
	for i, a := range as {
		out[i] = a.ID
	}
	return out
}
