package quizsession_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/voltlearn/backend/internal/domain/questionbank"
	"github.com/voltlearn/backend/internal/domain/quizsession"
)

func createBankWithQuestions(n int) *questionbank.QuestionBank {
	bank := questionbank.New("motor-protection", "Motor Protection")
	for i := 0; i < n; i++ {
		q := questionbank.MustQuestion(
			fmt.Sprintf("q%d", i+1),
			fmt.Sprintf("Question %d", i+1),
			[]string{"A", "B", "C", "D"},
			i%4,
			fmt.Sprintf("Explanation %d", i+1),
		)
		if err := bank.AddQuestion(q); err != nil {
			panic(err)
		}
	}
	return bank
}

func newSession(t *testing.T, n int) *quizsession.Session {
	t.Helper()
	s, err := quizsession.NewWithConfig(createBankWithQuestions(n), quizsession.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return s
}

// wrong returns an option index that is not the correct one.
func wrong(q questionbank.Question) int {
	return (q.CorrectIndex + 1) % len(q.Options)
}

func TestNew_InitialState(t *testing.T) {
	s := newSession(t, 3)

	if s.State() != quizsession.InProgress {
		t.Errorf("expected in progress, got %v", s.State())
	}
	if idx, _ := s.Current(); idx != 0 {
		t.Errorf("expected current index 0, got %d", idx)
	}
	if s.AnsweredCount() != 0 {
		t.Errorf("expected no answers, got %d", s.AnsweredCount())
	}
	if s.ID == "" {
		t.Error("expected generated session id")
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := quizsession.New("b", nil); !errors.Is(err, quizsession.ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}

	q := questionbank.MustQuestion("dup", "p", []string{"a", "b"}, 0, "")
	if _, err := quizsession.New("b", []questionbank.Question{q, q}); !errors.Is(err, questionbank.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}

	bad := questionbank.Question{ID: "bad", Prompt: "p", Options: []string{"a", "b"}, CorrectIndex: 3}
	if _, err := quizsession.New("b", []questionbank.Question{bad}); !errors.Is(err, questionbank.ErrCorrectIndexOutOfRange) {
		t.Errorf("expected ErrCorrectIndexOutOfRange, got %v", err)
	}
}

func TestScore_ThreeQuestions(t *testing.T) {
	s := newSession(t, 3)

	s.SelectCurrent(s.Questions[0].CorrectIndex)
	s.Next()
	s.SelectCurrent(wrong(s.Questions[1]))
	s.Next()
	s.SelectCurrent(s.Questions[2].CorrectIndex)

	if !s.Submit() {
		t.Fatal("expected submit to succeed")
	}
	if s.Score() != 2 {
		t.Errorf("expected score 2, got %d", s.Score())
	}
	if !s.Completed() {
		t.Error("expected completed state")
	}
}

func TestSelect_OverwritesBeforeSubmit(t *testing.T) {
	s := newSession(t, 2)

	s.SelectCurrent(s.Questions[0].CorrectIndex)
	s.Next()
	s.SelectCurrent(s.Questions[1].CorrectIndex)
	s.Previous()
	s.SelectCurrent(wrong(s.Questions[0]))
	s.Next()

	if got, _ := s.Answer(0); got != wrong(s.Questions[0]) {
		t.Errorf("expected overwritten answer, got %d", got)
	}
	if !s.Submit() {
		t.Fatal("expected submit to succeed")
	}
	if s.Score() != 1 {
		t.Errorf("expected score 1 reflecting the changed answer, got %d", s.Score())
	}
}

func TestSelect_Idempotent(t *testing.T) {
	s := newSession(t, 2)

	s.SelectCurrent(2)
	s.SelectCurrent(2)

	if got, _ := s.Answer(0); got != 2 || s.AnsweredCount() != 1 {
		t.Errorf("expected a single answer of 2, got %d (count %d)", got, s.AnsweredCount())
	}
}

func TestSelect_IgnoredOutOfRange(t *testing.T) {
	s := newSession(t, 2)

	if s.Select(5, 0) || s.Select(-1, 0) || s.Select(0, 4) || s.Select(0, -1) {
		t.Error("out-of-range selections should be ignored")
	}
	if s.AnsweredCount() != 0 {
		t.Error("no answers should have been recorded")
	}
}

func TestNavigation_DoesNotChangeAnswers(t *testing.T) {
	s := newSession(t, 3)
	s.SelectCurrent(1)
	before := s.Answers()

	s.Next()
	s.Next()
	s.Previous()
	s.Previous()

	after := s.Answers()
	if len(before) != len(after) || after[0] != before[0] {
		t.Errorf("navigation changed answers: %v -> %v", before, after)
	}
	if got, ok := s.Answer(0); !ok || got != 1 {
		t.Errorf("revisited question should show previous selection, got %d (ok=%v)", got, ok)
	}
}

func TestNavigation_Bounds(t *testing.T) {
	s := newSession(t, 2)

	if s.Previous() {
		t.Error("previous on first question should be refused")
	}
	if !s.Next() {
		t.Error("next should not require an answer")
	}
	if s.Next() {
		t.Error("next on last question should be refused")
	}
	if idx, _ := s.Current(); idx != 1 {
		t.Errorf("expected index 1, got %d", idx)
	}
}

func TestNextEnabled_RequiresAnswer(t *testing.T) {
	s := newSession(t, 2)

	if s.NextEnabled() {
		t.Error("next control should be disabled until answered")
	}
	s.SelectCurrent(0)
	if !s.NextEnabled() {
		t.Error("next control should be enabled once answered")
	}
	s.Next()
	s.SelectCurrent(0)
	if s.NextEnabled() {
		t.Error("next control should be disabled on the last question")
	}
	if !s.PreviousEnabled() {
		t.Error("previous control should be enabled on the second question")
	}
}

func TestSubmit_RefusedWithMissingAnswer(t *testing.T) {
	s := newSession(t, 3)

	s.SelectCurrent(0)
	s.Next()
	s.Next()
	s.SelectCurrent(0)

	if s.CanSubmit() || s.Submit() {
		t.Fatal("submit must be refused while question 2 is unanswered")
	}
	if s.State() != quizsession.InProgress {
		t.Error("state should remain in progress")
	}
	if idx, _ := s.Current(); idx != 2 {
		t.Errorf("current index should be unchanged, got %d", idx)
	}
}

func TestSubmit_RefusedBeforeLastQuestion(t *testing.T) {
	s := newSession(t, 2)
	s.Select(0, 0)
	s.Select(1, 0)

	if s.Submit() {
		t.Error("submit should only be available on the last question")
	}
}

func TestCompleted_IsTerminal(t *testing.T) {
	s := newSession(t, 1)
	s.SelectCurrent(0)
	s.Submit()

	if s.SelectCurrent(1) {
		t.Error("selection after completion should be ignored")
	}
	if s.Submit() {
		t.Error("second submit should be refused")
	}
	if got, _ := s.Answer(0); got != 0 {
		t.Errorf("answer changed after completion: %d", got)
	}
}

func TestRestart(t *testing.T) {
	s := newSession(t, 2)
	s.SelectCurrent(0)
	s.Next()
	s.SelectCurrent(0)
	s.Submit()

	s.Restart()
	assertFresh(t, s)

	s.Restart()
	assertFresh(t, s)
}

func TestRestart_FromInProgress(t *testing.T) {
	s := newSession(t, 3)
	s.SelectCurrent(0)
	s.Next()

	s.Restart()
	assertFresh(t, s)
}

func assertFresh(t *testing.T, s *quizsession.Session) {
	t.Helper()
	if s.AnsweredCount() != 0 {
		t.Errorf("expected no answers, got %d", s.AnsweredCount())
	}
	if idx, _ := s.Current(); idx != 0 {
		t.Errorf("expected index 0, got %d", idx)
	}
	if s.State() != quizsession.InProgress {
		t.Errorf("expected in progress, got %v", s.State())
	}
}

func TestNewWithConfig_AuthoredOrderByDefault(t *testing.T) {
	bank := createBankWithQuestions(10)
	s, err := quizsession.NewWithConfig(bank, quizsession.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sameOrder(bank.Questions, s.Questions) {
		t.Error("expected authored order without shuffle")
	}
}

func TestNewWithConfig_Shuffle(t *testing.T) {
	bank := createBankWithQuestions(20)
	rng := rand.New(rand.NewSource(7))

	foundDifferentOrder := false
	for i := 0; i < 10; i++ {
		s, err := quizsession.NewWithConfig(bank, quizsession.SessionConfig{Shuffle: true}, rng)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Questions) != 20 {
			t.Fatalf("expected 20 questions, got %d", len(s.Questions))
		}
		if !sameOrder(bank.Questions, s.Questions) {
			foundDifferentOrder = true
			break
		}
	}
	if !foundDifferentOrder {
		t.Error("expected shuffled order")
	}
}

func TestNewWithConfig_MaxQuestions(t *testing.T) {
	bank := createBankWithQuestions(100)

	maxQ := 20
	s, err := quizsession.NewWithConfig(bank, quizsession.SessionConfig{MaxQuestions: &maxQ}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Questions) != 20 {
		t.Errorf("expected 20 questions, got %d", len(s.Questions))
	}
}

func TestNewWithConfig_MaxQuestionsGreaterThanAvailable(t *testing.T) {
	bank := createBankWithQuestions(5)

	maxQ := 20
	s, err := quizsession.NewWithConfig(bank, quizsession.SessionConfig{MaxQuestions: &maxQ}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Questions) != 5 {
		t.Errorf("expected 5 questions (all available), got %d", len(s.Questions))
	}
}

func TestNewWithConfig_ExamSettings(t *testing.T) {
	bank := createBankWithQuestions(10)
	bank.Exam = questionbank.ExamConfig{QuestionCount: 4, PassThreshold: 60, TimeLimit: 45 * time.Minute}

	s, err := quizsession.NewWithConfig(bank, quizsession.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Questions) != 4 {
		t.Errorf("expected exam question count 4, got %d", len(s.Questions))
	}
	if s.PassThreshold != 60 {
		t.Errorf("expected pass threshold 60, got %d", s.PassThreshold)
	}
	if s.TimeLimit != 45*time.Minute {
		t.Errorf("expected 45m time limit, got %v", s.TimeLimit)
	}
}

func TestNewWithConfig_SectionFilterEmpty(t *testing.T) {
	bank := createBankWithQuestions(3)
	_, err := quizsession.NewWithConfig(bank, quizsession.SessionConfig{Section: "missing"}, nil)
	if !errors.Is(err, quizsession.ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
}

// Helper to check if two question slices have the same order
func sameOrder(a, b []questionbank.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
