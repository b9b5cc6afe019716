package quizsession

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/voltlearn/backend/internal/domain/questionbank"
	"github.com/voltlearn/backend/internal/id"
)

var ErrNoQuestions = errors.New("quiz has no questions")

type State int

const (
	InProgress State = iota
	Completed
)

func (s State) String() string {
	if s == Completed {
		return "completed"
	}
	return "in_progress"
}

// Session is a multi-question knowledge-check quiz. Answers may be changed
// on any visited question until the quiz is submitted; scoring happens only
// at submission.
//
// A Session is not safe for concurrent use.
type Session struct {
	ID            string
	BankID        string
	Questions     []questionbank.Question
	PassThreshold int
	TimeLimit     time.Duration

	state   State
	current int
	answers map[int]int // question index -> option index
}

// New creates a session over an explicit, ordered question list.
func New(bankID string, questions []questionbank.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return nil, err
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("question %s: %w", q.ID, questionbank.ErrDuplicateID)
		}
		seen[q.ID] = true
	}
	return &Session{
		ID:            id.GenerateID(),
		BankID:        bankID,
		Questions:     append([]questionbank.Question(nil), questions...),
		PassThreshold: questionbank.DefaultPassThreshold,
		answers:       make(map[int]int),
	}, nil
}

// NewWithConfig creates a session from a bank, selecting questions according
// to config. rng drives shuffling; nil uses the global source.
func NewWithConfig(bank *questionbank.QuestionBank, config SessionConfig, rng *rand.Rand) (*Session, error) {
	questions := selectQuestions(bank, config, rng)
	s, err := New(bank.ID, questions)
	if err != nil {
		return nil, fmt.Errorf("bank %s: %w", bank.ID, err)
	}
	s.PassThreshold = bank.Exam.Threshold()
	s.TimeLimit = bank.Exam.TimeLimit
	return s, nil
}

func (s *Session) State() State { return s.state }

func (s *Session) Completed() bool { return s.state == Completed }

func (s *Session) Len() int { return len(s.Questions) }

// Current returns the position and question on display.
func (s *Session) Current() (int, questionbank.Question) {
	return s.current, s.Questions[s.current]
}

// Answer returns the recorded selection for a question index.
func (s *Session) Answer(questionIndex int) (int, bool) {
	v, ok := s.answers[questionIndex]
	return v, ok
}

// Answers returns a copy of the recorded selections.
func (s *Session) Answers() map[int]int {
	out := make(map[int]int, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// AnsweredCount is the number of questions with a recorded selection.
func (s *Session) AnsweredCount() int { return len(s.answers) }

// Select records (or overwrites) the answer to a question. It is ignored once
// the quiz is completed or when either index is out of range.
func (s *Session) Select(questionIndex, optionIndex int) bool {
	if s.state != InProgress {
		return false
	}
	if questionIndex < 0 || questionIndex >= len(s.Questions) {
		return false
	}
	if !s.Questions[questionIndex].HasOption(optionIndex) {
		return false
	}
	s.answers[questionIndex] = optionIndex
	return true
}

// SelectCurrent answers the question on display.
func (s *Session) SelectCurrent(optionIndex int) bool {
	return s.Select(s.current, optionIndex)
}

// Next moves forward one question. Navigation itself is not gated on the
// current question being answered; see NextEnabled for the UI affordance.
func (s *Session) Next() bool {
	if s.state != InProgress || s.current >= len(s.Questions)-1 {
		return false
	}
	s.current++
	return true
}

// Previous moves back one question; its answer stays editable.
func (s *Session) Previous() bool {
	if s.state != InProgress || s.current == 0 {
		return false
	}
	s.current--
	return true
}

// NextEnabled reports whether a "next" control should be enabled: there is a
// following question and the current one has an answer.
func (s *Session) NextEnabled() bool {
	if s.state != InProgress || s.current >= len(s.Questions)-1 {
		return false
	}
	_, answered := s.answers[s.current]
	return answered
}

// PreviousEnabled reports whether a "previous" control should be enabled.
func (s *Session) PreviousEnabled() bool {
	return s.state == InProgress && s.current > 0
}

// CanSubmit is true on the last question once every question is answered.
func (s *Session) CanSubmit() bool {
	return s.state == InProgress &&
		s.current == len(s.Questions)-1 &&
		len(s.answers) == len(s.Questions)
}

// Submit completes the quiz. It refuses, leaving the session untouched,
// unless CanSubmit holds.
func (s *Session) Submit() bool {
	if !s.CanSubmit() {
		return false
	}
	s.state = Completed
	return true
}

// Restart discards every answer and returns to the first question.
func (s *Session) Restart() {
	s.answers = make(map[int]int)
	s.current = 0
	s.state = InProgress
}

// Score counts recorded answers that match the correct index, walking the
// questions in order. It is defined at any time but only final once the
// session is completed.
func (s *Session) Score() int {
	score := 0
	for i, q := range s.Questions {
		if a, ok := s.answers[i]; ok && q.IsCorrect(a) {
			score++
		}
	}
	return score
}
