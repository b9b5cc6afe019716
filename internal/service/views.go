package service

import (
	"time"

	"github.com/voltlearn/backend/internal/domain/inlinecheck"
	"github.com/voltlearn/backend/internal/domain/questionbank"
	"github.com/voltlearn/backend/internal/domain/quizsession"
)

// QuestionView is a question as shown to a learner: no answer key.
type QuestionView struct {
	ID      string
	Prompt  string
	Options []string
	Section string
	Topic   string
}

// SessionView is a point-in-time snapshot of a live quiz session.
type SessionView struct {
	ID              string
	ModuleID        string
	State           quizsession.State
	CurrentIndex    int
	Total           int
	Question        QuestionView
	Selected        *int
	Answered        int
	NextEnabled     bool
	PreviousEnabled bool
	CanSubmit       bool
	Score           *int // set once completed
	PassThreshold   int
	TimeLimit       time.Duration
}

// CheckView is a point-in-time snapshot of an inline check instance.
type CheckView struct {
	ID          string
	ModuleID    string
	QuestionID  string
	Prompt      string
	State       inlinecheck.State
	Options     []inlinecheck.OptionView
	Correct     *bool  // set once answered
	Explanation string // empty until answered
}

func questionView(q questionbank.Question) QuestionView {
	return QuestionView{
		ID:      q.ID,
		Prompt:  q.Prompt,
		Options: append([]string(nil), q.Options...),
		Section: q.Section,
		Topic:   q.Topic,
	}
}

func sessionView(s *quizsession.Session) SessionView {
	idx, q := s.Current()
	v := SessionView{
		ID:              s.ID,
		ModuleID:        s.BankID,
		State:           s.State(),
		CurrentIndex:    idx,
		Total:           s.Len(),
		Question:        questionView(q),
		Answered:        s.AnsweredCount(),
		NextEnabled:     s.NextEnabled(),
		PreviousEnabled: s.PreviousEnabled(),
		CanSubmit:       s.CanSubmit(),
		PassThreshold:   s.PassThreshold,
		TimeLimit:       s.TimeLimit,
	}
	if sel, ok := s.Answer(idx); ok {
		v.Selected = &sel
	}
	if s.Completed() {
		score := s.Score()
		v.Score = &score
	}
	return v
}

func checkView(checkID, moduleID string, c *inlinecheck.Check) CheckView {
	q := c.Question()
	v := CheckView{
		ID:         checkID,
		ModuleID:   moduleID,
		QuestionID: q.ID,
		Prompt:     q.Prompt,
		State:      c.State(),
		Options:    c.Options(),
	}
	if c.State() == inlinecheck.Answered {
		correct := c.Correct()
		v.Correct = &correct
		v.Explanation = q.Explanation
	}
	return v
}
