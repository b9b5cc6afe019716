// Package inlinecheck implements the single-question check embedded in a
// module's content: the first selection locks the answer and reveals the
// result together with the explanation.
package inlinecheck

import (
	"github.com/voltlearn/backend/internal/domain/questionbank"
)

type State int

const (
	Unanswered State = iota
	Answered
)

func (s State) String() string {
	if s == Answered {
		return "answered"
	}
	return "unanswered"
}

// Mark is how an option is flagged once the check has been answered.
type Mark int

const (
	MarkNone Mark = iota
	MarkCorrect
	MarkIncorrect
)

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkIncorrect:
		return "incorrect"
	}
	return "none"
}

// OptionView is the render model of one option.
type OptionView struct {
	Index    int
	Text     string
	Selected bool
	Mark     Mark
	Disabled bool
}

// Check is one inline check instance. It is not safe for concurrent use;
// callers owning a check across goroutines must serialise access.
type Check struct {
	question questionbank.Question
	state    State
	selected int
}

// New starts an unanswered check. The question must satisfy the authored-data
// contract; a malformed question panics.
func New(q questionbank.Question) *Check {
	if err := q.Validate(); err != nil {
		panic(err)
	}
	return &Check{question: q, selected: -1}
}

// Select records the learner's choice. Only the first in-range selection is
// kept; every later call is ignored and returns false.
func (c *Check) Select(i int) bool {
	if c.state == Answered || !c.question.HasOption(i) {
		return false
	}
	c.selected = i
	c.state = Answered
	return true
}

func (c *Check) Question() questionbank.Question { return c.question }

func (c *Check) State() State { return c.state }

// Selected returns the locked selection, if any.
func (c *Check) Selected() (int, bool) {
	if c.state == Unanswered {
		return 0, false
	}
	return c.selected, true
}

// Correct reports whether the locked selection is the right answer. It is
// false while unanswered.
func (c *Check) Correct() bool {
	return c.state == Answered && c.question.IsCorrect(c.selected)
}

// ExplanationVisible is true once the check has been answered.
func (c *Check) ExplanationVisible() bool {
	return c.state == Answered
}

// Options returns the render model. Before answering every option is plain
// and enabled; after answering all are disabled, the correct option is
// marked correct and a wrong selection is marked incorrect.
func (c *Check) Options() []OptionView {
	views := make([]OptionView, len(c.question.Options))
	for i, text := range c.question.Options {
		v := OptionView{Index: i, Text: text}
		if c.state == Answered {
			v.Disabled = true
			v.Selected = i == c.selected
			switch {
			case c.question.IsCorrect(i):
				v.Mark = MarkCorrect
			case v.Selected:
				v.Mark = MarkIncorrect
			}
		}
		views[i] = v
	}
	return views
}
