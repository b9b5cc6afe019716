package questionbank

import (
	"errors"
	"fmt"
	"time"
)

// DefaultPassThreshold is the pass mark (percent) used when a module's exam
// config does not set one.
const DefaultPassThreshold = 70

// PageMeta is the page-level metadata (document title, description, keywords)
// a rendering layer may inject. Nothing in the quiz engines reads it.
type PageMeta struct {
	Title       string
	Description string
	Keywords    []string
}

// ExamConfig carries the knowledge-check settings authored with a module.
type ExamConfig struct {
	QuestionCount int           // 0 = every question in the bank
	PassThreshold int           // percent, 0 = DefaultPassThreshold
	TimeLimit     time.Duration // advisory, shown to the learner
	Categories    []string      // topic areas a generated quiz is spread across
}

// Threshold returns the effective pass mark.
func (c ExamConfig) Threshold() int {
	if c.PassThreshold <= 0 {
		return DefaultPassThreshold
	}
	return c.PassThreshold
}

// QuestionBank is one training module: its inline checks, the questions of
// its knowledge-check quiz and the settings for that quiz.
type QuestionBank struct {
	ID        string
	Title     string
	Category  string
	Meta      PageMeta
	Exam      ExamConfig
	Checks    []Question
	Questions []Question
}

func New(id, title string) *QuestionBank {
	return &QuestionBank{
		ID:        id,
		Title:     title,
		Checks:    []Question{},
		Questions: []Question{},
	}
}

func NewWithCategory(id, title, category string) *QuestionBank {
	bank := New(id, title)
	bank.Category = category
	return bank
}

// AddQuestion appends a validated quiz question. IDs must be unique within
// the quiz.
func (qb *QuestionBank) AddQuestion(q Question) error {
	return addUnique(&qb.Questions, q)
}

// AddCheck appends a validated inline check question.
func (qb *QuestionBank) AddCheck(q Question) error {
	return addUnique(&qb.Checks, q)
}

func addUnique(list *[]Question, q Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	for _, existing := range *list {
		if existing.ID == q.ID {
			return fmt.Errorf("question %s: %w", q.ID, ErrDuplicateID)
		}
	}
	*list = append(*list, q)
	return nil
}

// Validate re-checks every question of the bank.
func (qb *QuestionBank) Validate() error {
	if qb.ID == "" {
		return errors.New("bank id cannot be empty")
	}
	var errs []error
	seen := make(map[string]bool, len(qb.Questions))
	for _, q := range qb.Questions {
		if err := q.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[q.ID] {
			errs = append(errs, fmt.Errorf("question %s: %w", q.ID, ErrDuplicateID))
		}
		seen[q.ID] = true
	}
	for _, q := range qb.Checks {
		if err := q.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("check: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("bank %s: %w", qb.ID, err)
	}
	return nil
}

// Question looks up a quiz question by ID.
func (qb *QuestionBank) Question(id string) (Question, bool) {
	return find(qb.Questions, id)
}

// Check looks up an inline check by ID.
func (qb *QuestionBank) Check(id string) (Question, bool) {
	return find(qb.Checks, id)
}

func find(list []Question, id string) (Question, bool) {
	for _, q := range list {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// BySection returns the quiz questions of one section, in authored order.
func (qb *QuestionBank) BySection(section string) []Question {
	return filter(qb.Questions, func(q Question) bool { return q.Section == section })
}

// ByDifficulty returns the quiz questions of one difficulty level.
func (qb *QuestionBank) ByDifficulty(d Difficulty) []Question {
	return filter(qb.Questions, func(q Question) bool { return q.Difficulty == d })
}

// ByCategory returns the quiz questions tagged with category.
func (qb *QuestionBank) ByCategory(category string) []Question {
	return filter(qb.Questions, func(q Question) bool { return q.Category == category })
}

func filter(questions []Question, keep func(Question) bool) []Question {
	out := []Question{}
	for _, q := range questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out
}
