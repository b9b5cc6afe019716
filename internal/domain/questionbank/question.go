package questionbank

import (
	"errors"
	"fmt"
)

type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is empty (unclassified) or one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case "", DifficultyBasic, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

var (
	ErrEmptyID                = errors.New("question id cannot be empty")
	ErrEmptyPrompt            = errors.New("question prompt cannot be empty")
	ErrTooFewOptions          = errors.New("question needs at least two options")
	ErrCorrectIndexOutOfRange = errors.New("correct index out of range")
	ErrDuplicateID            = errors.New("duplicate question id")
	ErrUnknownDifficulty      = errors.New("unknown difficulty")
)

// Question is a single multiple-choice item. It is built once from authored
// content and never mutated afterwards; option order is display order.
type Question struct {
	ID           string
	Prompt       string
	Options      []string
	CorrectIndex int
	Explanation  string

	// Optional authoring metadata.
	Section    string
	Difficulty Difficulty
	Category   string
	Topic      string
}

// NewQuestion builds a validated question. The options slice is copied.
func NewQuestion(id, prompt string, options []string, correctIndex int, explanation string) (Question, error) {
	q := Question{
		ID:           id,
		Prompt:       prompt,
		Options:      append([]string(nil), options...),
		CorrectIndex: correctIndex,
		Explanation:  explanation,
	}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// MustQuestion is NewQuestion for statically authored data. Malformed content
// is a defect, so it panics.
func MustQuestion(id, prompt string, options []string, correctIndex int, explanation string) Question {
	q, err := NewQuestion(id, prompt, options, correctIndex, explanation)
	if err != nil {
		panic(err)
	}
	return q
}

// Validate checks the authored-data contract.
func (q Question) Validate() error {
	if q.ID == "" {
		return ErrEmptyID
	}
	if q.Prompt == "" {
		return fmt.Errorf("question %s: %w", q.ID, ErrEmptyPrompt)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s: %w", q.ID, ErrTooFewOptions)
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("question %s: %w: %d not in [0,%d)", q.ID, ErrCorrectIndexOutOfRange, q.CorrectIndex, len(q.Options))
	}
	if !q.Difficulty.Valid() {
		return fmt.Errorf("question %s: %w: %q", q.ID, ErrUnknownDifficulty, q.Difficulty)
	}
	return nil
}

// IsCorrect reports whether optionIndex is the designated answer.
func (q Question) IsCorrect(optionIndex int) bool {
	return optionIndex == q.CorrectIndex
}

// HasOption reports whether i addresses one of the options.
func (q Question) HasOption(i int) bool {
	return i >= 0 && i < len(q.Options)
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}
