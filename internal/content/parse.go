package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/voltlearn/backend/internal/domain/questionbank"
)

// moduleDoc is the authored YAML shape of one training module.
type moduleDoc struct {
	ID        string        `yaml:"id"`
	Title     string        `yaml:"title"`
	Category  string        `yaml:"category"`
	Meta      metaDoc       `yaml:"meta"`
	Exam      examDoc       `yaml:"exam"`
	Checks    []questionDoc `yaml:"checks"`
	Questions []questionDoc `yaml:"questions"`
}

type metaDoc struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

type examDoc struct {
	QuestionCount int      `yaml:"question_count"`
	PassThreshold int      `yaml:"pass_threshold"`
	TimeLimit     string   `yaml:"time_limit"`
	Categories    []string `yaml:"categories"`
}

type questionDoc struct {
	ID           string   `yaml:"id"`
	Question     string   `yaml:"question"`
	Options      []string `yaml:"options"`
	CorrectIndex *int     `yaml:"correct_index"`
	Explanation  string   `yaml:"explanation"`
	Section      string   `yaml:"section"`
	Difficulty   string   `yaml:"difficulty"`
	Category     string   `yaml:"category"`
	Topic        string   `yaml:"topic"`
}

// ParseModule decodes one YAML module document and validates it. Unknown
// fields are rejected so typos in authored content fail loudly.
func ParseModule(data []byte) (*questionbank.QuestionBank, error) {
	var doc moduleDoc
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse module: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse module: multiple YAML documents are not supported")
		}
		return nil, fmt.Errorf("parse module: %w", err)
	}
	return doc.toBank()
}

func (d moduleDoc) toBank() (*questionbank.QuestionBank, error) {
	if d.ID == "" {
		return nil, errors.New("module: id is required")
	}
	if d.Title == "" {
		return nil, fmt.Errorf("module %s: title is required", d.ID)
	}

	bank := questionbank.NewWithCategory(d.ID, d.Title, d.Category)
	bank.Meta = questionbank.PageMeta{
		Title:       d.Meta.Title,
		Description: d.Meta.Description,
		Keywords:    d.Meta.Keywords,
	}
	if bank.Meta.Title == "" {
		bank.Meta.Title = d.Title
	}

	bank.Exam = questionbank.ExamConfig{
		QuestionCount: d.Exam.QuestionCount,
		PassThreshold: d.Exam.PassThreshold,
	}
	if d.Exam.TimeLimit != "" {
		limit, err := time.ParseDuration(d.Exam.TimeLimit)
		if err != nil {
			return nil, fmt.Errorf("module %s: exam.time_limit: %w", d.ID, err)
		}
		bank.Exam.TimeLimit = limit
	}
	if bank.Exam.PassThreshold < 0 || bank.Exam.PassThreshold > 100 {
		return nil, fmt.Errorf("module %s: exam.pass_threshold must be between 0 and 100", d.ID)
	}
	seen := make(map[string]bool, len(d.Exam.Categories))
	for i, c := range d.Exam.Categories {
		if c == "" || seen[c] {
			return nil, fmt.Errorf("module %s: exam.categories[%d]: empty or duplicate category %q", d.ID, i, c)
		}
		seen[c] = true
	}
	bank.Exam.Categories = d.Exam.Categories

	for i, qd := range d.Checks {
		q, err := qd.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("module %s: checks[%d]: %w", d.ID, i, err)
		}
		if err := bank.AddCheck(q); err != nil {
			return nil, fmt.Errorf("module %s: checks[%d]: %w", d.ID, i, err)
		}
	}
	for i, qd := range d.Questions {
		q, err := qd.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("module %s: questions[%d]: %w", d.ID, i, err)
		}
		if err := bank.AddQuestion(q); err != nil {
			return nil, fmt.Errorf("module %s: questions[%d]: %w", d.ID, i, err)
		}
	}
	return bank, nil
}

func (d questionDoc) toQuestion() (questionbank.Question, error) {
	if d.CorrectIndex == nil {
		return questionbank.Question{}, errors.New("correct_index is required")
	}
	q, err := questionbank.NewQuestion(d.ID, d.Question, d.Options, *d.CorrectIndex, d.Explanation)
	if err != nil {
		return questionbank.Question{}, err
	}
	q.Section = d.Section
	q.Difficulty = questionbank.Difficulty(d.Difficulty)
	q.Category = d.Category
	q.Topic = d.Topic
	if err := q.Validate(); err != nil {
		return questionbank.Question{}, err
	}
	return q, nil
}
