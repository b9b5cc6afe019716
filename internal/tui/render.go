package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/voltlearn/backend/internal/domain/inlinecheck"
	"github.com/voltlearn/backend/internal/domain/quizsession"
)

var (
	colorCorrect   = lipgloss.Color("42")
	colorIncorrect = lipgloss.Color("196")
	colorMuted     = lipgloss.Color("242")
	colorSelected  = lipgloss.Color("212")
)

// renderCheck renders one inline check with its result once answered.
func renderCheck(c *inlinecheck.Check, n, total, cursor int, noColor bool) string {
	q := c.Question()
	var b strings.Builder
	b.WriteString(stylize(fmt.Sprintf("Check %d of %d", n+1, total), noColor, colorMuted))
	b.WriteString("\n")
	b.WriteString(q.Prompt)
	b.WriteString("\n\n")

	for _, opt := range c.Options() {
		pointer := "  "
		if c.State() == inlinecheck.Unanswered && opt.Index == cursor {
			pointer = "> "
		}
		line := pointer + opt.Text
		switch opt.Mark {
		case inlinecheck.MarkCorrect:
			line = stylize(line+"  ✓", noColor, colorCorrect)
		case inlinecheck.MarkIncorrect:
			line = stylize(line+"  ✗", noColor, colorIncorrect)
		default:
			if opt.Disabled {
				line = stylize(line, noColor, colorMuted)
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if c.ExplanationVisible() {
		b.WriteString("\n")
		if c.Correct() {
			b.WriteString(stylize("Correct.", noColor, colorCorrect))
		} else {
			b.WriteString(stylize("Not quite.", noColor, colorIncorrect))
		}
		if q.Explanation != "" {
			b.WriteString(" ")
			b.WriteString(q.Explanation)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderQuestion renders the quiz question on display. Correctness is not
// shown until the quiz is submitted.
func renderQuestion(s *quizsession.Session, cursor int, noColor bool) string {
	idx, q := s.Current()
	selected, answered := s.Answer(idx)

	var b strings.Builder
	progress := fmt.Sprintf("Question %d of %d  (%d answered)", idx+1, s.Len(), s.AnsweredCount())
	if s.TimeLimit > 0 {
		progress += fmt.Sprintf("  time limit %s", s.TimeLimit)
	}
	b.WriteString(stylize(progress, noColor, colorMuted))
	b.WriteString("\n")
	b.WriteString(q.Prompt)
	b.WriteString("\n\n")

	for i, text := range q.Options {
		pointer := "  "
		if i == cursor {
			pointer = "> "
		}
		mark := "( ) "
		if answered && i == selected {
			mark = "(•) "
		}
		line := pointer + mark + text
		if answered && i == selected {
			line = stylize(line, noColor, colorSelected)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if s.CanSubmit() {
		b.WriteString("\n")
		b.WriteString(stylize("All questions answered. Press s to submit.", noColor, colorMuted))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSummary renders the result of a submitted quiz.
func renderSummary(sum quizsession.Summary, noColor bool) string {
	var b strings.Builder
	headline := fmt.Sprintf("Score: %d/%d (%d%%)", sum.Score, sum.Total, sum.Percentage)
	if sum.Passed {
		b.WriteString(stylize(headline+"  PASS", noColor, colorCorrect))
	} else {
		b.WriteString(stylize(fmt.Sprintf("%s  FAIL (pass mark %d%%)", headline, sum.PassThreshold), noColor, colorIncorrect))
	}
	b.WriteString("\n\n")

	for _, item := range sum.Items {
		if item.Correct {
			b.WriteString(stylize(fmt.Sprintf("✓ %d. %s", item.Index+1, item.Prompt), noColor, colorCorrect))
			b.WriteString("\n")
			continue
		}
		b.WriteString(stylize(fmt.Sprintf("✗ %d. %s", item.Index+1, item.Prompt), noColor, colorIncorrect))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("    your answer: %s\n", item.ChosenText))
		b.WriteString(fmt.Sprintf("    correct:     %s\n", item.CorrectText))
		if item.Explanation != "" {
			b.WriteString(stylize("    "+item.Explanation, noColor, colorMuted))
			b.WriteString("\n")
		}
	}
	b.WriteString("\nPress r to retake or q to quit.\n")
	return b.String()
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor || text == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
