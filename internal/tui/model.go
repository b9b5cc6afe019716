// Package tui is a terminal front end for a module's inline checks and its
// knowledge-check quiz.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voltlearn/backend/internal/domain/inlinecheck"
	"github.com/voltlearn/backend/internal/domain/quizsession"
)

type phase int

const (
	phaseChecks phase = iota
	phaseQuiz
	phaseSummary
)

// Options configures the quiz UI model.
type Options struct {
	NoColor bool
	Title   string
}

// Model walks the learner through the inline checks, if any, then the quiz.
type Model struct {
	session  *quizsession.Session
	checks   []*inlinecheck.Check
	checkIdx int
	phase    phase
	cursor   int

	keys    keyMap
	help    help.Model
	title   string
	noColor bool
}

// NewModel builds a model over session. checks may be empty.
func NewModel(session *quizsession.Session, checks []*inlinecheck.Check, opts Options) Model {
	m := Model{
		session: session,
		checks:  checks,
		keys:    defaultKeyMap(),
		help:    help.New(),
		title:   opts.Title,
		noColor: opts.NoColor,
	}
	if len(checks) == 0 {
		m.phase = phaseQuiz
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update applies one key press. Keys that are not valid in the current
// state leave the model unchanged.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.phase {
		case phaseChecks:
			m = m.updateCheck(typed)
		case phaseQuiz:
			m = m.updateQuiz(typed)
		case phaseSummary:
			if key.Matches(typed, m.keys.Restart) {
				m.session.Restart()
				m.phase = phaseQuiz
				m.cursor = 0
			}
		}
	}
	return m, nil
}

func (m Model) currentCheck() *inlinecheck.Check {
	return m.checks[m.checkIdx]
}

func (m Model) updateCheck(msg tea.KeyMsg) Model {
	c := m.currentCheck()
	switch {
	case key.Matches(msg, m.keys.Up):
		if c.State() == inlinecheck.Unanswered {
			m.cursor = moveCursor(m.cursor, -1, len(c.Question().Options))
		}
	case key.Matches(msg, m.keys.Down):
		if c.State() == inlinecheck.Unanswered {
			m.cursor = moveCursor(m.cursor, 1, len(c.Question().Options))
		}
	case key.Matches(msg, m.keys.Select):
		c.Select(m.cursor)
	case key.Matches(msg, m.keys.Next):
		if c.State() != inlinecheck.Answered {
			return m
		}
		m.cursor = 0
		if m.checkIdx < len(m.checks)-1 {
			m.checkIdx++
		} else {
			m.phase = phaseQuiz
		}
	}
	return m
}

func (m Model) updateQuiz(msg tea.KeyMsg) Model {
	s := m.session
	idx, q := s.Current()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = moveCursor(m.cursor, -1, len(q.Options))
	case key.Matches(msg, m.keys.Down):
		m.cursor = moveCursor(m.cursor, 1, len(q.Options))
	case key.Matches(msg, m.keys.Select):
		s.Select(idx, m.cursor)
	case key.Matches(msg, m.keys.Next):
		if s.NextEnabled() && s.Next() {
			m.cursor = m.answerOrZero()
		}
	case key.Matches(msg, m.keys.Prev):
		if s.Previous() {
			m.cursor = m.answerOrZero()
		}
	case key.Matches(msg, m.keys.Submit):
		if s.Submit() {
			m.phase = phaseSummary
		}
	case key.Matches(msg, m.keys.Restart):
		s.Restart()
		m.cursor = 0
	}
	return m
}

// answerOrZero places the cursor on the current question's recorded answer.
func (m Model) answerOrZero() int {
	idx, _ := m.session.Current()
	if a, ok := m.session.Answer(idx); ok {
		return a
	}
	return 0
}

func moveCursor(cursor, delta, n int) int {
	cursor += delta
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func (m Model) View() string {
	var body string
	switch m.phase {
	case phaseChecks:
		body = renderCheck(m.currentCheck(), m.checkIdx, len(m.checks), m.cursor, m.noColor)
	case phaseQuiz:
		body = renderQuestion(m.session, m.cursor, m.noColor)
	case phaseSummary:
		summary, _ := quizsession.Summarize(m.session)
		body = renderSummary(summary, m.noColor)
	}
	header := stylize(m.title, m.noColor, lipgloss.Color("33"))
	footer := m.help.View(m.keys.withPhase(m))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer) + "\n"
}
