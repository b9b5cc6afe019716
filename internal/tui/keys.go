package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings of the quiz UI.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n"),
			key.WithHelp("→/n", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("←/p", "previous"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Next, k.Prev, k.Submit, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Next, k.Prev},
		{k.Submit, k.Restart, k.Quit},
	}
}

// withPhase enables only the bindings that act in the given phase, so the
// help line shows what the learner can do right now.
func (k keyMap) withPhase(m Model) keyMap {
	switch m.phase {
	case phaseChecks:
		answered := m.currentCheck().ExplanationVisible()
		k.Up.SetEnabled(!answered)
		k.Down.SetEnabled(!answered)
		k.Select.SetEnabled(!answered)
		k.Next.SetEnabled(answered)
		k.Prev.SetEnabled(false)
		k.Submit.SetEnabled(false)
		k.Restart.SetEnabled(false)
	case phaseQuiz:
		k.Next.SetEnabled(m.session.NextEnabled())
		k.Prev.SetEnabled(m.session.PreviousEnabled())
		k.Submit.SetEnabled(m.session.CanSubmit())
	case phaseSummary:
		k.Up.SetEnabled(false)
		k.Down.SetEnabled(false)
		k.Select.SetEnabled(false)
		k.Next.SetEnabled(false)
		k.Prev.SetEnabled(false)
		k.Submit.SetEnabled(false)
	}
	return k
}
