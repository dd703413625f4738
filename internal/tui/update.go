package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"stringcal/internal/bounds"
	"stringcal/internal/patch"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.MouseMsg:
		// Pointer fraction relative to the window; skip until the first
		// size message arrives.
		if m.width > 0 {
			m.session.Fraction = float64(msg.X) / float64(m.width)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			return m.apply(bounds.Confirm)
		case key.Matches(msg, m.keys.Undo):
			return m.apply(bounds.Undo)
		case key.Matches(msg, m.keys.NextPhase):
			return m.apply(bounds.NextPhase)
		}
	}
	return m, nil
}

// apply feeds one logical event to the session and translates the effect
// into status and log updates. Completion triggers the patch and quits.
func (m Model) apply(e bounds.Event) (tea.Model, tea.Cmd) {
	next, eff := m.session.Handle(e)
	m.session = next

	switch eff.Kind {
	case bounds.EffectAddedLeft:
		m.status = leftStatus(next)
		m.logf("Added left bound: %.17e", eff.Value)
	case bounds.EffectAddedRight:
		m.status = rightStatus(next)
		m.logf("Added right bound: %.17e", eff.Value)
	case bounds.EffectRemovedLeft:
		m.status = leftStatus(next)
		m.logf("Removed left bound: %.17e", eff.Value)
	case bounds.EffectRemovedRight:
		m.status = rightStatus(next)
		m.logf("Removed right bound: %.17e", eff.Value)
	case bounds.EffectPhaseSwitched:
		m.status = rightStatus(next)
		m.logf("Switched to collecting right bounds.")
	case bounds.EffectComplete:
		m.logf("Added right bound: %.17e", eff.Value)
		m.logf("Right bounds collection complete.")
		m.status = "Right bounds collection complete."
		return m.finish()
	}
	return m, nil
}

// finish averages the collected bounds, patches the target file and ends the
// event loop. Failures are recorded on the model; main reports them after the
// program exits.
func (m Model) finish() (tea.Model, tea.Cmd) {
	m.done = true

	avg, err := patch.Average(m.session.Left, m.session.Right)
	if err != nil {
		m.patchErr = err
		return m, tea.Quit
	}

	m.block = patch.RenderBlock(avg)
	m.matches, m.patchErr = m.patcher.Apply(m.block)
	return m, tea.Quit
}
