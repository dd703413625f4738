package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"stringcal/internal/bounds"
	"stringcal/internal/patch"
)

type Model struct {
	width  int
	height int

	session bounds.Session
	status  string
	log     []string

	keys keyMap
	help help.Model

	patcher patch.Patcher

	// set once collection completes and the patch has been attempted
	done     bool
	block    string
	matches  int
	patchErr error
}

func New(p patch.Patcher) Model {
	return Model{
		status:  "Collecting Left Bounds",
		keys:    defaultKeyMap(),
		help:    help.New(),
		patcher: p,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Log returns the session event log for replay once the alt screen closes.
func (m Model) Log() []string { return m.log }

// Block returns the rendered const block, empty until collection completes.
func (m Model) Block() string { return m.block }

// Matches reports how many pattern matches the target file contained.
func (m Model) Matches() int { return m.matches }

// PatchErr returns the patch failure, if any.
func (m Model) PatchErr() error { return m.patchErr }

// Done reports whether collection completed and a patch was attempted.
func (m Model) Done() bool { return m.done }

func (m *Model) logf(format string, args ...any) {
	m.log = append(m.log, fmt.Sprintf(format, args...))
}
