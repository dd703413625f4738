package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"stringcal/internal/bounds"
)

const instructions = "Move the pointer to the leftmost edge of string 1 and press SPACE.\n" +
	"Do this for all desired strings from left to right. When done, press\n" +
	"ENTER, then record the right edges the same way. Backspace undoes the\n" +
	"last sample. Collection finishes when every string has both edges."

func leftStatus(s bounds.Session) string {
	return fmt.Sprintf("Collecting Left Bounds (%d)", len(s.Left))
}

func rightStatus(s bounds.Session) string {
	return fmt.Sprintf("Collecting Right Bounds (%d/%d)", len(s.Right), len(s.Left))
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	contentWidth := max(20, m.width)

	header := titleStyle.Render(" stringcal ─ x position calibration ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	body := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		dimStyle.Render(instructions),
		"",
		m.status,
		readoutStyle.Render(fmt.Sprintf("Current X: %.4f", m.session.Fraction)),
	))

	// Recent session events, newest last.
	logLines := m.log
	if len(logLines) > 6 {
		logLines = logLines[len(logLines)-6:]
	}
	events := dimStyle.Render(strings.Join(logLines, "\n"))

	footer := lipgloss.NewStyle().Width(contentWidth).Render(m.help.View(m.keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, events, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
