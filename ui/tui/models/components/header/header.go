// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/navinput/ui/tui/util"
)

const logo string = "⇥ navinput"

type Model struct {
	Title   string
	Version string
	size    util.Size
}

func New(title, version string) *Model {
	return &Model{Title: title, Version: version}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	line := lipgloss.NewStyle().Bold(true).Render(logo)
	if m.Title != "" {
		line += " · " + m.Title
	}
	if m.Version != "" {
		line += lipgloss.NewStyle().Faint(true).Render(" " + m.Version)
	}

	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			line,
		))
}

// Height is the number of rows View occupies.
func (m Model) Height() int {
	return lipgloss.Height(m.View())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
