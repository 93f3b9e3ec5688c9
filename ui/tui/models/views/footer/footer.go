// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/navinput/ui/tui/models/components/keyhelp"
	"github.com/toeirei/navinput/ui/tui/util"
)

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     string
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	// catch AnnounceFocusMsg and inject baseKeyMap
	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

// SetStatus replaces the status line shown above the key help.
func (m *Model) SetStatus(status string) {
	m.status = status
}

func (m Model) Status() string {
	return m.status
}

func (m Model) view() string {
	if m.status == "" {
		return m.help.View()
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Italic(true).Render(m.status),
		m.help.View(),
	)
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			h_pos,
			m.view(),
		))
}

// Height is the number of rows View occupies.
func (m Model) Height() int {
	return lipgloss.Height(m.View())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.baseKeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}
