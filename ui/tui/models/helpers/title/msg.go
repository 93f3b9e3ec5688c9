// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set replaces the part of the title after the delimiter. An empty title
// shows the base alone.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
