// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
// Package windowtitle keeps the terminal window title in sync with the
// control that holds focus.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

// Title returns the full window title.
func (t TitleHandler) Title() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t TitleHandler) render() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

func (t TitleHandler) Init() tea.Cmd {
	return t.render()
}

// Handle consumes title messages and returns nil for everything else.
func (t *TitleHandler) Handle(msg tea.Msg) tea.Cmd {
	title, ok := msg.(titleMsg)
	if !ok || t.current == string(title) {
		return nil
	}
	t.current = string(title)
	return t.render()
}
