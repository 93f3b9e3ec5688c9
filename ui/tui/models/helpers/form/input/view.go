// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/navinput/control"
)

type Styles struct {
	Disabled lipgloss.Style
	Blurred  lipgloss.Style
	Focused  lipgloss.Style
	Button   lipgloss.Style
	Link     lipgloss.Style
	TabIndex lipgloss.Style
}

// DefaultStyles uses the same palette as the rest of the TUI.
func DefaultStyles() Styles {
	return ThemedStyles(lipgloss.Color("205"), lipgloss.Color("240"))
}

func ThemedStyles(focused, blurred lipgloss.Color) Styles {
	return Styles{
		Disabled: lipgloss.NewStyle().Foreground(blurred).Faint(true),
		Blurred:  lipgloss.NewStyle().Foreground(blurred),
		Focused:  lipgloss.NewStyle().Foreground(focused).Bold(true),
		Button: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()),
		Link:     lipgloss.NewStyle().Underline(true),
		TabIndex: lipgloss.NewStyle().Foreground(blurred).Faint(true),
	}
}

func (c *Control) View(width int) string {
	el := c.Element()
	focused := c.ctrl.Focused()

	style := c.Styles.Blurred
	switch {
	case c.props.Disabled:
		style = c.Styles.Disabled
	case focused:
		style = c.Styles.Focused
	}

	var view string
	switch c.props.Kind {
	case control.Button:
		view = c.Styles.Button.
			BorderForeground(style.GetForeground()).
			Inherit(style).
			MaxWidth(max(width-2, 1)).
			Render(c.Label)
	case control.Link:
		label := c.Styles.Link.Inherit(style).Render(c.Label)
		if el.Href != "" {
			label += c.Styles.Blurred.Render(" → " + el.Href)
		}
		view = lipgloss.NewStyle().MaxWidth(max(width, 1)).Render(label)
	case control.Checkbox:
		box := "[ ]"
		if el.Checked {
			box = "[x]"
		}
		view = style.MaxWidth(max(width, 1)).Render(box + " " + c.Label)
	case control.Text, control.Email, control.Password:
		c.input.Width = max(width-2, 1)
		view = lipgloss.JoinVertical(
			lipgloss.Left,
			style.Width(max(width, 1)).Render(c.Label),
			c.input.View(),
		)
	}

	if c.ShowTabIndex {
		view = lipgloss.JoinHorizontal(
			lipgloss.Top,
			view,
			c.Styles.TabIndex.Render(fmt.Sprintf(" tabindex=%d", el.TabIndex)),
		)
	}
	return view
}
