// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/navinput/ui/tui/util"
)

func (f *Form[T]) updateMouse(msg tea.MouseMsg) tea.Cmd {
	index := f.hitTest(msg.X, msg.Y)
	var cmds []tea.Cmd

	// leaving an input counts as mouse-out, whatever the action
	if hovered := f.state.hovered; hovered >= 0 && hovered != index {
		cmds = append(cmds, f.dispatchPointer(hovered, PointerInput.MouseOut))
	}
	f.state.hovered = index

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || index < 0 {
			break
		}
		f.state.pressed, f.state.dragged = index, false
		cmds = append(cmds, f.setActive(index))
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft && f.state.pressed >= 0 {
			f.state.dragged = true
			cmds = append(cmds, f.dispatchPointer(f.state.pressed, PointerInput.Drag))
		}
	case tea.MouseActionRelease:
		pressed := f.state.pressed
		if pressed >= 0 && pressed == index && !f.state.dragged {
			cmds = append(cmds, f.dispatchPointer(pressed, PointerInput.Click))
		}
		f.state.pressed, f.state.dragged = -1, false
	}

	return tea.Batch(cmds...)
}

func (f *Form[T]) dispatchPointer(index int, fn func(PointerInput) (tea.Cmd, Action)) tea.Cmd {
	input, ok := f.items[index].input.(PointerInput)
	if !ok {
		return nil
	}
	cmd, action := fn(input)
	return tea.Batch(cmd, f.handleAction(index, action))
}

// hitTest returns the index of the input drawn at x, y or -1.
func (f *Form[T]) hitTest(x, y int) int {
	y -= f.top
	if y < 0 {
		return -1
	}
	for _, row := range f.rows {
		h := lipgloss.Height(f.rowView(row))
		if y >= h {
			y -= h
			continue
		}
		width := f.size.Width / len(row.items)
		if width <= 0 {
			return row.items[0]
		}
		return row.items[util.Clamp(0, x/width, len(row.items)-1)]
	}
	return -1
}
