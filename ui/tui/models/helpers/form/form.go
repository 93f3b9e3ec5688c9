// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/toeirei/navinput/control"
	"github.com/toeirei/navinput/ui/tui/util"
	"github.com/toeirei/navinput/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

// FocusBinder is implemented by inputs that derive their rendering from the
// form's focus ring instead of tracking focus themselves.
type FocusBinder interface {
	BindFocus(control.FocusState)
}

// PointerInput is implemented by inputs that react to the mouse.
type PointerInput interface {
	Click() (tea.Cmd, Action)
	Drag() (tea.Cmd, Action)
	MouseOut() (tea.Cmd, Action)
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

// formState is shared by every copy of a Form so that focus providers
// handed to inputs stay valid across value-receiver updates.
type formState struct {
	active  int
	focused bool
	// dropped is set when the active input gave up focus.
	dropped bool

	pressed int
	hovered int
	dragged bool
}

func (s *formState) focusOf(index int) control.FocusState {
	return control.FocusFunc(func() bool {
		return s.focused && !s.dropped && s.active == index
	})
}

type Form[T any] struct {
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	OnEvent          func(id string, action Action) tea.Cmd
	ResetAfterSubmit bool
	BaseKeyMap       help.KeyMap
	KeyMap           KeyMap

	items []formItem
	rows  []formRow
	state *formState
	size  util.Size
	top   int
}

func (f *Form[T]) add(id string, input FormInput) int {
	index := len(f.items)
	if binder, ok := input.(FocusBinder); ok {
		binder.BindFocus(f.state.focusOf(index))
	}
	f.items = append(f.items, formItem{id: id, input: input})
	return index
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f Form[T]) Update(msg tea.Msg) (Form[T], tea.Cmd) {
	// handle size updates
	if f.size.Update(msg) {
		return f, nil
	}

	if !f.state.focused || len(f.items) == 0 {
		return f, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.KeyMap.Next):
			return f, f.changeActiveIndex(1)
		case key.Matches(msg, f.KeyMap.Prev):
			return f, f.changeActiveIndex(-1)
		}
		if f.state.dropped {
			return f, nil
		}
	case tea.MouseMsg:
		return f, f.updateMouse(msg)
	}

	// pass msg to active input
	return f, f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(f.rows, f.rowView)...,
	)
}

func (f Form[T]) rowView(row formRow) string {
	width := f.size.Width / len(row.items)
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		slicest.Map(row.items, func(index int) string {
			return f.items[index].input.View(width)
		})...,
	)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	f.state.focused = true
	f.state.dropped = false
	if len(f.items) == 0 {
		return nil, f.BaseKeyMap
	}
	return f.focusActive()
}

func (f *Form[T]) Blur() {
	f.state.focused = false
	if len(f.items) > 0 {
		f.items[f.state.active].input.Blur()
	}
}

// *Form implements util.Focusable
var _ util.Focusable = (*Form[any])(nil)

// ActiveID returns the id of the input holding focus, or "" when focus was
// dropped.
func (f *Form[T]) ActiveID() string {
	if !f.state.focused || f.state.dropped || len(f.items) == 0 {
		return ""
	}
	return f.items[f.state.active].id
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}
	return f.setActive(0)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd, submitCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit {
		resetCmd = f.Reset()
	}
	if f.OnSubmit != nil {
		submitCmd = f.OnSubmit(data, err)
	}
	return tea.Batch(resetCmd, submitCmd)
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	index := f.state.active
	updateCmd, action := f.items[index].input.Update(msg)
	return tea.Batch(updateCmd, f.handleAction(index, action))
}

func (f *Form[T]) handleAction(index int, action Action) tea.Cmd {
	var actionCmd, eventCmd tea.Cmd

	switch action {
	case ActionNone:
		return nil
	case ActionNext:
		return f.changeActiveIndex(1)
	case ActionPrev:
		return f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		if f.OnCancel != nil {
			actionCmd = f.OnCancel()
		}
	case ActionBlur:
		var dropped bool
		if actionCmd, dropped = f.drop(index); !dropped {
			return nil
		}
	case ActionActivate, ActionChange:
	}

	if f.OnEvent != nil {
		eventCmd = f.OnEvent(f.items[index].id, action)
	}
	return tea.Batch(actionCmd, eventCmd)
}

// drop removes focus from the input at index if it is the active one and
// reports whether it did.
func (f *Form[T]) drop(index int) (tea.Cmd, bool) {
	if index != f.state.active || f.state.dropped {
		return nil, false
	}
	f.state.dropped = true
	f.items[index].input.Blur()
	return util.AnnounceKeyMapCmd(util.MergeKeyMaps(f.BaseKeyMap, f.KeyMap)), true
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	n := len(f.items)
	return f.setActive(((f.state.active+delta)%n + n) % n)
}

func (f *Form[T]) setActive(index int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	old := f.state.active
	if old != index || !f.state.dropped {
		f.items[old].input.Blur()
	}
	f.state.active = index
	f.state.dropped = false

	if !f.state.focused {
		return nil
	}
	cmd, keyMap := f.focusActive()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (f *Form[T]) focusActive() (tea.Cmd, help.KeyMap) {
	cmd, keyMap := f.items[f.state.active].input.Focus()
	return cmd, util.MergeKeyMaps(f.BaseKeyMap, f.KeyMap, keyMap)
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		values[item.id] = item.input.Get()
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
