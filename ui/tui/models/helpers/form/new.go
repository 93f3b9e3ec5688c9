// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) Form[T] {
	form := Form[T]{
		KeyMap: DefaultKeyMap(),
		state:  &formState{pressed: -1, hovered: -1},
	}
	for _, opt := range opts {
		opt(&form)
	}
	return form
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

// WithOnEvent observes every action an input reports, except navigation.
func WithOnEvent[T any](fn func(id string, action Action) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnEvent = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

func WithKeyMap[T any](keyMap help.KeyMap) NewOpt[T] {
	return func(form *Form[T]) {
		form.BaseKeyMap = keyMap
	}
}

// WithTop sets the screen row the form is drawn at, for mouse hit testing.
func WithTop[T any](top int) NewOpt[T] {
	return func(form *Form[T]) {
		form.top = top
	}
}

// WithInput adds input on a row of its own.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return WithRow[T](RowItem{ID: id, Input: input})
}

type RowItem struct {
	ID    string
	Input FormInput
}

// WithRow adds inputs side by side on one row.
func WithRow[T any](items ...RowItem) NewOpt[T] {
	return func(form *Form[T]) {
		var row formRow
		for _, item := range items {
			row.items = append(row.items, form.add(item.ID, item.Input))
		}
		if len(row.items) > 0 {
			form.rows = append(form.rows, row)
		}
	}
}
