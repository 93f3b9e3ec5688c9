// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package control

// FocusState reports whether a control is the current navigation target.
// It is supplied by whatever manages focus for the surrounding screen.
type FocusState interface {
	Focused() bool
}

// FocusFunc adapts a function to FocusState.
type FocusFunc func() bool

func (f FocusFunc) Focused() bool { return f() }

// Static is a FocusState with a fixed value.
type Static bool

func (s Static) Focused() bool { return bool(s) }

func focused(fs FocusState) bool {
	return fs != nil && fs.Focused()
}
