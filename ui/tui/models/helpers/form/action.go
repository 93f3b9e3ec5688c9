// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package form

const (
	ActionNone = iota
	ActionNext
	ActionPrev
	ActionSubmit
	ActionCancel
	// ActionBlur gives up focus until the next navigation key.
	ActionBlur
	// ActionActivate reports a click that does not submit (links).
	ActionActivate
	// ActionChange reports a value change (checkbox toggles).
	ActionChange
)

type Action int

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionNext:
		return "next"
	case ActionPrev:
		return "prev"
	case ActionSubmit:
		return "submit"
	case ActionCancel:
		return "cancel"
	case ActionBlur:
		return "blur"
	case ActionActivate:
		return "activate"
	case ActionChange:
		return "change"
	}
	return "unknown"
}
