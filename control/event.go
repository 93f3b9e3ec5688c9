// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package control

// KeyEnter is the key name that activates a control.
const KeyEnter = "enter"

// Target is the element an event originated from.
type Target interface {
	// Click synthesizes a primary activation.
	Click()
	// Blur removes focus from the element.
	Blur()
}

// Event is passed to every handler. Handlers mark it handled with
// PreventDefault, which suppresses the control's built-in behavior.
type Event struct {
	Key    string
	Origin Target

	prevented bool
}

// NewKeyEvent returns a key event originating at origin.
func NewKeyEvent(origin Target, key string) *Event {
	return &Event{Key: key, Origin: origin}
}

// NewEvent returns a pointer event originating at origin.
func NewEvent(origin Target) *Event {
	return &Event{Origin: origin}
}

// PreventDefault marks the event as handled.
func (e *Event) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether a handler marked the event as handled.
func (e *Event) DefaultPrevented() bool {
	return e.prevented
}

// Handler handles an event.
type Handler func(*Event)

// Call invokes h if it is set.
func (h Handler) Call(e *Event) {
	if h != nil {
		h(e)
	}
}
