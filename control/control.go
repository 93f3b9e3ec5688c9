// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package control

import "fmt"

// Element is the result of rendering a control.
type Element struct {
	Tag string
	// Type is the native type attribute; empty when absent.
	Type     string
	TabIndex int
	Children []Node

	Attributes

	OnKeyUp    Handler
	OnDrag     Handler
	OnMouseOut Handler
}

func (*Element) node() {}

// Control is a focusable input control. The wrapped handlers are built once
// and keep their identity across renders.
type Control struct {
	props Props
	focus FocusState

	onKeyUp    Handler
	onDrag     Handler
	onMouseOut Handler
}

// New returns a control of the given kind. A nil focus counts as not focused.
func New(kind Kind, focus FocusState, opts ...Option) *Control {
	props := Props{Kind: kind}
	for _, opt := range opts {
		opt(&props)
	}
	return newControl(props, focus)
}

// FromProps returns a control for props, rejecting unknown kinds.
func FromProps(props Props, focus FocusState) (*Control, error) {
	if !props.Kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(props.Kind))
	}
	return newControl(props, focus), nil
}

func newControl(props Props, focus FocusState) *Control {
	c := &Control{props: props, focus: focus}
	c.onKeyUp = c.keyUp
	c.onDrag = c.blurUnlessHandled(props.OnDrag)
	c.onMouseOut = c.blurUnlessHandled(props.OnMouseOut)
	return c
}

// Kind returns the control kind.
func (c *Control) Kind() Kind {
	return c.props.Kind
}

// Props returns the props the control was built from.
func (c *Control) Props() Props {
	return c.props
}

// Focused reports the injected focus state.
func (c *Control) Focused() bool {
	return focused(c.focus)
}

// TabIndex resolves the tab order: an explicit index wins, otherwise 0 when
// focused and -1 when not.
func (c *Control) TabIndex() int {
	if c.props.TabIndex != nil {
		return *c.props.TabIndex
	}
	if c.Focused() {
		return 0
	}
	return -1
}

// Render produces the element for the current focus state.
func (c *Control) Render() Element {
	return Element{
		Tag:        c.props.Kind.Tag(),
		Type:       c.props.Kind.NativeType(),
		TabIndex:   c.TabIndex(),
		Children:   c.props.Children,
		Attributes: c.props.Attributes,
		OnKeyUp:    c.onKeyUp,
		OnDrag:     c.onDrag,
		OnMouseOut: c.onMouseOut,
	}
}

// KeyUp dispatches a key-up event through the wrapped handler.
func (c *Control) KeyUp(e *Event) { c.onKeyUp(e) }

// Drag dispatches a drag event through the wrapped handler.
func (c *Control) Drag(e *Event) { c.onDrag(e) }

// MouseOut dispatches a mouse-out event through the wrapped handler.
func (c *Control) MouseOut(e *Event) { c.onMouseOut(e) }

func (c *Control) keyUp(e *Event) {
	c.props.OnKeyUp.Call(e)
	if e.DefaultPrevented() || e.Key != KeyEnter {
		return
	}

	switch c.props.Kind.Group() {
	case ButtonLike:
		if e.Origin != nil {
			e.Origin.Click()
		}
	case TextLike:
		c.props.OnSubmit.Call(e)
	}
}

func (c *Control) blurUnlessHandled(h Handler) Handler {
	return func(e *Event) {
		h.Call(e)
		if e.DefaultPrevented() || c.props.Kind.Group() != ButtonLike {
			return
		}
		if e.Origin != nil {
			e.Origin.Blur()
		}
	}
}
