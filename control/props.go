// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package control

// Attributes are passed through to the rendered element unmodified.
type Attributes struct {
	ID          string
	Class       string
	Name        string
	Value       string
	Placeholder string
	Href        string
	Title       string
	Checked     bool
	Disabled    bool
	Data        map[string]string

	OnClick  Handler
	OnChange Handler
}

// Node is rendered child content: TextNode or a nested *Element.
type Node interface {
	node()
}

// TextNode is a text child.
type TextNode string

func (TextNode) node() {}

// Props describe a control. Attributes are passed through; the handlers and
// TabIndex are combined with the control's built-in behavior.
type Props struct {
	Kind Kind

	// TabIndex overrides the focus-derived tab order when set.
	TabIndex *int
	Children []Node

	OnKeyUp    Handler
	OnDrag     Handler
	OnMouseOut Handler
	OnSubmit   Handler

	Attributes
}

// Option configures the props of a new control.
type Option = func(p *Props)

// WithTabIndex pins the tab order to i.
func WithTabIndex(i int) Option {
	return func(p *Props) {
		p.TabIndex = &i
	}
}

// WithChildren appends child nodes.
func WithChildren(children ...Node) Option {
	return func(p *Props) {
		p.Children = append(p.Children, children...)
	}
}

// WithText appends a text child.
func WithText(s string) Option {
	return WithChildren(TextNode(s))
}

func WithOnKeyUp(h Handler) Option {
	return func(p *Props) { p.OnKeyUp = h }
}

func WithOnDrag(h Handler) Option {
	return func(p *Props) { p.OnDrag = h }
}

func WithOnMouseOut(h Handler) Option {
	return func(p *Props) { p.OnMouseOut = h }
}

func WithOnSubmit(h Handler) Option {
	return func(p *Props) { p.OnSubmit = h }
}

// WithAttributes replaces the pass-through attributes.
func WithAttributes(a Attributes) Option {
	return func(p *Props) { p.Attributes = a }
}

// WithProps replaces all props except the kind.
func WithProps(props Props) Option {
	return func(p *Props) {
		kind := p.Kind
		*p = props
		p.Kind = kind
	}
}
