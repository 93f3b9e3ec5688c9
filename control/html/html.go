// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package html implements an HTML driver for control elements.
//
// It uses "golang.org/x/net/html" as the basis. Rendered nodes act as event
// targets so that key, drag and mouse-out events can be dispatched against
// them without a browser.
package html

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/toeirei/navinput/control"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document owns rendered nodes and tracks which one has focus.
type Document struct {
	active *Node
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Focus makes n the active node.
func (d *Document) Focus(n *Node) {
	d.active = n
}

// Active returns the focused node or nil.
func (d *Document) Active() *Node {
	return d.active
}

// Blur clears focus.
func (d *Document) Blur() {
	d.active = nil
}

// Node is a rendered element.
type Node struct {
	*html.Node

	doc      *Document
	el       control.Element
	children []*Node
}

// *Node implements control.Target
var _ control.Target = (*Node)(nil)

// Render builds the node tree for el.
func (d *Document) Render(el control.Element) *Node {
	tag := el.Tag
	if tag == "" {
		tag = "div"
	}
	a := atom.Lookup([]byte(tag))
	n := &Node{
		Node: &html.Node{
			Type:     html.ElementNode,
			DataAtom: a,
			Data:     tag,
		},
		doc: d,
		el:  el,
	}
	n.setAttrs()

	for _, child := range el.Children {
		switch c := child.(type) {
		case control.TextNode:
			n.appendText(string(c))
		case *control.Element:
			if c == nil {
				continue
			}
			cn := d.Render(*c)
			n.children = append(n.children, cn)
			n.Node.AppendChild(cn.Node)
		}
	}
	return n
}

func (n *Node) setAttrs() {
	el := n.el
	var attrs []html.Attribute
	add := func(key, val string) {
		if val != "" {
			attrs = append(attrs, html.Attribute{Key: key, Val: val})
		}
	}
	flag := func(key string, on bool) {
		if on {
			attrs = append(attrs, html.Attribute{Key: key})
		}
	}

	add("type", el.Type)
	add("id", el.ID)
	add("class", el.Class)
	add("name", el.Name)
	add("value", el.Value)
	add("placeholder", el.Placeholder)
	add("href", el.Href)
	add("title", el.Title)
	flag("checked", el.Checked)
	flag("disabled", el.Disabled)
	for k, v := range el.Data {
		attrs = append(attrs, html.Attribute{Key: "data-" + k, Val: v})
	}
	attrs = append(attrs, html.Attribute{Key: "tabindex", Val: strconv.Itoa(el.TabIndex)})

	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].Key < attrs[j].Key
	})
	n.Node.Attr = attrs
}

// appendText adds a text child. Input elements have no content, so the
// first text becomes their value unless one is already set.
func (n *Node) appendText(s string) {
	if s == "" {
		return
	}
	if n.Node.DataAtom == atom.Input {
		if n.attr("value") == nil {
			n.el.Value = s
			n.setAttrs()
		}
		return
	}
	n.Node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

func (n *Node) attr(key string) *html.Attribute {
	for i := range n.Node.Attr {
		if n.Node.Attr[i].Key == key {
			return &n.Node.Attr[i]
		}
	}
	return nil
}

// Element returns the element the node was rendered from.
func (n *Node) Element() control.Element {
	return n.el
}

// Children returns the nested element nodes.
func (n *Node) Children() []*Node {
	return n.children
}

// Attr returns the value of an attribute and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	if a := n.attr(key); a != nil {
		return a.Val, true
	}
	return "", false
}

// Checked reports whether the checked attribute is present.
func (n *Node) Checked() bool {
	_, ok := n.Attr("checked")
	return ok
}

func (n *Node) String() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n.Node); err != nil {
		panic(err)
	}
	return buf.String()
}

// Click synthesizes a primary activation. Checkboxes toggle their checked
// state and report it through OnChange.
func (n *Node) Click() {
	if n.el.Disabled {
		return
	}
	n.el.OnClick.Call(control.NewEvent(n))
	if n.el.Type == control.Checkbox.NativeType() {
		n.el.Checked = !n.el.Checked
		n.setAttrs()
		n.el.OnChange.Call(control.NewEvent(n))
	}
}

// Blur removes focus from n if it has it.
func (n *Node) Blur() {
	if n.doc != nil && n.doc.active == n {
		n.doc.active = nil
	}
}

// Focus makes n the document's active node.
func (n *Node) Focus() {
	if n.doc != nil {
		n.doc.active = n
	}
}

// Focused reports whether n is the document's active node.
func (n *Node) Focused() bool {
	return n.doc != nil && n.doc.active == n
}

// KeyUp dispatches a key-up event for key at n.
func KeyUp(n *Node, key string) *control.Event {
	e := control.NewKeyEvent(n, key)
	n.el.OnKeyUp.Call(e)
	return e
}

// Drag dispatches a drag event at n.
func Drag(n *Node) *control.Event {
	e := control.NewEvent(n)
	n.el.OnDrag.Call(e)
	return e
}

// MouseOut dispatches a mouse-out event at n.
func MouseOut(n *Node) *control.Event {
	e := control.NewEvent(n)
	n.el.OnMouseOut.Call(e)
	return e
}
