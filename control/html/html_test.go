// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package html_test

import (
	"testing"

	"github.com/toeirei/navinput/control"
	"github.com/toeirei/navinput/control/html"
)

func TestRender_Markup(t *testing.T) {
	cases := []struct {
		kind control.Kind
		want string
	}{
		{control.Button, `<div tabindex="0">Go</div>`},
		{control.Link, `<a tabindex="0">Go</a>`},
		{control.Checkbox, `<input tabindex="0" type="checkbox" value="Go"/>`},
		{control.Text, `<input tabindex="0" type="text" value="Go"/>`},
		{control.Email, `<input tabindex="0" type="email" value="Go"/>`},
		{control.Password, `<input tabindex="0" type="password" value="Go"/>`},
	}
	doc := html.NewDocument()
	for _, tc := range cases {
		n := doc.Render(control.New(tc.kind, control.Static(true), control.WithText("Go")).Render())
		if got := n.String(); got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.kind, got, tc.want)
		}
	}
}

func TestRender_TypeAttributeAbsentForButtonAndLink(t *testing.T) {
	doc := html.NewDocument()
	for _, k := range []control.Kind{control.Button, control.Link} {
		n := doc.Render(control.New(k, nil).Render())
		if v, ok := n.Attr("type"); ok {
			t.Errorf("%s: type attribute present (%q)", k, v)
		}
		if v, _ := n.Attr("tabindex"); v != "-1" {
			t.Errorf("%s: tabindex = %q, want -1", k, v)
		}
	}
}

func TestRender_AttributesAndNestedChildren(t *testing.T) {
	icon := &control.Element{Tag: "span", TabIndex: -1, Children: []control.Node{control.TextNode("*")}}
	c := control.New(control.Link, control.Static(false),
		control.WithTabIndex(5),
		control.WithAttributes(control.Attributes{
			ID:   "home",
			Href: "/home",
			Data: map[string]string{"row": "2"},
		}),
		control.WithChildren(icon, control.TextNode("Home")),
	)
	n := html.NewDocument().Render(c.Render())
	want := `<a data-row="2" href="/home" id="home" tabindex="5"><span tabindex="-1">*</span>Home</a>`
	if got := n.String(); got != want {
		t.Fatalf("got %s\nwant %s", got, want)
	}
	if len(n.Children()) != 1 {
		t.Fatalf("nested nodes = %d, want 1", len(n.Children()))
	}
}

func TestKeyUp_EnterClicksButton(t *testing.T) {
	clicks := 0
	c := control.New(control.Button, control.Static(true),
		control.WithAttributes(control.Attributes{OnClick: func(*control.Event) { clicks++ }}))
	n := html.NewDocument().Render(c.Render())

	html.KeyUp(n, "a")
	if clicks != 0 {
		t.Fatalf("non-enter key clicked")
	}
	html.KeyUp(n, control.KeyEnter)
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
}

func TestKeyUp_EnterTogglesCheckboxWithoutSubmit(t *testing.T) {
	submits, changes := 0, 0
	c := control.New(control.Checkbox, control.Static(true),
		control.WithOnSubmit(func(*control.Event) { submits++ }),
		control.WithAttributes(control.Attributes{OnChange: func(*control.Event) { changes++ }}))
	n := html.NewDocument().Render(c.Render())

	html.KeyUp(n, control.KeyEnter)
	if !n.Checked() || changes != 1 {
		t.Fatalf("checked = %v changes = %d", n.Checked(), changes)
	}
	html.KeyUp(n, control.KeyEnter)
	if n.Checked() || changes != 2 {
		t.Fatalf("checked = %v changes = %d", n.Checked(), changes)
	}
	if submits != 0 {
		t.Fatalf("checkbox submitted %d times", submits)
	}
}

func TestKeyUp_EnterSubmitsTextOnce(t *testing.T) {
	submits := 0
	c := control.New(control.Text, control.Static(true),
		control.WithOnSubmit(func(*control.Event) { submits++ }))
	n := html.NewDocument().Render(c.Render())
	html.KeyUp(n, control.KeyEnter)
	if submits != 1 {
		t.Fatalf("submits = %d, want 1", submits)
	}
}

func TestKeyUp_PreventedByCaller(t *testing.T) {
	clicks := 0
	c := control.New(control.Button, control.Static(true),
		control.WithOnKeyUp(func(e *control.Event) { e.PreventDefault() }),
		control.WithAttributes(control.Attributes{OnClick: func(*control.Event) { clicks++ }}))
	n := html.NewDocument().Render(c.Render())
	if e := html.KeyUp(n, control.KeyEnter); !e.DefaultPrevented() {
		t.Fatal("event not marked handled")
	}
	if clicks != 0 {
		t.Fatalf("clicks = %d, want 0", clicks)
	}
}

func TestDragAndMouseOut_BlurCheckbox(t *testing.T) {
	doc := html.NewDocument()
	n := doc.Render(control.New(control.Checkbox, control.Static(true)).Render())

	n.Focus()
	html.Drag(n)
	if doc.Active() != nil {
		t.Fatal("drag did not blur checkbox")
	}

	n.Focus()
	html.MouseOut(n)
	if n.Focused() {
		t.Fatal("mouse-out did not blur checkbox")
	}
}

func TestDragAndMouseOut_PreventedKeepsFocus(t *testing.T) {
	doc := html.NewDocument()
	prevent := func(e *control.Event) { e.PreventDefault() }
	n := doc.Render(control.New(control.Checkbox, control.Static(true),
		control.WithOnDrag(prevent), control.WithOnMouseOut(prevent)).Render())

	n.Focus()
	html.Drag(n)
	html.MouseOut(n)
	if doc.Active() != n {
		t.Fatal("handled events still blurred the checkbox")
	}
}

func TestBlur_OnlyAffectsActiveNode(t *testing.T) {
	doc := html.NewDocument()
	a := doc.Render(control.New(control.Button, nil).Render())
	b := doc.Render(control.New(control.Button, nil).Render())
	doc.Focus(a)
	b.Blur()
	if doc.Active() != a {
		t.Fatal("blurring an inactive node cleared focus")
	}
	doc.Blur()
	if doc.Active() != nil {
		t.Fatal("document blur kept focus")
	}
}

func TestClick_DisabledIsIgnored(t *testing.T) {
	clicks := 0
	c := control.New(control.Checkbox, nil, control.WithAttributes(control.Attributes{
		Disabled: true,
		OnClick:  func(*control.Event) { clicks++ },
	}))
	n := html.NewDocument().Render(c.Render())
	n.Click()
	if clicks != 0 || n.Checked() {
		t.Fatalf("disabled checkbox reacted: clicks=%d checked=%v", clicks, n.Checked())
	}
}
