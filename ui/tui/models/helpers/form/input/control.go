// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/navinput/control"
	"github.com/toeirei/navinput/internal/i18n"
	"github.com/toeirei/navinput/internal/logging"
	"github.com/toeirei/navinput/ui/tui/models/helpers/form"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Control hosts a control.Control in a form. Key messages are delivered as
// key-up events, the mouse as click, drag and mouse-out events, and the
// control's synthesized clicks and blurs come back as form actions.
type Control struct {
	Label  string
	KeyMap ControlKeyMap
	Styles Styles
	// ShowTabIndex appends the resolved tab order to the view.
	ShowTabIndex bool

	props   control.Props
	focus   control.FocusState
	ctrl    *control.Control
	input   textinput.Model
	checked bool

	// pending collects the action raised while an event is dispatched
	pending form.Action
}

type ControlKeyMap struct {
	Activate key.Binding
	Toggle   key.Binding
	Copy     key.Binding
}

func (k ControlKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Toggle, k.Copy}
}

func (k ControlKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Activate, k.Toggle, k.Copy}}
}

// NewControl returns a form input for props. The label is shown next to or
// above the control; for buttons and links it is also the rendered text.
func NewControl(label string, props control.Props) (*Control, error) {
	if !props.Kind.Valid() {
		return nil, fmt.Errorf("%w: %d", control.ErrUnknownKind, uint8(props.Kind))
	}

	c := &Control{
		Label:   label,
		KeyMap:  newKeyMap(props.Kind),
		Styles:  DefaultStyles(),
		props:   props,
		checked: props.Checked,
	}

	if props.Kind.Group() == control.TextLike {
		c.input = textinput.New()
		c.input.Placeholder = props.Placeholder
		c.input.SetValue(props.Value)
		switch props.Kind {
		case control.Password:
			c.input.EchoMode = textinput.EchoPassword
			c.input.EchoCharacter = '•'
		case control.Email:
			c.input.CharLimit = 254
		}
	}

	c.build()
	return c, nil
}

func newKeyMap(kind control.Kind) ControlKeyMap {
	km := ControlKeyMap{
		Activate: key.NewBinding(key.WithKeys(control.KeyEnter)),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithDisabled()),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithDisabled()),
	}
	switch kind {
	case control.Button:
		km.Activate.SetHelp("enter", i18n.T("help.press"))
	case control.Link:
		km.Activate.SetHelp("enter", i18n.T("help.open"))
	case control.Checkbox:
		km.Activate.SetHelp("enter", i18n.T("help.toggle"))
		km.Toggle = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", i18n.T("help.toggle")))
	case control.Text, control.Email, control.Password:
		km.Activate.SetHelp("enter", i18n.T("help.submit"))
		if kind != control.Password {
			km.Copy = key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", i18n.T("help.copy")))
		}
	}
	return km
}

// build wraps the caller's handlers and creates the underlying control.
// The control is rebuilt when the focus provider changes.
func (c *Control) build() {
	props := c.props

	callerKeyUp := props.OnKeyUp
	props.OnKeyUp = func(e *control.Event) {
		callerKeyUp.Call(e)
		if !e.DefaultPrevented() && c.props.Kind == control.Checkbox && e.Key == " " {
			e.PreventDefault()
			if e.Origin != nil {
				e.Origin.Click()
			}
		}
	}

	callerSubmit := props.OnSubmit
	props.OnSubmit = func(e *control.Event) {
		callerSubmit.Call(e)
		c.raise(form.ActionSubmit)
	}

	c.ctrl = control.New(props.Kind, c.focus, control.WithProps(props))
}

func (c *Control) raise(action form.Action) {
	if c.pending == form.ActionNone {
		c.pending = action
	}
}

func (c *Control) takeAction() form.Action {
	action := c.pending
	c.pending = form.ActionNone
	return action
}

// BindFocus implements form.FocusBinder.
func (c *Control) BindFocus(focus control.FocusState) {
	c.focus = focus
	c.build()
}

// Kind returns the control kind.
func (c *Control) Kind() control.Kind {
	return c.props.Kind
}

// Element renders the underlying control for the current focus state.
func (c *Control) Element() control.Element {
	el := c.ctrl.Render()
	el.Checked = c.checked
	if c.props.Kind.Group() == control.TextLike {
		el.Value = c.input.Value()
	}
	return el
}

func (c *Control) Init() tea.Cmd {
	return nil
}

func (c *Control) Focus() (tea.Cmd, help.KeyMap) {
	if c.props.Kind.Group() == control.TextLike {
		return c.input.Focus(), c.KeyMap
	}
	return nil, c.KeyMap
}

func (c *Control) Blur() {
	if c.props.Kind.Group() == control.TextLike {
		c.input.Blur()
	}
}

func (c *Control) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c.updateInput(msg), form.ActionNone
	}
	if c.props.Disabled {
		return nil, form.ActionNone
	}

	if key.Matches(kmsg, c.KeyMap.Copy) {
		if err := writeClipboard(c.input.Value()); err != nil {
			logging.Warnf("copy %s to clipboard: %v", c.props.Kind, err)
		}
		return nil, form.ActionNone
	}

	c.ctrl.KeyUp(control.NewKeyEvent(target{c}, keyName(kmsg)))
	if action := c.takeAction(); action != form.ActionNone {
		return nil, action
	}
	if kmsg.Type == tea.KeyEnter {
		return nil, form.ActionNone
	}
	return c.updateInput(msg), form.ActionNone
}

func (c *Control) updateInput(msg tea.Msg) tea.Cmd {
	if c.props.Kind.Group() != control.TextLike {
		return nil
	}
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return cmd
}

// Click implements form.PointerInput.
func (c *Control) Click() (tea.Cmd, form.Action) {
	if !c.props.Disabled {
		target{c}.Click()
	}
	return nil, c.takeAction()
}

// Drag implements form.PointerInput.
func (c *Control) Drag() (tea.Cmd, form.Action) {
	c.ctrl.Drag(control.NewEvent(target{c}))
	return nil, c.takeAction()
}

// MouseOut implements form.PointerInput.
func (c *Control) MouseOut() (tea.Cmd, form.Action) {
	c.ctrl.MouseOut(control.NewEvent(target{c}))
	return nil, c.takeAction()
}

func (c *Control) Get() any {
	switch c.props.Kind {
	case control.Checkbox:
		return c.checked
	case control.Text, control.Email, control.Password:
		return c.input.Value()
	}
	return nil
}

func (c *Control) Set(value any) {
	switch v := value.(type) {
	case bool:
		if c.props.Kind == control.Checkbox {
			c.checked = v
		}
	case string:
		if c.props.Kind.Group() == control.TextLike {
			c.input.SetValue(v)
		}
	}
}

func (c *Control) Reset() {
	c.checked = c.props.Checked
	if c.props.Kind.Group() == control.TextLike {
		c.input.SetValue(c.props.Value)
	}
}

// keyName maps bubbletea key names onto event key names.
func keyName(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyEnter:
		return control.KeyEnter
	case tea.KeySpace:
		return " "
	}
	return msg.String()
}

// target is the event origin handed to the control.
type target struct {
	c *Control
}

func (t target) Click() {
	c := t.c
	c.props.OnClick.Call(control.NewEvent(t))
	switch c.props.Kind {
	case control.Button:
		c.raise(form.ActionSubmit)
	case control.Link:
		c.raise(form.ActionActivate)
	case control.Checkbox:
		c.checked = !c.checked
		c.props.OnChange.Call(control.NewEvent(t))
		c.raise(form.ActionChange)
	}
}

// Blur gives up focus. Controls that do not hold focus have nothing to give up.
func (t target) Blur() {
	if t.c.ctrl.Focused() {
		t.c.raise(form.ActionBlur)
	}
}

var (
	_ form.FormInput    = (*Control)(nil)
	_ form.FocusBinder  = (*Control)(nil)
	_ form.PointerInput = (*Control)(nil)
	_ control.Target    = target{}
)
