// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
)

func binding(k, desc string, enabled bool) key.Binding {
	b := key.NewBinding(key.WithKeys(k), key.WithHelp(k, desc))
	b.SetEnabled(enabled)
	return b
}

func newHelp(width int) help.Model {
	m := help.New()
	m.Width = width
	return m
}

func TestShortHelpViewSkipsDisabledLeadingBinding(t *testing.T) {
	bindings := []key.Binding{
		binding("space", "toggle", false),
		binding("enter", "press", true),
		binding("ctrl+y", "copy", false),
		binding("tab", "next", true),
	}
	got := ansi.Strip(ShortHelpView(newHelp(80), bindings))
	want := "enter press • tab next"
	if got != want {
		t.Fatalf("ShortHelpView() = %q, want %q", got, want)
	}
}

func TestShortHelpViewAllDisabled(t *testing.T) {
	if got := ShortHelpView(newHelp(80), []key.Binding{binding("x", "y", false)}); got != "" {
		t.Fatalf("ShortHelpView() = %q, want empty", got)
	}
}

func TestShortHelpViewTruncates(t *testing.T) {
	bindings := []key.Binding{
		binding("enter", "press", true),
		binding("tab", "next", true),
		binding("shift+tab", "previous", true),
	}
	got := ansi.Strip(ShortHelpView(newHelp(20), bindings))
	if got != "enter press …" {
		t.Fatalf("ShortHelpView() = %q", got)
	}
}

func TestFullHelpViewSkipsDisabledLeadingGroup(t *testing.T) {
	groups := [][]key.Binding{
		{binding("space", "toggle", false)},
		{binding("enter", "press", true), binding("ctrl+y", "copy", false)},
		{binding("tab", "next", true)},
	}
	got := ansi.Strip(FullHelpView(newHelp(80), groups))
	if strings.HasPrefix(got, " ") {
		t.Fatalf("FullHelpView() starts with a separator: %q", got)
	}
	if !strings.HasPrefix(got, "enter press") || !strings.Contains(got, "tab next") {
		t.Fatalf("FullHelpView() = %q", got)
	}
	if strings.Contains(got, "copy") || strings.Contains(got, "toggle") {
		t.Fatalf("FullHelpView() shows disabled bindings: %q", got)
	}
}
