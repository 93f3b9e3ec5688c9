// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import "testing"

func TestHandle(t *testing.T) {
	h := NewHandler("navinput", " | ")
	if h.Title() != "navinput" {
		t.Fatalf("Title() = %q", h.Title())
	}

	if cmd := h.Handle("not a title"); cmd != nil {
		t.Fatal("expected nil cmd for unrelated message")
	}

	if cmd := h.Handle(Set("email")()); cmd == nil {
		t.Fatal("expected a cmd for a new title")
	}
	if h.Title() != "navinput | email" {
		t.Fatalf("Title() = %q", h.Title())
	}

	if cmd := h.Handle(Set("email")()); cmd != nil {
		t.Fatal("expected nil cmd for an unchanged title")
	}

	h.Handle(Set("")())
	if h.Title() != "navinput" {
		t.Fatalf("Title() = %q after reset", h.Title())
	}
}
