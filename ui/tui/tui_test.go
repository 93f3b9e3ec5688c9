// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/navinput/internal/layout"
)

func TestRunTracksAllMouseMotion(t *testing.T) {
	spec, err := layout.Parse([]byte("title: Demo\ncontrols:\n  - id: ok\n    type: button\n    label: OK\n"))
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err = Run(context.Background(), spec, Options{},
		tea.WithInput(strings.NewReader("\x03")),
		tea.WithOutput(&out),
		tea.WithoutSignalHandler(),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), ansi.SetAnyEventMouseMode) {
		t.Fatalf("all-motion mouse mode not enabled: %q", out.String())
	}
}
