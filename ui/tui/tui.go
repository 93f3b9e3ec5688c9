// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/navinput/internal/layout"
	"github.com/toeirei/navinput/ui/tui/models/views/root"
)

// Options configures Run.
type Options = root.Config

// Run shows spec until the user quits or ctx is cancelled.
func Run(ctx context.Context, spec *layout.Spec, opts Options, progOpts ...tea.ProgramOption) error {
	model, err := root.New(ctx, spec, opts)
	if err != nil {
		return err
	}

	progOpts = append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		// all-motion tracking reports plain pointer moves, so leaving a
		// control is seen without a button held
		tea.WithMouseAllMotion(),
	}, progOpts...)

	_, err = tea.NewProgram(model, progOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
