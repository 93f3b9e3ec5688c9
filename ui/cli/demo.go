// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/navinput/internal/i18n"
	"github.com/toeirei/navinput/internal/journal"
	"github.com/toeirei/navinput/internal/logging"
	"github.com/toeirei/navinput/ui/tui"
	"golang.org/x/term"
)

// isTerminal is replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "demo [layout]",
		Annotations: helpText("cli.demo_short", "cli.demo_long"),
		Args:        cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errors.New(i18n.T("cli.error_not_a_terminal"))
			}

			spec, err := loadLayout(args)
			if err != nil {
				return err
			}

			opts := tui.Options{
				Focused:      a.cfg.Theme.Focused,
				Blurred:      a.cfg.Theme.Blurred,
				ShowTabIndex: a.cfg.Theme.ShowTabIndex,
			}
			if a.cfg.Journal.Enabled {
				j, err := journal.Open(cmd.Context(), a.cfg.Database.Type, a.cfg.Database.Dsn)
				if err != nil {
					return err
				}
				defer func() { _ = j.Close() }()
				opts.Recorder = j
			}

			// Log lines would tear the alternate screen.
			logging.SetOutput(io.Discard)
			defer logging.SetOutput(os.Stderr)

			return tui.Run(cmd.Context(), spec, opts)
		},
	}
}
