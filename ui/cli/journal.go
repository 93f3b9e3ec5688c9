// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/toeirei/navinput/internal/i18n"
	"github.com/toeirei/navinput/internal/journal"
)

// exportJournal is replaced in tests.
var exportJournal = (*journal.Journal).Export

func (a *app) newJournalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "journal",
		Annotations: helpText("cli.journal_short"),
	}
	cmd.AddCommand(a.newJournalListCmd(), a.newJournalExportCmd())
	return cmd
}

func (a *app) openJournal(cmd *cobra.Command) (*journal.Journal, error) {
	return journal.Open(cmd.Context(), a.cfg.Database.Type, a.cfg.Database.Dsn)
}

func (a *app) newJournalListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:         "list",
		Annotations: helpText("cli.journal_list_short"),
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := a.openJournal(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = j.Close() }()

			events, err := j.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				_, err := fmt.Fprintln(out, i18n.T("cli.journal_empty"))
				return err
			}

			t := table.New().Headers("ID", "TIME", "CONTROL", "KIND", "ACTION")
			for _, e := range events {
				t.Row(
					strconv.FormatInt(e.ID, 10),
					e.CreatedAt.Local().Format(time.DateTime),
					e.ControlID,
					e.Kind,
					e.Action,
				)
			}
			_, err = fmt.Fprintln(out, t.Render())
			return err
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of events to show (0 for all)")
	return cmd
}

func (a *app) newJournalExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "export [output-file]",
		Annotations: helpText("cli.journal_export_short", "cli.journal_export_long"),
		Args:        cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := fmt.Sprintf("navinput-journal-%s.json.zst", time.Now().Format("2006-01-02"))
			if len(args) > 0 {
				filename = args[0]
			}

			j, err := a.openJournal(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = j.Close() }()

			file, err := os.Create(filename)
			if err != nil {
				return fmt.Errorf("could not create file: %w", err)
			}
			n, err := exportJournal(j, cmd.Context(), file)
			if closeErr := file.Close(); err == nil {
				err = closeErr
			}
			if err != nil {
				_ = os.Remove(filename)
				return fmt.Errorf("could not export journal: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.export_success", n, filename))
			return err
		},
	}
}
