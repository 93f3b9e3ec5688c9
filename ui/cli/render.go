// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/navinput/control"
	"github.com/toeirei/navinput/control/html"
)

func (a *app) newRenderCmd() *cobra.Command {
	var focusID string

	cmd := &cobra.Command{
		Use:         "render [layout]",
		Annotations: helpText("cli.render_short", "cli.render_long"),
		Args:        cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := loadLayout(args)
			if err != nil {
				return err
			}

			doc := html.NewDocument()
			out := cmd.OutOrStdout()
			for _, entry := range spec.Controls {
				c, err := control.FromProps(entry.Props(), control.Static(entry.ID == focusID))
				if err != nil {
					return fmt.Errorf("control %q: %w", entry.ID, err)
				}
				if _, err := fmt.Fprintln(out, doc.Render(c.Render()).String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&focusID, "focus", "", "id of the control holding focus")
	return cmd
}
