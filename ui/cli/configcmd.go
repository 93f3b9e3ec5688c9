// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/navinput/internal/config"
	"github.com/toeirei/navinput/internal/i18n"
)

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Annotations: helpText("cli.config_short"),
	}

	var system bool
	write := &cobra.Command{
		Use:         "write",
		Annotations: helpText("cli.config_write_short", "cli.config_write_long"),
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteConfigFile(&a.cfg, system); err != nil {
				return err
			}
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", path))
			return err
		},
	}
	write.Flags().BoolVar(&system, "system", false, "write the system-wide config file")

	cmd.AddCommand(write, a.newConfigShowCmd())
	return cmd
}
