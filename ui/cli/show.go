// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/navinput/internal/i18n"
	"github.com/toeirei/navinput/internal/logging"
)

// newConfigShowCmd dumps the effective config, the flags and the
// NAVINPUT_* environment.
func (a *app) newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "show",
		Annotations: helpText("cli.config_show_short"),
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			data, err := yaml.Marshal(&a.cfg)
			if err != nil {
				return fmt.Errorf("could not marshal config: %w", err)
			}
			fmt.Fprintln(out, "-- config --")
			fmt.Fprint(out, string(data))

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintln(out, "-- environment (NAVINPUT_*) --")
			var env []string
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "NAVINPUT_") {
					env = append(env, e)
				}
			}
			sort.Strings(env)
			for _, e := range env {
				fmt.Fprintln(out, e)
			}

			locales := i18n.GetAvailableLocales()
			tags := make([]string, 0, len(locales))
			for tag := range locales {
				tags = append(tags, tag)
			}
			sort.Strings(tags)
			fmt.Fprintln(out, "-- languages --")
			for _, tag := range tags {
				fmt.Fprintf(out, "%s = %s\n", tag, locales[tag])
			}

			logging.Debugf("config show: %d flags, %d env vars", cmd.Flags().NFlag(), len(env))
			return nil
		},
	}
}
