// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/toeirei/navinput/internal/i18n"
)

// Annotation keys holding the message ids of a command's help texts.
const (
	shortKey = "i18n.short"
	longKey  = "i18n.long"
)

// helpText returns annotations naming the message ids of the short and,
// if given, long help text.
func helpText(short string, long ...string) map[string]string {
	a := map[string]string{shortKey: short}
	if len(long) > 0 {
		a[longKey] = long[0]
	}
	return a
}

// localize fills in the help texts of cmd and its subcommands in the active
// language. Commands are built before the config names the language, so this
// runs again once it is known.
func localize(cmd *cobra.Command) {
	if id, ok := cmd.Annotations[shortKey]; ok {
		cmd.Short = i18n.T(id)
	}
	if id, ok := cmd.Annotations[longKey]; ok {
		cmd.Long = i18n.T(id)
	}
	for _, sub := range cmd.Commands() {
		localize(sub)
	}
}

// localizedHelp wraps the default help so --help output follows --lang and
// the configured language.
func (a *app) localizedHelp(root *cobra.Command) func(*cobra.Command, []string) {
	defaultHelp := root.HelpFunc()
	return func(cmd *cobra.Command, args []string) {
		if cfg, err := a.load(cmd); err == nil {
			i18n.Init(cfg.Language)
			localize(root)
		}
		defaultHelp(cmd, args)
	}
}
