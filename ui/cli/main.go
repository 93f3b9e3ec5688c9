// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the navinput command-line interface using cobra. The root
// command loads the configuration, then hands off to the demo, render,
// journal and config subcommands.

package cli

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/navinput/buildvars"
	"github.com/toeirei/navinput/internal/config"
	"github.com/toeirei/navinput/internal/i18n"
	"github.com/toeirei/navinput/internal/layout"
	"github.com/toeirei/navinput/internal/logging"
)

//go:embed layouts/signin.yaml
var defaultLayout []byte

// Execute runs the CLI entrypoint. The cmd/navinput main package should
// call this function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// app holds what PersistentPreRunE loaded for the subcommands.
type app struct {
	cfg config.Config
}

// NewRootCmd creates a fresh command tree, so tests can run commands in
// isolation.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:               "navinput",
		Annotations:       helpText("cli.short"),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	cmd.Version = buildvars.VersionOrDefault("dev")

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("lang", "", `language ("en", "de")`)
	cmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("database.type", "", "journal database type (sqlite, postgres, mysql)")
	cmd.PersistentFlags().String("database.dsn", "", "journal database connection string (DSN)")

	cmd.AddCommand(
		a.newDemoCmd(),
		a.newRenderCmd(),
		a.newJournalCmd(),
		a.newConfigCmd(),
	)
	cmd.SetHelpFunc(a.localizedHelp(cmd))
	localize(cmd)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.load(cmd)
	if err != nil {
		return err
	}

	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	i18n.Init(cfg.Language)
	localize(cmd.Root())

	a.cfg = cfg
	return nil
}

// load reads the configuration and applies the flag overrides.
func (a *app) load(cmd *cobra.Command) (config.Config, error) {
	path, err := getConfigPathFromCli(cmd)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), path)
	// A missing config file is expected; the defaults apply.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, using defaults")
	} else if err != nil {
		return config.Config{}, fmt.Errorf("error loading config: %w", err)
	}

	// Empty flags and empty file values fall back to the defaults.
	defaults := config.Defaults()
	if lang, _ := cmd.Flags().GetString("lang"); lang != "" {
		cfg.Language = lang
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if cfg.Language == "" {
		cfg.Language = defaults["language"].(string)
	}
	if cfg.Database.Type == "" {
		cfg.Database.Type = defaults["database.type"].(string)
	}
	if cfg.Database.Dsn == "" {
		cfg.Database.Dsn = defaults["database.dsn"].(string)
	}
	return cfg, nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	return &path, nil
}

// loadLayout reads the layout named in args, or the built-in sign-in form.
func loadLayout(args []string) (*layout.Spec, error) {
	if len(args) == 0 {
		return layout.Parse(defaultLayout)
	}
	return layout.Load(args[0])
}
