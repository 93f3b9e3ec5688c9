// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads navinput settings from defaults, config files,
// NAVINPUT_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = "navinput"
	envPrefix  = "navinput"
)

type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	Log      struct {
		Level string `mapstructure:"level" yaml:"level"`
	} `mapstructure:"log" yaml:"log"`
	Journal struct {
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"journal" yaml:"journal"`
	Database struct {
		Type string `mapstructure:"type" yaml:"type"`
		Dsn  string `mapstructure:"dsn" yaml:"dsn"`
	} `mapstructure:"database" yaml:"database"`
	Theme struct {
		Focused      string `mapstructure:"focused" yaml:"focused"`
		Blurred      string `mapstructure:"blurred" yaml:"blurred"`
		ShowTabIndex bool   `mapstructure:"show_tab_index" yaml:"show_tab_index"`
	} `mapstructure:"theme" yaml:"theme"`
}

// Defaults returns the built-in values for every key.
func Defaults() map[string]any {
	return map[string]any{
		"language":             "en",
		"log.level":            "info",
		"journal.enabled":      false,
		"database.type":        "sqlite",
		"database.dsn":         "./navinput.db",
		"theme.focused":        "205",
		"theme.blurred":        "240",
		"theme.show_tab_index": false,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Navinput")
		default: // Linux, macOS, etc.
			configDir = "/etc/navinput"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "navinput")
	}

	return filepath.Join(configDir, configName+".yaml"), nil
}

func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additional_config_file_path *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName(configName)
	v.SetConfigType("yaml")

	// 3. An explicit --config path has the highest precedence for files.
	if additional_config_file_path != nil && *additional_config_file_path != "" {
		v.SetConfigFile(*additional_config_file_path)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file. A missing or empty file is
	// reported as ConfigFileNotFoundError after the rest is loaded.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	} else if isEmptyFile(v.ConfigFileUsed()) {
		notFound = viper.ConfigFileNotFoundError{}
	}

	// 6. Read from environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	// 7. cli
	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

func isEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Size() == 0
}

func WriteConfigFile[T any](c *T, system bool) error {
	path, err := GetConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the database dsn may carry credentials
	return os.WriteFile(path, data, 0o600)
}
