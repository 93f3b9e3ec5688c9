// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for navinput.
//
// Usage:
//
//	go run . [flags]
//	./navinput [flags]
//
// See --help for the available commands.
package main

import (
	"os"

	"github.com/toeirei/navinput/internal/logging"
	"github.com/toeirei/navinput/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("navinput: %v", err)
		os.Exit(1)
	}
}
