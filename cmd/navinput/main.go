// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"os"

	"github.com/toeirei/navinput/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// The error is already printed by Cobra on failure.
		os.Exit(1)
	}
}
