// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the navinput command-line interface. Commands load
// the configuration, then render layouts, run them in the terminal or
// inspect the control event journal.
package cli
