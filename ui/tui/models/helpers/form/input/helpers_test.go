// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func contains(view, s string) bool {
	return strings.Contains(ansi.Strip(view), s)
}
