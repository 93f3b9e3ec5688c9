// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui runs a layout of input controls as a bubbletea program. The
// form in models/helpers/form owns the focus ring and hands every control
// its focus provider; presentation lives in models/views.
package tui
