// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key help line of the demo.
package keyhelp

import (
	"strings"

	"github.com/bobg/go-generics/v4/slices"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders the enabled bindings on one line. It replaces
// help.Model.ShortHelpView, which counts disabled bindings when placing
// separators and measuring width.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	enabled := slices.Filter(bindings, key.Binding.Enabled)
	if len(enabled) == 0 {
		return ""
	}

	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	items := make([]string, len(enabled))
	for i, kb := range enabled {
		if i > 0 {
			items[i] = separator
		}
		items[i] += m.Styles.ShortKey.Inline(true).Render(kb.Help().Key) + " " +
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc)
	}

	return strings.Join(truncate(m, items), "")
}

// FullHelpView renders one column per group that has an enabled binding.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	groups = slices.Filter(groups, func(group []key.Binding) bool {
		return slices.ContainsFunc(group, key.Binding.Enabled)
	})
	if len(groups) == 0 {
		return ""
	}

	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	cols := make([]string, len(groups))
	for i, group := range groups {
		var sep string
		if i > 0 {
			sep = separator
		}
		var keys, descriptions []string
		for _, kb := range slices.Filter(group, key.Binding.Enabled) {
			keys = append(keys, kb.Help().Key)
			descriptions = append(descriptions, kb.Help().Desc)
		}
		cols[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, truncate(m, cols)...)
}

// truncate keeps the leading parts that fit m.Width. When something is cut
// off an ellipsis takes its place, as long as the ellipsis still fits. A zero
// width does not limit the output, as in help.Model.
func truncate(m help.Model, parts []string) []string {
	if m.Width <= 0 {
		return parts
	}
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailWidth := lipgloss.Width(tail)

	var out []string
	used := 0
	for i, part := range parts {
		w := lipgloss.Width(part)
		last := i == len(parts)-1
		// everything but the last part must leave room for the ellipsis
		if (last && used+w <= m.Width) || (!last && used+w+tailWidth <= m.Width) {
			out = append(out, part)
			used += w
			continue
		}
		if used+tailWidth <= m.Width {
			out = append(out, tail)
		}
		break
	}
	return out
}
