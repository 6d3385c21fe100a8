// Package components holds small shared render helpers for jsontree TUIs.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/grovetools/jsontree/tui/theme"
)

// RenderHeader creates a consistent header line for TUIs.
func RenderHeader(title string, subtitle ...string) string {
	t := theme.DefaultTheme

	header := t.Header.Render(fmt.Sprintf("%s %s", theme.IconFolderOpen, title))

	if len(subtitle) > 0 && subtitle[0] != "" {
		sub := t.Muted.Render(subtitle[0])
		return lipgloss.JoinVertical(lipgloss.Left, header, sub)
	}

	return header
}

// RenderStatusBar lays out left and right sections across the given width.
func RenderStatusBar(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderDivider creates a horizontal divider.
func RenderDivider(width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.DefaultTheme.Colors.Border).
		Render(strings.Repeat("─", width))
}
