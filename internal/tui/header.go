package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the shell's top line: title, description, and the
// titles of the hosted views with the active one highlighted.
func renderHeader(title, description string, views []childView, active int, width int) string {
	left := " " + headerStyle.Render(title)
	if description != "" {
		left += "  " + headerDescStyle.Render(description)
	}

	tabs := make([]string, 0, len(views))
	for i, v := range views {
		if i == active {
			tabs = append(tabs, headerStyle.Render(v.Title()))
		} else {
			tabs = append(tabs, headerDescStyle.Render(v.Title()))
		}
	}
	right := strings.Join(tabs, headerDescStyle.Render(" | ")) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
