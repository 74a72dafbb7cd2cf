package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	hints := keyHint("q", "quit") + "  " + keyHint("Tab", "switch") + "  " +
		keyHint("i", "indicator") + "  " + keyHint("r", "probe")
	left := " " + hints

	// Connection status mirrors the liveness signal.
	right := ""
	if m.initialized {
		right = lipgloss.NewStyle().Foreground(colorGreen).Render("Connected") + " "
	} else {
		right = lipgloss.NewStyle().Foreground(colorYellow).Bold(true).Render("⚠ Disconnected") + " "
	}
	if m.monitor != nil {
		if last := m.monitor.LastResult(); last != nil && last.OK {
			right = hintStyle.Render(last.Latency.Round(time.Millisecond).String()) + "  " + right
		}
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func keyHint(k, desc string) string {
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}
