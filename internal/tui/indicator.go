package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ChandraDevYadav/a2a-orchestrator-sub001/internal/agentcard"
)

// Badge text for the two indicator states. Anything short of a confirmed
// initialized agent renders as initializing; there is no third state.
const (
	indicatorLabelActive       = "A2A Agent: Active"
	indicatorLabelInitializing = "A2A Agent: Initializing..."
)

// indicatorLabel returns the badge label for the signal value.
func indicatorLabel(initialized bool) string {
	if initialized {
		return indicatorLabelActive
	}
	return indicatorLabelInitializing
}

// indicatorDot returns the styled status dot: green for initialized, red
// otherwise.
func indicatorDot(initialized bool) string {
	if initialized {
		return dotActiveStyle.Render("●")
	}
	return dotInactiveStyle.Render("●")
}

// indicatorDetail returns the secondary line shown only while the agent is
// active.
func indicatorDetail(port int) string {
	return fmt.Sprintf("Port: %d | Card: %s", port, agentcard.WellKnownPath)
}

// renderIndicator renders the floating status badge. The detail line is
// present iff the signal is exactly true.
func renderIndicator(initialized bool, port int) string {
	line := indicatorDot(initialized) + " " + badgeLabelStyle.Render(indicatorLabel(initialized))
	if !initialized {
		return badgeStyle.Render(line)
	}

	detail := badgeDetailStyle.Render(indicatorDetail(port))
	return badgeStyle.Render(lipgloss.JoinVertical(lipgloss.Left, line, detail))
}
