package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	headerDescStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	bodyStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})
)

// Indicator badge styles.
var (
	badgeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	dotActiveStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	dotInactiveStyle = lipgloss.NewStyle().Foreground(colorRed)

	badgeLabelStyle  = lipgloss.NewStyle().Bold(true)
	badgeDetailStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Toast styles by level.
var (
	toastInfoStyle = lipgloss.NewStyle().
			Foreground(colorCyan)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	toastWarnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// Overview styles.
var (
	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	fieldLabelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(colorDim)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	probeOKStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	probeFailedStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
