package tui

import "github.com/charmbracelet/lipgloss"

// Adaptive colors for dark and light terminals.
// Format: AdaptiveColor{Light, Dark}
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "63", Dark: "63"}   // muted indigo
	colorSubtle = lipgloss.AdaptiveColor{Light: "243", Dark: "241"} // gray
	colorText   = lipgloss.AdaptiveColor{Light: "235", Dark: "252"} // near-white on dark
	colorGreen  = lipgloss.AdaptiveColor{Light: "34", Dark: "78"}   // picked
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "203"} // error
	colorCyan   = lipgloss.AdaptiveColor{Light: "37", Dark: "75"}   // lengths
	colorBorder = lipgloss.AdaptiveColor{Light: "250", Dark: "238"} // panel borders
)

// Breadcrumb / title bar
var (
	breadcrumbSepStyle = lipgloss.NewStyle().
				Foreground(colorSubtle).
				Padding(0, 1)

	breadcrumbActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	breadcrumbDimStyle = lipgloss.NewStyle().
				Foreground(colorSubtle)
)

// List rows
var (
	cursorStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	normalRowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	markStyle = lipgloss.NewStyle().
			Foreground(colorGreen)
)

// Detail pane
var (
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorSubtle).
				Width(12)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	lengthStyle = lipgloss.NewStyle().
			Foreground(colorCyan)
)

// Help bar
var (
	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtle)

	helpSepStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 1)
)

// Misc
var (
	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)
