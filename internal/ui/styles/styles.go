// Package styles centralizes the lipgloss styles shared by the UI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Sheet chrome.
	Border     = lipgloss.Color("240")
	BorderHot  = lipgloss.Color("75")
	SheetBG    = lipgloss.Color("235")
	GrabHandle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)

	Title    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	Subtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	Selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("238"))
	Kind     = lipgloss.NewStyle().Foreground(lipgloss.Color("109"))
	Distance = lipgloss.NewStyle().Foreground(lipgloss.Color("144"))

	// Search bar.
	SearchBorder        = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(Border)
	SearchBorderFocused = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(BorderHot)

	// Status hints in the bottom-right of the map.
	Hint = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)
