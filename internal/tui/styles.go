package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorPrimary = lipgloss.Color("#00BFFF") // cyan: headings, accents
	colorSuccess = lipgloss.Color("#00E676") // green: valid expression
	colorDanger  = lipgloss.Color("#FF5252") // red: findings and errors
	colorAccent  = lipgloss.Color("#FFD700") // gold: schedule markers
	colorMuted   = lipgloss.Color("#636363") // gray: de-emphasized
	colorWhite   = lipgloss.Color("#EEEEEE") // off-white: primary text
	colorSurface = lipgloss.Color("#1E1E2E") // dark surface: status bar bg
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Padding(0, 1)

	styleValid = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleFinding = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleSchedule = lipgloss.NewStyle().
			Foreground(colorAccent)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleCurve = lipgloss.NewStyle().
			Foreground(colorPrimary)
)
