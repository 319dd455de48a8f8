package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: Python blue and gold on a dark terminal background.
var (
	Primary   = lipgloss.Color("#4B8BBE") // Python blue
	Secondary = lipgloss.Color("#FFD43B") // Python gold
	Accent    = lipgloss.Color("#306998") // Deep blue
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#E2E8F0") // Light slate
	TextDim   = lipgloss.Color("#7C8CA0") // Dim slate
	BgDark    = lipgloss.Color("#11151C") // Near black
	BgCard    = lipgloss.Color("#1C2430") // Dark panel
	Border    = lipgloss.Color("#2E3A4B") // Panel border
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Locked = lipgloss.NewStyle().
		Foreground(TextDim)

	Completed = lipgloss.NewStyle().
			Foreground(Success)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	UnitHeading = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)
