package tui

import "github.com/charmbracelet/lipgloss"

// Static styles for content elements
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	ScoreLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	ScoreValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Control styles. All variants share the same border and padding so a
// control keeps its size when focus or the pulse changes.
var (
	ControlStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1)

	FocusedControlStyle = ControlStyle.
				BorderForeground(lipgloss.Color("#04B575"))

	ResetControlStyle = ControlStyle.
				Foreground(lipgloss.Color("#FF6B6B"))

	// PulseStyle is layered over a control carrying the animate class
	PulseStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)
)

// resultStyles maps result display classes to their styles
var resultStyles = map[string]lipgloss.Style{
	"result-win":  SuccessStyle,
	"result-lose": ErrorStyle,
	"result-tie":  WarningStyle,
}
