package statusbar

import (
	"fmt"
	"time"

	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathan-fiscaletti/consolesize-go"
)

const fallbackWidth = 80

var (
	defaultStyle = lipgloss.NewStyle().Background(lipgloss.Color("8"))
	textStyle    = defaultStyle.Foreground(lipgloss.Color("15"))
	badgeStyle   = defaultStyle.Foreground(lipgloss.Color("14"))
	separator    = defaultStyle.Foreground(lipgloss.Color("7")).Render(" | ")
	spacer       = textStyle.Render(" ")
)

type phaseIcon struct {
	icon  string
	color string
}

var phaseIcons = map[stopwatch.Phase]phaseIcon{
	stopwatch.PhaseRunning: {icon: "▶", color: "14"},
	stopwatch.PhasePaused:  {icon: "⏸", color: "11"},
	stopwatch.PhaseStopped: {icon: "■", color: "9"},
}

type Params struct {
	Phase    stopwatch.Phase
	Elapsed  time.Duration
	LapCount int
	// Badge is the latest lap's short text. Empty hides the badge.
	Badge string
	Store string
}

// Render draws a single-line status bar. A width of zero or less uses the
// console width.
func Render(params Params, width int) string {
	if width <= 0 {
		width, _ = consolesize.GetConsoleSize()
	}
	if width <= 0 {
		width = fallbackWidth
	}

	icon, ok := phaseIcons[params.Phase]
	if !ok {
		icon = phaseIcons[stopwatch.PhaseStopped]
	}
	playingIcon := defaultStyle.Foreground(lipgloss.Color(icon.color)).Render(icon.icon + " ")
	status := textStyle.Render(string(params.Phase))
	elapsed := textStyle.Render(stopwatch.FormatDuration(params.Elapsed))
	laps := textStyle.Render(fmt.Sprintf("%d laps", params.LapCount))
	if params.LapCount == 1 {
		laps = textStyle.Render("1 lap")
	}

	store := ""
	if params.Store != "" {
		store = textStyle.Render(" " + params.Store)
	}
	badge := ""
	if params.Badge != "" {
		badge = separator + badgeStyle.Render(params.Badge)
	}

	paddingWidth := 2
	middleWidth := width -
		lipgloss.Width(store) -
		lipgloss.Width(playingIcon) -
		lipgloss.Width(status) -
		lipgloss.Width(elapsed) -
		lipgloss.Width(laps) -
		lipgloss.Width(badge) -
		(lipgloss.Width(separator) * 2) -
		paddingWidth
	if middleWidth < 0 {
		middleWidth = 0
	}
	middleBar := defaultStyle.Width(middleWidth).Render("")

	formattedStatus := lipgloss.JoinHorizontal(lipgloss.Bottom,
		store,
		middleBar,
		playingIcon,
		status,
		separator,
		elapsed,
		separator,
		laps,
		badge)
	return lipgloss.JoinHorizontal(lipgloss.Bottom, spacer, formattedStatus, spacer)
}
