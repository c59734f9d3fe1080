package ui

import (
	"strings"

	"github.com/aschey/vortex/internal/mode"
	"github.com/aschey/vortex/internal/statusbar"
	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

const hintText = "Enter = Lap · Space = Start/Pause"

var (
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	lapLabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	displayStyle      = lipgloss.NewStyle().Bold(true).Padding(1, 4)
	flashStyle        = displayStyle.Foreground(lipgloss.Color("#F25D94"))
	stateStyle        = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("245"))
	hintStyle         = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("242")).Italic(true)
	statusStyle       = lipgloss.NewStyle().PaddingLeft(4).Foreground(lipgloss.Color("11"))
	helpStyle         = lipgloss.NewStyle().PaddingLeft(4).PaddingTop(1)
	quitTextStyle     = lipgloss.NewStyle().Margin(1, 0, 1, 4)
	buttonStyle       = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFF7DB")).
				Background(lipgloss.Color("#888B7E")).
				Padding(0, 3).
				MarginTop(1)
	activeButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("#FFF7DB")).
				Background(lipgloss.Color("#F25D94")).
				Underline(true)
	dialogBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 0).
			BorderTop(true).
			BorderLeft(true).
			BorderRight(true).
			BorderBottom(true)
)

func (m Model) viewConfirmDialog() string {
	text := "Reset the stopwatch and clear all laps?"
	if m.mode.Current() == mode.ConfirmClearMode {
		text = "Clear all laps?"
	}

	question := lipgloss.NewStyle().Width(50).Align(lipgloss.Center).Render(text)
	okButtonStyle := buttonStyle
	cancelButtonStyle := buttonStyle
	if m.cancelChosen {
		cancelButtonStyle = activeButtonStyle
	} else {
		okButtonStyle = activeButtonStyle
	}
	okButtonStyle = okButtonStyle.MarginRight(2)
	cancelButtonStyle = cancelButtonStyle.MarginLeft(2)

	okButton := okButtonStyle.Render("Ok")
	cancelButton := cancelButtonStyle.Render("Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, okButton, cancelButton)
	ui := lipgloss.JoinVertical(lipgloss.Center, question, buttons)

	return dialogBoxStyle.Render(ui)
}

func (m Model) badge() string {
	latest, ok := m.session.LatestLap()
	if !ok {
		return ""
	}
	return stopwatch.BadgeText(latest.Text)
}

func (m Model) View() string {
	if m.quitting {
		return quitTextStyle.Render(stopwatch.FormatDuration(m.session.CurrentElapsed()))
	}

	elapsed := m.session.CurrentElapsed()
	phase := m.session.Phase()
	sections := []string{}

	display := displayStyle
	if m.flashing {
		display = flashStyle
	}
	sections = append(sections,
		display.Render(stopwatch.FormatDuration(elapsed)),
		stateStyle.Render(string(phase)))

	if m.showHint {
		sections = append(sections, hintStyle.Render(hintText))
	}
	if m.mode.Current().Confirming() {
		sections = append(sections, m.viewConfirmDialog())
	}
	if m.drawerOpen {
		if m.session.Count() == 0 {
			sections = append(sections, itemStyle.Render("No laps yet."))
		} else {
			sections = append(sections, m.list.View())
		}
	}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, helpStyle.Render(m.help.View(m.keys)))
	sections = append(sections, statusbar.Render(statusbar.Params{
		Phase:    phase,
		Elapsed:  elapsed,
		LapCount: m.session.Count(),
		Badge:    m.badge(),
		Store:    m.opts.StoreName,
	}, m.width))

	return strings.Join(sections, "\n")
}
