package cmd

import (
	"fmt"

	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	elapsedStyle = lipgloss.NewStyle().Bold(true)
	phaseColors  = map[stopwatch.Phase]string{
		stopwatch.PhaseRunning: "14",
		stopwatch.PhasePaused:  "11",
		stopwatch.PhaseStopped: "9",
	}
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Shows elapsed time, state and laps",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			session := GetSession(cmd)
			phase := session.Phase()
			phaseStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(phaseColors[phase]))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n",
				elapsedStyle.Render(stopwatch.FormatDuration(session.CurrentElapsed())),
				phaseStyle.Render(string(phase)))
			if latest, ok := session.LatestLap(); ok {
				printInfo(cmd, fmt.Sprintf("Laps: %d  Last: %s", session.Count(), stopwatch.BadgeText(latest.Text)))
			} else {
				printInfo(cmd, "Laps: 0")
			}
			return nil
		},
	}
}
