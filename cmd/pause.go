package cmd

import (
	"github.com/aschey/vortex/internal/persist"
	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/spf13/cobra"
)

func newPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pauses the stopwatch",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			session := GetSession(cmd)
			result := session.Pause(cmd.Context())
			if result.Status == persist.StatusSkipped {
				printInfo(cmd, "Not running")
				return nil
			}
			warnIfUnsaved(cmd, result)
			printInfo(cmd, "Paused at "+stopwatch.FormatDuration(session.CurrentElapsed()))
			return nil
		},
	}
}
