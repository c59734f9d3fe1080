package cmd

import (
	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/spf13/cobra"
)

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Starts the stopwatch if stopped, pauses it if running",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			session := GetSession(cmd)
			result := session.Toggle(cmd.Context())
			warnIfUnsaved(cmd, result)
			if session.Running() {
				printInfo(cmd, "Started")
			} else {
				printInfo(cmd, "Paused at "+stopwatch.FormatDuration(session.CurrentElapsed()))
			}
			return nil
		},
	}
}
