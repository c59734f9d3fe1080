package cmd

import (
	"github.com/aschey/vortex/internal/persist"
	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Starts the stopwatch",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			result := GetSession(cmd).Start(cmd.Context())
			if result.Status == persist.StatusSkipped {
				printInfo(cmd, "Already running")
				return nil
			}
			warnIfUnsaved(cmd, result)
			printInfo(cmd, "Started")
			return nil
		},
	}
}
