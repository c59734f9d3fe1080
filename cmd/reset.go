package cmd

import "github.com/spf13/cobra"

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Stops the stopwatch, zeroes it and clears all laps",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			warnIfUnsaved(cmd, GetSession(cmd).Reset(cmd.Context()))
			printInfo(cmd, "Reset")
			return nil
		},
	}
}
