package cmd

import (
	"fmt"

	"github.com/aschey/vortex/internal"
	"github.com/spf13/cobra"
)

const descendingFlag = "descending"

func newLapsCmd() *cobra.Command {
	lapsCmd := &cobra.Command{
		Use:   "laps",
		Short: "Lists or clears recorded laps",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	lapsCmd.AddCommand(newLapsListCmd(), newLapsClearCmd())
	return lapsCmd
}

func newLapsListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists laps, oldest first",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			descending, err := cmd.Flags().GetBool(descendingFlag)
			if err != nil {
				return err
			}
			laps := GetSession(cmd).Laps(!descending)
			if len(laps) == 0 {
				printInfo(cmd, "No laps")
				return nil
			}

			texts := make([]string, 0, len(laps))
			for _, lap := range laps {
				texts = append(texts, lap.Text)
			}
			start, step := 1, 1
			if descending {
				start, step = len(laps), -1
			}
			fmt.Fprintln(cmd.OutOrStdout(), internal.PrettyPrintList(texts, start, step))
			return nil
		},
	}
	listCmd.Flags().Bool(descendingFlag, false, "Newest lap first")
	return listCmd
}

func newLapsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Removes all laps and leaves the timer alone",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			session := GetSession(cmd)
			if session.Count() == 0 {
				printInfo(cmd, "No laps to clear")
				return nil
			}
			warnIfUnsaved(cmd, session.ClearLaps(cmd.Context()))
			printInfo(cmd, "Laps cleared")
			return nil
		},
	}
}
