package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNothingToLap = errors.New("nothing to lap: start the stopwatch first")

func newLapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lap",
		Short: "Records the current elapsed time as a lap",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			session := GetSession(cmd)
			if !session.CanLap() {
				return errNothingToLap
			}
			lap, result := session.RecordLap(cmd.Context())
			warnIfUnsaved(cmd, result)
			printInfo(cmd, fmt.Sprintf("Lap %d %s", session.Count(), lap.Text))
			return nil
		},
	}
}
