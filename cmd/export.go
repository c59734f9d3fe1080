package cmd

import (
	"errors"
	"fmt"

	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/spf13/cobra"
)

const outputFlag = "output"

func newExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Writes laps to a CSV file",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			descending, err := cmd.Flags().GetBool(descendingFlag)
			if err != nil {
				return err
			}
			output, err := cmd.Flags().GetString(outputFlag)
			if err != nil {
				return err
			}
			if output == "" {
				output = GetConfig(cmd).ExportPath
			}

			laps := GetSession(cmd).Laps(!descending)
			if output == "-" {
				err = stopwatch.WriteCSV(cmd.OutOrStdout(), laps)
				if err == nil {
					fmt.Fprintln(cmd.OutOrStdout())
				}
			} else {
				err = stopwatch.ExportFile(output, laps)
			}

			switch {
			case errors.Is(err, stopwatch.ErrNoLaps):
				printInfo(cmd, "No laps to export")
				return nil
			case err != nil:
				return err
			}
			if output != "-" {
				printInfo(cmd, fmt.Sprintf("Exported %d lap(s) to %s", len(laps), output))
			}
			return nil
		},
	}
	exportCmd.Flags().StringP(outputFlag, "o", "", "File to write, or - for stdout")
	exportCmd.Flags().Bool(descendingFlag, false, "Newest lap first")
	return exportCmd
}
