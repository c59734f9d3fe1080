package cmd

import (
	"errors"
	"fmt"

	"github.com/aschey/vortex/internal/stopwatch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCopyCmd() *cobra.Command {
	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Copies laps to the clipboard",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			descending, err := cmd.Flags().GetBool(descendingFlag)
			if err != nil {
				return err
			}
			laps := GetSession(cmd).Laps(!descending)
			text, err := stopwatch.CopyText(laps)
			if errors.Is(err, stopwatch.ErrNoLaps) {
				printInfo(cmd, "No laps to copy")
				return nil
			}
			if err := GetClipboard(cmd)(text); err != nil {
				GetLogger(cmd).Warn("copy failed", zap.Error(err))
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			printInfo(cmd, fmt.Sprintf("Copied %d lap(s)", len(laps)))
			return nil
		},
	}
	copyCmd.Flags().Bool(descendingFlag, false, "Newest lap first")
	return copyCmd
}
