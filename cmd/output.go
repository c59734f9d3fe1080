package cmd

import (
	"fmt"

	"github.com/aschey/vortex/internal"
	"github.com/aschey/vortex/internal/persist"
	"github.com/spf13/cobra"
)

func printInfo(cmd *cobra.Command, message string) {
	fmt.Fprintln(cmd.OutOrStdout(), internal.FormatInfo(message))
}

// warnIfUnsaved tells the user when a change only lives in this process.
func warnIfUnsaved(cmd *cobra.Command, result persist.Result) {
	if result.Status != persist.StatusFailed {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), internal.FormatWarning("Warning: state not saved: "+result.Err.Error()))
}
