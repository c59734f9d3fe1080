package cmd

import (
	"github.com/aschey/vortex/internal/ui"
	"github.com/spf13/cobra"
)

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Opens the interactive stopwatch",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig(cmd)
			return ui.Run(cmd.Context(), GetSession(cmd), ui.Options{
				RefreshInterval: cfg.RefreshInterval,
				ExportPath:      cfg.ExportPath,
				StoreName:       cfg.Store,
				Copy:            GetClipboard(cmd),
				Logger:          GetLogger(cmd),
			})
		},
	}
}
