package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/aschey/vortex/internal/config"
	"github.com/spf13/cobra"
)

const forceFlag = "force"

var errConfigExists = errors.New("config file already exists, use --force to overwrite")

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manages the config file",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	configCmd.AddCommand(newConfigInitCmd())
	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Writes the current settings to the config file",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			force, err := cmd.Flags().GetBool(forceFlag)
			if err != nil {
				return err
			}
			path := ""
			if flag := cmd.Flag(configFlag); flag != nil {
				path = flag.Value.String()
			}
			if path == "" {
				path = config.DefaultPath()
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s: %w", path, errConfigExists)
			}
			if err := config.Save(path, GetConfig(cmd)); err != nil {
				return err
			}
			printInfo(cmd, "Wrote config to "+path)
			return nil
		},
	}
	initCmd.Flags().Bool(forceFlag, false, "Overwrite an existing config file")
	return initCmd
}
