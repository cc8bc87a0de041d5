package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	SettingsCmd.AddCommand(settingsPathCmd)
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings file location",
	Long: `Prints the path of the current-version settings file. The file is not
read or created.

Examples:
  # Print the settings path
  commonwealth settings path

  # Open the directory
  cd "$(dirname "$(commonwealth settings path)")"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := settingsTarget()
		if err != nil {
			return err
		}

		result, err := workflows.Path(context.Background(), target)
		if err != nil {
			return SettingsLogger.ErrorfAndReturn("Failed to resolve settings path: %v", err)
		}

		SettingsLogger.Infof("Config directory: %s (canonical file exists: %t)", result.Dir, result.Exists)
		fmt.Fprintln(cmd.OutOrStdout(), result.CanonicalPath)
		return nil
	},
}
