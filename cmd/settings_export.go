package cmd

import (
	"context"

	"github.com/PolarWolf314/commonwealth/internal/ui"
	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/spf13/cobra"
)

var exportOutputPath string

func init() {
	settingsExportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "", "output path (default: <app>-settings-YYYY-MM-DD.toml)")
	SettingsCmd.AddCommand(settingsExportCmd)
}

func resetSettingsExportState() {
	exportOutputPath = ""
}

var settingsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active settings to a TOML file",
	Long: `Writes the active settings to a TOML file, stamped with the current
settings version, for backup or for moving them to another machine.

Examples:
  # Export to the default file name
  commonwealth settings export

  # Export to a specific path
  commonwealth settings export -o /backups/vehicle.toml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		SettingsLogger.Infof("Starting settings export command")
		spinner, cleanup := startSpinnerWithFlags(cmd, "Exporting settings...", settingsVerbose, settingsDebug)
		defer cleanup()

		target, err := settingsTarget()
		if err != nil {
			return reportSettingsError(spinner, "Export", err)
		}

		result, err := workflows.Export(context.Background(), workflows.ExportOptions{
			Target:     target,
			OutputPath: exportOutputPath,
		})
		if err != nil {
			return reportSettingsError(spinner, "Export", err)
		}

		SettingsLogger.Infof("Exported %s", result.Source)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Settings exported to " + ui.Path.Sprint(result.OutputPath) + "\n"
		return nil
	},
}
