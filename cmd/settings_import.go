package cmd

import (
	"context"

	"github.com/PolarWolf314/commonwealth/internal/ui"
	"github.com/PolarWolf314/commonwealth/internal/utils"
	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/spf13/cobra"
)

var importDryRun bool

func init() {
	settingsImportCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate the file without writing anything")
	SettingsCmd.AddCommand(settingsImportCmd)
}

func resetSettingsImportState() {
	importDryRun = false
}

var settingsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the settings with a TOML export",
	Long: `Replaces the settings with those in a TOML file written by export.
Use "-" to read the file from stdin.

The current settings file is backed up next to it first. Exports from a
newer settings version are refused.

Examples:
  commonwealth settings import vehicle.toml
  commonwealth settings import --dry-run vehicle.toml
  ssh rov commonwealth settings export -o /dev/stdout | commonwealth settings import -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		SettingsLogger.Infof("Starting settings import command")
		SettingsLogger.Debugf("Flags: dry-run=%t", importDryRun)

		opts := workflows.ImportOptions{InputPath: args[0], DryRun: importDryRun}
		if args[0] == "-" {
			data, err := utils.ReadStdin()
			if err != nil {
				return SettingsLogger.ErrorfAndReturn("Failed to read settings from stdin: %v", err)
			}
			opts.InputPath = "<stdin>"
			opts.Data = data
		}

		spinner, cleanup := startSpinnerWithFlags(cmd, "Importing settings...", settingsVerbose, settingsDebug)
		defer cleanup()

		target, err := settingsTarget()
		if err != nil {
			return reportSettingsError(spinner, "Import", err)
		}
		opts.Target = target

		result, err := workflows.Import(context.Background(), opts)
		if err != nil {
			return reportSettingsError(spinner, "Import", err)
		}

		if result.DryRun {
			spinner.FinalMSG = ui.Warning.Sprint("[dry-run]") + " " + ui.Path.Sprint(opts.InputPath) +
				" is valid; it would replace " + ui.Path.Sprint(result.Path) + "\n"
			return nil
		}

		msg := ui.Success.Sprint("✓") + " Settings imported from " + ui.Path.Sprint(opts.InputPath) + "\n"
		if result.BackupPath != "" {
			msg += ui.Info.Sprint("→") + " Previous settings backed up to " + ui.Path.Sprint(result.BackupPath) + "\n"
		}
		spinner.FinalMSG = msg
		return nil
	},
}
