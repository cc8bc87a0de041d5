package cmd

import (
	"context"
	"errors"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/ui"
	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	initVehicleName string
	initVehicleType string
	initForce       bool
)

func init() {
	settingsInitCmd.Flags().StringVarP(&initVehicleName, "name", "n", "", "vehicle name (default: derived from the hostname)")
	settingsInitCmd.Flags().StringVarP(&initVehicleType, "type", "t", "", "vehicle type, by name or MAV_TYPE value")
	settingsInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing settings")
	SettingsCmd.AddCommand(settingsInitCmd)
}

func resetSettingsInitState() {
	initVehicleName = ""
	initVehicleType = ""
	initForce = false
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create settings with default values",
	Long: `Writes default settings for the application as the current settings version.

Fails if any settings file already exists, unless --force is given.

Examples:
  # Initialize with a name derived from the hostname
  commonwealth settings init

  # Initialize a submarine
  commonwealth settings init --name bluerov --type submarine

  # Start over
  commonwealth settings init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		SettingsLogger.Infof("Starting settings init command")
		spinner, cleanup := startSpinnerWithFlags(cmd, "Initializing settings...", settingsVerbose, settingsDebug)
		defer cleanup()

		target, err := settingsTarget()
		if err != nil {
			return reportSettingsError(spinner, "Init", err)
		}

		result, err := workflows.Init(context.Background(), workflows.InitOptions{
			Target:      target,
			VehicleName: initVehicleName,
			VehicleType: initVehicleType,
			Force:       initForce,
		})
		if errors.Is(err, kerrors.ErrAlreadyInitialized) {
			spinner.FinalMSG = ui.Warning.Sprint("⚠") + " Settings already exist for " + ui.Highlight.Sprint(target.AppName) + "\n" +
				ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("commonwealth settings init --force") + " to overwrite them\n"
			return nil
		}
		if err != nil {
			return reportSettingsError(spinner, "Init", err)
		}

		SettingsLogger.Infof("Settings written to %s", result.Path)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Settings initialized for " + ui.Highlight.Sprint(result.Settings.VehicleName) +
			" at " + ui.Path.Sprint(result.Path) + "\n"
		return nil
	},
}
