package cmd

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/commonwealth/internal/ui"
	"github.com/PolarWolf314/commonwealth/internal/utils"
	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	resetYes           bool
	resetNewInstanceID bool
)

func init() {
	settingsResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "do not ask for confirmation")
	settingsResetCmd.Flags().BoolVar(&resetNewInstanceID, "new-instance-id", false, "generate a new instance id instead of keeping the current one")
	SettingsCmd.AddCommand(settingsResetCmd)
}

func resetSettingsResetState() {
	resetYes = false
	resetNewInstanceID = false
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Long: `Backs up the current settings file and overwrites it with defaults.
Files of other settings versions are left alone.

The instance id is kept unless --new-instance-id is given. When stdin is a
terminal you are asked to confirm; --yes skips the question.

Examples:
  commonwealth settings reset
  commonwealth settings reset --yes --new-instance-id`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		SettingsLogger.Infof("Starting settings reset command")

		target, err := settingsTarget()
		if err != nil {
			return err
		}

		if !resetYes && utils.IsTerminal() {
			ok, err := utils.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(),
				fmt.Sprintf("Reset settings of %s to defaults?", ui.Highlight.Sprint(target.AppName)))
			if err != nil {
				return SettingsLogger.ErrorfAndReturn("Failed to read confirmation: %v", err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warning.Sprint("⚠")+" Reset cancelled")
				return nil
			}
		}

		spinner, cleanup := startSpinnerWithFlags(cmd, "Resetting settings...", settingsVerbose, settingsDebug)
		defer cleanup()

		result, err := workflows.Reset(context.Background(), workflows.ResetOptions{
			Target:         target,
			KeepInstanceID: !resetNewInstanceID,
		})
		if err != nil {
			return reportSettingsError(spinner, "Reset", err)
		}
		if result.InstanceIDErr != nil {
			SettingsLogger.WarnfAlways("Could not keep the instance id, a new one was generated: %v", result.InstanceIDErr)
		}

		msg := ui.Success.Sprint("✓") + " Settings reset to defaults at " + ui.Path.Sprint(result.Path) + "\n"
		if result.BackupPath != "" {
			msg += ui.Info.Sprint("→") + " Previous settings backed up to " + ui.Path.Sprint(result.BackupPath) + "\n"
		}
		spinner.FinalMSG = msg
		return nil
	},
}
