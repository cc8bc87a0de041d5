package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PolarWolf314/commonwealth/internal/configs"
	"github.com/PolarWolf314/commonwealth/internal/mavlink"
	"github.com/PolarWolf314/commonwealth/internal/ui"
	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	SettingsCmd.AddCommand(settingsSetCmd)
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value> [<key> <value>...]",
	Short: "Change settings values",
	Long: `Changes one or more settings values and saves them as the current settings
version. Either every change is saved or none is.

Keys:
  vehicle-name        free text, must not be empty
  vehicle-type        name ("surface boat") or MAV_TYPE value ("11")
  firmware-version    free text, e.g. 4.5.1
  firmware-type       DEV, ALPHA, BETA, RC, STABLE or their values (0, 64, 128, 192, 255)
  endpoints           comma-separated list; empty clears it
  requested-messages  comma-separated MAVLink message ids (0, 148)

Examples:
  commonwealth settings set vehicle-name surveyor
  commonwealth settings set vehicle-type "surface boat" firmware-type stable
  commonwealth settings set endpoints "udpin:0.0.0.0:14550,tcpin:0.0.0.0:5777"`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("expected <key> <value> pairs, got %d argument(s)", len(args))
		}
		return nil
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args)%2 == 0 {
			return configs.EditableKeys(), cobra.ShellCompDirectiveNoFileComp
		}
		if args[len(args)-1] == configs.KeyVehicleType {
			var names []string
			for _, t := range mavlink.VehicleTypes() {
				names = append(names, string(t))
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		SettingsLogger.Infof("Starting settings set command")
		spinner, cleanup := startSpinnerWithFlags(cmd, "Saving settings...", settingsVerbose, settingsDebug)
		defer cleanup()

		target, err := settingsTarget()
		if err != nil {
			return reportSettingsError(spinner, "Set", err)
		}

		var changes []workflows.Change
		for i := 0; i < len(args); i += 2 {
			changes = append(changes, workflows.Change{Key: args[i], Value: args[i+1]})
			SettingsLogger.Debugf("Change %s=%q", args[i], args[i+1])
		}

		result, err := workflows.Set(context.Background(), workflows.SetOptions{
			Target:  target,
			Changes: changes,
		})
		if err != nil {
			return reportSettingsError(spinner, "Set", err)
		}

		var b strings.Builder
		for _, change := range changes {
			b.WriteString(ui.Success.Sprint("✓") + " " + ui.Key.Sprint(change.Key) + " = " + ui.Highlight.Sprint(change.Value) + "\n")
		}
		b.WriteString(ui.Info.Sprint("→") + " Saved to " + ui.Path.Sprint(result.Path) + "\n")
		spinner.FinalMSG = b.String()
		return nil
	},
}
