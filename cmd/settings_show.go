package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/commonwealth/internal/configs"
	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/ui"
	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatTOML = "toml"
	formatYAML = "yaml"
)

var showFormat string

func init() {
	settingsShowCmd.Flags().StringVarP(&showFormat, "format", "o", formatText, "output format: text, json, toml or yaml")
	SettingsCmd.AddCommand(settingsShowCmd)
}

func resetSettingsShowState() {
	showFormat = formatText
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the active settings",
	Long: `Displays the settings loaded from the newest readable settings file.

On first run, default settings are written to the current-version file.
When the active file is an older version, it is shown as-is; the next
change writes it out as the current version.

Examples:
  # Human-readable summary
  commonwealth settings show

  # Machine-readable output
  commonwealth settings show --format json
  commonwealth settings show -o yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		SettingsLogger.Infof("Starting settings show command")
		SettingsLogger.Debugf("Flags: format=%s", showFormat)

		format := strings.ToLower(showFormat)
		switch format {
		case formatText, formatJSON, formatTOML, formatYAML:
		default:
			return fmt.Errorf("%w: %q (expected text, json, toml or yaml)", kerrors.ErrInvalidFormat, showFormat)
		}

		target, err := settingsTarget()
		if err != nil {
			return err
		}

		result, err := workflows.Show(context.Background(), target)
		if err != nil {
			if msg, hint, ok := describeSettingsError(err); ok {
				printFailure(cmd.OutOrStdout(), msg, hint)
				return err
			}
			return SettingsLogger.ErrorfAndReturn("Failed to load settings: %v", err)
		}
		SettingsLogger.Infof("Settings loaded from %s", result.Source)

		return writeSettings(cmd.OutOrStdout(), format, result)
	},
}

func printFailure(out io.Writer, msg, hint string) {
	fmt.Fprintln(out, ui.Error.Sprint("✗")+" "+msg)
	if hint != "" {
		fmt.Fprintln(out, ui.Info.Sprint("→")+" "+hint)
	}
}

func writeSettings(out io.Writer, format string, result *workflows.ShowResult) error {
	s := result.Settings

	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return SettingsLogger.ErrorfAndReturn("Failed to marshal settings to JSON: %v", err)
		}
		fmt.Fprintln(out, string(data))
	case formatTOML:
		if err := toml.NewEncoder(out).Encode(s); err != nil {
			return SettingsLogger.ErrorfAndReturn("Failed to marshal settings to TOML: %v", err)
		}
	case formatYAML:
		data, err := yaml.Marshal(s)
		if err != nil {
			return SettingsLogger.ErrorfAndReturn("Failed to marshal settings to YAML: %v", err)
		}
		fmt.Fprint(out, string(data))
	default:
		writeSettingsText(out, result)
	}

	return nil
}

func writeSettingsText(out io.Writer, result *workflows.ShowResult) {
	s := result.Settings
	heading := color.New(color.FgCyan).SprintFunc()
	value := color.New(color.FgGreen).SprintFunc()
	id := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(out, heading("Vehicle Settings")+" ("+result.Source+"):")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-20s %s\n", "Schema Version:", id(s.Version))
	fmt.Fprintf(out, "  %-20s %s\n", "Instance ID:", id(s.InstanceID))
	fmt.Fprintf(out, "  %-20s %s\n", configs.KeyVehicleName+":", value(s.VehicleName))
	fmt.Fprintf(out, "  %-20s %s\n", configs.KeyVehicleType+":", value(s.VehicleType))
	fmt.Fprintf(out, "  %-20s %s\n", configs.KeyFirmwareVersion+":", value(s.Firmware.Version))
	fmt.Fprintf(out, "  %-20s %s\n", configs.KeyFirmwareType+":", value(s.Firmware.Type))

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("Endpoints:"))
	if len(s.Endpoints) == 0 {
		fmt.Fprintln(out, "  "+ui.Muted.Sprint("none"))
	}
	for _, endpoint := range s.Endpoints {
		fmt.Fprintf(out, "  %s\n", value(endpoint))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, heading("Requested Messages:"))
	if len(s.RequestedMessages) == 0 {
		fmt.Fprintln(out, "  "+ui.Muted.Sprint("none"))
	}
	for _, msg := range s.RequestedMessages {
		fmt.Fprintf(out, "  %s → %s\n", id(int(msg)), value(msg.String()))
	}

	if result.Migrated {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Warning.Sprint("⚠")+" Loaded from an older settings version; the next change is saved to "+ui.Path.Sprint(result.CanonicalPath))
	}
}
