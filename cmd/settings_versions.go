package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PolarWolf314/commonwealth/internal/ui"
	"github.com/PolarWolf314/commonwealth/internal/utils"
	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/spf13/cobra"
)

func init() {
	SettingsCmd.AddCommand(settingsVersionsCmd)
}

var settingsVersionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List every settings file and its status",
	Long: `Lists the settings-<version>.json files in the configuration directory,
newest first, and marks the one a load would use.

Statuses:
  loadable         readable by this build
  from-the-future  written by a newer build; skipped and never overwritten
  corrupt          cannot be decoded; aborts loading unless --skip-corrupt
  unreadable       could not be read from disk

Nothing is read beyond the files themselves and nothing is written.

Examples:
  commonwealth settings versions
  commonwealth settings versions --skip-corrupt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		SettingsLogger.Infof("Starting settings versions command")
		spinner, cleanup := startSpinnerWithFlags(cmd, "Inspecting settings files...", settingsVerbose, settingsDebug)
		defer cleanup()

		target, err := settingsTarget()
		if err != nil {
			return reportSettingsError(spinner, "Versions", err)
		}

		result, err := workflows.Versions(context.Background(), target)
		if err != nil {
			return reportSettingsError(spinner, "Versions", err)
		}
		SettingsLogger.Debugf("Found %d settings file(s) in %s", len(result.Entries), result.Dir)

		var b strings.Builder
		b.WriteString(ui.Info.Sprint("Settings files") + " in " + ui.Path.Sprint(result.Dir) +
			" (supported " + ui.Version.Sprintf("v%d", result.SupportedVersion) + "):\n")

		if len(result.Entries) == 0 {
			b.WriteString("  " + ui.Muted.Sprint("none") + "\n")
		}
		for _, entry := range result.Entries {
			b.WriteString(formatVersionEntry(entry))
		}

		if len(result.Skipped) > 0 {
			b.WriteString("\nSkipped while loading:" + utils.FormatPaths(result.Skipped))
		}

		b.WriteString("\n")
		switch {
		case result.Blocked != nil:
			b.WriteString(ui.Error.Sprint("✗") + " Loading would fail: " + result.Blocked.Error() + "\n")
		case result.FallsBackToCanonical:
			b.WriteString(ui.Info.Sprint("→") + " No usable file; loading creates defaults at " +
				ui.Path.Sprint(filepath.Join(result.Dir, fmt.Sprintf("settings-%d.json", result.SupportedVersion))) + "\n")
		default:
			b.WriteString(ui.Success.Sprint("✓") + " Settings files inspected\n")
		}

		spinner.FinalMSG = b.String()
		return nil
	},
}

func formatVersionEntry(entry workflows.VersionEntry) string {
	marker := " "
	if entry.Active {
		marker = ui.Success.Sprint("*")
	}

	var status string
	switch entry.Status {
	case workflows.StatusLoadable:
		status = ui.Success.Sprint(string(entry.Status))
	case workflows.StatusFromTheFuture:
		status = ui.Warning.Sprint(string(entry.Status))
	default:
		status = ui.Error.Sprint(string(entry.Status))
	}

	line := fmt.Sprintf("%s %-6s %-18s %s", marker, ui.Version.Sprintf("v%d", entry.Version), status, filepath.Base(entry.Path))
	if entry.Canonical {
		line += " " + ui.Muted.Sprint("canonical")
	}
	if entry.Active {
		line += " " + ui.Muted.Sprint("active")
	}
	return line + "\n"
}
