package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/ui"
	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	historyLimit      int
	historyReverse    bool
	historyOperations string
	historySince      string
	historyUntil      string
	historyJSON       bool
)

func init() {
	settingsHistoryCmd.Flags().IntVarP(&historyLimit, "number", "n", 0, "show only the last N entries")
	settingsHistoryCmd.Flags().BoolVar(&historyReverse, "reverse", false, "most recent first")
	settingsHistoryCmd.Flags().StringVar(&historyOperations, "operation", "", "filter by operation (comma-separated: init,set,import,export,reset)")
	settingsHistoryCmd.Flags().StringVar(&historySince, "since", "", "entries on or after this date (YYYY-MM-DD)")
	settingsHistoryCmd.Flags().StringVar(&historyUntil, "until", "", "entries on or before this date (YYYY-MM-DD)")
	settingsHistoryCmd.Flags().BoolVar(&historyJSON, "json", false, "output as a JSON array")
	SettingsCmd.AddCommand(settingsHistoryCmd)
}

func resetSettingsHistoryState() {
	historyLimit = 0
	historyReverse = false
	historyOperations = ""
	historySince = ""
	historyUntil = ""
	historyJSON = false
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the settings change journal",
	Long: `Shows the journal of changes made through this CLI, kept as audit.jsonl in
the configuration directory.

Examples:
  commonwealth settings history
  commonwealth settings history -n 5 --reverse
  commonwealth settings history --operation set --since 2024-01-01
  commonwealth settings history --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		SettingsLogger.Infof("Starting settings history command")
		out := cmd.OutOrStdout()

		target, err := settingsTarget()
		if err != nil {
			return err
		}

		result, err := workflows.History(context.Background(), workflows.HistoryOptions{
			Target:     target,
			Limit:      historyLimit,
			Reverse:    historyReverse,
			Operations: historyOperations,
			Since:      historySince,
			Until:      historyUntil,
		})
		if errors.Is(err, kerrors.ErrNoHistory) {
			fmt.Fprintln(out, "No settings history found.")
			return nil
		}
		if err != nil {
			if msg, hint, ok := describeSettingsError(err); ok {
				printFailure(out, msg, hint)
				return err
			}
			return SettingsLogger.ErrorfAndReturn("Failed to read history: %v", err)
		}

		if historyJSON {
			data, err := json.MarshalIndent(result.Entries, "", "  ")
			if err != nil {
				return SettingsLogger.ErrorfAndReturn("Failed to marshal history to JSON: %v", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		if len(result.Entries) == 0 {
			if result.TotalEntriesBeforeFilter == 0 {
				fmt.Fprintln(out, "No settings history found.")
			} else {
				fmt.Fprintln(out, "No settings history found matching the filters.")
			}
			return nil
		}

		for _, e := range result.Entries {
			fmt.Fprintf(out, "%-19s  %-8s  %-6s  %s\n",
				workflows.FormatDateTime(e.Timestamp), e.Operation, fmt.Sprintf("v%d", e.Version), workflows.FormatDetails(e))
		}
		SettingsLogger.Debugf("Showed %d of %d entries", len(result.Entries), result.TotalEntriesBeforeFilter)
		fmt.Fprintln(out, ui.Muted.Sprintf("%d of %d entries", len(result.Entries), result.TotalEntriesBeforeFilter))
		return nil
	},
}
