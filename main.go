package main

import (
	"fmt"

	"github.com/PolarWolf314/commonwealth/cmd"
	logger "github.com/PolarWolf314/commonwealth/internal/logging"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "commonwealth",
	Short: "Commonwealth - versioned settings for vehicle companion software.",
	Long: `Commonwealth keeps the settings of companion-computer services in versioned
files under the user's configuration directory, so that older settings are
carried forward and settings written by newer releases are never clobbered.

Usage:
  commonwealth <command> [flags]

Available Commands:
  settings   Inspect and edit versioned settings

Run 'commonwealth help <command>' for more details on a specific command.
`,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		figure.NewColorFigure("Commonwealth", "small", "cyan", true).Print()
		fmt.Println()
		fmt.Println("Run 'commonwealth --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.SettingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Logger{}.Fatalf("%v", err)
	}
}
