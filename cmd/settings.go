package cmd

import (
	"strings"

	logger "github.com/PolarWolf314/commonwealth/internal/logging"
	"github.com/PolarWolf314/commonwealth/internal/utils"
	"github.com/PolarWolf314/commonwealth/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultAppName is used when neither --app nor COMMONWEALTH_APP is set.
const DefaultAppName = "commonwealth"

var (
	settingsVerbose bool
	settingsDebug   bool
	SettingsLogger  logger.Logger

	// settingsConfig resolves persistent flags against COMMONWEALTH_* env vars.
	settingsConfig = newSettingsConfig()

	// SettingsCmd is the top-level settings command.
	SettingsCmd = &cobra.Command{
		Use:   "settings",
		Short: "Manage versioned application settings",
		Long: `Provides commands for inspecting and editing the versioned settings files
kept in an application's configuration directory.

Settings are stored as settings-<version>.json. The newest file this build
can read is used; files written by a newer build are skipped and never
overwritten. Saving always writes the current version.

The application is chosen with --app or COMMONWEALTH_APP. The configuration
root defaults to the platform location and can be moved with --config-root
or COMMONWEALTH_CONFIG_ROOT.

Examples:
  # Create settings for the default application
  commonwealth settings init --name bluerov --type submarine

  # Show the active settings
  commonwealth settings show

  # List every settings file and which one is used
  commonwealth settings versions

  # Change a value
  commonwealth settings set vehicle-name surveyor`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			SettingsLogger = logger.Logger{
				Verbose: settingsVerbose,
				Debug:   settingsDebug,
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			SettingsLogger.Debugf("Initializing settings command with verbose=%t, debug=%t", settingsVerbose, settingsDebug)
		},
	}
)

func init() {
	flags := SettingsCmd.PersistentFlags()
	flags.BoolVarP(&settingsVerbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&settingsDebug, "debug", "d", false, "enable debug output")
	flags.StringP("app", "a", DefaultAppName, "application whose settings to manage")
	flags.String("config-root", "", "directory holding application config directories (default: platform config dir)")
	flags.Bool("skip-corrupt", false, "skip corrupt settings files instead of failing")

	for _, name := range []string{"app", "config-root", "skip-corrupt"} {
		if err := settingsConfig.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func newSettingsConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("COMMONWEALTH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("app", DefaultAppName)
	v.SetDefault("config-root", "")
	v.SetDefault("skip-corrupt", false)
	return v
}

// settingsTarget resolves the settings directory from flags and environment.
func settingsTarget() (workflows.Target, error) {
	root, err := utils.ExpandHome(settingsConfig.GetString("config-root"))
	if err != nil {
		return workflows.Target{}, err
	}

	target := workflows.Target{
		AppName:     settingsConfig.GetString("app"),
		ConfigRoot:  root,
		SkipCorrupt: settingsConfig.GetBool("skip-corrupt"),
		Logger:      SettingsLogger,
	}
	SettingsLogger.Debugf("Resolved target app=%q root=%q skip-corrupt=%t", target.AppName, target.ConfigRoot, target.SkipCorrupt)
	return target, nil
}

// GetSettingsCmd returns the SettingsCmd for testing.
func GetSettingsCmd() *cobra.Command {
	return SettingsCmd
}

// ResetSettingsState resets all settings command global variables to their default values for testing.
func ResetSettingsState() {
	settingsVerbose = false
	settingsDebug = false
	SettingsLogger = logger.Logger{}
	resetSettingsInitState()
	resetSettingsShowState()
	resetSettingsExportState()
	resetSettingsImportState()
	resetSettingsResetState()
	resetSettingsHistoryState()
	resetSettingsCobraFlagState(SettingsCmd)
}

// resetSettingsCobraFlagState restores every flag in the settings tree to its
// default to prevent test pollution.
func resetSettingsCobraFlagState(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetSettingsCobraFlagState(child)
	}
}
