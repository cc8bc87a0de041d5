package cmd

import (
	"errors"
	"fmt"
	"time"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/settings"
	"github.com/PolarWolf314/commonwealth/internal/ui"
	"github.com/PolarWolf314/commonwealth/internal/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// startSpinnerWithFlags starts a spinner on cmd's error stream when it is a
// terminal and neither --verbose nor --debug is set. The returned cleanup
// stops it and prints FinalMSG to cmd's output.
func startSpinnerWithFlags(cmd *cobra.Command, message string, verbose, debugFlag bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
	s.Suffix = " " + message

	// Continue without a colored spinner if it fails.
	_ = s.Color("cyan")

	active := !verbose && !debugFlag && utils.IsOutputTerminal(cmd.ErrOrStderr())
	if active {
		s.Start()
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if active {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(cmd.OutOrStdout(), finalMsg)
		}
	}

	return s, cleanup
}

// describeSettingsError turns a workflow error into a user-facing message
// and hint. ok is false for errors without a friendly description.
func describeSettingsError(err error) (msg, hint string, ok bool) {
	var future *settings.FromTheFutureError
	switch {
	case errors.As(err, &future):
		msg = fmt.Sprintf("%s was written by settings version %s, this build supports %s",
			ui.Path.Sprint(future.Path),
			ui.Version.Sprintf("v%d", future.FileVersion),
			ui.Version.Sprintf("v%d", future.SupportedVersion))
		return msg, "Upgrade commonwealth to read it", true
	case errors.Is(err, kerrors.ErrCorruptSettings):
		return "Settings file is corrupt: " + err.Error(),
			"Run " + ui.Code.Sprint("commonwealth settings versions") + " to inspect, or pass " + ui.Flag.Sprint("--skip-corrupt"), true
	case errors.Is(err, kerrors.ErrInvalidAppName):
		return err.Error(), "Application names are a single directory name, e.g. " + ui.Highlight.Sprint("autopilot"), true
	case errors.Is(err, kerrors.ErrUnknownSettingsKey), errors.Is(err, kerrors.ErrInvalidSettingsValue):
		return err.Error(), "Run " + ui.Code.Sprint("commonwealth settings set --help") + " to see accepted keys and values", true
	case errors.Is(err, kerrors.ErrInvalidDateFormat), errors.Is(err, kerrors.ErrInvalidFormat):
		return err.Error(), "", true
	default:
		return "", "", false
	}
}

// reportSettingsError prints a friendly description of err when one exists
// and returns err so the command exits non-zero.
func reportSettingsError(s *spinner.Spinner, action string, err error) error {
	msg, hint, ok := describeSettingsError(err)
	if !ok {
		s.FinalMSG = ui.Error.Sprint("✗") + " " + action + " failed\n"
		return SettingsLogger.ErrorfAndReturn("%s failed: %v", action, err)
	}

	s.FinalMSG = ui.Error.Sprint("✗") + " " + msg + "\n"
	if hint != "" {
		s.FinalMSG += ui.Info.Sprint("→") + " " + hint + "\n"
	}
	SettingsLogger.Errorf("%s failed: %v", action, err)
	return err
}
