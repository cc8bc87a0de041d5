// Package cmd contains testing utilities shared between command tests.
// This file provides common functions for pointing the CLI at a temporary
// configuration root and capturing its output.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// setupTestEnvironment points the CLI at a temporary configuration root and
// restores global command state when the test ends.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()

	configRoot := t.TempDir()
	t.Setenv("COMMONWEALTH_CONFIG_ROOT", configRoot)
	t.Setenv("COMMONWEALTH_APP", "autopilot")
	t.Setenv("NO_COLOR", "1")

	ResetSettingsState()
	t.Cleanup(ResetSettingsState)

	return configRoot
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	for _, r := range []io.Reader{stdoutReader, stderrReader} {
		go func(r io.Reader) {
			var buf bytes.Buffer
			if _, err := io.Copy(&buf, r); err != nil {
				log.Fatalf("Failed to run copy command: %s", err)
			}
			outputChan <- buf.String()
		}(r)
	}

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	first := <-outputChan
	second := <-outputChan

	return first + second, err
}

// createTestCLI creates a root command wrapping SettingsCmd and running args.
// A nil stdout leaves output on the process streams for captureOutput.
func createTestCLI(args []string, stdout io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "commonwealth",
		SilenceErrors: true,
	}
	rootCmd.AddCommand(SettingsCmd)

	if stdout != nil {
		rootCmd.SetOut(stdout)
		rootCmd.SetErr(stdout)
	} else {
		rootCmd.SetOut(os.Stdout)
		rootCmd.SetErr(os.Stderr)
	}

	rootCmd.SetArgs(append([]string{"settings"}, args...))
	return rootCmd
}

// runSettings executes a settings subcommand and returns its output.
func runSettings(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := createTestCLI(args, &out).Execute()
	ResetSettingsState()
	return out.String(), err
}

// settingsPath returns the current-version settings file under configRoot.
func settingsPath(configRoot string) string {
	return filepath.Join(configRoot, "autopilot", "settings-2.json")
}
