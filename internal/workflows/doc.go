// Package workflows provides high-level orchestration for settings commands.
//
// Workflows coordinate the settings manager, the vehicle settings schema
// and the audit journal to implement complete user-facing features. Each
// workflow handles a single command's logic, independent of CLI concerns
// like flag parsing, spinners and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Resolving the configuration directory
//   - Loading settings through the newest usable version file
//   - Performing the core operation
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Init: writes fresh defaults for an application
//   - Show, Path: report the active settings and where they live
//   - Versions: classifies every settings file on disk
//   - Set: edits fields and saves as the current version
//   - Export, Import: move settings through TOML files
//   - Reset: backs up and restores defaults
//   - History: reads the audit journal
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() to check for specific conditions:
//
//	result, err := workflows.Init(ctx, opts)
//	if errors.Is(err, kerrors.ErrAlreadyInitialized) {
//	    // suggest --force
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// and return its error if it is already done.
package workflows
