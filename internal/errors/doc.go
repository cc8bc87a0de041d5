// Package errors provides typed error values for commonwealth.
//
// Callers match conditions with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Precondition errors: caller bugs at construction (ErrEmptyAppName, ErrInvalidContract)
//   - Settings file errors: a file on disk cannot be used (ErrSettingsFromTheFuture, ErrCorruptSettings)
//   - Lookup errors: unmapped MAVLink values (ErrUnknownVehicleType)
//   - Edit errors: rejected field changes (ErrUnknownSettingsKey)
//   - Workflow errors: command-level failures (ErrAlreadyInitialized, ErrNoHistory)
//
// # Usage
//
//	_, err := settings.New("", contract, settings.Options{})
//	if errors.Is(err, kerrors.ErrEmptyAppName) {
//	    // caller bug
//	}
//
// The discovery loop of the settings manager skips any candidate whose
// error matches ErrSettingsFromTheFuture:
//
//	return fmt.Errorf("%s: %w", path, errors.ErrSettingsFromTheFuture)
package errors
