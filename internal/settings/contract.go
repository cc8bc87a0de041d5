package settings

import (
	"fmt"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
)

// Settings is an in-memory settings object that knows how to read and write
// itself. Load must return an error matching ErrSettingsFromTheFuture when the
// file declares a schema version newer than the object understands.
type Settings interface {
	Load(path string) error
	Save(path string) error
}

// Contract describes a settings schema: its current version and a factory
// for default-valued instances.
type Contract[T Settings] struct {
	// Name is used in log messages only.
	Name string

	// Version is the schema version written by Save. Higher is newer.
	Version int

	// Empty returns a new settings object holding default values.
	Empty func() T
}

func (c Contract[T]) validate() error {
	if c.Empty == nil {
		return fmt.Errorf("%w: %w: contract %q has no Empty factory", kerrors.ErrPrecondition, kerrors.ErrInvalidContract, c.Name)
	}
	if c.Version < 0 {
		return fmt.Errorf("%w: %w: contract %q has negative version %d", kerrors.ErrPrecondition, kerrors.ErrInvalidContract, c.Name, c.Version)
	}
	return nil
}

// FromTheFutureError reports a settings file whose declared version is newer
// than the version the loading code supports.
type FromTheFutureError struct {
	Path             string
	FileVersion      int
	SupportedVersion int
}

func (e *FromTheFutureError) Error() string {
	return fmt.Sprintf("settings file %s declares version %d, newest supported is %d", e.Path, e.FileVersion, e.SupportedVersion)
}

func (e *FromTheFutureError) Unwrap() error {
	return kerrors.ErrSettingsFromTheFuture
}
