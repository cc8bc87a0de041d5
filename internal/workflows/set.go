package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/commonwealth/internal/audit"
	"github.com/PolarWolf314/commonwealth/internal/configs"
)

// Change assigns Value to the settings field named by Key.
type Change struct {
	Key   string
	Value string
}

// SetOptions configures the set workflow.
type SetOptions struct {
	Target

	// Changes are applied in order. Either all are saved or none.
	Changes []Change
}

// SetResult contains the outcome of a set operation.
type SetResult struct {
	// Path is the settings file written.
	Path string

	// Previous are the settings before the changes.
	Previous *configs.VehicleSettings

	// Settings are the values written.
	Settings *configs.VehicleSettings
}

// Set edits settings fields and saves the result as the current schema
// version.
//
// Returns ErrUnknownSettingsKey or ErrInvalidSettingsValue if a change is
// rejected; nothing is written in that case.
func Set(ctx context.Context, opts SetOptions) (*SetResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := Open(opts.Target, true)
	if err != nil {
		return nil, err
	}

	current, err := m.Settings()
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	for _, change := range opts.Changes {
		if err := updated.Set(change.Key, change.Value); err != nil {
			return nil, err
		}
	}

	if err := m.SetSettings(updated); err != nil {
		return nil, fmt.Errorf("writing settings: %w", err)
	}

	for _, change := range opts.Changes {
		audit.Log(m.Dir(), audit.Entry{
			App:       m.AppName(),
			Operation: "set",
			Version:   m.Version(),
			Path:      m.CanonicalPath(),
			Key:       change.Key,
			Value:     change.Value,
		})
	}

	return &SetResult{
		Path:     m.CanonicalPath(),
		Previous: current,
		Settings: updated,
	}, nil
}
