package workflows

import (
	"context"

	"github.com/PolarWolf314/commonwealth/internal/configs"
	"github.com/PolarWolf314/commonwealth/internal/utils"
)

// ShowResult contains the active settings of an application.
type ShowResult struct {
	// Settings are the loaded values.
	Settings *configs.VehicleSettings

	// Source is the file the settings were read from.
	Source string

	// CanonicalPath is where the next save will write.
	CanonicalPath string

	// Migrated is true when Source is an older schema version that has
	// not been saved as the current one yet.
	Migrated bool
}

// Show loads the settings of an application. On first run the defaults are
// written to the canonical file.
func Show(ctx context.Context, target Target) (*ShowResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := Open(target, true)
	if err != nil {
		return nil, err
	}

	s, err := m.Settings()
	if err != nil {
		return nil, err
	}

	return &ShowResult{
		Settings:      s,
		Source:        m.Source(),
		CanonicalPath: m.CanonicalPath(),
		Migrated:      m.Source() != m.CanonicalPath(),
	}, nil
}

// PathResult describes where an application's settings live.
type PathResult struct {
	// Dir is the configuration directory.
	Dir string

	// CanonicalPath is the file for the current schema version.
	CanonicalPath string

	// Exists reports whether CanonicalPath is present.
	Exists bool
}

// Path resolves an application's settings location without loading anything.
func Path(ctx context.Context, target Target) (*PathResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := Open(target, false)
	if err != nil {
		return nil, err
	}

	return &PathResult{
		Dir:           m.Dir(),
		CanonicalPath: m.CanonicalPath(),
		Exists:        utils.FileExists(m.CanonicalPath()),
	}, nil
}
