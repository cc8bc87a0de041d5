package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/commonwealth/internal/configs"
	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/settings"
)

// VersionStatus classifies a settings file found on disk.
type VersionStatus string

const (
	// StatusLoadable files decode with the current schema.
	StatusLoadable VersionStatus = "loadable"
	// StatusFromTheFuture files were written by a newer schema and are skipped.
	StatusFromTheFuture VersionStatus = "from-the-future"
	// StatusCorrupt files cannot be decoded.
	StatusCorrupt VersionStatus = "corrupt"
	// StatusUnreadable files failed with an I/O error.
	StatusUnreadable VersionStatus = "unreadable"
)

// VersionEntry describes one settings file.
type VersionEntry struct {
	settings.Candidate

	Status VersionStatus

	// Active marks the file a load would use.
	Active bool

	// Canonical marks the file for the current schema version.
	Canonical bool

	// Err is the load error for files that are not loadable.
	Err error
}

// VersionsResult lists the settings files of an application.
type VersionsResult struct {
	// Dir is the configuration directory.
	Dir string

	// SupportedVersion is the schema version of this build.
	SupportedVersion int

	// Entries are newest version first.
	Entries []VersionEntry

	// FallsBackToCanonical is true when no entry is active and a load would
	// read or create the canonical file instead.
	FallsBackToCanonical bool

	// Blocked holds the error that would abort a load, if any.
	Blocked error

	// Skipped lists the files a load passes over, in the order it tries them.
	Skipped []string
}

// Versions inspects every settings file without modifying any of them and
// reports which one a load would pick.
func Versions(ctx context.Context, target Target) (*VersionsResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := Open(target, false)
	if err != nil {
		return nil, err
	}

	candidates, err := m.Candidates()
	if err != nil {
		return nil, fmt.Errorf("listing settings files: %w", err)
	}

	result := &VersionsResult{
		Dir:              m.Dir(),
		SupportedVersion: m.Version(),
	}

	var skippedCanonical error
	decided := false
	for _, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry := inspect(c)
		entry.Canonical = c.Path == m.CanonicalPath()

		if !decided {
			switch entry.Status {
			case StatusLoadable:
				entry.Active = true
				decided = true
			case StatusFromTheFuture:
				result.Skipped = append(result.Skipped, c.Path)
			case StatusCorrupt:
				if !target.SkipCorrupt {
					result.Blocked = entry.Err
					decided = true
					break
				}
				result.Skipped = append(result.Skipped, c.Path)
				if entry.Canonical {
					skippedCanonical = entry.Err
				}
			default:
				result.Blocked = entry.Err
				decided = true
			}
		}

		result.Entries = append(result.Entries, entry)
	}

	// The fallback reads the canonical file, so a skipped corrupt canonical
	// file still fails the load.
	if !decided && skippedCanonical != nil {
		result.Blocked = skippedCanonical
		decided = true
	}

	result.FallsBackToCanonical = !decided
	return result, nil
}

func inspect(c settings.Candidate) VersionEntry {
	entry := VersionEntry{Candidate: c, Status: StatusLoadable}

	err := configs.NewVehicleSettings().Load(c.Path)
	switch {
	case err == nil:
	case errors.Is(err, kerrors.ErrSettingsFromTheFuture):
		entry.Status = StatusFromTheFuture
		entry.Err = err
	case errors.Is(err, kerrors.ErrCorruptSettings):
		entry.Status = StatusCorrupt
		entry.Err = err
	default:
		entry.Status = StatusUnreadable
		entry.Err = err
	}

	return entry
}
