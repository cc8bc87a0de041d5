package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PolarWolf314/commonwealth/internal/audit"
	"github.com/PolarWolf314/commonwealth/internal/configs"
	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/utils"
)

// ResetOptions configures the reset workflow.
type ResetOptions struct {
	Target

	// KeepInstanceID carries the current instance id over to the defaults.
	KeepInstanceID bool
}

// ResetResult contains the outcome of a reset operation.
type ResetResult struct {
	// Path is the settings file written.
	Path string

	// BackupPath is the copy of the replaced file, empty if there was none.
	BackupPath string

	// Settings are the defaults written.
	Settings *configs.VehicleSettings

	// InstanceIDErr is set when KeepInstanceID was requested but the current
	// settings were corrupt, so a new instance id was generated instead.
	InstanceIDErr error
}

// Reset overwrites the canonical settings file with defaults after backing
// it up. Older and newer version files are left alone.
//
// Corrupt settings do not stop a reset: the instance id cannot be kept then
// and InstanceIDErr says why. Any other read failure aborts before anything
// is written.
func Reset(ctx context.Context, opts ResetOptions) (*ResetResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := Open(opts.Target, false)
	if err != nil {
		return nil, err
	}

	canonical := m.CanonicalPath()
	existed := utils.FileExists(canonical)

	result := &ResetResult{
		Path:     canonical,
		Settings: configs.NewVehicleSettings(),
	}

	if opts.KeepInstanceID {
		candidates, err := m.Candidates()
		if err != nil {
			return nil, fmt.Errorf("listing settings files: %w", err)
		}
		if len(candidates) > 0 {
			current, err := m.Settings()
			switch {
			case err == nil:
				result.Settings.InstanceID = current.InstanceID
			case errors.Is(err, kerrors.ErrCorruptSettings):
				result.InstanceIDErr = err
			default:
				return nil, err
			}
		}
	}

	if existed {
		backupPath, err := configs.BackupFile(canonical, time.Now())
		if err != nil {
			return nil, err
		}
		result.BackupPath = backupPath
	}

	if err := m.SetSettings(result.Settings); err != nil {
		return nil, fmt.Errorf("writing settings: %w", err)
	}

	audit.Log(m.Dir(), audit.Entry{
		App:        m.AppName(),
		Operation:  "reset",
		Version:    m.Version(),
		Path:       canonical,
		BackupPath: result.BackupPath,
	})

	return result, nil
}
