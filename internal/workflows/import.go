package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/commonwealth/internal/audit"
	"github.com/PolarWolf314/commonwealth/internal/configs"
)

// ImportOptions configures the import workflow.
type ImportOptions struct {
	Target

	// InputPath is the TOML file to import. With Data set it only names the
	// input in messages.
	InputPath string

	// Data, when non-nil, is imported instead of reading InputPath.
	Data []byte

	// DryRun validates the input without touching the filesystem.
	DryRun bool
}

// ImportResult contains the outcome of an import operation.
type ImportResult struct {
	// Path is the settings file written.
	Path string

	// BackupPath is the copy of the replaced file, empty if there was none.
	BackupPath string

	// Settings are the imported values.
	Settings *configs.VehicleSettings

	// DryRun indicates whether this was a dry-run.
	DryRun bool
}

// Import replaces the settings with a TOML export. The current canonical
// file is backed up first.
//
// Returns ErrSettingsFromTheFuture if the export is from a newer schema.
func Import(ctx context.Context, opts ImportOptions) (*ImportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		imported *configs.VehicleSettings
		err      error
	)
	if opts.Data != nil {
		imported, err = configs.DecodeVehicleSettingsTOML(opts.Data, opts.InputPath)
	} else {
		imported, err = configs.ImportVehicleSettingsTOML(opts.InputPath)
	}
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		path, err := canonicalPath(opts.Target)
		if err != nil {
			return nil, err
		}
		return &ImportResult{Path: path, Settings: imported, DryRun: true}, nil
	}

	m, err := Open(opts.Target, false)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{
		Path:     m.CanonicalPath(),
		Settings: imported,
	}

	backupPath, err := configs.BackupFile(m.CanonicalPath(), time.Now())
	if err != nil {
		return nil, err
	}
	result.BackupPath = backupPath

	if err := m.SetSettings(imported); err != nil {
		return nil, fmt.Errorf("writing settings: %w", err)
	}

	audit.Log(m.Dir(), audit.Entry{
		App:        m.AppName(),
		Operation:  "import",
		Version:    m.Version(),
		Path:       m.CanonicalPath(),
		InputPath:  opts.InputPath,
		BackupPath: backupPath,
	})

	return result, nil
}
