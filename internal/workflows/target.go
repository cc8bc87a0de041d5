package workflows

import (
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/commonwealth/internal/configs"
	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/settings"
	"github.com/PolarWolf314/commonwealth/internal/utils"
)

// VehicleManager persists VehicleSettings for one application.
type VehicleManager = settings.Manager[*configs.VehicleSettings]

// Target identifies the settings directory a workflow operates on.
type Target struct {
	// AppName names the configuration directory.
	AppName string

	// ConfigRoot overrides the platform config location when set.
	ConfigRoot string

	// SkipCorrupt makes version discovery skip corrupt candidates.
	SkipCorrupt bool

	// Logger receives manager diagnostics. Nil means quiet.
	Logger settings.Logger
}

// canonicalPath resolves the current-version settings file of the target
// without creating its directory.
func canonicalPath(t Target) (string, error) {
	if !utils.IsValidAppName(t.AppName) {
		return "", fmt.Errorf("%w: %q", kerrors.ErrInvalidAppName, t.AppName)
	}

	dir, err := settings.ConfigDirectory(t.AppName, t.ConfigRoot)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settings.FileName(configs.VehicleSettingsVersion)), nil
}

// Open returns a manager for the target. Settings are loaded only when
// autoLoad is true.
func Open(t Target, autoLoad bool) (*VehicleManager, error) {
	if !utils.IsValidAppName(t.AppName) {
		return nil, fmt.Errorf("%w: %q", kerrors.ErrInvalidAppName, t.AppName)
	}

	m, err := settings.New(t.AppName, configs.VehicleContract, settings.Options{
		ConfigRoot:  t.ConfigRoot,
		NoAutoLoad:  !autoLoad,
		SkipCorrupt: t.SkipCorrupt,
		Logger:      t.Logger,
	})
	if err != nil {
		return nil, fmt.Errorf("opening settings for %s: %w", t.AppName, err)
	}

	return m, nil
}
