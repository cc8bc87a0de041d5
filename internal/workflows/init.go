package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/commonwealth/internal/audit"
	"github.com/PolarWolf314/commonwealth/internal/configs"
	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/utils"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	Target

	// VehicleName is the initial vehicle name. If empty, derived from the hostname.
	VehicleName string

	// VehicleType is the initial vehicle type, by name or MAV_TYPE value.
	// If empty, the default type is kept.
	VehicleType string

	// Force overwrites settings that already exist.
	Force bool
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// Path is the settings file written.
	Path string

	// Settings are the values written.
	Settings *configs.VehicleSettings
}

// Init writes fresh default settings for an application.
//
// Returns ErrAlreadyInitialized if any settings file already exists and
// Force is not set.
// Returns ErrInvalidSettingsValue or a lookup error for a bad name or type.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := Open(opts.Target, false)
	if err != nil {
		return nil, err
	}

	candidates, err := m.Candidates()
	if err != nil {
		return nil, fmt.Errorf("listing settings files: %w", err)
	}
	if len(candidates) > 0 && !opts.Force {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrAlreadyInitialized, m.Dir())
	}

	s := configs.NewVehicleSettings()

	name := opts.VehicleName
	if name == "" {
		name = utils.DefaultVehicleName()
	}
	if err := s.Set(configs.KeyVehicleName, name); err != nil {
		return nil, err
	}
	if opts.VehicleType != "" {
		if err := s.Set(configs.KeyVehicleType, opts.VehicleType); err != nil {
			return nil, err
		}
	}

	if err := m.SetSettings(s); err != nil {
		return nil, fmt.Errorf("writing settings: %w", err)
	}

	audit.Log(m.Dir(), audit.Entry{
		App:       m.AppName(),
		Operation: "init",
		Version:   m.Version(),
		Path:      m.CanonicalPath(),
	})

	return &InitResult{
		Path:     m.CanonicalPath(),
		Settings: s,
	}, nil
}
