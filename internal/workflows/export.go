package workflows

import (
	"context"
	"fmt"
	"time"

	"github.com/PolarWolf314/commonwealth/internal/audit"
	"github.com/PolarWolf314/commonwealth/internal/configs"
)

// ExportOptions configures the export workflow.
type ExportOptions struct {
	Target

	// OutputPath is the path for the TOML file.
	// If empty, defaults to <app>-settings-YYYY-MM-DD.toml.
	OutputPath string
}

// ExportResult contains the outcome of an export operation.
type ExportResult struct {
	// OutputPath is the path to the created file.
	OutputPath string

	// Source is the settings file that was exported.
	Source string

	// Settings are the exported values.
	Settings *configs.VehicleSettings
}

// Export writes the active settings to a TOML file for backup or for
// moving to another machine.
func Export(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := Open(opts.Target, true)
	if err != nil {
		return nil, err
	}

	s, err := m.Settings()
	if err != nil {
		return nil, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = fmt.Sprintf("%s-settings-%s.toml", m.AppName(), time.Now().Format("2006-01-02"))
	}

	exported := s.Clone()
	exported.Version = m.Version()
	if err := configs.SaveTOML(outputPath, exported); err != nil {
		return nil, fmt.Errorf("writing export: %w", err)
	}

	audit.Log(m.Dir(), audit.Entry{
		App:        m.AppName(),
		Operation:  "export",
		Version:    m.Version(),
		Path:       m.Source(),
		OutputPath: outputPath,
	})

	return &ExportResult{
		OutputPath: outputPath,
		Source:     m.Source(),
		Settings:   exported,
	}, nil
}
