package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/PolarWolf314/commonwealth/internal/settings"
)

// SaveTOML saves a struct to a TOML file.
func SaveTOML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML loads a TOML file into a struct.
func LoadTOML(filePath string, data interface{}) error {
	_, err := toml.DecodeFile(filePath, data)
	return err
}

// ImportVehicleSettingsTOML reads vehicle settings exported with SaveTOML.
func ImportVehicleSettingsTOML(filePath string) (*VehicleSettings, error) {
	s := NewVehicleSettings()
	if err := LoadTOML(filePath, s); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filePath, err)
	}
	return checkImported(s, filePath)
}

// DecodeVehicleSettingsTOML decodes exported vehicle settings. source names
// the input in errors.
func DecodeVehicleSettingsTOML(data []byte, source string) (*VehicleSettings, error) {
	s := NewVehicleSettings()
	if _, err := toml.Decode(string(data), s); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", source, err)
	}
	return checkImported(s, source)
}

// checkImported refuses exports from a newer schema, like the JSON files,
// and validates the rest.
func checkImported(s *VehicleSettings, source string) (*VehicleSettings, error) {
	if s.Version > VehicleSettingsVersion {
		return nil, &settings.FromTheFutureError{
			Path:             source,
			FileVersion:      s.Version,
			SupportedVersion: VehicleSettingsVersion,
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", source, err)
	}
	return s, nil
}
