package configs

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/mavlink"
	"github.com/PolarWolf314/commonwealth/internal/settings"
	"github.com/google/uuid"
)

// VehicleSettingsVersion is the schema version written by this build.
//
// Version history:
//   - 1: vehicle_name, vehicle_type
//   - 2: adds instance_id, firmware, endpoints, requested_messages
const VehicleSettingsVersion = 2

// VehicleSettings is the persisted configuration of a vehicle's companion software.
type VehicleSettings struct {
	Version           int                  `json:"VERSION" toml:"VERSION" yaml:"VERSION"`
	InstanceID        string               `json:"instance_id" toml:"instance_id" yaml:"instance_id"`
	VehicleName       string               `json:"vehicle_name" toml:"vehicle_name" yaml:"vehicle_name"`
	VehicleType       mavlink.VehicleType  `json:"vehicle_type" toml:"vehicle_type" yaml:"vehicle_type"`
	Firmware          mavlink.FirmwareInfo `json:"firmware" toml:"firmware" yaml:"firmware"`
	Endpoints         []string             `json:"endpoints" toml:"endpoints" yaml:"endpoints"`
	RequestedMessages []mavlink.MessageID  `json:"requested_messages" toml:"requested_messages" yaml:"requested_messages"`
}

// VehicleContract lets a settings.Manager persist VehicleSettings.
var VehicleContract = settings.Contract[*VehicleSettings]{
	Name:    "vehicle",
	Version: VehicleSettingsVersion,
	Empty:   NewVehicleSettings,
}

// NewVehicleSettings returns default settings with a fresh instance id.
func NewVehicleSettings() *VehicleSettings {
	return &VehicleSettings{
		InstanceID:  GenerateInstanceID(),
		VehicleName: "vehicle",
		VehicleType: mavlink.VehicleGeneric,
		Firmware: mavlink.FirmwareInfo{
			Version: "0.0.0",
			Type:    mavlink.FirmwareDev,
		},
		Endpoints:         []string{"udpin:0.0.0.0:14550"},
		RequestedMessages: []mavlink.MessageID{mavlink.MessageHeartbeat, mavlink.MessageAutopilotVersion},
	}
}

// GenerateInstanceID generates a new UUID identifying this installation.
func GenerateInstanceID() string {
	return uuid.New().String()
}

// Load reads a settings file of version VehicleSettingsVersion or older.
// Fields that an older file lacks keep their defaults.
func (s *VehicleSettings) Load(path string) error {
	if err := settings.ReadJSON(path, VehicleSettingsVersion, s); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("decoding %s: %w: %w", path, kerrors.ErrCorruptSettings, err)
	}
	return nil
}

// Save writes s as the current schema version.
func (s *VehicleSettings) Save(path string) error {
	s.Version = VehicleSettingsVersion
	return settings.WriteJSON(path, s)
}

// Validate checks the values JSON decoding cannot.
func (s *VehicleSettings) Validate() error {
	if _, err := uuid.Parse(s.InstanceID); err != nil {
		return fmt.Errorf("%w: instance_id %q is not a UUID", kerrors.ErrInvalidSettingsValue, s.InstanceID)
	}
	if strings.TrimSpace(s.VehicleName) == "" {
		return fmt.Errorf("%w: vehicle_name is empty", kerrors.ErrInvalidSettingsValue)
	}
	if _, err := s.VehicleType.Value(); err != nil {
		return err
	}
	if _, err := s.Firmware.Type.Value(); err != nil {
		return err
	}
	for _, id := range s.RequestedMessages {
		if _, err := mavlink.MessageIDFromValue(int(id)); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *VehicleSettings) Clone() *VehicleSettings {
	out := *s
	out.Endpoints = append([]string(nil), s.Endpoints...)
	out.RequestedMessages = append([]mavlink.MessageID(nil), s.RequestedMessages...)
	return &out
}
