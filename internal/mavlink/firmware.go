package mavlink

import (
	"strings"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/samber/oops"
)

// FirmwareVersionType is the release type of an autopilot firmware, as
// encoded in the low byte of AUTOPILOT_VERSION.flight_sw_version.
type FirmwareVersionType string

const (
	FirmwareDev    FirmwareVersionType = "DEV"
	FirmwareAlpha  FirmwareVersionType = "ALPHA"
	FirmwareBeta   FirmwareVersionType = "BETA"
	FirmwareRC     FirmwareVersionType = "RC"
	FirmwareStable FirmwareVersionType = "STABLE"
)

var firmwareTypeValues = map[int]FirmwareVersionType{
	0:   FirmwareDev,
	64:  FirmwareAlpha,
	128: FirmwareBeta,
	192: FirmwareRC,
	255: FirmwareStable,
}

// FirmwareVersionTypes lists every firmware version type in ascending value order.
func FirmwareVersionTypes() []FirmwareVersionType {
	return []FirmwareVersionType{FirmwareDev, FirmwareAlpha, FirmwareBeta, FirmwareRC, FirmwareStable}
}

// FirmwareVersionTypeFromValue maps a MAVLink FIRMWARE_VERSION_TYPE value.
func FirmwareVersionTypeFromValue(value int) (FirmwareVersionType, error) {
	t, ok := firmwareTypeValues[value]
	if !ok {
		return "", oops.
			In("mavlink").
			With("value", value).
			Wrapf(kerrors.ErrUnknownFirmwareType, "no firmware version type for value %d", value)
	}
	return t, nil
}

// Value returns the MAVLink integer for t.
func (t FirmwareVersionType) Value() (int, error) {
	for value, candidate := range firmwareTypeValues {
		if candidate == t {
			return value, nil
		}
	}
	return 0, oops.
		In("mavlink").
		With("type", string(t)).
		Wrapf(kerrors.ErrUnknownFirmwareType, "no value for firmware version type %q", string(t))
}

// ParseFirmwareVersionType accepts a type name in any case ("stable") or its
// integer value ("255").
func ParseFirmwareVersionType(s string) (FirmwareVersionType, error) {
	s = strings.TrimSpace(s)
	if value, ok := parseInt(s); ok {
		return FirmwareVersionTypeFromValue(value)
	}

	t := FirmwareVersionType(strings.ToUpper(s))
	if _, err := t.Value(); err != nil {
		return "", err
	}
	return t, nil
}

// UnmarshalText rejects names outside the enumeration.
func (t *FirmwareVersionType) UnmarshalText(text []byte) error {
	candidate := FirmwareVersionType(text)
	if _, err := candidate.Value(); err != nil {
		return err
	}
	*t = candidate
	return nil
}

// FirmwareInfo describes the firmware running on the autopilot.
type FirmwareInfo struct {
	Version string              `json:"version" toml:"version" yaml:"version"`
	Type    FirmwareVersionType `json:"type" toml:"type" yaml:"type"`
}
