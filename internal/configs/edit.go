package configs

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/mavlink"
)

// Editable keys accepted by Set.
const (
	KeyVehicleName       = "vehicle-name"
	KeyVehicleType       = "vehicle-type"
	KeyFirmwareVersion   = "firmware-version"
	KeyFirmwareType      = "firmware-type"
	KeyEndpoints         = "endpoints"
	KeyRequestedMessages = "requested-messages"
)

// EditableKeys lists the keys accepted by Set.
func EditableKeys() []string {
	return []string{
		KeyVehicleName,
		KeyVehicleType,
		KeyFirmwareVersion,
		KeyFirmwareType,
		KeyEndpoints,
		KeyRequestedMessages,
	}
}

// Set parses value and assigns it to the field named by key. List fields
// take comma-separated values; an empty value clears them.
func (s *VehicleSettings) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyVehicleName:
		if value == "" {
			return fmt.Errorf("%w: vehicle name must not be empty", kerrors.ErrInvalidSettingsValue)
		}
		s.VehicleName = value
	case KeyVehicleType:
		vt, err := mavlink.ParseVehicleType(value)
		if err != nil {
			return fmt.Errorf("%w: %w", kerrors.ErrInvalidSettingsValue, err)
		}
		s.VehicleType = vt
	case KeyFirmwareVersion:
		if value == "" {
			return fmt.Errorf("%w: firmware version must not be empty", kerrors.ErrInvalidSettingsValue)
		}
		s.Firmware.Version = value
	case KeyFirmwareType:
		ft, err := mavlink.ParseFirmwareVersionType(value)
		if err != nil {
			return fmt.Errorf("%w: %w", kerrors.ErrInvalidSettingsValue, err)
		}
		s.Firmware.Type = ft
	case KeyEndpoints:
		s.Endpoints = splitList(value)
	case KeyRequestedMessages:
		var ids []mavlink.MessageID
		for _, item := range splitList(value) {
			n, err := strconv.Atoi(item)
			if err != nil {
				return fmt.Errorf("%w: message id %q is not an integer", kerrors.ErrInvalidSettingsValue, item)
			}
			id, err := mavlink.MessageIDFromValue(n)
			if err != nil {
				return fmt.Errorf("%w: %w", kerrors.ErrInvalidSettingsValue, err)
			}
			ids = append(ids, id)
		}
		s.RequestedMessages = ids
	default:
		return fmt.Errorf("%w: %q (expected one of %s)", kerrors.ErrUnknownSettingsKey, key, strings.Join(EditableKeys(), ", "))
	}

	return nil
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
