package configs

import (
	"testing"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/mavlink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := NewVehicleSettings()

	require.NoError(t, s.Set(KeyVehicleName, " rover one "))
	assert.Equal(t, "rover one", s.VehicleName)

	require.NoError(t, s.Set(KeyVehicleType, "ground rover"))
	assert.Equal(t, mavlink.VehicleGroundRover, s.VehicleType)

	require.NoError(t, s.Set(KeyVehicleType, "12"))
	assert.Equal(t, mavlink.VehicleSubmarine, s.VehicleType)

	require.NoError(t, s.Set(KeyFirmwareVersion, "4.1.2"))
	assert.Equal(t, "4.1.2", s.Firmware.Version)

	require.NoError(t, s.Set(KeyFirmwareType, "255"))
	assert.Equal(t, mavlink.FirmwareStable, s.Firmware.Type)

	require.NoError(t, s.Set(KeyEndpoints, "udpin:0.0.0.0:14550, tcpin:0.0.0.0:5777,"))
	assert.Equal(t, []string{"udpin:0.0.0.0:14550", "tcpin:0.0.0.0:5777"}, s.Endpoints)

	require.NoError(t, s.Set(KeyEndpoints, ""))
	assert.Empty(t, s.Endpoints)

	require.NoError(t, s.Set(KeyRequestedMessages, "148"))
	assert.Equal(t, []mavlink.MessageID{mavlink.MessageAutopilotVersion}, s.RequestedMessages)

	require.NoError(t, s.Validate())
}

func TestSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr error
	}{
		{KeyVehicleName, "", kerrors.ErrInvalidSettingsValue},
		{KeyVehicleType, "hovercraft", kerrors.ErrUnknownVehicleType},
		{KeyVehicleType, "99", kerrors.ErrInvalidSettingsValue},
		{KeyFirmwareVersion, " ", kerrors.ErrInvalidSettingsValue},
		{KeyFirmwareType, "nightly", kerrors.ErrUnknownFirmwareType},
		{KeyRequestedMessages, "0,abc", kerrors.ErrInvalidSettingsValue},
		{KeyRequestedMessages, "1", kerrors.ErrUnknownMessageID},
		{"colour", "blue", kerrors.ErrUnknownSettingsKey},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := NewVehicleSettings()
			before := s.Clone()

			err := s.Set(tt.key, tt.value)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, s)
		})
	}
}
