package mavlink

import (
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/samber/oops"
)

// VehicleType is a MAV_TYPE, stored by its display name.
type VehicleType string

const (
	VehicleGeneric           VehicleType = "Generic"
	VehicleFixedWing         VehicleType = "Fixed Wing"
	VehicleQuadrotor         VehicleType = "Quadrotor"
	VehicleCoaxial           VehicleType = "Coaxial"
	VehicleHelicopter        VehicleType = "Helicopter"
	VehicleAntennaTracker    VehicleType = "Antenna Tracker"
	VehicleGCS               VehicleType = "Gcs"
	VehicleAirship           VehicleType = "Airship"
	VehicleFreeBalloon       VehicleType = "Free Balloon"
	VehicleRocket            VehicleType = "Rocket"
	VehicleGroundRover       VehicleType = "Ground Rover"
	VehicleSurfaceBoat       VehicleType = "Surface Boat"
	VehicleSubmarine         VehicleType = "Submarine"
	VehicleHexarotor         VehicleType = "Hexarotor"
	VehicleOctorotor         VehicleType = "Octorotor"
	VehicleTricopter         VehicleType = "Tricopter"
	VehicleFlappingWing      VehicleType = "Flapping Wing"
	VehicleKite              VehicleType = "Kite"
	VehicleOnboardController VehicleType = "Onboard Controller"
	VehicleVTOLDuorotor      VehicleType = "Vtol (Duorotor)"
	VehicleVTOLQuadrotor     VehicleType = "Vtol (Quadrotor)"
	VehicleVTOLTiltrotor     VehicleType = "Vtol (Tiltrotor)"
	VehicleVTOLFixedrotor    VehicleType = "Vtol (Fixedrotor)"
	VehicleVTOLTailsitter    VehicleType = "Vtol (Tailsitter)"
	VehicleVTOLReserved4     VehicleType = "Vtol (Reserved4)"
	VehicleVTOLReserved5     VehicleType = "Vtol (Reserved5)"
	VehicleGimbal            VehicleType = "Gimbal"
	VehicleADSB              VehicleType = "Adsb"
	VehicleParafoil          VehicleType = "Parafoil"
	VehicleDodecarotor       VehicleType = "Dodecarotor"
	VehicleCamera            VehicleType = "Camera"
	VehicleChargingStation   VehicleType = "Charging Station"
	VehicleFLARM             VehicleType = "Flarm"
	VehicleServo             VehicleType = "Servo"
	VehicleODID              VehicleType = "Odid"
	VehicleDecarotor         VehicleType = "Decarotor"
	VehicleBattery           VehicleType = "Battery"
	VehicleParachute         VehicleType = "Parachute"
	VehicleLog               VehicleType = "Log"
	VehicleOSD               VehicleType = "Osd"
	VehicleIMU               VehicleType = "Imu"
	VehicleGPS               VehicleType = "Gps"
	VehicleWinch             VehicleType = "Winch"
)

// vehicleTypes is indexed by MAV_TYPE value.
var vehicleTypes = [...]VehicleType{
	VehicleGeneric,
	VehicleFixedWing,
	VehicleQuadrotor,
	VehicleCoaxial,
	VehicleHelicopter,
	VehicleAntennaTracker,
	VehicleGCS,
	VehicleAirship,
	VehicleFreeBalloon,
	VehicleRocket,
	VehicleGroundRover,
	VehicleSurfaceBoat,
	VehicleSubmarine,
	VehicleHexarotor,
	VehicleOctorotor,
	VehicleTricopter,
	VehicleFlappingWing,
	VehicleKite,
	VehicleOnboardController,
	VehicleVTOLDuorotor,
	VehicleVTOLQuadrotor,
	VehicleVTOLTiltrotor,
	VehicleVTOLFixedrotor,
	VehicleVTOLTailsitter,
	VehicleVTOLReserved4,
	VehicleVTOLReserved5,
	VehicleGimbal,
	VehicleADSB,
	VehicleParafoil,
	VehicleDodecarotor,
	VehicleCamera,
	VehicleChargingStation,
	VehicleFLARM,
	VehicleServo,
	VehicleODID,
	VehicleDecarotor,
	VehicleBattery,
	VehicleParachute,
	VehicleLog,
	VehicleOSD,
	VehicleIMU,
	VehicleGPS,
	VehicleWinch,
}

// VehicleTypes lists every vehicle type in MAV_TYPE order.
func VehicleTypes() []VehicleType {
	out := make([]VehicleType, len(vehicleTypes))
	copy(out, vehicleTypes[:])
	return out
}

// VehicleTypeFromValue maps a MAV_TYPE integer.
func VehicleTypeFromValue(value int) (VehicleType, error) {
	if value < 0 || value >= len(vehicleTypes) {
		return "", oops.
			In("mavlink").
			With("value", value).
			Wrapf(kerrors.ErrUnknownVehicleType, "no vehicle type for MAV_TYPE %d", value)
	}
	return vehicleTypes[value], nil
}

// Value returns the MAV_TYPE integer for t.
func (t VehicleType) Value() (int, error) {
	for value, candidate := range vehicleTypes {
		if candidate == t {
			return value, nil
		}
	}
	return 0, oops.
		In("mavlink").
		With("type", string(t)).
		Wrapf(kerrors.ErrUnknownVehicleType, "no MAV_TYPE for vehicle type %q", string(t))
}

// ParseVehicleType accepts a display name in any case ("surface boat") or a
// MAV_TYPE integer ("11").
func ParseVehicleType(s string) (VehicleType, error) {
	s = strings.TrimSpace(s)
	if value, ok := parseInt(s); ok {
		return VehicleTypeFromValue(value)
	}

	for _, candidate := range vehicleTypes {
		if strings.EqualFold(string(candidate), s) {
			return candidate, nil
		}
	}
	return "", oops.
		In("mavlink").
		With("type", s).
		Wrapf(kerrors.ErrUnknownVehicleType, "unknown vehicle type %q", s)
}

// UnmarshalText rejects names outside the enumeration.
func (t *VehicleType) UnmarshalText(text []byte) error {
	candidate := VehicleType(text)
	if _, err := candidate.Value(); err != nil {
		return err
	}
	*t = candidate
	return nil
}

func parseInt(s string) (int, bool) {
	value, err := strconv.Atoi(s)
	return value, err == nil
}
