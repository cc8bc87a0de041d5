package errors

import "errors"

// Precondition errors indicate a caller bug when constructing a manager.
var (
	// ErrPrecondition wraps every construction-time precondition failure.
	ErrPrecondition = errors.New("precondition violated")

	// ErrEmptyAppName indicates the application name was empty.
	ErrEmptyAppName = errors.New("application name must not be empty")

	// ErrInvalidContract indicates the settings contract lacks a factory or has a negative version.
	ErrInvalidContract = errors.New("settings contract is invalid")
)

// Settings file errors indicate problems with a specific settings file on disk.
var (
	// ErrSettingsFromTheFuture indicates a file was written by a newer schema version.
	ErrSettingsFromTheFuture = errors.New("settings file is from a newer schema version")

	// ErrCorruptSettings indicates a settings file could not be decoded.
	ErrCorruptSettings = errors.New("settings file is corrupt")

	// ErrInvalidSettingsFileName indicates a file matched the settings pattern but its version could not be parsed.
	ErrInvalidSettingsFileName = errors.New("invalid settings file name")
)

// Lookup errors indicate an integer or name that maps to no known MAVLink value.
var (
	// ErrUnknownFirmwareType indicates an unmapped firmware version type.
	ErrUnknownFirmwareType = errors.New("unknown firmware version type")

	// ErrUnknownVehicleType indicates an unmapped MAV_TYPE.
	ErrUnknownVehicleType = errors.New("unknown vehicle type")

	// ErrUnknownMessageID indicates an unmapped MAVLink message id.
	ErrUnknownMessageID = errors.New("unknown mavlink message id")
)

// Edit errors indicate a rejected change to a settings field.
var (
	// ErrUnknownSettingsKey indicates the key names no editable field.
	ErrUnknownSettingsKey = errors.New("unknown settings key")

	// ErrInvalidSettingsValue indicates the value could not be applied to the field.
	ErrInvalidSettingsValue = errors.New("invalid settings value")
)

// Workflow errors are returned by the command-level operations.
var (
	// ErrInvalidAppName indicates the application name cannot be used as a directory name.
	ErrInvalidAppName = errors.New("invalid application name")

	// ErrAlreadyInitialized indicates settings files already exist for the application.
	ErrAlreadyInitialized = errors.New("settings already initialized")

	// ErrNoHistory indicates the settings directory has no audit journal.
	ErrNoHistory = errors.New("no settings history found")

	// ErrInvalidDateFormat indicates a date filter was not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidFormat indicates an unsupported output format.
	ErrInvalidFormat = errors.New("unsupported output format")
)
