// Package mavlink holds the MAVLink enumerations persisted in settings.
//
// Every type is a closed set. Integer reverse lookups (FromValue functions)
// and text decoding fail with a wrapped errors.ErrUnknown* value instead of
// falling back to a default, so a bad value in a settings file surfaces as a
// decode error.
package mavlink
