// Package configs defines the vehicle settings schema that commonwealth
// persists through a settings.Manager.
//
// Settings live in the per-user config directory, one JSON file per schema
// version:
//
//   - ~/.config/<app>/settings-1.json (vehicle name and type)
//   - ~/.config/<app>/settings-2.json (current schema)
//
// # Schema Versions
//
// VehicleSettingsVersion is the version this build writes. Older files load
// with the fields they lack left at their defaults; newer files are refused
// with errors.ErrSettingsFromTheFuture. Nothing is migrated on disk: the
// next save simply writes the current version alongside the older file.
//
// # Editing
//
// VehicleSettings.Set applies a single "key value" edit as typed on the
// command line. Callers should Clone the cached settings before editing so
// that a failed save leaves the cache untouched.
//
// # Import and Export
//
// SaveTOML and ImportVehicleSettingsTOML move settings between machines in
// TOML, with the same forward-compatibility check as the JSON files.
//
// # Backups
//
// BackupFile copies a settings file aside before it is replaced wholesale.
package configs
