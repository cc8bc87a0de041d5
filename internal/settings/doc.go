// Package settings persists versioned application settings.
//
// Each application owns a config directory holding one file per schema
// version ever written:
//
//	<config root>/<app>/settings-1.json
//	<config root>/<app>/settings-2.json
//
// A Manager picks the newest file it can read. A file written by a newer
// schema fails with ErrSettingsFromTheFuture and is skipped so that older
// code never accepts data it cannot interpret. When nothing is usable, the
// file for the contract's own version (the canonical path) is created with
// defaults. Saves always go to the canonical path; older files are left in
// place.
//
// # Contracts
//
// The manager treats settings opaquely through a Contract:
//
//	var Contract = settings.Contract[*MySettings]{
//	    Name:    "my-settings",
//	    Version: 2,
//	    Empty:   NewMySettings,
//	}
//
// ReadJSON and WriteJSON implement the usual file format, a JSON object
// with a top-level VERSION key, for contract implementations.
//
// # Corrupt files
//
// By default a candidate that fails for any reason other than
// ErrSettingsFromTheFuture aborts Load. Options.SkipCorrupt also skips
// candidates failing with ErrCorruptSettings. Existing files are never
// overwritten by the fallback, so a corrupt canonical file still fails.
package settings
