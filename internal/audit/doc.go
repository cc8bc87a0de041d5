// Package audit keeps a journal of settings changes.
//
// Every operation that writes a settings file (init, set, import, reset)
// appends one entry to a log kept in the application's configuration
// directory, next to the settings files themselves.
//
// # Log Format
//
// The journal is stored as JSON Lines (one JSON object per line) at:
//
//	<config dir>/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Application name
//   - Operation name
//   - Operation-specific details (path, key and value, backup, etc.)
//
// The journal does not match the settings-<N>.json pattern, so version
// discovery never considers it.
//
// # Failure Handling
//
// Audit logging is best-effort. If the journal cannot be written the
// operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries to parse the journal for display. Malformed entries are
// silently skipped to handle partial writes.
package audit
