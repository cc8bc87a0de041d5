package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// FileName is the journal file kept next to the settings files.
const FileName = "audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`  // RFC3339 with microseconds.
	App       string `json:"app"` // Application whose settings changed.
	Operation string `json:"op"`  // Operation name.

	// Optional fields depending on operation.
	Version    int    `json:"version,omitempty"`     // Schema version written.
	Path       string `json:"path,omitempty"`        // Settings file written.
	Key        string `json:"key,omitempty"`         // For set.
	Value      string `json:"value,omitempty"`       // For set.
	OutputPath string `json:"output_path,omitempty"` // For export.
	InputPath  string `json:"input_path,omitempty"`  // For import.
	BackupPath string `json:"backup_path,omitempty"` // For reset/import.
}

// Log appends an entry to the audit log in dir.
// Failures are swallowed: a settings change must not fail because the
// journal could not be written.
func Log(dir string, entry Entry) {
	if dir == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	// #nosec G306 -- the journal holds no secrets.
	f, err := os.OpenFile(LogPath(dir), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the audit log file in dir.
func LogPath(dir string) string {
	return filepath.Join(dir, FileName)
}

// ReadEntries reads all entries from the audit log in dir.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(dir string) ([]Entry, error) {
	data, err := os.ReadFile(LogPath(dir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
