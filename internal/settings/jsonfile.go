package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
)

// VersionKey is the top-level JSON key holding a file's schema version.
const VersionKey = "VERSION"

type versionHeader struct {
	Version *int `json:"VERSION"`
}

// ReadJSON decodes the settings file at path into v. The file must carry a
// VERSION key no greater than supported; otherwise a *FromTheFutureError is
// returned and v is left untouched. Fields absent from the file keep the
// values v already holds.
func ReadJSON(path string, supported int, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings file %s: %w", path, err)
	}

	var header versionHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return fmt.Errorf("decoding %s: %w: %w", path, kerrors.ErrCorruptSettings, err)
	}
	if header.Version == nil {
		return fmt.Errorf("decoding %s: %w: missing %s key", path, kerrors.ErrCorruptSettings, VersionKey)
	}
	if *header.Version > supported {
		return &FromTheFutureError{
			Path:             path,
			FileVersion:      *header.Version,
			SupportedVersion: supported,
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w: %w", path, kerrors.ErrCorruptSettings, err)
	}
	return nil
}

// WriteJSON writes v as indented JSON, creating parent directories.
// The write is not atomic.
func WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding settings for %s: %w", path, err)
	}

	// #nosec G306 -- settings are not secret.
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing settings file %s: %w", path, err)
	}
	return nil
}
