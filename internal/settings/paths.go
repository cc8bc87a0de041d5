package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
)

const (
	// FilePrefix starts every settings file name.
	FilePrefix = "settings-"

	// FileExtension ends every settings file name.
	FileExtension = ".json"
)

var fileNamePattern = regexp.MustCompile(`^` + regexp.QuoteMeta(FilePrefix) + `(\d+)` + regexp.QuoteMeta(FileExtension) + `$`)

// FileName returns the settings file name for a schema version.
func FileName(version int) string {
	return FilePrefix + strconv.Itoa(version) + FileExtension
}

// IsFileName reports whether name has the form settings-<digits>.json.
func IsFileName(name string) bool {
	return fileNamePattern.MatchString(name)
}

// ParseFileName extracts the schema version from a settings file name.
func ParseFileName(name string) (int, error) {
	match := fileNamePattern.FindStringSubmatch(name)
	if len(match) != 2 {
		return 0, fmt.Errorf("%w: %q", kerrors.ErrInvalidSettingsFileName, name)
	}

	version, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", kerrors.ErrInvalidSettingsFileName, name, err)
	}
	return version, nil
}

// ConfigDirectory resolves the directory holding an application's settings.
// With a root it is root/appName, otherwise the per-user config location
// for appName (~/.config/<appName> on Linux).
func ConfigDirectory(appName, root string) (string, error) {
	if root != "" {
		return filepath.Join(root, appName), nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error getting config directory: %w", err)
	}
	return filepath.Join(configDir, appName), nil
}
