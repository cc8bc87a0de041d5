package utils

import (
	"os"
	"os/user"
	"regexp"
	"strings"
)

var (
	invalidNameChars = regexp.MustCompile(`[^a-z0-9\-_]`)
	repeatedHyphens  = regexp.MustCompile(`-+`)
)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// GetHostname returns the system hostname.
func GetHostname() (string, error) {
	return os.Hostname()
}

// SanitizeVehicleName lowercases name, turns spaces into hyphens and drops
// everything that is not alphanumeric, a hyphen or an underscore.
func SanitizeVehicleName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = invalidNameChars.ReplaceAllString(name, "")
	name = repeatedHyphens.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")

	if name == "" {
		name = "vehicle"
	}

	return name
}

// DefaultVehicleName derives a vehicle name from the hostname, falling back
// to the username and then to "vehicle".
func DefaultVehicleName() string {
	hostname, err := GetHostname()
	if err != nil || hostname == "" {
		username, userErr := GetUsername()
		if userErr != nil {
			return "vehicle"
		}
		hostname = username
	}

	return SanitizeVehicleName(hostname)
}
