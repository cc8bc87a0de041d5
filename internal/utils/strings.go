package utils

import (
	"regexp"
	"strings"

	"github.com/PolarWolf314/commonwealth/internal/ui"
)

// appNameRegex accepts a single path element: no separators, no leading dot.
var appNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(path))
		b.WriteString("\n")
	}
	return b.String()
}

// IsValidAppName checks that name can be used as a configuration directory name.
func IsValidAppName(name string) bool {
	if name == "" {
		return false
	}
	return appNameRegex.MatchString(name)
}
