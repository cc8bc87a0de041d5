package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Candidate is a settings file found in a config directory.
type Candidate struct {
	Version int
	Path    string
}

// Candidates lists the settings files in dir, newest version first.
// Files sharing a version (settings-2.json and settings-02.json) are
// ordered by path.
func Candidates(dir string) ([]Candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading config directory %s: %w", dir, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if entry.IsDir() || !IsFileName(entry.Name()) {
			continue
		}

		version, err := ParseFileName(entry.Name())
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Version: version,
			Path:    filepath.Join(dir, entry.Name()),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Version != candidates[j].Version {
			return candidates[i].Version > candidates[j].Version
		}
		return candidates[i].Path < candidates[j].Path
	})

	return candidates, nil
}
