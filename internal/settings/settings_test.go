package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testSettings is a minimal contract implementation backed by ReadJSON and
// WriteJSON.
type testSettings struct {
	supported int

	Version int    `json:"VERSION"`
	Name    string `json:"name"`
	Count   int    `json:"count"`
}

func (s *testSettings) Load(path string) error {
	return ReadJSON(path, s.supported, s)
}

func (s *testSettings) Save(path string) error {
	s.Version = s.supported
	return WriteJSON(path, s)
}

func testContract(version int) Contract[*testSettings] {
	return Contract[*testSettings]{
		Name:    "test",
		Version: version,
		Empty: func() *testSettings {
			return &testSettings{supported: version, Name: "default", Count: 1}
		},
	}
}

// writeSettingsFile writes raw settings JSON named for fileVersion, declaring declaredVersion.
func writeSettingsFile(t *testing.T, dir string, fileVersion, declaredVersion int, name string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
	data, err := json.Marshal(map[string]any{
		"VERSION": declaredVersion,
		"name":    name,
		"count":   fileVersion * 10,
	})
	require.NoError(t, err)

	path := filepath.Join(dir, FileName(fileVersion))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func readSettingsFile(t *testing.T, path string) map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}
