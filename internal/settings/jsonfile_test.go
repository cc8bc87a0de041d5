package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", FileName(2))

	s := &testSettings{supported: 2, Name: "x", Count: 5}
	require.NoError(t, s.Save(path))

	raw := readSettingsFile(t, path)
	assert.EqualValues(t, 2, raw[VersionKey])
	assert.Equal(t, "x", raw["name"])
}

func TestReadJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName(2))

	saved := &testSettings{supported: 2, Name: "boat", Count: 7}
	require.NoError(t, saved.Save(path))

	loaded := testContract(2).Empty()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, saved, loaded)
}

func TestReadJSONFromTheFuture(t *testing.T) {
	dir := t.TempDir()
	path := writeSettingsFile(t, dir, 5, 5, "future")

	s := testContract(2).Empty()
	err := s.Load(path)
	require.ErrorIs(t, err, kerrors.ErrSettingsFromTheFuture)

	var future *FromTheFutureError
	require.True(t, errors.As(err, &future))
	assert.Equal(t, 5, future.FileVersion)
	assert.Equal(t, 2, future.SupportedVersion)
	assert.Equal(t, path, future.Path)

	assert.Equal(t, "default", s.Name, "settings must be untouched")
}

func TestReadJSONOlderVersionKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName(1))
	require.NoError(t, os.WriteFile(path, []byte(`{"VERSION": 1, "name": "old"}`), 0o644))

	s := testContract(2).Empty()
	require.NoError(t, s.Load(path))
	assert.Equal(t, "old", s.Name)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 1, s.Version)
}

func TestReadJSONCorrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `{"VERSION": 2, "name": "tr`},
		{"not an object", `[1, 2, 3]`},
		{"missing version", `{"name": "x"}`},
		{"wrong field type", `{"VERSION": 2, "count": "many"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName(2))
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			err := testContract(2).Empty().Load(path)
			require.ErrorIs(t, err, kerrors.ErrCorruptSettings)
			assert.NotErrorIs(t, err, kerrors.ErrSettingsFromTheFuture)
		})
	}
}

func TestReadJSONMissingFile(t *testing.T) {
	err := testContract(2).Empty().Load(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, kerrors.ErrCorruptSettings)
}
