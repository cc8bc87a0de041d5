package workflows

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/commonwealth/internal/audit"
	"github.com/PolarWolf314/commonwealth/internal/configs"
	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	"github.com/PolarWolf314/commonwealth/internal/mavlink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTarget(t *testing.T) Target {
	t.Helper()
	return Target{AppName: "autopilot", ConfigRoot: t.TempDir()}
}

func appDir(target Target) string {
	return filepath.Join(target.ConfigRoot, target.AppName)
}

func writeFile(t *testing.T, target Target, name, content string) string {
	t.Helper()
	dir := appDir(target)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadCanonical(t *testing.T, target Target) *configs.VehicleSettings {
	t.Helper()
	s := configs.NewVehicleSettings()
	require.NoError(t, s.Load(filepath.Join(appDir(target), "settings-2.json")))
	return s
}

func TestOpenRejectsBadAppName(t *testing.T) {
	for _, name := range []string{"", "../escape", "a/b", ".hidden"} {
		_, err := Open(Target{AppName: name, ConfigRoot: t.TempDir()}, false)
		require.ErrorIs(t, err, kerrors.ErrInvalidAppName, name)
	}
}

func TestInit(t *testing.T) {
	ctx := context.Background()
	target := newTarget(t)

	result, err := Init(ctx, InitOptions{Target: target, VehicleName: "bluerov", VehicleType: "submarine"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(appDir(target), "settings-2.json"), result.Path)

	saved := loadCanonical(t, target)
	assert.Equal(t, "bluerov", saved.VehicleName)
	assert.Equal(t, mavlink.VehicleSubmarine, saved.VehicleType)

	_, err = Init(ctx, InitOptions{Target: target})
	require.ErrorIs(t, err, kerrors.ErrAlreadyInitialized)

	_, err = Init(ctx, InitOptions{Target: target, VehicleName: "again", Force: true})
	require.NoError(t, err)
	assert.Equal(t, "again", loadCanonical(t, target).VehicleName)

	entries, err := audit.ReadEntries(appDir(target))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "init", entries[0].Operation)
	assert.Equal(t, 2, entries[0].Version)
}

func TestInitRejectsOlderVersionsWithoutForce(t *testing.T) {
	target := newTarget(t)
	writeFile(t, target, "settings-1.json", `{"VERSION": 1, "vehicle_name": "old", "vehicle_type": "Rocket"}`)

	_, err := Init(context.Background(), InitOptions{Target: target})
	require.ErrorIs(t, err, kerrors.ErrAlreadyInitialized)
}

func TestInitDefaultsNameFromHost(t *testing.T) {
	target := newTarget(t)

	result, err := Init(context.Background(), InitOptions{Target: target})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Settings.VehicleName)
	assert.Equal(t, mavlink.VehicleGeneric, result.Settings.VehicleType)
}

func TestInitRejectsUnknownType(t *testing.T) {
	target := newTarget(t)

	_, err := Init(context.Background(), InitOptions{Target: target, VehicleType: "hovercraft"})
	require.ErrorIs(t, err, kerrors.ErrUnknownVehicleType)
	assert.NoFileExists(t, filepath.Join(appDir(target), "settings-2.json"))
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Show(ctx, newTarget(t))
	require.ErrorIs(t, err, context.Canceled)
}

func TestShowFirstRunCreatesDefaults(t *testing.T) {
	target := newTarget(t)

	result, err := Show(context.Background(), target)
	require.NoError(t, err)
	assert.False(t, result.Migrated)
	assert.Equal(t, result.CanonicalPath, result.Source)
	assert.FileExists(t, result.CanonicalPath)
}

func TestShowOlderVersion(t *testing.T) {
	target := newTarget(t)
	older := writeFile(t, target, "settings-1.json", `{"VERSION": 1, "vehicle_name": "legacy", "vehicle_type": "Rocket"}`)

	result, err := Show(context.Background(), target)
	require.NoError(t, err)
	assert.True(t, result.Migrated)
	assert.Equal(t, older, result.Source)
	assert.Equal(t, "legacy", result.Settings.VehicleName)
	assert.NoFileExists(t, result.CanonicalPath)
}

func TestPath(t *testing.T) {
	target := newTarget(t)

	result, err := Path(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, appDir(target), result.Dir)
	assert.False(t, result.Exists)
	assert.DirExists(t, result.Dir)
}

func TestVersions(t *testing.T) {
	target := newTarget(t)
	writeFile(t, target, "settings-5.json", `{"VERSION": 5}`)
	writeFile(t, target, "settings-2.json", `{"VERSION": 2, "vehicle_name": "current"}`)
	writeFile(t, target, "settings-1.json", `{"VERSION": 1, "vehicle_name": "old"}`)
	writeFile(t, target, "notes.txt", "ignored")

	result, err := Versions(context.Background(), target)
	require.NoError(t, err)
	require.Len(t, result.Entries, 3)
	assert.Equal(t, 2, result.SupportedVersion)
	assert.False(t, result.FallsBackToCanonical)
	assert.NoError(t, result.Blocked)

	assert.Equal(t, 5, result.Entries[0].Version)
	assert.Equal(t, StatusFromTheFuture, result.Entries[0].Status)
	assert.False(t, result.Entries[0].Active)

	assert.Equal(t, StatusLoadable, result.Entries[1].Status)
	assert.True(t, result.Entries[1].Active)
	assert.True(t, result.Entries[1].Canonical)

	assert.Equal(t, StatusLoadable, result.Entries[2].Status)
	assert.False(t, result.Entries[2].Active)

	assert.Equal(t, []string{result.Entries[0].Path}, result.Skipped)
}

func TestVersionsCorruptBlocksUnlessSkipped(t *testing.T) {
	target := newTarget(t)
	writeFile(t, target, "settings-2.json", `{not json`)
	writeFile(t, target, "settings-1.json", `{"VERSION": 1}`)

	result, err := Versions(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, StatusCorrupt, result.Entries[0].Status)
	assert.ErrorIs(t, result.Blocked, kerrors.ErrCorruptSettings)
	assert.False(t, result.Entries[1].Active)

	target.SkipCorrupt = true
	result, err = Versions(context.Background(), target)
	require.NoError(t, err)
	assert.NoError(t, result.Blocked)
	assert.True(t, result.Entries[1].Active)
}

func TestVersionsSkippedCorruptCanonicalStillBlocks(t *testing.T) {
	target := newTarget(t)
	target.SkipCorrupt = true
	writeFile(t, target, "settings-2.json", `{not json`)

	result, err := Versions(context.Background(), target)
	require.NoError(t, err)
	assert.False(t, result.FallsBackToCanonical)
	assert.ErrorIs(t, result.Blocked, kerrors.ErrCorruptSettings)

	m, err := Open(target, false)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Load(), kerrors.ErrCorruptSettings)
}

func TestVersionsFallsBackWhenOnlyFutureFiles(t *testing.T) {
	target := newTarget(t)
	writeFile(t, target, "settings-9.json", `{"VERSION": 9}`)

	result, err := Versions(context.Background(), target)
	require.NoError(t, err)
	assert.True(t, result.FallsBackToCanonical)
	assert.NoFileExists(t, filepath.Join(appDir(target), "settings-2.json"))
}

func TestSet(t *testing.T) {
	target := newTarget(t)
	writeFile(t, target, "settings-1.json", `{"VERSION": 1, "vehicle_name": "legacy", "vehicle_type": "Rocket"}`)

	result, err := Set(context.Background(), SetOptions{
		Target: target,
		Changes: []Change{
			{Key: configs.KeyVehicleName, Value: "rover"},
			{Key: configs.KeyVehicleType, Value: "ground rover"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "legacy", result.Previous.VehicleName)

	saved := loadCanonical(t, target)
	assert.Equal(t, "rover", saved.VehicleName)
	assert.Equal(t, mavlink.VehicleGroundRover, saved.VehicleType)

	entries, err := audit.ReadEntries(appDir(target))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, configs.KeyVehicleType, entries[1].Key)
}

func TestSetIsAllOrNothing(t *testing.T) {
	target := newTarget(t)
	_, err := Init(context.Background(), InitOptions{Target: target, VehicleName: "before"})
	require.NoError(t, err)

	_, err = Set(context.Background(), SetOptions{
		Target: target,
		Changes: []Change{
			{Key: configs.KeyVehicleName, Value: "after"},
			{Key: "colour", Value: "red"},
		},
	})
	require.ErrorIs(t, err, kerrors.ErrUnknownSettingsKey)
	assert.Equal(t, "before", loadCanonical(t, target).VehicleName)
}

func TestExportImport(t *testing.T) {
	ctx := context.Background()
	source := newTarget(t)
	_, err := Init(ctx, InitOptions{Target: source, VehicleName: "exported", VehicleType: "surface boat"})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "vehicle.toml")
	exported, err := Export(ctx, ExportOptions{Target: source, OutputPath: out})
	require.NoError(t, err)
	assert.Equal(t, out, exported.OutputPath)
	assert.FileExists(t, out)

	dest := newTarget(t)
	_, err = Init(ctx, InitOptions{Target: dest, VehicleName: "replaced"})
	require.NoError(t, err)

	imported, err := Import(ctx, ImportOptions{Target: dest, InputPath: out})
	require.NoError(t, err)
	assert.NotEmpty(t, imported.BackupPath)
	assert.FileExists(t, imported.BackupPath)

	saved := loadCanonical(t, dest)
	assert.Equal(t, "exported", saved.VehicleName)
	assert.Equal(t, mavlink.VehicleSurfaceBoat, saved.VehicleType)
	assert.Equal(t, exported.Settings.InstanceID, saved.InstanceID)

	entries, err := audit.ReadEntries(appDir(dest))
	require.NoError(t, err)
	assert.Equal(t, "import", entries[len(entries)-1].Operation)
}

func TestImportDryRun(t *testing.T) {
	target := newTarget(t)
	data := []byte("VERSION = 2\nvehicle_name = \"dry\"\n")

	result, err := Import(context.Background(), ImportOptions{Target: target, InputPath: "<stdin>", Data: data, DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Equal(t, "dry", result.Settings.VehicleName)
	assert.Equal(t, filepath.Join(appDir(target), "settings-2.json"), result.Path)
	assert.NoDirExists(t, appDir(target))
}

func TestImportFromTheFuture(t *testing.T) {
	target := newTarget(t)

	_, err := Import(context.Background(), ImportOptions{Target: target, InputPath: "<stdin>", Data: []byte("VERSION = 3\n")})
	require.ErrorIs(t, err, kerrors.ErrSettingsFromTheFuture)
	assert.NoFileExists(t, filepath.Join(appDir(target), "settings-2.json"))
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	target := newTarget(t)
	initResult, err := Init(ctx, InitOptions{Target: target, VehicleName: "custom", VehicleType: "kite"})
	require.NoError(t, err)
	future := writeFile(t, target, "settings-4.json", `{"VERSION": 4}`)

	result, err := Reset(ctx, ResetOptions{Target: target, KeepInstanceID: true})
	require.NoError(t, err)
	assert.FileExists(t, result.BackupPath)
	assert.FileExists(t, future)

	saved := loadCanonical(t, target)
	assert.Equal(t, "vehicle", saved.VehicleName)
	assert.Equal(t, mavlink.VehicleGeneric, saved.VehicleType)
	assert.Equal(t, initResult.Settings.InstanceID, saved.InstanceID)

	backup := configs.NewVehicleSettings()
	require.NoError(t, backup.Load(result.BackupPath))
	assert.Equal(t, "custom", backup.VehicleName)
}

func TestResetWithoutExistingFile(t *testing.T) {
	result, err := Reset(context.Background(), ResetOptions{Target: newTarget(t)})
	require.NoError(t, err)
	assert.Empty(t, result.BackupPath)
	assert.FileExists(t, result.Path)
}

func TestResetRecoversCorruptCanonicalFile(t *testing.T) {
	target := newTarget(t)
	path := writeFile(t, target, "settings-2.json", `{not json`)

	result, err := Reset(context.Background(), ResetOptions{Target: target, KeepInstanceID: true})
	require.NoError(t, err)
	assert.ErrorIs(t, result.InstanceIDErr, kerrors.ErrCorruptSettings)

	saved := loadCanonical(t, target)
	assert.Equal(t, result.Settings.InstanceID, saved.InstanceID)
	assert.NotEmpty(t, saved.InstanceID)

	backup, err := os.ReadFile(result.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(backup))
	assert.Equal(t, path, result.Path)
}

func TestResetKeepsIDWithoutCreatingSpareBackup(t *testing.T) {
	target := newTarget(t)
	writeFile(t, target, "settings-1.json", `{"VERSION": 1, "vehicle_name": "old"}`)

	result, err := Reset(context.Background(), ResetOptions{Target: target, KeepInstanceID: true})
	require.NoError(t, err)
	assert.NoError(t, result.InstanceIDErr)
	assert.Empty(t, result.BackupPath)

	backups, err := filepath.Glob(filepath.Join(appDir(target), "*.bak-*"))
	require.NoError(t, err)
	assert.Empty(t, backups)
}

func TestHistory(t *testing.T) {
	target := newTarget(t)
	writeFile(t, target, audit.FileName, strings.Join([]string{
		`{"ts":"2024-01-10T10:00:00.000000Z","app":"autopilot","op":"init"}`,
		`{"ts":"2024-01-15T10:00:00.000000Z","app":"autopilot","op":"set","key":"vehicle-name","value":"a"}`,
		`{"ts":"2024-01-20T10:00:00.000000Z","app":"autopilot","op":"set","key":"vehicle-name","value":"b"}`,
		`{"ts":"2024-02-01T10:00:00.000000Z","app":"autopilot","op":"reset"}`,
	}, "\n"))

	ctx := context.Background()

	all, err := History(ctx, HistoryOptions{Target: target})
	require.NoError(t, err)
	assert.Len(t, all.Entries, 4)
	assert.Equal(t, 4, all.TotalEntriesBeforeFilter)

	sets, err := History(ctx, HistoryOptions{Target: target, Operations: "set"})
	require.NoError(t, err)
	assert.Len(t, sets.Entries, 2)

	ranged, err := History(ctx, HistoryOptions{Target: target, Since: "2024-01-15", Until: "2024-01-20"})
	require.NoError(t, err)
	assert.Len(t, ranged.Entries, 2)

	latest, err := History(ctx, HistoryOptions{Target: target, Limit: 1, Reverse: true})
	require.NoError(t, err)
	require.Len(t, latest.Entries, 1)
	assert.Equal(t, "reset", latest.Entries[0].Operation)

	_, err = History(ctx, HistoryOptions{Target: target, Since: "15/01/2024"})
	require.ErrorIs(t, err, kerrors.ErrInvalidDateFormat)
}

func TestHistoryMissingJournal(t *testing.T) {
	_, err := History(context.Background(), HistoryOptions{Target: newTarget(t)})
	require.ErrorIs(t, err, kerrors.ErrNoHistory)
}

func TestFormatDetails(t *testing.T) {
	assert.Equal(t, "vehicle-name=rov", FormatDetails(audit.Entry{Operation: "set", Key: "vehicle-name", Value: "rov"}))
	assert.Equal(t, "out.toml", FormatDetails(audit.Entry{Operation: "export", OutputPath: "out.toml"}))
	assert.Equal(t, "backup x.bak", FormatDetails(audit.Entry{Operation: "reset", BackupPath: "x.bak"}))
	assert.Equal(t, "", FormatDetails(audit.Entry{Operation: "unknown"}))
}

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "2024-01-15 10:30:00", FormatDateTime("2024-01-15T10:30:00.000000Z"))
	assert.Equal(t, "garbage", FormatDateTime("garbage"))
}
