package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/commonwealth/internal/errors"
	logger "github.com/PolarWolf314/commonwealth/internal/logging"
)

// Logger is the logging surface the manager needs.
type Logger interface {
	Debugf(msg string, args ...any)
	Infof(msg string, args ...any)
	Warnf(msg string, args ...any)
}

// Options configures a Manager.
type Options struct {
	// ConfigRoot overrides the platform config location. The manager uses
	// ConfigRoot/<appName> when set.
	ConfigRoot string

	// NoAutoLoad defers Load until settings are first read or saved.
	NoAutoLoad bool

	// SkipCorrupt makes Load skip candidates that fail with ErrCorruptSettings
	// instead of aborting. I/O errors always abort.
	SkipCorrupt bool

	// Logger defaults to a quiet logger.Logger.
	Logger Logger
}

// Manager resolves, loads, caches and saves the settings of one application.
// A Manager is not safe for concurrent use.
type Manager[T Settings] struct {
	appName     string
	dir         string
	contract    Contract[T]
	cache       cache[T]
	skipCorrupt bool
	log         Logger
}

// New creates a manager for appName, creating its config directory if
// needed. Unless opts.NoAutoLoad is set, settings are loaded immediately.
// An empty appName or an invalid contract yields an error wrapping
// ErrPrecondition.
func New[T Settings](appName string, contract Contract[T], opts Options) (*Manager[T], error) {
	if appName == "" {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrPrecondition, kerrors.ErrEmptyAppName)
	}
	if err := contract.validate(); err != nil {
		return nil, err
	}

	dir, err := ConfigDirectory(appName, opts.ConfigRoot)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	var log Logger = logger.Logger{}
	if opts.Logger != nil {
		log = opts.Logger
	}

	m := &Manager[T]{
		appName:     appName,
		dir:         dir,
		contract:    contract,
		skipCorrupt: opts.SkipCorrupt,
		log:         log,
	}
	m.log.Debugf("Starting %s settings with %s (version %d), configuration path: %s", appName, contract.Name, contract.Version, dir)

	if !opts.NoAutoLoad {
		if err := m.Load(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// AppName returns the application name the manager was created with.
func (m *Manager[T]) AppName() string {
	return m.appName
}

// Dir returns the config directory.
func (m *Manager[T]) Dir() string {
	return m.dir
}

// Version returns the schema version of the manager's contract.
func (m *Manager[T]) Version() int {
	return m.contract.Version
}

// CanonicalPath returns the settings file for the contract's own version.
// Save always writes here.
func (m *Manager[T]) CanonicalPath() string {
	return filepath.Join(m.dir, FileName(m.contract.Version))
}

// Loaded reports whether settings are cached.
func (m *Manager[T]) Loaded() bool {
	_, ok := m.cache.get()
	return ok
}

// Source returns the file the cached settings were read from or last
// written to, or "" before the first load.
func (m *Manager[T]) Source() string {
	return m.cache.source
}

// Candidates lists the settings files in the config directory, newest first.
func (m *Manager[T]) Candidates() ([]Candidate, error) {
	return Candidates(m.dir)
}

// Load replaces the cached settings with the newest loadable file.
//
// Candidates are tried newest version first. A file written by a newer
// schema is skipped; so is a corrupt file when SkipCorrupt is set. Any other
// failure aborts and leaves the cache as it was. When no candidate loads,
// the canonical file is loaded, or created with defaults if absent.
func (m *Manager[T]) Load() error {
	candidates, err := m.Candidates()
	if err != nil {
		return fmt.Errorf("discovering settings in %s: %w", m.dir, err)
	}
	m.log.Debugf("Found %d possible candidate(s) for settings source", len(candidates))

	for _, candidate := range candidates {
		m.log.Debugf("Checking %s for settings", candidate.Path)

		value, err := LoadFromFile(m.contract, candidate.Path)
		if err == nil {
			m.log.Debugf("Using %s as settings source", candidate.Path)
			m.cache.set(value, candidate.Path)
			return nil
		}

		switch {
		case errors.Is(err, kerrors.ErrSettingsFromTheFuture):
			m.log.Debugf("Invalid settings, going to try another file: %v", err)
		case m.skipCorrupt && errors.Is(err, kerrors.ErrCorruptSettings):
			m.log.Warnf("Skipping corrupt settings file: %v", err)
		default:
			return err
		}
	}

	path := m.CanonicalPath()
	m.log.Debugf("No usable candidate, falling back to %s", path)
	value, err := LoadFromFile(m.contract, path)
	if err != nil {
		return err
	}
	m.cache.set(value, path)
	return nil
}

func (m *Manager[T]) ensureLoaded() (T, error) {
	if value, ok := m.cache.get(); ok {
		return value, nil
	}

	if err := m.Load(); err != nil {
		var zero T
		return zero, err
	}
	value, _ := m.cache.get()
	return value, nil
}

// Settings returns the cached settings, loading them on first use.
func (m *Manager[T]) Settings() (T, error) {
	return m.ensureLoaded()
}

// SetSettings writes value to the canonical path and, once written, makes it
// the cached settings. On a write error the cache is unchanged.
func (m *Manager[T]) SetSettings(value T) error {
	path := m.CanonicalPath()
	if err := value.Save(path); err != nil {
		return fmt.Errorf("saving settings to %s: %w", path, err)
	}
	m.cache.set(value, path)
	m.log.Infof("Settings saved to %s", path)
	return nil
}

// Save writes the cached settings, loading them first if needed, to the
// canonical path. An existing file at that path is overwritten.
func (m *Manager[T]) Save() error {
	value, err := m.ensureLoaded()
	if err != nil {
		return err
	}
	return m.SetSettings(value)
}

// LoadFromFile reads the settings at path, or writes defaults there if the
// file does not exist. Errors from the settings object, including
// ErrSettingsFromTheFuture, are returned as-is. On success path exists.
func LoadFromFile[T Settings](contract Contract[T], path string) (T, error) {
	var zero T
	if err := contract.validate(); err != nil {
		return zero, err
	}

	value := contract.Empty()

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := value.Load(path); err != nil {
			return zero, err
		}
	case os.IsNotExist(err):
		if err := value.Save(path); err != nil {
			return zero, fmt.Errorf("creating default settings at %s: %w", path, err)
		}
	default:
		return zero, fmt.Errorf("checking settings file %s: %w", path, err)
	}

	return value, nil
}
