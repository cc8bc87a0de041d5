package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// BackupFile copies path to path.bak-<timestamp> and returns the copy's path.
// When that name is taken, a counter is appended (path.bak-<timestamp>.1).
// A missing path is not an error; the returned path is then empty.
func BackupFile(path string, now time.Time) (string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", nil
	}

	base := path + ".bak-" + now.Format("20060102-150405")
	backupPath := base
	for i := 1; ; i++ {
		err := copyFile(path, backupPath)
		if err == nil {
			return backupPath, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to back up %s: %w", path, err)
		}
		backupPath = fmt.Sprintf("%s.%d", base, i)
	}
}

// copyFile copies a file, keeping its mode. dst must not exist.
func copyFile(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, srcInfo.Mode())
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
