package incfg

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadFile reads a configuration file and applies it to the registry. A
// missing file is reported as ErrNotFound so callers can treat a first run
// without a config file as non-fatal.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: opening %s: %v", ErrLoad, path, err)
	}
	defer f.Close()

	if err := r.Load(f); err != nil {
		r.logger().Error("loading %s failed: %v", path, err)
		return fmt.Errorf("loading %s: %w", path, err)
	}

	r.logger().Debug("loaded configuration from %s", path)
	return nil
}

// SaveFile writes the current configuration text to path.
// It performs an atomic write using a temporary file.
func (r *Registry) SaveFile(path string) error {
	data := []byte(r.ConfigString())

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %q: %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file: %w", err)
	}
	defer os.Remove(tempFile.Name()) // Clean up temp file if rename fails

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temp config file %q: %w", tempFile.Name(), err)
	}
	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temp config file %q: %w", tempFile.Name(), err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp config file %q: %w", tempFile.Name(), err)
	}

	if err := os.Rename(tempFile.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temp file to %q: %w", path, err)
	}
	if err := os.Chmod(path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on config file %q: %w", path, err)
	}

	r.logger().Debug("saved configuration to %s", path)
	return nil
}
