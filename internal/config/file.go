package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the optional on-disk configuration. Every field is optional;
// absent fields keep the built-in defaults.
type File struct {
	IntervalMs    *int   `yaml:"interval_ms"`
	ShowAncestors *bool  `yaml:"show_ancestors"`
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
}

// DefaultPath returns <user config dir>/window-viewer/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, "window-viewer", "config.yaml"), nil
}

// LoadFile reads path. A missing file is not an error and yields an empty
// File.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &f, nil
}

// Apply copies the file's settings into d. Out-of-range intervals are
// clamped.
func (f *File) Apply(d *Display) {
	if f.IntervalMs != nil {
		d.SetIntervalMs(*f.IntervalMs)
	}
	if f.ShowAncestors != nil {
		d.SetShowAncestors(*f.ShowAncestors)
	}
}
