// Package config reads user settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings for the rmdoc command.
type Settings struct {
	// Store is the directory with the notebook files.
	Store string `yaml:"store"`
	// Templates is the directory with SVG page templates.
	// Empty disables templates.
	Templates string `yaml:"templates"`
	// Output is the directory where converted files are written.
	Output   string `yaml:"output"`
	LogLevel string `yaml:"loglevel"`
	// Workers is the number of documents converted in parallel.
	Workers int `yaml:"workers"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		Store:    ".",
		Output:   ".",
		LogLevel: "warning",
		Workers:  4,
	}
}

// DefaultPath is the location of the settings file,
// usually "~/.config/rmdoc/config.yaml".
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "rmdoc", "config.yaml"), nil
}

// Load reads settings from the given file.
// Values that are not set in the file keep their default.
// If the file does not exist, the defaults are returned.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	} else if err != nil {
		return s, err
	}

	err = yaml.Unmarshal(data, &s)
	if err != nil {
		return s, fmt.Errorf("invalid settings in %q: %w", path, err)
	}

	return s, s.Validate()
}

// Merge returns a copy of s where all non-zero values from other
// take precedence.
func (s Settings) Merge(other Settings) Settings {
	if other.Store != "" {
		s.Store = other.Store
	}
	if other.Templates != "" {
		s.Templates = other.Templates
	}
	if other.Output != "" {
		s.Output = other.Output
	}
	if other.LogLevel != "" {
		s.LogLevel = other.LogLevel
	}
	if other.Workers != 0 {
		s.Workers = other.Workers
	}
	return s
}

// Validate checks for invalid values.
func (s Settings) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	return nil
}
