// Package config handles the persisted settings record and its path.
package config

import (
	"os"
	"path/filepath"
)

const (
	// DirName is the per-user configuration directory name.
	DirName = "dankdim"

	// FileName is the settings file inside DirName.
	FileName = "config.yaml"
)

// Dir returns the configuration directory, honoring XDG_CONFIG_HOME.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, DirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", DirName), nil
}

// File returns the path to the settings file.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}
