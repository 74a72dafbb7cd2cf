// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

// GlobalDirName is the name of the global A2A directory.
const GlobalDirName = ".a2a"

// File names
const (
	DaemonFileName   = "daemon.yaml"
	SettingsFileName = "settings.yaml"
)

// GlobalDir returns the path to the global A2A directory (~/.a2a/).
// The A2A_HOME environment variable overrides the default location.
func GlobalDir() (string, error) {
	if override := os.Getenv("A2A_HOME"); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalDaemonFile returns the path to the daemon.yaml file.
func GlobalDaemonFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DaemonFileName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// EnsureGlobalDir creates the global A2A directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
