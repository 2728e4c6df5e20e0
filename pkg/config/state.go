// Package config provides directory resolution and user settings
// for the shipfive application.
package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the default state directory when set.
const EnvHome = "SHIPFIVE_HOME"

var baseDirOverride string

// SetShipDir pins the state directory, typically from the --state-dir flag.
// An empty dir restores the default resolution.
func SetShipDir(dir string) {
	baseDirOverride = dir
}

// GetShipDir returns the path to the .shipfive directory
func GetShipDir() (string, error) {
	if baseDirOverride != "" {
		return baseDirOverride, nil
	}
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".shipfive"), nil
}

// EnsureShipDir creates the .shipfive directory if it doesn't exist
func EnsureShipDir() error {
	shipDir, err := GetShipDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(shipDir, 0755)
}

// PathInShipDir joins name onto the state directory.
func PathInShipDir(name string) (string, error) {
	shipDir, err := GetShipDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(shipDir, name), nil
}
