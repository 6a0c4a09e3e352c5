package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetPxhHome returns the pxhist home directory.
// Priority order:
//  1. PXH_HOME environment variable (if set)
//  2. $HOME/.pxh
//
// The directory is created if it doesn't exist.
func GetPxhHome() (string, error) {
	if home := os.Getenv("PXH_HOME"); home != "" {
		if err := os.MkdirAll(home, 0755); err != nil {
			return "", fmt.Errorf("create pxh home directory: %w", err)
		}
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home directory: %w", err)
	}

	pxhHome := filepath.Join(userHome, ".pxh")
	if err := os.MkdirAll(pxhHome, 0755); err != nil {
		return "", fmt.Errorf("create pxh home directory: %w", err)
	}
	return pxhHome, nil
}

// GetStorePath returns the absolute path to the sqlite history store.
// PXH_DB_PATH, when set, overrides the entire path (used by tests and by
// machines that keep the store outside $PXH_HOME, e.g. on a synced volume).
// Otherwise the store lives at $PXH_HOME/history.db.
func GetStorePath() (string, error) {
	if path := os.Getenv("PXH_DB_PATH"); path != "" {
		return path, nil
	}

	home, err := GetPxhHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "history.db"), nil
}

// GetConfigPath returns the absolute path to the YAML config file,
// $PXH_HOME/config.yaml. The file need not exist; DefaultConfig covers it.
func GetConfigPath() (string, error) {
	home, err := GetPxhHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}
