package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DatabasePath returns the default location of the event database, under
// the platform's local data directory.
func DatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	var dataDir string
	switch runtime.GOOS {
	case "darwin":
		dataDir = filepath.Join(home, "Library/Application Support")
	case "windows":
		dataDir = os.Getenv("LOCALAPPDATA")
		if dataDir == "" {
			dataDir = filepath.Join(home, "AppData", "Local")
		}
	default:
		dataDir = os.Getenv("XDG_DATA_HOME")
		if dataDir == "" {
			dataDir = filepath.Join(home, ".local/share")
		}
	}

	return filepath.Join(dataDir, "worklog", "db.sqlite3"), nil
}

// ConfigPath returns the default location of the config file, under the
// platform's config directory.
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "worklog", "config.yaml"), nil
}
