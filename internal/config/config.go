package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// LocalSettingsFile overrides the global settings when present in the working directory
	LocalSettingsFile = ".gyrocompass.yaml"
)

var (
	// ConfigDir is the global configuration directory (~/.gyrocompass)
	ConfigDir string

	// SettingsFile is the global settings file
	SettingsFile string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string

	// LogFile receives the application log while the TUI owns the terminal
	LogFile string
)

// Initialize sets up the configuration directory and files
// It creates ~/.gyrocompass/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	return InitializeAt(filepath.Join(homeDir, ".gyrocompass"))
}

// InitializeAt is Initialize rooted at an explicit directory
func InitializeAt(dir string) error {
	ConfigDir = dir
	SettingsFile = filepath.Join(ConfigDir, "settings.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "gyrocompass.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Create default settings file if it doesn't exist
	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		if err := SaveSettings(SettingsFile, DefaultSettings()); err != nil {
			return fmt.Errorf("failed to create settings file: %w", err)
		}
	}

	return nil
}

// LocalConfigExists checks if there's a local .gyrocompass.yaml
func LocalConfigExists() bool {
	_, err := os.Stat(LocalSettingsFile)
	return err == nil
}

// GetSettingsFilePath returns the settings file path (local or global)
func GetSettingsFilePath() string {
	if LocalConfigExists() {
		return LocalSettingsFile
	}
	return SettingsFile
}
