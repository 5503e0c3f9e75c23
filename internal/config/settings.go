package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is wrapped by every settings validation failure
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the user-tunable knobs of the simulator
type Settings struct {
	// TickInterval is the auto-rotate period
	TickInterval time.Duration `yaml:"tick_interval"`
	// MessageTimeout is how long status messages stay in the footer (seconds, 0 = forever)
	MessageTimeout int `yaml:"message_timeout"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// DefaultSettings returns the shipped configuration
func DefaultSettings() Settings {
	return Settings{
		TickInterval:   100 * time.Millisecond,
		MessageTimeout: 3,
		LogLevel:       "info",
	}
}

// Validate checks every field
func (s Settings) Validate() error {
	if s.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s: %w", s.TickInterval, ErrInvalidSettings)
	}
	if s.MessageTimeout < 0 {
		return fmt.Errorf("message_timeout must not be negative, got %d: %w", s.MessageTimeout, ErrInvalidSettings)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q: %w", s.LogLevel, ErrInvalidSettings)
	}
	return nil
}

// MessageDuration returns MessageTimeout as a duration
func (s Settings) MessageDuration() time.Duration {
	return time.Duration(s.MessageTimeout) * time.Second
}

// LoadSettings reads settings from a YAML file. Fields missing from the
// file keep their defaults; a missing file yields the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return DefaultSettings(), fmt.Errorf("%s: %w", path, err)
	}

	return settings, nil
}

// SaveSettings writes settings as YAML
func SaveSettings(path string, settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return os.WriteFile(path, data, FilePermissions)
}
