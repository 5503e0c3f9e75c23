package keybinds

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
)

// ConfigVersion is written by ExportDefaults
const ConfigVersion = "1.0"

// Config represents the user's keybinding configuration. Each section maps
// an action name to a comma-separated list of keys, e.g. "toggle_auto": "space,a".
// The file may contain // comments and trailing commas.
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Normal  map[string]string `json:"normal,omitempty"`
	Input   map[string]string `json:"input,omitempty"`
	Help    map[string]string `json:"help,omitempty"`
}

// sections pairs each context with its config section
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal: c.Global,
		ContextNormal: c.Normal,
		ContextInput:  c.Input,
		ContextHelp:   c.Help,
	}
}

// ParseConfig decodes a JSONC keybinding document
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}
	return &config, nil
}

// LoadConfig loads keybinding configuration from a JSONC file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// SaveConfig saves keybinding configuration to a file
func SaveConfig(config *Config, path string) error {
	data, err := MarshalConfig(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// MarshalConfig renders a config as commented JSONC
func MarshalConfig(config *Config) ([]byte, error) {
	body, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("// gyrocompass keybindings\n")
	buf.WriteString("// Each entry maps an action to comma-separated keys. Use \"space\" for the space bar.\n")
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// SplitKeys turns "space, a" into []string{" ", "a"}
func SplitKeys(spec string) []string {
	var keys []string
	for _, part := range strings.Split(spec, ",") {
		key := strings.TrimSpace(part)
		if key == "" {
			continue
		}
		if key == "space" {
			key = " "
		}
		keys = append(keys, key)
	}
	return keys
}

// displayKey is the inverse of SplitKeys for a single key
func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

// ApplyConfig applies user configuration to a registry
// An action listed in the config loses its default keys in that context.
// The registry is left untouched when the config names an unknown action.
func ApplyConfig(registry *Registry, config *Config) error {
	overrides := NewRegistry()
	for context, section := range config.sections() {
		for actionStr, keySpec := range section {
			action := Action(actionStr)
			if !IsKnownAction(action) {
				return fmt.Errorf("unknown action %q in context %q", actionStr, context)
			}
			overrides.RegisterMultiple(context, SplitKeys(keySpec), action)
		}
	}

	for context, section := range config.sections() {
		for actionStr := range section {
			registry.Unbind(context, Action(actionStr))
		}
	}
	registry.Merge(overrides)
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if configPath == "" {
		return registry, nil
	}

	if _, err := os.Stat(configPath); err == nil {
		config, err := LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
		}

		if err := ApplyConfig(registry, config); err != nil {
			return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
		}
	}

	return registry, nil
}

// ExportConfig converts a registry into the config file layout
func ExportConfig(registry *Registry) *Config {
	config := &Config{
		Version: ConfigVersion,
		Global:  map[string]string{},
		Normal:  map[string]string{},
		Input:   map[string]string{},
		Help:    map[string]string{},
	}

	for context, section := range config.sections() {
		grouped := make(map[Action][]string)
		for key, action := range registry.bindings[context] {
			grouped[action] = append(grouped[action], displayKey(key))
		}
		for action, keys := range grouped {
			sort.Strings(keys)
			section[string(action)] = strings.Join(keys, ",")
		}
	}

	return config
}

// ExportDefaults exports default keybindings as a config file
func ExportDefaults() *Config {
	return ExportConfig(NewDefaultRegistry())
}
