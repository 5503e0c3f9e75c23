package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/ranwar/GyroCompassSimulator/internal/keybinds"
)

// ExportKeybinds writes the default keybindings as a JSONC config file,
// syntax highlighted for a terminal when color is set
func ExportKeybinds(w io.Writer, color bool) error {
	data, err := keybinds.MarshalConfig(keybinds.ExportDefaults())
	if err != nil {
		return fmt.Errorf("failed to export keybindings: %w", err)
	}

	if !color {
		_, err := w.Write(data)
		return err
	}
	return quick.Highlight(w, string(data), "json", "terminal256", "monokai")
}

// SaveKeybinds writes the default keybindings to path. An existing file is
// only replaced when force is set.
func SaveKeybinds(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := keybinds.SaveConfig(keybinds.ExportDefaults(), path); err != nil {
		return fmt.Errorf("failed to save keybindings: %w", err)
	}
	return nil
}

// ValidateKeybinds checks a keybinds.json file and writes the report.
// Errors in the file are returned; warnings are only reported.
func ValidateKeybinds(w io.Writer, path string) error {
	config, err := keybinds.LoadConfig(path)
	if err != nil {
		return err
	}

	result := keybinds.NewValidator().ValidateConfig(config)
	fmt.Fprintln(w, result.String())

	if result.HasErrors() {
		return fmt.Errorf("%s has %d keybinding error(s)", path, len(result.Errors))
	}
	return nil
}
