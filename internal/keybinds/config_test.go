package keybinds

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseConfig_JSONC(t *testing.T) {
	data := []byte(`{
	  // custom bindings
	  "version": "1.0",
	  "normal": {
	    "toggle_auto": "space, t",
	    "reset": "0", // trailing comma below
	  },
	}`)

	config, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if config.Version != "1.0" {
		t.Errorf("Version = %q", config.Version)
	}
	if config.Normal["toggle_auto"] != "space, t" {
		t.Errorf("toggle_auto = %q", config.Normal["toggle_auto"])
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	if _, err := ParseConfig([]byte(`{"normal": [1,2]}`)); err == nil {
		t.Error("expected error for wrong shape")
	}
}

func TestSplitKeys(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a", []string{"a"}},
		{"space,a", []string{" ", "a"}},
		{" left , h ", []string{"left", "h"}},
		{"", nil},
		{",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SplitKeys(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitKeys(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyConfig(t *testing.T) {
	r := NewDefaultRegistry()
	config := &Config{Normal: map[string]string{"toggle_auto": "t,space"}}

	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}

	if isBound(r, ContextNormal, "a") {
		t.Error("default key 'a' should be replaced")
	}
	for _, key := range []string{"t", " "} {
		if got, _ := r.Match(ContextNormal, key); got != ActionToggleAuto {
			t.Errorf("Match(%q) = %q, want toggle_auto", key, got)
		}
	}
}

func TestApplyConfig_UnknownAction(t *testing.T) {
	err := ApplyConfig(NewDefaultRegistry(), &Config{Help: map[string]string{"explode": "x"}})
	if err == nil || !strings.Contains(err.Error(), "explode") {
		t.Errorf("expected unknown action error, got %v", err)
	}
}

func TestApplyConfig_UnknownActionLeavesRegistry(t *testing.T) {
	r := NewDefaultRegistry()
	config := &Config{Normal: map[string]string{
		"reset":   "0",
		"explode": "x",
	}}

	if err := ApplyConfig(r, config); err == nil {
		t.Fatal("expected unknown action error")
	}
	if got, _ := r.Match(ContextNormal, "r"); got != ActionReset {
		t.Errorf("Match(r) = %q, registry should be unchanged", got)
	}
	if isBound(r, ContextNormal, "0") {
		t.Error("override applied despite the error")
	}
}

func TestApplyConfig_AcrossContexts(t *testing.T) {
	r := NewDefaultRegistry()
	config := &Config{
		Global: map[string]string{"quit_force": "ctrl+q"},
		Help:   map[string]string{"close_modal": "x"},
	}

	if err := ApplyConfig(r, config); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	if isBound(r, ContextGlobal, "ctrl+c") {
		t.Error("default ctrl+c should be replaced")
	}
	if got, _ := r.Match(ContextInput, "ctrl+q"); got != ActionQuitForce {
		t.Errorf("Match(input, ctrl+q) = %q, want quit_force through the global fallback", got)
	}
	if got := r.GetBinding(ContextHelp, ActionCloseModal); len(got) != 1 || got[0] != "x" {
		t.Errorf("close_modal keys = %v, want [x]", got)
	}
	if got, _ := r.Match(ContextHelp, "/"); got != ActionHelpSearch {
		t.Errorf("unlisted help action lost its key, got %q", got)
	}
}

func TestLoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty path", func(t *testing.T) {
		r, err := LoadOrDefault("")
		if err != nil || r == nil {
			t.Fatalf("LoadOrDefault(\"\") = %v, %v", r, err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		r, err := LoadOrDefault(filepath.Join(dir, "missing.json"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := r.Match(ContextNormal, "r"); got != ActionReset {
			t.Errorf("expected defaults, got %q", got)
		}
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(dir, "keybinds.json")
		if err := os.WriteFile(path, []byte(`{"normal": {"reset": "0"}}`), 0644); err != nil {
			t.Fatal(err)
		}
		r, err := LoadOrDefault(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := r.Match(ContextNormal, "0"); got != ActionReset {
			t.Errorf("Match(0) = %q, want reset", got)
		}
		if isBound(r, ContextNormal, "r") {
			t.Error("default 'r' should be replaced")
		}
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadOrDefault(path); err == nil {
			t.Error("expected error for broken file")
		}
	})
}

func TestExportDefaults_RoundTrip(t *testing.T) {
	config := ExportDefaults()
	if config.Normal["toggle_auto"] != "a,space" {
		t.Errorf("toggle_auto = %q, want a,space", config.Normal["toggle_auto"])
	}

	path := filepath.Join(t.TempDir(), "keybinds.json")
	if err := SaveConfig(config, path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "// gyrocompass keybindings") {
		t.Error("saved config should start with a comment header")
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	r := NewRegistry()
	if err := ApplyConfig(r, loaded); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	defaults := NewDefaultRegistry()
	if !reflect.DeepEqual(r.bindings, defaults.bindings) {
		t.Error("exported defaults should rebuild the default registry")
	}
}
