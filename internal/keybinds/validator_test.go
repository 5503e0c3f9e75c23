package keybinds

import (
	"strings"
	"testing"
)

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	if v == nil {
		t.Fatal("NewValidator returned nil")
	}

	if !v.reservedKeys["ctrl+c"] {
		t.Error("Expected ctrl+c to be a reserved key")
	}
}

func TestValidateConfig_DoesNotModifyDefaults(t *testing.T) {
	v := NewValidator()

	noQuit := &Config{
		Global: map[string]string{"quit_force": ""},
		Normal: map[string]string{"quit": ""},
	}
	if result := v.ValidateConfig(noQuit); !result.HasErrors() {
		t.Fatalf("expected an error for a config without quit, got %s", result.String())
	}

	if result := v.ValidateConfig(&Config{}); result.HasErrors() || result.HasWarnings() {
		t.Errorf("empty config after a failing one: %s", result.String())
	}
	if got, _ := v.base.Match(ContextNormal, "q"); got != ActionQuit {
		t.Errorf("validator defaults changed: Match(q) = %q", got)
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "conflict error",
			err: ValidationError{
				Type:    "conflict",
				Context: ContextNormal,
				Key:     "q",
				Message: "key bound to 2 actions",
			},
			expected: "[conflict] q in context 'normal': key bound to 2 actions",
		},
		{
			name: "invalid error",
			err: ValidationError{
				Type:    "invalid",
				Context: ContextGlobal,
				Message: "empty key",
			},
			expected: "[invalid]  in context 'global': empty key",
		},
		{
			name: "warning",
			err: ValidationError{
				Type:    "warning",
				Context: ContextHelp,
				Key:     "ctrl+c",
				Message: "shadows global binding",
			},
			expected: "[warning] ctrl+c in context 'help': shadows global binding",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidationResult_String(t *testing.T) {
	empty := &ValidationResult{}
	if got := empty.String(); got != "No issues found" {
		t.Errorf("String() = %q, want %q", got, "No issues found")
	}

	result := &ValidationResult{
		Errors:   []ValidationError{{Type: "conflict", Context: ContextNormal, Key: "x", Message: "dup"}},
		Warnings: []ValidationError{{Type: "warning", Context: ContextHelp, Key: "y", Message: "shadow"}},
	}
	got := result.String()
	if !strings.Contains(got, "Errors (1):") || !strings.Contains(got, "Warnings (1):") {
		t.Errorf("String() missing sections: %q", got)
	}
	if !result.HasErrors() || !result.HasWarnings() {
		t.Error("expected both errors and warnings")
	}
}

func TestValidateRegistry_Defaults(t *testing.T) {
	result := NewValidator().ValidateRegistry(NewDefaultRegistry())

	if result.HasErrors() {
		t.Errorf("default registry has errors:\n%s", result.String())
	}
	if result.HasWarnings() {
		t.Errorf("default registry has warnings:\n%s", result.String())
	}
}

func TestValidateRegistry_ShadowAndReserved(t *testing.T) {
	r := NewDefaultRegistry()
	r.Register(ContextHelp, "ctrl+c", ActionCloseModal)

	result := NewValidator().ValidateRegistry(r)

	var shadow, reserved bool
	for _, w := range result.Warnings {
		if w.Context != ContextHelp || w.Key != "ctrl+c" {
			continue
		}
		if strings.Contains(w.Message, "shadows global") {
			shadow = true
		}
		if strings.Contains(w.Message, "reserved") {
			reserved = true
		}
	}
	if !shadow {
		t.Error("expected shadowing warning")
	}
	if !reserved {
		t.Error("expected reserved key warning")
	}
}

func TestValidateRegistry_NoQuit(t *testing.T) {
	r := NewDefaultRegistry()
	r.Unbind(ContextNormal, ActionQuit)
	r.Unbind(ContextGlobal, ActionQuitForce)

	result := NewValidator().ValidateRegistry(r)
	if !result.HasErrors() {
		t.Fatal("expected an error when nothing quits")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name       string
		config     *Config
		wantErrors bool
		wantType   string
	}{
		{
			name:   "empty config",
			config: &Config{Version: ConfigVersion},
		},
		{
			name: "simple override",
			config: &Config{Normal: map[string]string{
				"toggle_auto": "t",
			}},
		},
		{
			name: "unknown action",
			config: &Config{Normal: map[string]string{
				"fly_away": "f",
			}},
			wantErrors: true,
			wantType:   "invalid",
		},
		{
			name: "duplicate key",
			config: &Config{Normal: map[string]string{
				"reset":       "x",
				"toggle_auto": "space,x",
			}},
			wantErrors: true,
			wantType:   "conflict",
		},
		{
			name: "modifier only",
			config: &Config{Normal: map[string]string{
				"reset": "ctrl+",
			}},
			wantErrors: true,
			wantType:   "invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewValidator().ValidateConfig(tt.config)

			if result.HasErrors() != tt.wantErrors {
				t.Fatalf("HasErrors() = %v, want %v\n%s", result.HasErrors(), tt.wantErrors, result.String())
			}
			if tt.wantType != "" && result.Errors[0].Type != tt.wantType {
				t.Errorf("first error type = %q, want %q", result.Errors[0].Type, tt.wantType)
			}
		})
	}
}

func TestValidateConfig_EmptyKeysWarns(t *testing.T) {
	config := &Config{Normal: map[string]string{"copy_heading": ""}}

	result := NewValidator().ValidateConfig(config)
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %s", result.String())
	}
	if !result.HasWarnings() {
		t.Error("expected a warning for an action with no keys")
	}
}

func TestValidateConfig_ConflictListsActions(t *testing.T) {
	config := &Config{Help: map[string]string{
		"scroll_up":   "k",
		"scroll_down": "k",
	}}

	result := NewValidator().ValidateConfig(config)
	if len(result.Errors) != 1 || result.Errors[0].Type != "conflict" {
		t.Fatalf("ValidateConfig() errors = %v, want 1 conflict", result.Errors)
	}
	if !strings.Contains(result.Errors[0].Error(), "scroll_down, scroll_up") {
		t.Errorf("conflict should list both actions: %q", result.Errors[0].Error())
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key     string
		wantErr bool
	}{
		{"q", false},
		{"ctrl+c", false},
		{" ", false},
		{"", true},
		{"alt+", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if err := ValidateKey(tt.key); (err != nil) != tt.wantErr {
				t.Errorf("ValidateKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
		})
	}
}
