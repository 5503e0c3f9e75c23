package keybinds

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys are keys that should not be rebound
	reservedKeys map[string]bool
	// base is the registry a config is applied to; it is never modified
	base *Registry
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]bool{
			"ctrl+c": true, // Force quit should always work
		},
		base: NewDefaultRegistry(),
	}
}

// ValidateConfig validates a configuration before applying it
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	for _, context := range Contexts {
		section := config.sections()[context]
		owners := make(map[string][]string)

		for _, actionStr := range sortedKeys(section) {
			if err := ValidateAction(actionStr); err != nil {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Message: err.Error(),
				})
				continue
			}

			keys := SplitKeys(section[actionStr])
			if len(keys) == 0 {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Message: fmt.Sprintf("action %s has no keys and will be unbound", actionStr),
				})
			}

			for _, key := range keys {
				if err := ValidateKey(key); err != nil {
					result.Errors = append(result.Errors, ValidationError{
						Type:    "invalid",
						Context: context,
						Key:     key,
						Message: err.Error(),
					})
					continue
				}
				owners[key] = append(owners[key], actionStr)
			}
		}

		for _, key := range sortedKeys(owners) {
			if actions := owners[key]; len(actions) > 1 {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "conflict",
					Context: context,
					Key:     displayKey(key),
					Message: fmt.Sprintf("key bound to %d actions (%s)", len(actions), strings.Join(actions, ", ")),
				})
			}
		}
	}

	if result.HasErrors() {
		return result
	}

	registry := v.base.Clone()
	if err := ApplyConfig(registry, config); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "invalid",
			Message: err.Error(),
		})
		return result
	}

	registryResult := v.ValidateRegistry(registry)
	result.Errors = append(result.Errors, registryResult.Errors...)
	result.Warnings = append(result.Warnings, registryResult.Warnings...)
	return result
}

// ValidateRegistry validates an entire registry
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	v.checkReservedKeys(registry, result)
	v.checkShadowing(registry, result)
	v.checkUnboundQuit(registry, result)

	return result
}

// checkReservedKeys checks if any reserved keys have been rebound
func (v *Validator) checkReservedKeys(registry *Registry, result *ValidationResult) {
	for _, context := range Contexts {
		for _, key := range sortedKeys(registry.bindings[context]) {
			action := registry.bindings[context][key]
			if v.reservedKeys[key] && action != ActionQuitForce {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     key,
					Message: "reserved key rebound (may cause issues)",
				})
			}
		}
	}
}

// checkShadowing checks for context-specific bindings that shadow global bindings
func (v *Validator) checkShadowing(registry *Registry, result *ValidationResult) {
	globalBindings := registry.bindings[ContextGlobal]
	if globalBindings == nil {
		return
	}

	for _, context := range Contexts[1:] {
		bindings := registry.bindings[context]
		for _, key := range sortedKeys(bindings) {
			action := bindings[key]
			if globalAction, hasGlobal := globalBindings[key]; hasGlobal && action != globalAction {
				result.Warnings = append(result.Warnings, ValidationError{
					Type:    "warning",
					Context: context,
					Key:     displayKey(key),
					Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, action),
				})
			}
		}
	}
}

// checkUnboundQuit makes sure there is still a way out of the application
func (v *Validator) checkUnboundQuit(registry *Registry, result *ValidationResult) {
	if len(registry.GetBinding(ContextNormal, ActionQuit)) == 0 &&
		len(registry.GetBinding(ContextNormal, ActionQuitForce)) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "invalid",
			Context: ContextNormal,
			Message: "no key quits the application",
		})
	}
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	validModifiers := []string{"ctrl+", "alt+", "shift+", "super+"}
	for _, mod := range validModifiers {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}

// ValidateAction checks if an action string is valid
func ValidateAction(actionStr string) error {
	if actionStr == "" {
		return fmt.Errorf("action cannot be empty")
	}
	if !IsKnownAction(Action(actionStr)) {
		return fmt.Errorf("unknown action %q", actionStr)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
