package keybinds

import (
	"reflect"
	"testing"
)

func TestRegistry_Match(t *testing.T) {
	r := NewDefaultRegistry()

	tests := []struct {
		name    string
		context Context
		key     string
		want    Action
		found   bool
	}{
		{"nudge left arrow", ContextNormal, "left", ActionNudgeLeft, true},
		{"nudge left vim", ContextNormal, "h", ActionNudgeLeft, true},
		{"coarse right", ContextNormal, "L", ActionNudgeRightCoarse, true},
		{"space toggles", ContextNormal, " ", ActionToggleAuto, true},
		{"preset west", ContextNormal, "w", ActionPresetWest, true},
		{"global fallback", ContextNormal, "ctrl+c", ActionQuitForce, true},
		{"global fallback in input", ContextInput, "ctrl+c", ActionQuitForce, true},
		{"input leaves on esc", ContextInput, "esc", ActionInputDone, true},
		{"input passes letters", ContextInput, "q", "", false},
		{"help close", ContextHelp, "q", ActionCloseModal, true},
		{"unbound", ContextNormal, "z", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Match(tt.context, tt.key)
			if ok != tt.found || got != tt.want {
				t.Errorf("Match(%s, %q) = (%q, %v), want (%q, %v)", tt.context, tt.key, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestRegistry_ContextShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "x", ActionQuit)
	r.Register(ContextHelp, "x", ActionCloseModal)

	if got, _ := r.Match(ContextHelp, "x"); got != ActionCloseModal {
		t.Errorf("help context should shadow global, got %q", got)
	}
	if got, _ := r.Match(ContextNormal, "x"); got != ActionQuit {
		t.Errorf("normal context should fall back to global, got %q", got)
	}
}

func TestRegistry_GetBinding(t *testing.T) {
	r := NewDefaultRegistry()

	if got, want := r.GetBinding(ContextNormal, ActionNudgeLeft), []string{"h", "left"}; !reflect.DeepEqual(got, want) {
		t.Errorf("GetBinding() = %v, want %v", got, want)
	}
	if got, want := r.GetBinding(ContextHelp, ActionQuitForce), []string{"ctrl+c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("GetBinding() global fallback = %v, want %v", got, want)
	}
	if got := r.GetBindingString(ContextHelp, ActionReset); got != "unbound" {
		t.Errorf("GetBindingString() = %q, want unbound", got)
	}
	if got := r.GetBindingString(ContextNormal, ActionReset); got != "r" {
		t.Errorf("GetBindingString() = %q, want r", got)
	}
	if got := r.GetBindingString(ContextNormal, ActionToggleAuto); got != "space, a" {
		t.Errorf("GetBindingString() = %q, want %q", got, "space, a")
	}
}

// isBound reports whether key has its own binding in context, ignoring the
// global fallback
func isBound(r *Registry, context Context, key string) bool {
	_, ok := r.bindings[context][key]
	return ok
}

func TestRegistry_Unbind(t *testing.T) {
	r := NewDefaultRegistry()
	r.Unbind(ContextNormal, ActionToggleAuto)

	if isBound(r, ContextNormal, " ") || isBound(r, ContextNormal, "a") {
		t.Error("toggle_auto keys should be unbound")
	}
	if !isBound(r, ContextNormal, "r") {
		t.Error("unrelated bindings should survive")
	}
}

func TestRegistry_ListBindings(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
	r.Register(ContextGlobal, "x", ActionNoOp)
	r.Register(ContextInput, "x", ActionInputDone)
	r.Register(ContextInput, "enter", ActionInputDone)

	got := r.ListBindings(ContextInput)
	want := []Binding{
		{Key: "enter", Action: ActionInputDone, Context: ContextInput},
		{Key: "x", Action: ActionInputDone, Context: ContextInput},
		{Key: "ctrl+c", Action: ActionQuitForce, Context: ContextGlobal},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListBindings() = %v, want %v", got, want)
	}
}

func TestRegistry_CloneAndMerge(t *testing.T) {
	r := NewDefaultRegistry()
	clone := r.Clone()
	clone.Register(ContextNormal, "r", ActionNoOp)

	if got, _ := r.Match(ContextNormal, "r"); got != ActionReset {
		t.Errorf("clone must not alias the original, got %q", got)
	}

	other := NewRegistry()
	other.Register(ContextNormal, "0", ActionReset)
	r.Merge(other)

	if got, _ := r.Match(ContextNormal, "0"); got != ActionReset {
		t.Errorf("merge lost binding, got %q", got)
	}
}

func TestDefaults_EveryActionKnown(t *testing.T) {
	r := NewDefaultRegistry()
	for _, context := range Contexts {
		for key, action := range r.bindings[context] {
			if !IsKnownAction(action) {
				t.Errorf("%s/%q bound to unknown action %q", context, key, action)
			}
		}
	}
}

func TestGetActionInfo(t *testing.T) {
	info := GetActionInfo(ActionPresetEast)
	if info.Category != "Quick Set" {
		t.Errorf("Category = %q, want Quick Set", info.Category)
	}

	unknown := GetActionInfo(Action("nope"))
	if unknown.Category != "Unknown" || unknown.Description != "nope" {
		t.Errorf("unexpected info for unknown action: %+v", unknown)
	}
}
