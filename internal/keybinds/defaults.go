package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalModeBindings(r)
	registerInputBindings(r)
	registerHelpBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNormalModeBindings sets up the compass controls
func registerNormalModeBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit)

	// Slider
	r.RegisterMultiple(ContextNormal, []string{"left", "h"}, ActionNudgeLeft)
	r.RegisterMultiple(ContextNormal, []string{"right", "l"}, ActionNudgeRight)
	r.RegisterMultiple(ContextNormal, []string{"shift+left", "H"}, ActionNudgeLeftCoarse)
	r.RegisterMultiple(ContextNormal, []string{"shift+right", "L"}, ActionNudgeRightCoarse)
	r.RegisterMultiple(ContextNormal, []string{"i", "enter"}, ActionFocusInput)

	// Quick set
	r.Register(ContextNormal, "n", ActionPresetNorth)
	r.Register(ContextNormal, "e", ActionPresetEast)
	r.Register(ContextNormal, "s", ActionPresetSouth)
	r.Register(ContextNormal, "w", ActionPresetWest)

	// Simulation
	r.RegisterMultiple(ContextNormal, []string{" ", "a"}, ActionToggleAuto)
	r.Register(ContextNormal, "r", ActionReset)

	r.Register(ContextNormal, "y", ActionCopyHeading)
	r.Register(ContextNormal, "?", ActionOpenHelp)
}

// registerInputBindings sets up the heading text field. Every other key is
// passed to the text input.
func registerInputBindings(r *Registry) {
	r.RegisterMultiple(ContextInput, []string{"enter", "esc", "tab"}, ActionInputDone)
}

// registerHelpBindings sets up the help viewer
func registerHelpBindings(r *Registry) {
	r.RegisterMultiple(ContextHelp, []string{"esc", "?", "q"}, ActionCloseModal)
	r.Register(ContextHelp, "/", ActionHelpSearch)
	r.RegisterMultiple(ContextHelp, []string{"up", "k"}, ActionScrollUp)
	r.RegisterMultiple(ContextHelp, []string{"down", "j"}, ActionScrollDown)
}
