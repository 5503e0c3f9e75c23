package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal Context = "global" // Available everywhere
	ContextNormal Context = "normal" // Compass and control panel
	ContextInput  Context = "input"  // Heading text field focused
	ContextHelp   Context = "help"   // Help viewer
)

// Contexts lists every known context, global first
var Contexts = []Context{ContextGlobal, ContextNormal, ContextInput, ContextHelp}

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit application
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Heading slider
	ActionNudgeLeft        Action = "nudge_left"         // Heading -1°
	ActionNudgeRight       Action = "nudge_right"        // Heading +1°
	ActionNudgeLeftCoarse  Action = "nudge_left_coarse"  // Heading -10°
	ActionNudgeRightCoarse Action = "nudge_right_coarse" // Heading +10°

	// Quick set presets
	ActionPresetNorth Action = "preset_north"
	ActionPresetEast  Action = "preset_east"
	ActionPresetSouth Action = "preset_south"
	ActionPresetWest  Action = "preset_west"

	// Simulation
	ActionToggleAuto Action = "toggle_auto" // Start/stop auto-rotate
	ActionReset      Action = "reset"       // Stop and return to 000°

	// Heading field
	ActionFocusInput Action = "focus_input" // Edit heading as text
	ActionInputDone  Action = "input_done"  // Leave heading field

	// Other
	ActionCopyHeading Action = "copy_heading" // Copy heading to clipboard
	ActionOpenHelp    Action = "open_help"    // Open help viewer
	ActionCloseModal  Action = "close_modal"  // Close current modal
	ActionHelpSearch  Action = "help_search"  // Filter help entries
	ActionScrollUp    Action = "scroll_up"    // Scroll viewport up
	ActionScrollDown  Action = "scroll_down"  // Scroll viewport down
	ActionNoOp        Action = "noop"         // No operation (ignore key)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:             {ActionQuit, "Quit application", "Global"},
	ActionQuitForce:        {ActionQuitForce, "Force quit", "Global"},
	ActionNudgeLeft:        {ActionNudgeLeft, "Heading -1°", "Set Heading"},
	ActionNudgeRight:       {ActionNudgeRight, "Heading +1°", "Set Heading"},
	ActionNudgeLeftCoarse:  {ActionNudgeLeftCoarse, "Heading -10°", "Set Heading"},
	ActionNudgeRightCoarse: {ActionNudgeRightCoarse, "Heading +10°", "Set Heading"},
	ActionFocusInput:       {ActionFocusInput, "Type a heading", "Set Heading"},
	ActionInputDone:        {ActionInputDone, "Leave heading field", "Set Heading"},
	ActionPresetNorth:      {ActionPresetNorth, "Quick set N (0°)", "Quick Set"},
	ActionPresetEast:       {ActionPresetEast, "Quick set E (90°)", "Quick Set"},
	ActionPresetSouth:      {ActionPresetSouth, "Quick set S (180°)", "Quick Set"},
	ActionPresetWest:       {ActionPresetWest, "Quick set W (270°)", "Quick Set"},
	ActionToggleAuto:       {ActionToggleAuto, "Auto rotate / stop auto", "Simulation"},
	ActionReset:            {ActionReset, "Reset to 000°", "Simulation"},
	ActionCopyHeading:      {ActionCopyHeading, "Copy heading to clipboard", "Other"},
	ActionOpenHelp:         {ActionOpenHelp, "Open help", "Other"},
	ActionCloseModal:       {ActionCloseModal, "Close help", "Help"},
	ActionHelpSearch:       {ActionHelpSearch, "Search bindings", "Help"},
	ActionScrollUp:         {ActionScrollUp, "Scroll up", "Help"},
	ActionScrollDown:       {ActionScrollDown, "Scroll down", "Help"},
	ActionNoOp:             {ActionNoOp, "Ignore key", "Other"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether the action is one the application handles
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

