package tui

// UI Layout Constants
// These constants define spacing, margins, and dimensions for the TUI layout

const (
	// Control panel
	ControlPanelWidth = 36 // Fixed width of the right-hand control panel
	SliderWidth       = 24 // Width of the heading slider track
	HeadingInputWidth = 6  // Visible characters in the heading field
	HeadingCharLimit  = 12 // Longest text accepted by the heading field

	// Dial panel
	DialMinWidth  = 11 // Below this the dial collapses to the heading label
	DialMinHeight = 5

	// Panel chrome
	PanelBorderWidth  = 2 // Left + right border
	PanelBorderHeight = 2 // Top + bottom border
	StatusBarHeight   = 1

	// Modal Dimensions - Standard margins for modal dialogs
	ModalWidthMarginNarrow = 10 // Narrow horizontal margin for focused modals (m.width - 10)
	ModalHeightMarginMed   = 4  // Medium vertical margin (m.height - 4)

	// Help viewport offsets
	HelpViewWidthOffset  = 14 // m.width - 14 for help viewport width
	HelpViewHeightOffset = 10 // m.height - 10 for help viewport height

	// Status messages longer than this are truncated in the footer
	StatusMaxLength = 100
)
