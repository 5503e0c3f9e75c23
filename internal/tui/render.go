package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ranwar/GyroCompassSimulator/internal/heading"
	"github.com/ranwar/GyroCompassSimulator/internal/keybinds"
	"github.com/ranwar/GyroCompassSimulator/internal/render"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff3b30"} // Dark red / Signal red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffd60a"} // Dark goldenrod / Amber
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#5e9cff"} // Dark blue / Blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
	colorText   = lipgloss.AdaptiveColor{Light: "#1e293b", Dark: "#e2e8f0"} // Slate
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleHeading = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	styleLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleButton = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorGray)

	styleButtonActive = styleButton.
				BorderForeground(colorRed).
				Foreground(colorRed)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// roleStyles colors each kind of dial cell
var roleStyles = map[render.Role]lipgloss.Style{
	render.RoleMarking:      styleSubtle,
	render.RoleMajorMarking: styleHeading,
	render.RoleNumber:       lipgloss.NewStyle().Foreground(colorText),
	render.RoleCardinal:     lipgloss.NewStyle().Bold(true).Foreground(colorYellow),
	render.RoleDialNumber:   lipgloss.NewStyle().Bold(true).Foreground(colorBlue),
	render.RoleNorth:        lipgloss.NewStyle().Bold(true).Foreground(colorRed),
	render.RolePointer:      lipgloss.NewStyle().Foreground(colorRed),
	render.RoleHub:          lipgloss.NewStyle().Foreground(colorYellow),
}

func styleRole(role render.Role, text string) string {
	if style, ok := roleStyles[role]; ok {
		return style.Render(text)
	}
	return text
}

// renderMain renders the main TUI view (dial + control panel)
func (m *Model) renderMain() string {
	scene := render.Build(m.compass.State())
	panelHeight := m.height - StatusBarHeight - PanelBorderHeight

	controls := m.renderControls(scene, ControlPanelWidth-PanelBorderWidth)
	controlsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.controlsBorderColor()).
		Width(ControlPanelWidth - PanelBorderWidth).
		Height(panelHeight).
		Render(controls)

	var mainView string
	dialWidth := m.width - ControlPanelWidth - PanelBorderWidth
	if dialWidth >= DialMinWidth && panelHeight >= DialMinHeight {
		dialBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Width(dialWidth).
			Height(panelHeight).
			Render(m.renderDial(scene, dialWidth, panelHeight))

		mainView = lipgloss.JoinHorizontal(lipgloss.Top, dialBox, controlsBox)
	} else {
		// Too narrow for the dial, keep the controls usable
		mainView = controlsBox
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		mainView,
		m.renderStatusBar(),
	)
}

func (m *Model) controlsBorderColor() lipgloss.AdaptiveColor {
	if m.mode == ModeInput {
		return colorGreen
	}
	return colorGray
}

// renderDial renders the compass housing: heading readout, dial and lamps
func (m *Model) renderDial(scene render.Scene, width, height int) string {
	readout := styleHeading.Render(scene.HeadingLabel) + "  " + styleSubtle.Render(scene.Reference)
	lamps := renderIndicators(scene.Indicators, m.compass.AutoRotating())

	canvasHeight := height - 2
	if canvasHeight < 1 {
		canvasHeight = 1
	}
	dial := render.DrawDial(scene, width, canvasHeight).Render(styleRole)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, readout),
		dial,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, lamps),
	)
}

// renderIndicators draws the RUN and SYNC lamps. A pulsing lamp blinks
// with the heading while auto-rotate is on.
func renderIndicators(indicators []render.Indicator, running bool) string {
	var parts []string
	for _, ind := range indicators {
		lamp := styleSubtle.Render("○")
		if ind.Lit {
			lamp = styleSuccess.Render("●")
			if ind.Pulse && running {
				lamp = styleWarning.Render("●")
			}
		}
		parts = append(parts, lamp+" "+ind.Label)
	}
	return strings.Join(parts, "   ")
}

// renderControls renders the navigation control panel
func (m *Model) renderControls(scene render.Scene, width int) string {
	var lines []string

	lines = append(lines, styleTitle.Render("KELVIN HUGHES"))
	lines = append(lines, styleSubtle.Render("Gyro Compass Simulator"))
	lines = append(lines, "")

	lines = append(lines, styleHeading.Render(scene.HeadingLabel)+"  "+styleSubtle.Render(scene.Reference))
	lines = append(lines, "")

	// Set Heading
	lines = append(lines, styleLabel.Render("Set Heading"))
	lines = append(lines, renderSlider(scene.Heading, min(SliderWidth, width-2)))
	field := m.headingInput.View()
	if m.mode == ModeInput {
		field = styleSelected.Render(field)
	}
	lines = append(lines, "Heading: "+field+"°")
	lines = append(lines, "")

	// Quick Set
	lines = append(lines, styleLabel.Render("Quick Set"))
	var presets []string
	for _, b := range scene.Presets {
		presets = append(presets, renderButton(b))
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, presets[0], presets[1]))
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, presets[2], presets[3]))
	lines = append(lines, "")

	// Simulation
	lines = append(lines, styleLabel.Render("Simulation"))
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, renderButton(scene.Toggle), renderButton(scene.Reset)))
	lines = append(lines, "")

	lines = append(lines, styleSubtle.Render("Maritime Navigation Simulator"))
	lines = append(lines, styleSubtle.Render("Fixed bow pointer • Rotating dial"))

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// renderButton draws a bordered button, highlighted when active
func renderButton(b render.Button) string {
	label := b.Label
	if b.Icon != "" {
		label = b.Icon + " " + label
	}
	if b.Active {
		return styleButtonActive.Render(label)
	}
	return styleButton.Render(label)
}

// renderSlider draws the 0..359 heading slider track with a thumb
func renderSlider(h heading.Heading, width int) string {
	if width < 3 {
		return h.Label()
	}
	track := []rune(strings.Repeat("─", width))
	pos := h.Degrees() * (width - 1) / (heading.FullCircle - 1)
	track[pos] = '●'
	return styleSubtle.Render("0 ") + string(track) + styleSubtle.Render(" 359")
}

// renderStatusBar renders the footer: mode and messages or hints
func (m *Model) renderStatusBar() string {
	left := styleSubtle.Render(m.mode.String())

	right := ""
	switch {
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right = styleSuccess.Render(m.statusMsg)
	case m.mode == ModeInput:
		right = styleSubtle.Render("Type a heading | enter/esc: done")
	default:
		right = styleSubtle.Render(fmt.Sprintf("%s: auto | %s: help | %s: quit",
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionToggleAuto),
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionOpenHelp),
			m.keybinds.GetBindingString(keybinds.ContextNormal, keybinds.ActionQuit)))
	}

	// Center spacing
	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// updateViewport resizes the help viewport to the window
func (m *Model) updateViewport() {
	m.helpView.Width = max(m.width-HelpViewWidthOffset, 10)
	m.helpView.Height = max(m.height-HelpViewHeightOffset, 1)
	if m.mode == ModeHelp {
		m.updateHelpView()
	}
}
