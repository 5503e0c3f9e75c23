package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ranwar/GyroCompassSimulator/internal/heading"
	"github.com/ranwar/GyroCompassSimulator/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeInput:
		return m.handleInputKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles the compass controls
func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextNormal, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuit, keybinds.ActionQuitForce:
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionNudgeLeft:
		m.nudge(-1)
	case keybinds.ActionNudgeRight:
		m.nudge(1)
	case keybinds.ActionNudgeLeftCoarse:
		m.nudge(-10)
	case keybinds.ActionNudgeRightCoarse:
		m.nudge(10)

	case keybinds.ActionPresetNorth:
		return m.applyPreset(heading.North)
	case keybinds.ActionPresetEast:
		return m.applyPreset(heading.East)
	case keybinds.ActionPresetSouth:
		return m.applyPreset(heading.South)
	case keybinds.ActionPresetWest:
		return m.applyPreset(heading.West)

	case keybinds.ActionToggleAuto:
		return m.toggleAutoRotate()

	case keybinds.ActionReset:
		return m.resetHeading()

	case keybinds.ActionFocusInput:
		return m.focusHeadingInput()

	case keybinds.ActionCopyHeading:
		return m.copyHeading()

	case keybinds.ActionOpenHelp:
		m.mode = ModeHelp
		m.helpSearchQuery = ""
		m.helpSearchActive = false
		m.updateHelpView()
		m.helpView.GotoTop()
	}

	return nil
}

// handleInputKeys handles the heading text field. Keys without a binding
// are passed to the text input and every edit is applied to the compass.
func (m *Model) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	if action, ok := m.keybinds.Match(keybinds.ContextInput, msg.String()); ok {
		switch action {
		case keybinds.ActionQuit, keybinds.ActionQuitForce:
			m.Cleanup()
			return tea.Quit

		case keybinds.ActionInputDone:
			m.blurHeadingInput()
			return nil

		case keybinds.ActionNoOp:
			return nil
		}
	}

	var cmd tea.Cmd
	before := m.headingInput.Value()
	m.headingInput, cmd = m.headingInput.Update(msg)
	if text := m.headingInput.Value(); text != before {
		m.applyHeadingText(text)
	}
	return cmd
}

// handleHelpKeys handles the help modal and its search field
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	if m.helpSearchActive {
		switch msg.Type {
		case tea.KeyCtrlC:
			m.Cleanup()
			return tea.Quit
		case tea.KeyEsc:
			m.helpSearchActive = false
			m.helpSearchQuery = ""
		case tea.KeyEnter:
			m.helpSearchActive = false
		case tea.KeyBackspace:
			if len(m.helpSearchQuery) > 0 {
				runes := []rune(m.helpSearchQuery)
				m.helpSearchQuery = string(runes[:len(runes)-1])
			}
		case tea.KeySpace:
			m.helpSearchQuery += " "
		case tea.KeyRunes:
			m.helpSearchQuery += string(msg.Runes)
		default:
			return nil
		}
		m.updateHelpView()
		m.helpView.GotoTop()
		return nil
	}

	action, ok := m.keybinds.Match(keybinds.ContextHelp, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		m.Cleanup()
		return tea.Quit

	case keybinds.ActionCloseModal:
		if m.helpSearchQuery != "" {
			// First close clears the filter
			m.helpSearchQuery = ""
			m.updateHelpView()
			return nil
		}
		m.mode = ModeNormal

	case keybinds.ActionHelpSearch:
		m.helpSearchActive = true

	case keybinds.ActionScrollUp:
		m.helpView.LineUp(1)

	case keybinds.ActionScrollDown:
		m.helpView.LineDown(1)
	}

	return nil
}
