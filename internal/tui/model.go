package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ranwar/GyroCompassSimulator/internal/compass"
	"github.com/ranwar/GyroCompassSimulator/internal/config"
	"github.com/ranwar/GyroCompassSimulator/internal/keybinds"
	"go.uber.org/zap"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeInput
	ModeHelp
)

// String returns the mode name shown in the status bar
func (m Mode) String() string {
	switch m {
	case ModeInput:
		return "INPUT"
	case ModeHelp:
		return "HELP"
	default:
		return "NORMAL"
	}
}

// Model represents the TUI state
type Model struct {
	// Core state
	compass  *compass.Compass
	keybinds *keybinds.Registry
	logger   *zap.SugaredLogger
	settings config.Settings
	mode     Mode

	// Heading text field
	headingInput textinput.Model

	// Help modal
	helpView         viewport.Model
	helpSearchQuery  string
	helpSearchActive bool

	// UI state
	width         int
	height        int
	statusMsg     string
	errorMsg      string // Truncated error for footer
	fullErrorMsg  string // Full error message
	fullStatusMsg string // Full status message
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return nil
}

// Cleanup releases the auto-rotate trigger
func (m *Model) Cleanup() {
	if m.compass != nil {
		m.compass.Close()
		m.logger.Debugw("tui closed", "heading", m.compass.Heading().Degrees())
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewport()

	case tickMsg:
		cmd = m.handleTick(msg)

	case clipboardMsg:
		cmd = m.setStatusMessage("Heading " + msg.text + " copied to clipboard")

	case clearStatusMsg:
		m.statusMsg = ""
		m.fullStatusMsg = ""

	case clearErrorMsg:
		m.errorMsg = ""
		m.fullErrorMsg = ""

	case errorMsg:
		cmd = m.setErrorMessage(string(msg))
	}

	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ModeHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// tickMsg is one firing of the auto-rotate trigger
type tickMsg struct {
	generation uint64
}

type clipboardMsg struct {
	text string
}

type clearStatusMsg struct{}
type clearErrorMsg struct{}

type errorMsg string

// Helper methods for setting messages with optional timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.fullStatusMsg = msg
	m.statusMsg = truncate(msg, StatusMaxLength)

	if timeout := m.settings.MessageDuration(); timeout > 0 {
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})
	}
	return nil
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.fullErrorMsg = msg
	m.errorMsg = truncate(msg, StatusMaxLength)
	m.logger.Warnw("tui error", "message", msg)

	if timeout := m.settings.MessageDuration(); timeout > 0 {
		return tea.Tick(timeout, func(time.Time) tea.Msg {
			return clearErrorMsg{}
		})
	}
	return nil
}

// truncate shortens s to max runes, ending with "..."
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
