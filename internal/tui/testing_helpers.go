package tui

import (
	"testing"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ranwar/GyroCompassSimulator/internal/compass"
	"github.com/ranwar/GyroCompassSimulator/internal/config"
)

// CreateTestModel creates a sized Model backed by a mock clock. The
// compass is closed when the test ends.
func CreateTestModel(t *testing.T) (*Model, *clock.Mock) {
	t.Helper()

	mock := clock.NewMock()
	c := compass.New(compass.WithClock(mock))

	m := New(c, nil, config.DefaultSettings(), nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	t.Cleanup(m.Cleanup)

	return &m, mock
}

// keyMsg builds the tea.KeyMsg whose String() is key
func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "shift+left":
		return tea.KeyMsg{Type: tea.KeyShiftLeft}
	case "shift+right":
		return tea.KeyMsg{Type: tea.KeyShiftRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

// PressKeys feeds keys to the model and returns the last command
func PressKeys(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, key := range keys {
		_, cmd = m.Update(keyMsg(key))
	}
	return cmd
}

// TypeText feeds each rune of text as a key press
func TypeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyMsg(string(r)))
	}
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertQuit verifies that cmd quits the program
func AssertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected quit command, got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected command to produce tea.QuitMsg")
	}
}
