package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ranwar/GyroCompassSimulator/internal/heading"
	"github.com/ranwar/GyroCompassSimulator/internal/trigger"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// nudge moves the heading like the slider arrows
func (m *Model) nudge(delta int) {
	m.compass.Nudge(delta)
	m.syncHeadingInput()
}

// applyPreset sets one of the quick set headings
func (m *Model) applyPreset(c heading.Cardinal) tea.Cmd {
	h := m.compass.SetPreset(c)
	m.syncHeadingInput()
	return m.setStatusMessage(fmt.Sprintf("Heading set to %s (%s)", h.Label(), c))
}

// toggleAutoRotate starts or stops auto-rotate. Starting returns the
// command that waits for the first tick.
func (m *Model) toggleAutoRotate() tea.Cmd {
	tr := m.compass.Toggle()
	if tr == nil {
		return m.setStatusMessage("Auto rotate stopped at " + m.compass.Heading().Label())
	}
	return tea.Batch(
		waitForTick(tr),
		m.setStatusMessage(fmt.Sprintf("Auto rotate started (%s per tick)", tr.Period())),
	)
}

// waitForTick blocks until the trigger fires or is released. A release
// produces no message, which ends the wait chain.
func waitForTick(tr *trigger.Trigger) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-tr.C():
			return tickMsg{generation: tr.Generation()}
		case <-tr.Done():
			return nil
		}
	}
}

// handleTick applies one auto-rotate firing and waits for the next
func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if !m.compass.Tick(msg.generation) {
		return nil
	}
	m.syncHeadingInput()
	return waitForTick(m.compass.Trigger())
}

// resetHeading stops auto-rotate and returns to North
func (m *Model) resetHeading() tea.Cmd {
	m.compass.Reset()
	m.syncHeadingInput()
	return m.setStatusMessage("Heading reset to " + m.compass.Heading().Label())
}

// focusHeadingInput switches to typing a heading
func (m *Model) focusHeadingInput() tea.Cmd {
	m.mode = ModeInput
	m.headingInput.SetValue(m.compass.InputText())
	m.headingInput.CursorEnd()
	return m.headingInput.Focus()
}

// blurHeadingInput leaves the heading field
func (m *Model) blurHeadingInput() {
	m.mode = ModeNormal
	m.headingInput.Blur()
}

// applyHeadingText hands an edit of the heading field to the compass. A
// parseable value is normalized and written back to the field, anything
// else stays as typed.
func (m *Model) applyHeadingText(text string) {
	if !m.compass.SetInputText(text) {
		return
	}
	if normalized := m.compass.InputText(); normalized != text {
		m.headingInput.SetValue(normalized)
		m.headingInput.CursorEnd()
	}
}

// syncHeadingInput mirrors the compass input text into the field
func (m *Model) syncHeadingInput() {
	m.headingInput.SetValue(m.compass.InputText())
	m.headingInput.CursorEnd()
}

// copyHeading copies the heading label to the clipboard
func (m *Model) copyHeading() tea.Cmd {
	label := m.compass.Heading().Label()
	return func() tea.Msg {
		if err := writeClipboard(label); err != nil {
			return errorMsg(fmt.Sprintf("Failed to copy to clipboard: %v", err))
		}
		return clipboardMsg{text: label}
	}
}
