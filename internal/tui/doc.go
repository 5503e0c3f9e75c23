/*
Package tui implements the terminal front end of the gyro compass.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern:
  - Model: Wraps a compass.Compass plus view state (mode, heading field, help)
  - Update: Processes key presses and auto-rotate ticks
  - View: Renders the dial and the control panel side by side

# Key Components

  - model.go: Model struct, Update loop, status messages
  - init.go: New and Run, loading settings, keybindings and the log file
  - keys.go: Keyboard input handling and keybind routing
  - actions.go: Compass actions and commands (auto-rotate wait, clipboard)
  - render.go: Dial and control panel rendering
  - help.go: Help modal with fuzzy search over the active keybindings

# Auto-rotate

Starting auto-rotate arms a trigger owned by the compass. A tea.Cmd blocks on
that trigger and turns each firing into a tickMsg carrying the trigger's
generation. Update applies the tick on the event loop goroutine and waits for
the next one. Stopping releases the trigger, which unblocks the pending command
without producing a message, and any tick that was already in flight is
dropped because its generation no longer matches.

Cleanup releases the trigger when the program quits.
*/
package tui
