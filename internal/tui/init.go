package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ranwar/GyroCompassSimulator/internal/compass"
	"github.com/ranwar/GyroCompassSimulator/internal/config"
	"github.com/ranwar/GyroCompassSimulator/internal/keybinds"
	"github.com/ranwar/GyroCompassSimulator/internal/logging"
	"go.uber.org/zap"
)

// New creates a new TUI model around c. A nil registry uses the default
// bindings and a nil logger discards everything.
func New(c *compass.Compass, registry *keybinds.Registry, settings config.Settings, logger *zap.SugaredLogger) Model {
	if registry == nil {
		registry = keybinds.NewDefaultRegistry()
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "000"
	input.CharLimit = HeadingCharLimit
	input.Width = HeadingInputWidth
	input.SetValue(c.InputText())

	return Model{
		compass:      c,
		keybinds:     registry,
		logger:       logger,
		settings:     settings,
		mode:         ModeNormal,
		headingInput: input,
		helpView:     viewport.New(80, 20),
	}
}

// Run starts the TUI. logFile overrides the default log location.
func Run(logFile string) error {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return err
	}

	settings, err := config.LoadSettings(config.GetSettingsFilePath())
	if err != nil {
		return err
	}

	if logFile == "" {
		logFile = config.LogFile
	}
	logger, closeLog, err := logging.New(logFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}
	result := keybinds.NewValidator().ValidateRegistry(registry)
	for _, warn := range result.Warnings {
		logger.Warnw("keybinding", "issue", warn.Error())
	}
	if result.HasErrors() {
		return fmt.Errorf("invalid keybindings in %s:\n%s", config.KeybindsFile, result.String())
	}

	c := compass.New(
		compass.WithPeriod(settings.TickInterval),
		compass.WithLogger(logger),
	)

	m := New(c, registry, settings, logger)
	defer m.Cleanup()

	logger.Infow("tui started",
		"settings", config.GetSettingsFilePath(),
		"tick_interval", settings.TickInterval)

	// Start TUI (pass pointer since Update uses pointer receiver)
	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
