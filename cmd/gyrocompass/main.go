package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ranwar/GyroCompassSimulator/internal/cli"
	"github.com/ranwar/GyroCompassSimulator/internal/config"
	"github.com/ranwar/GyroCompassSimulator/internal/logging"
	"github.com/ranwar/GyroCompassSimulator/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gyrocompass",
	Short: "Gyro compass simulator",
	Long: `gyrocompass is a marine gyro compass repeater for the terminal.

The bow pointer is fixed at the top and the dial rotates underneath it.
Run without arguments to start the interactive simulator.

Examples:
  gyrocompass                              # Start interactive TUI
  gyrocompass normalize 450 -1             # Print 090 and 359
  gyrocompass simulate --from 350 --ticks 20
  gyrocompass snapshot --preset e -o east.png
  gyrocompass frames --step 10 -o frames/
  gyrocompass scene --heading 45 --query "cardinals[].screen_angle"
  gyrocompass scene --filter "inner_numbers" --query '$(jq length)'
  gyrocompass keybinds export --color`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(flagLogFile)
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <degrees>...",
	Short: "Print headings normalized to 000-359",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Normalize(cmd.OutOrStdout(), args)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Auto-rotate headlessly and print every heading",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSimulate(cmd)
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the compass at one heading to a PNG",
	Long: `Render the compass at one heading to a PNG.

Without --heading or --preset an interactive picker is shown.
Use -o - to write the image to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSnapshot(cmd)
	},
}

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Render a full revolution as a PNG sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFrames(cmd)
	},
}

var sceneCmd = &cobra.Command{
	Use:   "scene",
	Short: "Print the scene description for a heading",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.WriteScene(cmd.Context(), cmd.OutOrStdout(), cli.SceneOptions{
			Heading:      sceneHeading,
			AutoRotating: sceneAuto,
			Format:       sceneFormat,
			Filter:       sceneFilter,
			Query:        sceneQuery,
		})
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "Manage keybindings",
}

var keybindsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the default keybindings as keybinds.json",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if keybindsOutput != "" {
			if err := cli.SaveKeybinds(keybindsOutput, keybindsForce); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", keybindsOutput)
			return nil
		}
		return cli.ExportKeybinds(cmd.OutOrStdout(), keybindsColor)
	},
}

var keybindsValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a keybinds.json file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		} else {
			if err := config.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			path = config.KeybindsFile
		}
		return cli.ValidateKeybinds(cmd.OutOrStdout(), path)
	},
}

// Global flags
var (
	flagLogFile string
)

// Flags for simulate
var (
	simulateFrom     int
	simulateTicks    int
	simulateDuration time.Duration
)

// Flags for snapshot
var (
	snapshotHeading int
	snapshotPreset  string
	snapshotOutput  string
	snapshotSize    int
)

// Flags for frames
var (
	framesStep    int
	framesOutput  string
	framesSize    int
	framesWorkers int
)

// Flags for scene
var (
	sceneHeading int
	sceneAuto    bool
	sceneFormat  string
	sceneFilter  string
	sceneQuery   string
)

// Flags for keybinds export
var (
	keybindsColor  bool
	keybindsOutput string
	keybindsForce  bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write the application log to this file")

	simulateCmd.Flags().IntVar(&simulateFrom, "from", 0, "Starting heading")
	simulateCmd.Flags().IntVarP(&simulateTicks, "ticks", "n", 0, "Stop after this many ticks")
	simulateCmd.Flags().DurationVarP(&simulateDuration, "duration", "d", 0, "Stop after this long (e.g. 10s)")

	snapshotCmd.Flags().IntVar(&snapshotHeading, "heading", 0, "Heading in degrees")
	snapshotCmd.Flags().StringVar(&snapshotPreset, "preset", "", "Quick set heading (n/e/s/w)")
	snapshotCmd.Flags().StringVarP(&snapshotOutput, "output", "o", "compass.png", "Output file, - for stdout")
	snapshotCmd.Flags().IntVar(&snapshotSize, "size", 384, "Image width and height in pixels")

	framesCmd.Flags().IntVar(&framesStep, "step", 10, "Degrees between frames")
	framesCmd.Flags().StringVarP(&framesOutput, "output", "o", "frames", "Output directory")
	framesCmd.Flags().IntVar(&framesSize, "size", 384, "Image width and height in pixels")
	framesCmd.Flags().IntVarP(&framesWorkers, "workers", "w", 4, "Frames rendered in parallel")

	sceneCmd.Flags().IntVar(&sceneHeading, "heading", 0, "Heading in degrees")
	sceneCmd.Flags().BoolVar(&sceneAuto, "auto", false, "Describe the scene while auto-rotating")
	sceneCmd.Flags().StringVarP(&sceneFormat, "format", "f", "json", "Output format (json/yaml/text)")
	sceneCmd.Flags().StringVar(&sceneFilter, "filter", "", "JMESPath expression narrowing the scene")
	sceneCmd.Flags().StringVarP(&sceneQuery, "query", "q", "", "JMESPath expression, or $(command) fed the scene JSON on stdin")

	keybindsExportCmd.Flags().BoolVar(&keybindsColor, "color", false, "Syntax highlight the output")
	keybindsExportCmd.Flags().StringVarP(&keybindsOutput, "output", "o", "", "Write to this file instead of stdout")
	keybindsExportCmd.Flags().BoolVar(&keybindsForce, "force", false, "Overwrite an existing file")

	keybindsCmd.AddCommand(keybindsExportCmd)
	keybindsCmd.AddCommand(keybindsValidateCmd)

	// Add subcommands
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(sceneCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// loadSettings reads settings.yaml and opens the optional log file
func loadSettings() (config.Settings, func(), *zap.SugaredLogger, error) {
	if err := config.Initialize(); err != nil {
		return config.Settings{}, nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	settings, err := config.LoadSettings(config.GetSettingsFilePath())
	if err != nil {
		return config.Settings{}, nil, nil, err
	}

	logger, closeLog, err := logging.New(flagLogFile, settings.LogLevel)
	if err != nil {
		return config.Settings{}, nil, nil, err
	}
	return settings, closeLog, logger, nil
}

// runSimulate auto-rotates until --ticks, --duration or Ctrl+C
func runSimulate(cmd *cobra.Command) error {
	settings, closeLog, logger, err := loadSettings()
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = cli.Simulate(ctx, cmd.OutOrStdout(), cli.SimulateOptions{
		From:     simulateFrom,
		Ticks:    simulateTicks,
		Duration: simulateDuration,
		Settings: settings,
		Logger:   logger,
	})
	if ctx.Err() != nil {
		// Interrupted by the user
		return nil
	}
	return err
}

// runSnapshot renders one PNG, prompting for a heading when none was given
func runSnapshot(cmd *cobra.Command) error {
	opts := cli.SnapshotOptions{
		Heading: snapshotHeading,
		Preset:  snapshotPreset,
		Output:  snapshotOutput,
		Size:    snapshotSize,
	}

	if !cmd.Flags().Changed("heading") && opts.Preset == "" && cli.IsInteractive() {
		h, err := cli.PromptForHeading()
		if err != nil {
			return err
		}
		opts.Heading = h.Degrees()
	}

	if err := cli.Snapshot(cmd.OutOrStdout(), opts); err != nil {
		return err
	}
	if opts.Output != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", opts.Output)
	}
	return nil
}

// runFrames renders a full revolution
func runFrames(cmd *cobra.Command) error {
	_, closeLog, logger, err := loadSettings()
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	paths, err := cli.Frames(ctx, cli.FramesOptions{
		Step:      framesStep,
		Size:      framesSize,
		OutputDir: framesOutput,
		Workers:   framesWorkers,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d frames to %s\n", len(paths), framesOutput)
	return nil
}
