// Package cli implements the headless gyrocompass commands: heading
// normalization, simulation, scene dumps, PNG snapshots and frame sequences,
// and keybinding export and validation.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ranwar/GyroCompassSimulator/internal/compass"
	"github.com/ranwar/GyroCompassSimulator/internal/config"
	"github.com/ranwar/GyroCompassSimulator/internal/filter"
	"github.com/ranwar/GyroCompassSimulator/internal/heading"
	"github.com/ranwar/GyroCompassSimulator/internal/render"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Normalize writes the normalized three-digit heading of each argument
func Normalize(w io.Writer, args []string) error {
	for _, arg := range args {
		raw, err := heading.Parse(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, heading.Normalize(raw))
	}
	return nil
}

// SimulateOptions contains options for a headless auto-rotate run
type SimulateOptions struct {
	From     int
	Ticks    int           // stop after this many ticks (0 = no limit)
	Duration time.Duration // stop after this long (0 = no limit)
	Settings config.Settings
	Clock    clock.Clock
	Logger   *zap.SugaredLogger
}

// Simulate auto-rotates from opts.From, writing the starting heading and
// the heading after every tick. It runs until the tick count or duration is
// reached or ctx ends.
func Simulate(ctx context.Context, w io.Writer, opts SimulateOptions) error {
	if opts.Ticks <= 0 && opts.Duration <= 0 {
		return fmt.Errorf("simulate needs --ticks or --duration")
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	c := compass.New(
		compass.WithClock(opts.Clock),
		compass.WithPeriod(opts.Settings.TickInterval),
		compass.WithLogger(opts.Logger),
	)
	defer c.Close()

	c.SetHeading(opts.From)
	fmt.Fprintln(w, c.Heading())

	if opts.Duration > 0 {
		var cancel context.CancelCauseFunc
		ctx, cancel = context.WithCancelCause(ctx)
		defer cancel(nil)
		timer := opts.Clock.AfterFunc(opts.Duration, func() { cancel(errDurationElapsed) })
		defer timer.Stop()
	}

	ticks := 0
	c.Start()
	err := compass.Drive(ctx, c, func(s compass.State) {
		fmt.Fprintln(w, s.Heading)
		ticks++
		if opts.Ticks > 0 && ticks >= opts.Ticks {
			c.Stop()
		}
	})
	if err != nil && errors.Is(context.Cause(ctx), errDurationElapsed) {
		return nil
	}
	return err
}

var errDurationElapsed = errors.New("simulation duration elapsed")

// SceneOptions contains options for dumping a scene
type SceneOptions struct {
	Heading      int
	AutoRotating bool
	Format       string // json, yaml or text
	Filter       string // JMESPath expression narrowing the scene
	Query        string // JMESPath expression or $(shell command) applied after Filter
}

// Size of the dial drawn by the text scene format
const (
	TextDialWidth  = 61
	TextDialHeight = 25
)

// WriteScene writes the scene for a heading as JSON or YAML, or draws it as
// plain text. The output of a shell query is written as is, whatever the format.
func WriteScene(ctx context.Context, w io.Writer, opts SceneOptions) error {
	switch opts.Format {
	case "", "json", "yaml":
	case "text":
		if opts.Filter != "" || opts.Query != "" {
			return fmt.Errorf("--filter and --query need the json or yaml format")
		}
	default:
		return fmt.Errorf("unknown format %q (json/yaml/text)", opts.Format)
	}

	h := heading.Normalize(opts.Heading)
	scene := render.Build(compass.State{
		Heading:      h,
		InputText:    fmt.Sprint(h.Degrees()),
		AutoRotating: opts.AutoRotating,
	})

	if opts.Format == "text" {
		lines := render.DrawDial(scene, TextDialWidth, TextDialHeight).Lines()
		fmt.Fprintln(w, strings.Join(lines, "\n"))
		_, err := fmt.Fprintln(w, scene.HeadingLabel)
		return err
	}

	var value interface{} = scene
	if opts.Filter != "" || opts.Query != "" {
		result, err := filter.Apply(ctx, scene, opts.Filter, opts.Query)
		if err != nil {
			return err
		}
		if text, ok := result.(filter.Text); ok {
			_, err := fmt.Fprintln(w, string(text))
			return err
		}
		value = result
	}

	if opts.Format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("failed to encode scene: %w", err)
		}
		return enc.Close()
	}

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// SnapshotOptions contains options for rendering one PNG
type SnapshotOptions struct {
	Heading int
	Preset  string // cardinal letter or name, overrides Heading
	Output  string // file path, "-" for stdout
	Size    int
}

// ResolveHeading returns the preset's heading when set, otherwise Heading
func (o SnapshotOptions) ResolveHeading() (heading.Heading, error) {
	if o.Preset != "" {
		c, err := heading.ParseCardinal(o.Preset)
		if err != nil {
			return 0, err
		}
		return c.Heading(), nil
	}
	return heading.Normalize(o.Heading), nil
}

// Snapshot renders the compass at one heading to a PNG
func Snapshot(stdout io.Writer, opts SnapshotOptions) error {
	h, err := opts.ResolveHeading()
	if err != nil {
		return err
	}
	scene := render.Build(compass.State{Heading: h, InputText: fmt.Sprint(h.Degrees())})

	if opts.Output == "" || opts.Output == "-" {
		return render.WritePNG(stdout, scene, opts.Size)
	}
	return writePNGFile(opts.Output, scene, opts.Size)
}

// FramesOptions contains options for rendering a full revolution
type FramesOptions struct {
	Step      int // degrees between frames
	Size      int
	OutputDir string
	Workers   int
	Logger    *zap.SugaredLogger
}

// Frames renders one PNG per Step degrees of a full revolution into
// OutputDir, Workers at a time. Returns the written paths in heading order.
func Frames(ctx context.Context, opts FramesOptions) ([]string, error) {
	if opts.Step < 1 || opts.Step >= heading.FullCircle {
		return nil, fmt.Errorf("step must be between 1 and %d, got %d", heading.FullCircle-1, opts.Step)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	if err := os.MkdirAll(opts.OutputDir, config.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.OutputDir, err)
	}

	var paths []string
	for deg := 0; deg < heading.FullCircle; deg += opts.Step {
		paths = append(paths, filepath.Join(opts.OutputDir, fmt.Sprintf("frame_%s.png", heading.Heading(deg))))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, path := range paths {
		h := heading.Heading(i * opts.Step)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scene := render.Build(compass.State{Heading: h, InputText: fmt.Sprint(h.Degrees())})
			if err := writePNGFile(path, scene, opts.Size); err != nil {
				return err
			}
			opts.Logger.Debugw("frame written", "heading", h.Degrees(), "path", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

func writePNGFile(path string, scene render.Scene, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render.WritePNG(f, scene, size); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
