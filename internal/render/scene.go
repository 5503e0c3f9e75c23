// Package render turns compass state into a visual description.
//
// Build is a pure function of compass.State: the outer degree scale is fixed
// geometry, and only the dial rotation, cardinal positions and labels depend
// on the state. The terminal canvas and the PNG renderer both draw a Scene.
package render

import (
	"math"
	"strconv"

	"github.com/ranwar/GyroCompassSimulator/internal/compass"
	"github.com/ranwar/GyroCompassSimulator/internal/heading"
)

// Scale geometry, in scene units (pixels at the reference size)
const (
	MarkingRadius = 155.0
	NumberRadius  = 175.0
	MarkingStep   = 5
	NumberStep    = 10
	ReferenceSize = 384.0

	// Inner numerals ride on the rotating dial; the ninth sits inside the first
	InnerNumberRadius = 80.0
	InnerNinthRadius  = 56.0
)

// MarkKind classifies a scale marking by length
type MarkKind string

const (
	MarkMinor  MarkKind = "minor"
	MarkMedium MarkKind = "medium"
	MarkMajor  MarkKind = "major"
)

// Marking is one tick on the outer degree ring
type Marking struct {
	Degree   int      `json:"degree" yaml:"degree"`
	Kind     MarkKind `json:"kind" yaml:"kind"`
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	Rotation float64  `json:"rotation" yaml:"rotation"`
}

// Number is a degree label on the outer ring
type Number struct {
	Degree int     `json:"degree" yaml:"degree"`
	Label  string  `json:"label" yaml:"label"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
}

// CardinalMark is a cardinal letter riding on the rotating dial
type CardinalMark struct {
	Label       string `json:"label" yaml:"label"`
	DialAngle   int    `json:"dial_angle" yaml:"dial_angle"`
	ScreenAngle int    `json:"screen_angle" yaml:"screen_angle"`
}

// DialNumber is one of the 1-9 numerals printed on the rotating dial
type DialNumber struct {
	Label       string  `json:"label" yaml:"label"`
	DialAngle   int     `json:"dial_angle" yaml:"dial_angle"`
	ScreenAngle int     `json:"screen_angle" yaml:"screen_angle"`
	Radius      float64 `json:"radius" yaml:"radius"`
}

// Button is a control caption with its icon
type Button struct {
	Label  string `json:"label" yaml:"label"`
	Icon   string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Active bool   `json:"active" yaml:"active"`
}

// Indicator is a status lamp under the compass housing
type Indicator struct {
	Label string `json:"label" yaml:"label"`
	Lit   bool   `json:"lit" yaml:"lit"`
	Pulse bool   `json:"pulse" yaml:"pulse"`
}

// Scene is the complete visual description of one compass state
type Scene struct {
	Heading      heading.Heading `json:"heading" yaml:"heading"`
	HeadingLabel string          `json:"heading_label" yaml:"heading_label"`
	Reference    string          `json:"reference" yaml:"reference"`
	DialRotation float64         `json:"dial_rotation" yaml:"dial_rotation"`
	InputText    string          `json:"input_text" yaml:"input_text"`
	AutoRotating bool            `json:"auto_rotating" yaml:"auto_rotating"`
	Markings     []Marking       `json:"markings" yaml:"markings"`
	Numbers      []Number        `json:"numbers" yaml:"numbers"`
	Cardinals    []CardinalMark  `json:"cardinals" yaml:"cardinals"`
	InnerNumbers []DialNumber    `json:"inner_numbers" yaml:"inner_numbers"`
	Presets      []Button        `json:"presets" yaml:"presets"`
	Toggle       Button          `json:"toggle" yaml:"toggle"`
	Reset        Button          `json:"reset" yaml:"reset"`
	Indicators   []Indicator     `json:"indicators" yaml:"indicators"`
}

// Build derives the scene for a compass state
func Build(state compass.State) Scene {
	h := heading.Normalize(state.Heading.Degrees())

	scene := Scene{
		Heading:      h,
		HeadingLabel: h.Label(),
		Reference:    "TRUE",
		DialRotation: -float64(h.Degrees()),
		InputText:    state.InputText,
		AutoRotating: state.AutoRotating,
		Markings:     Markings(),
		Numbers:      Numbers(),
		InnerNumbers: InnerNumbers(h),
		Reset:        Button{Label: "Reset", Icon: "↺"},
		Indicators: []Indicator{
			{Label: "RUN", Lit: true, Pulse: true},
			{Label: "SYNC", Lit: true},
		},
	}

	for _, c := range heading.Cardinals {
		scene.Cardinals = append(scene.Cardinals, CardinalMark{
			Label:       c.Letter(),
			DialAngle:   c.Heading().Degrees(),
			ScreenAngle: heading.Normalize(c.Heading().Degrees() - h.Degrees()).Degrees(),
		})
		scene.Presets = append(scene.Presets, Button{
			Label:  c.PresetLabel(),
			Active: c.Heading() == h,
		})
	}

	if state.AutoRotating {
		scene.Toggle = Button{Label: "Stop Auto", Icon: "■", Active: true}
	} else {
		scene.Toggle = Button{Label: "Auto Rotate", Icon: "▶"}
	}

	return scene
}

// Markings returns the 72 outer ring ticks, one every 5 degrees
func Markings() []Marking {
	markings := make([]Marking, 0, heading.FullCircle/MarkingStep)
	for deg := 0; deg < heading.FullCircle; deg += MarkingStep {
		x, y := polar(deg, MarkingRadius)
		markings = append(markings, Marking{
			Degree:   deg,
			Kind:     markKind(deg),
			X:        x,
			Y:        y,
			Rotation: float64(deg),
		})
	}
	return markings
}

// Numbers returns the 36 three-digit degree labels, one every 10 degrees
func Numbers() []Number {
	numbers := make([]Number, 0, heading.FullCircle/NumberStep)
	for deg := 0; deg < heading.FullCircle; deg += NumberStep {
		x, y := polar(deg, NumberRadius)
		numbers = append(numbers, Number{
			Degree: deg,
			Label:  heading.Heading(deg).String(),
			X:      x,
			Y:      y,
		})
	}
	return numbers
}

// InnerNumbers returns the dial numerals 1-8 every 45 degrees clockwise
// from the dial's North, plus 9 inside the 1, as seen at heading h
func InnerNumbers(h heading.Heading) []DialNumber {
	numbers := make([]DialNumber, 0, 9)
	for i := 0; i < 9; i++ {
		angle := heading.Normalize(i * 45).Degrees()
		radius := InnerNumberRadius
		if i == 8 {
			radius = InnerNinthRadius
		}
		numbers = append(numbers, DialNumber{
			Label:       strconv.Itoa(i + 1),
			DialAngle:   angle,
			ScreenAngle: heading.Normalize(angle - h.Degrees()).Degrees(),
			Radius:      radius,
		})
	}
	return numbers
}

func markKind(deg int) MarkKind {
	switch {
	case deg%30 == 0:
		return MarkMajor
	case deg%10 == 0:
		return MarkMedium
	default:
		return MarkMinor
	}
}

// polar places a compass angle on a circle with y growing downwards, so
// 0° is straight up and 90° is to the right.
func polar(deg int, radius float64) (float64, float64) {
	rad := float64(deg) * math.Pi / 180
	return round(math.Sin(rad) * radius), round(-math.Cos(rad) * radius)
}

// round trims float noise so identical inputs print identically
func round(v float64) float64 {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		return 0
	}
	return r
}
