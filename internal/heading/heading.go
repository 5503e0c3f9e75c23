package heading

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FullCircle is the number of degrees in one revolution
const FullCircle = 360

// TickStep is the number of degrees one auto-rotate tick adds
const TickStep = 1

// ErrNotInteger is returned by Parse when the text is not a decimal integer
var ErrNotInteger = errors.New("not an integer heading")

// Heading is a compass direction in whole degrees clockwise from North.
// A Heading produced by this package is always in [0, 360).
type Heading int

// Normalize maps any integer onto the canonical [0, 360) range
func Normalize(raw int) Heading {
	return Heading(((raw % FullCircle) + FullCircle) % FullCircle)
}

// Degrees returns the heading as a plain int
func (h Heading) Degrees() int {
	return int(h)
}

// String returns the three-digit form used on the heading display ("007")
func (h Heading) String() string {
	return fmt.Sprintf("%03d", int(h))
}

// Label returns the display form with the degree sign ("090°")
func (h Heading) Label() string {
	return h.String() + "°"
}

// Add returns the heading advanced by step degrees, wrapping around North
func (h Heading) Add(step int) Heading {
	return Normalize(int(h) + step)
}

// Parse reads a decimal integer heading from free-form text.
// Surrounding whitespace and a leading sign are accepted; fractions,
// trailing garbage and empty input are rejected.
func Parse(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("empty input: %w", ErrNotInteger)
	}

	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", text, ErrNotInteger)
	}

	return value, nil
}
