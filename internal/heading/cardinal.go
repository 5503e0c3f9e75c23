package heading

import (
	"fmt"
	"strings"
)

// Cardinal is one of the four quick-set presets
type Cardinal int

const (
	North Cardinal = iota
	East
	South
	West
)

// Cardinals lists the presets in clockwise order starting at North
var Cardinals = []Cardinal{North, East, South, West}

// Heading returns the literal heading the preset selects
func (c Cardinal) Heading() Heading {
	return Heading(int(c) * 90)
}

// Letter returns the single-letter dial label ("N")
func (c Cardinal) Letter() string {
	switch c {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// String returns the full name of the direction
func (c Cardinal) String() string {
	switch c {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return fmt.Sprintf("Cardinal(%d)", int(c))
}

// PresetLabel returns the quick-set button caption ("E (90°)")
func (c Cardinal) PresetLabel() string {
	return fmt.Sprintf("%s (%d°)", c.Letter(), c.Heading().Degrees())
}

// ParseCardinal accepts a letter or a full name, case-insensitively
func ParseCardinal(s string) (Cardinal, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Cardinals {
		if name == strings.ToLower(c.Letter()) || name == c.String() {
			return c, nil
		}
	}
	return North, fmt.Errorf("unknown cardinal direction %q (want n, e, s or w)", s)
}
