package render

import (
	"math"
	"strings"
)

// Role tags each canvas cell so a front end can style it
type Role int

const (
	RoleBlank Role = iota
	RoleMarking
	RoleMajorMarking
	RoleNumber
	RoleCardinal
	RoleDialNumber
	RoleNorth
	RolePointer
	RoleHub
)

// Relative ring radii, as fractions of the outer number ring
const (
	markingRing  = MarkingRadius / NumberRadius
	cardinalRing = 0.52
	pointerTip   = 0.70
	pointerBase  = 0.80
)

// Terminal cells are roughly twice as tall as they are wide
const cellAspect = 2.0

var markRunes = map[MarkKind]rune{
	MarkMinor:  '·',
	MarkMedium: '•',
	MarkMajor:  '●',
}

type cell struct {
	r    rune
	role Role
}

// Canvas is a fixed-size grid of styled runes
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas returns a blank canvas
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]cell, height)
	for row := range cells {
		cells[row] = make([]cell, width)
		for col := range cells[row] {
			cells[row][col] = cell{r: ' '}
		}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells
func (c *Canvas) Height() int { return c.height }

// Set writes one rune; out-of-bounds writes are dropped
func (c *Canvas) Set(col, row int, r rune, role Role) {
	if col < 0 || row < 0 || col >= c.width || row >= c.height {
		return
	}
	c.cells[row][col] = cell{r: r, role: role}
}

// At returns the rune and role at a cell
func (c *Canvas) At(col, row int) (rune, Role) {
	if col < 0 || row < 0 || col >= c.width || row >= c.height {
		return ' ', RoleBlank
	}
	cl := c.cells[row][col]
	return cl.r, cl.role
}

// Text writes s centred on col
func (c *Canvas) Text(col, row int, s string, role Role) {
	runes := []rune(s)
	start := col - len(runes)/2
	for i, r := range runes {
		c.Set(start+i, row, r, role)
	}
}

// Lines returns the canvas as plain text rows
func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for row := range c.cells {
		var sb strings.Builder
		for _, cl := range c.cells[row] {
			sb.WriteRune(cl.r)
		}
		lines[row] = sb.String()
	}
	return lines
}

// Render joins the rows, passing each run of same-role cells through style
func (c *Canvas) Render(style func(Role, string) string) string {
	rows := make([]string, c.height)
	for row := range c.cells {
		var sb strings.Builder
		var run strings.Builder
		current := RoleBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style != nil && current != RoleBlank {
				sb.WriteString(style(current, run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range c.cells[row] {
			if cl.role != current {
				flush()
				current = cl.role
			}
			run.WriteRune(cl.r)
		}
		flush()
		rows[row] = sb.String()
	}
	return strings.Join(rows, "\n")
}

// DrawDial rasterizes a scene into a width x height terminal canvas: the
// fixed outer scale, the dial cardinals rotated by the heading, the hub and
// the bow pointer at twelve o'clock.
func DrawDial(scene Scene, width, height int) *Canvas {
	canvas := NewCanvas(width, height)
	if width < 9 || height < 5 {
		canvas.Text(width/2, height/2, scene.HeadingLabel, RoleNumber)
		return canvas
	}

	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	radius := math.Min(cy, (cx-1)/cellAspect)

	plot := func(deg float64, frac float64) (int, int) {
		rad := deg * math.Pi / 180
		col := cx + math.Sin(rad)*radius*frac*cellAspect
		row := cy - math.Cos(rad)*radius*frac
		return int(math.Round(col)), int(math.Round(row))
	}

	// Small canvases cannot fit every label; keep a regular subset.
	numberStep := 30
	if radius >= 14 {
		numberStep = 20
	}

	for _, m := range scene.Markings {
		if radius < 8 && m.Kind == MarkMinor {
			continue
		}
		role := RoleMarking
		if m.Kind == MarkMajor {
			role = RoleMajorMarking
		}
		col, row := plot(float64(m.Degree), markingRing)
		canvas.Set(col, row, markRunes[m.Kind], role)
	}

	for _, n := range scene.Numbers {
		if n.Degree%numberStep != 0 {
			continue
		}
		col, row := plot(float64(n.Degree), 1)
		canvas.Text(col, row, n.Label, RoleNumber)
	}

	// Dial numerals need room to stay clear of the cardinals
	if radius >= 12 {
		for _, dn := range scene.InnerNumbers {
			col, row := plot(float64(dn.ScreenAngle), dn.Radius/NumberRadius)
			canvas.Text(col, row, dn.Label, RoleDialNumber)
		}
	}

	for _, cm := range scene.Cardinals {
		role := RoleCardinal
		if cm.DialAngle == 0 {
			role = RoleNorth
		}
		col, row := plot(float64(cm.ScreenAngle), cardinalRing)
		canvas.Set(col, row, []rune(cm.Label)[0], role)
	}

	tipCol, tipRow := plot(0, pointerTip)
	_, baseRow := plot(0, pointerBase)
	for row := baseRow; row < tipRow; row++ {
		canvas.Set(tipCol, row, '│', RolePointer)
	}
	canvas.Set(tipCol, tipRow, '▼', RolePointer)

	hubCol, hubRow := plot(0, 0)
	canvas.Set(hubCol, hubRow, '◉', RoleHub)

	return canvas
}
