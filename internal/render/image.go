package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

var (
	boldFont *truetype.Font
	monoFont *truetype.Font
)

// init parses the embedded Go fonts used for labels.
func init() {
	var err error
	boldFont, err = truetype.Parse(gobold.TTF)
	if err != nil {
		panic(err)
	}
	monoFont, err = truetype.Parse(gomono.TTF)
	if err != nil {
		panic(err)
	}
}

// Housing palette, after the slate tones of a bridge instrument
var (
	colorBackground = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	colorHousing    = color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff}
	colorRing       = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
	colorScale      = color.RGBA{R: 0x33, G: 0x41, B: 0x55, A: 0xff}
	colorDial       = color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	colorBadge      = color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	colorPointer    = color.RGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	colorReadout    = color.RGBA{R: 0x86, G: 0xef, B: 0xac, A: 0xff}
)

// Marking lengths in scene units
var markLength = map[MarkKind]float64{
	MarkMinor:  6,
	MarkMedium: 10,
	MarkMajor:  16,
}

// MinImageSize is the smallest square image DrawImage will produce
const MinImageSize = 64

// DrawImage renders the scene as a size x size raster
func DrawImage(scene Scene, size int) image.Image {
	if size < MinImageSize {
		size = MinImageSize
	}
	dc := gg.NewContext(size, size)
	scale := float64(size) / ReferenceSize
	center := float64(size) / 2

	dc.SetColor(colorBackground)
	dc.Clear()

	dc.Push()
	dc.Translate(center, center)
	dc.Scale(scale, scale)

	// Housing and the fixed degree ring
	dc.SetColor(colorHousing)
	dc.DrawCircle(0, 0, 190)
	dc.Fill()
	dc.SetColor(colorRing)
	dc.DrawCircle(0, 0, 186)
	dc.Fill()

	dc.SetColor(colorScale)
	for _, m := range scene.Markings {
		rad := float64(m.Degree) * math.Pi / 180
		inner := MarkingRadius - markLength[m.Kind]
		dc.SetLineWidth(lineWidth(m.Kind))
		dc.DrawLine(math.Sin(rad)*inner, -math.Cos(rad)*inner, m.X, m.Y)
		dc.Stroke()
	}

	dc.SetFontFace(truetype.NewFace(boldFont, &truetype.Options{Size: 9}))
	for _, n := range scene.Numbers {
		dc.DrawStringAnchored(n.Label, n.X, n.Y, 0.5, 0.5)
	}

	// Rotating dial
	dc.Push()
	dc.Rotate(gg.Radians(scene.DialRotation))
	dc.SetColor(colorDial)
	dc.DrawCircle(0, 0, 136)
	dc.Fill()
	dc.SetColor(colorScale)
	dc.SetLineWidth(2)
	dc.DrawCircle(0, 0, 136)
	dc.Stroke()

	dc.SetColor(colorBadge)
	dc.SetFontFace(truetype.NewFace(monoFont, &truetype.Options{Size: 15}))
	for _, dn := range scene.InnerNumbers {
		rad := float64(dn.DialAngle) * math.Pi / 180
		dc.DrawStringAnchored(dn.Label, math.Sin(rad)*dn.Radius, -math.Cos(rad)*dn.Radius, 0.5, 0.35)
	}

	dc.SetFontFace(truetype.NewFace(boldFont, &truetype.Options{Size: 14}))
	for _, cm := range scene.Cardinals {
		rad := float64(cm.DialAngle) * math.Pi / 180
		x, y := math.Sin(rad)*112, -math.Cos(rad)*112
		dc.SetColor(colorBadge)
		dc.DrawCircle(x, y, 16)
		dc.Fill()
		dc.SetColor(colorDial)
		dc.DrawStringAnchored(cm.Label, x, y, 0.5, 0.35)
	}
	dc.Pop()

	// Hub
	dc.SetColor(colorBadge)
	dc.DrawCircle(0, 0, 32)
	dc.Fill()
	dc.SetColor(colorHousing)
	dc.SetLineWidth(6)
	dc.DrawCircle(0, 0, 32)
	dc.Stroke()

	// Fixed bow pointer
	dc.SetColor(colorPointer)
	dc.SetLineWidth(3)
	dc.DrawLine(0, -160, 0, -112)
	dc.Stroke()
	dc.MoveTo(-6, -112)
	dc.LineTo(6, -112)
	dc.LineTo(0, -100)
	dc.ClosePath()
	dc.Fill()

	// Heading readout in the hub
	dc.SetColor(colorReadout)
	dc.SetFontFace(truetype.NewFace(monoFont, &truetype.Options{Size: 13}))
	dc.DrawStringAnchored(scene.HeadingLabel, 0, 0, 0.5, 0.35)

	dc.Pop()

	return dc.Image()
}

// WritePNG encodes the scene as a PNG of the given size
func WritePNG(w io.Writer, scene Scene, size int) error {
	img := DrawImage(scene, size)
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func lineWidth(kind MarkKind) float64 {
	switch kind {
	case MarkMajor:
		return 2.5
	case MarkMedium:
		return 1.5
	default:
		return 1
	}
}
