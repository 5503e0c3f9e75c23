package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/ranwar/GyroCompassSimulator/internal/compass"
)

func TestDrawImage_Size(t *testing.T) {
	img := DrawImage(Build(compass.State{Heading: 45}), 200)
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("bounds = %v, want 200x200", b)
	}

	small := DrawImage(Build(compass.State{}), 10)
	if b := small.Bounds(); b.Dx() != MinImageSize {
		t.Errorf("small image width = %d, want %d", b.Dx(), MinImageSize)
	}
}

func TestDrawImage_RotationChangesPixels(t *testing.T) {
	a := DrawImage(Build(compass.State{Heading: 0}), 128)
	b := DrawImage(Build(compass.State{Heading: 90}), 128)

	var bufA, bufB bytes.Buffer
	if err := png.Encode(&bufA, a); err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(&bufB, b); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(bufA.Bytes(), bufB.Bytes()) {
		t.Error("images for 000° and 090° are identical")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, Build(compass.State{Heading: 270}), 96); err != nil {
		t.Fatalf("WritePNG() error: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 96 {
		t.Errorf("width = %d, want 96", img.Bounds().Dx())
	}
}
