package media

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestImagingProbeReadsDimensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.png")
	writeFixturePNG(t, path, 12, 7)

	probe := NewImageProbe()
	dim, ok := probe.Probe(path)
	if !ok {
		t.Fatal("expected a successful probe")
	}
	if dim.Width != 12 || dim.Height != 7 {
		t.Errorf("got %+v, want {12 7}", dim)
	}
}

func TestImagingProbeAbsentOnNonImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixture.txt")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := NewImageProbe().Probe(path); ok {
		t.Error("expected probe to report absent for a non-image file")
	}
}

func writeFixturePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}
