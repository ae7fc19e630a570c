package colour

import (
	"image"
	"image/color"
	"slices"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleImageSmall(t *testing.T) {
	img := solidImage(4, 4, color.RGBA{R: 255, A: 255})

	got := SampleImage(img, 16)
	if len(got) != 16 {
		t.Fatalf("expected 16 samples, got %d", len(got))
	}
	for _, c := range got {
		if c != (Color{255, 0, 0}) {
			t.Fatalf("expected red sample, got %v", c)
		}
	}
}

func TestSampleImageResizes(t *testing.T) {
	img := solidImage(64, 32, color.RGBA{B: 255, A: 255})

	got := SampleImage(img, 8)
	if len(got) != 8*4 {
		t.Fatalf("expected 32 samples, got %d", len(got))
	}
	if got[0] != (Color{0, 0, 255}) {
		t.Errorf("expected blue sample, got %v", got[0])
	}
}

func TestSampleImageRowMajor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 1, A: 255})
	img.Set(1, 0, color.RGBA{R: 2, A: 255})
	img.Set(0, 1, color.RGBA{R: 3, A: 255})
	img.Set(1, 1, color.RGBA{R: 4, A: 255})

	got := SampleImage(img, 0)
	want := []Color{{1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {4, 0, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("SampleImage() = %v, want %v", got, want)
	}
}

func TestSampleImageNil(t *testing.T) {
	if got := SampleImage(nil, 8); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestUnique(t *testing.T) {
	got := Unique([]Color{{1, 1, 1}, {2, 2, 2}, {1, 1, 1}, {3, 3, 3}, {2, 2, 2}})
	want := []Color{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}
	if !slices.Equal(got, want) {
		t.Errorf("Unique() = %v, want %v", got, want)
	}
}
