package colour

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// DefaultSampleSize is the default thumbnail edge used by SampleImage.
const DefaultSampleSize = 16

// FromColor converts a standard library colour to a Color with 8-bit channels.
// Alpha is ignored.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return Color{float64(r >> 8), float64(g >> 8), float64(b >> 8)}
}

// SampleImage shrinks img to fit within size x size pixels and returns one
// colour per thumbnail pixel in row-major order.
// A size <= 0 uses DefaultSampleSize.
func SampleImage(img image.Image, size int) []Color {
	if img == nil {
		return nil
	}
	if size <= 0 {
		size = DefaultSampleSize
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return []Color{}
	}

	thumb := image.Image(img)
	if bounds.Dx() > size || bounds.Dy() > size {
		thumb = imaging.Fit(img, size, size, imaging.Box)
	}

	tb := thumb.Bounds()
	colors := make([]Color, 0, tb.Dx()*tb.Dy())
	for y := tb.Min.Y; y < tb.Max.Y; y++ {
		for x := tb.Min.X; x < tb.Max.X; x++ {
			colors = append(colors, FromColor(thumb.At(x, y)))
		}
	}
	return colors
}

// Unique returns colours with duplicates removed, keeping first occurrences.
func Unique(colors []Color) []Color {
	seen := make(map[Color]struct{}, len(colors))
	out := make([]Color, 0, len(colors))
	for _, c := range colors {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
