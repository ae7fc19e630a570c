// Package colour provides palette generation, RGB/HSL conversion and colour sorting.
package colour

import (
	"fmt"
	"math"
)

// Color is an RGB triple: index 0 is red, 1 is green, 2 is blue.
//
// Channels are conventionally in [0, 256]. 256 is accepted as-is and is
// expected to be clamped to 255 by whatever renders the colour (see RGB).
type Color [3]float64

// HSL is a hue, saturation, lightness triple with each component in [0, 1].
type HSL [3]float64

// RGB is an 8-bit, display-ready form of a Color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGB converts the colour to 8-bit channels for display.
// Channels are rounded and clamped to [0, 255], so 256 renders as 255.
func (c Color) RGB() RGB {
	return RGB{R: clampChannel(c[0]), G: clampChannel(c[1]), B: clampChannel(c[2])}
}

// Hex returns the colour as a display hex string (e.g. "#1a2b3c").
func (c Color) Hex() string {
	return c.RGB().Hex()
}

// String returns the raw channel values in the format "rgb(r, g, b)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%s, %s, %s)", formatChannel(c[0]), formatChannel(c[1]), formatChannel(c[2]))
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Lightness returns the lightness component.
func (h HSL) Lightness() float64 { return h[2] }

// String returns the triple as "hsl(h, s, l)" with hue in degrees and
// saturation/lightness as percentages.
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", h[0]*360, h[1]*100, h[2]*100)
}

func clampChannel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// formatChannel prints whole channel values without a fractional part.
func formatChannel(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
