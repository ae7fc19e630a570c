package colour

import "math"

// hslScale is the channel divisor used when normalising to HSL.
// The grid runs up to 256, so 256 rather than 255 maps to 1.0.
const hslScale = 256.0

// Luminance channel weights.
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// RGBToHSL converts a colour to HSL. Each component of the result is in [0, 1]
// for channels in [0, 256]; other inputs are converted as-is.
func RGBToHSL(c Color) HSL {
	r := c[0] / hslScale
	g := c[1] / hslScale
	b := c[2] / hslScale

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	l := (maxVal + minVal) / 2

	if maxVal == minVal {
		// Achromatic.
		return HSL{0, 0, l}
	}

	d := maxVal - minVal

	var s float64
	if l > 0.5 {
		s = d / (2 - maxVal - minVal)
	} else {
		s = d / (maxVal + minVal)
	}

	// Ties resolve red, then green, then blue.
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{h, s, l}
}

// rgbToLuminance returns the perceived brightness of a colour from its raw
// channel values: sqrt(0.299*r^2 + 0.587*g^2 + 0.114*b^2).
func rgbToLuminance(c Color) float64 {
	return math.Sqrt(lumaRed*c[0]*c[0] + lumaGreen*c[1]*c[1] + lumaBlue*c[2]*c[2])
}
