package colour

import (
	"fmt"
	"math"
)

// Default sampling grid.
const (
	DefaultStart     = 8
	DefaultIncrement = 8
	DefaultLimit     = 256

	maxPreallocSteps = 256

	// MaxGridColours is the largest palette Validate accepts: every 8-bit
	// colour.
	MaxGridColours = 1 << 24
)

// Grid describes the channel values sampled by GeneratePalette.
type Grid struct {
	Start     float64
	Increment float64
	Limit     float64
}

// DefaultGrid returns the default grid (8 to 256 in steps of 8).
func DefaultGrid() Grid {
	return Grid{
		Start:     DefaultStart,
		Increment: DefaultIncrement,
		Limit:     DefaultLimit,
	}
}

// Validate checks that the grid terminates, is non-negative and produces at
// most MaxGridColours colours.
// GeneratePalette does not call this; callers that accept user input should.
func (g Grid) Validate() error {
	for _, v := range []float64{g.Start, g.Increment, g.Limit} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("start, increment and limit must be finite, got start=%g increment=%g limit=%g",
				g.Start, g.Increment, g.Limit)
		}
	}
	if g.Increment <= 0 {
		return fmt.Errorf("increment must be greater than 0, got %g", g.Increment)
	}
	if g.Start < 0 || g.Limit < 0 {
		return fmt.Errorf("start and limit must be non-negative, got start=%g limit=%g", g.Start, g.Limit)
	}
	if g.Start > g.Limit {
		return nil
	}

	// Float addition stops advancing once the increment is below the
	// precision of the running value; the largest value reached is Limit.
	if g.Start+g.Increment == g.Start || g.Limit+g.Increment == g.Limit {
		return fmt.Errorf("increment %g is too small to advance values up to %g", g.Increment, g.Limit)
	}

	steps := math.Floor((g.Limit-g.Start)/g.Increment) + 1
	if steps*steps*steps > MaxGridColours {
		return fmt.Errorf("grid would produce about %.3g colours (maximum: %d)", steps*steps*steps, MaxGridColours)
	}
	return nil
}

// Steps returns how many values each channel takes. Counting stops if the
// increment no longer advances the value.
func (g Grid) Steps() int {
	if g.Increment <= 0 || g.Start > g.Limit {
		return 0
	}
	n := 0
	for v := g.Start; v <= g.Limit; {
		n++
		next := v + g.Increment
		if next == v {
			break
		}
		v = next
	}
	return n
}

// Len returns the number of colours the grid produces.
func (g Grid) Len() int {
	n := g.Steps()
	return n * n * n
}

// Colors generates the grid's palette.
func (g Grid) Colors() []Color {
	return GeneratePalette(g.Start, g.Increment, g.Limit)
}

// GeneratePalette returns every colour whose channels run from start to limit
// inclusive in steps of increment.
//
// Colours are enumerated with red outermost, then blue, then green innermost.
// The increment is not checked: an increment <= 0 with start <= limit never
// terminates.
func GeneratePalette(start, increment, limit float64) []Color {
	var colors []Color
	if start <= limit && increment > 0 {
		if n := int((limit-start)/increment) + 1; n <= maxPreallocSteps {
			colors = make([]Color, 0, n*n*n)
		}
	}

	for red := start; red <= limit; red += increment {
		for blue := start; blue <= limit; blue += increment {
			for green := start; green <= limit; green += increment {
				colors = append(colors, Color{red, green, blue})
			}
		}
	}
	return colors
}
