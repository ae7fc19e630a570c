package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor parses a colour value.
//
// Accepted forms:
//   - hex: "#rrggbb" or "#rgb" (the leading '#' is optional)
//   - functional: "rgb(r, g, b)"
//   - triple: "r,g,b" or "r g b"
//
// Functional and triple channels may be fractional and may exceed 255 (256
// is the grid's upper bound), but must be finite and not negative.
func ParseColor(s string) (Color, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return Color{}, fmt.Errorf("empty colour value")
	}

	lower := strings.ToLower(value)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseTriple(value[4 : len(value)-1])
	}

	if strings.ContainsAny(value, ", ") {
		return parseTriple(value)
	}

	return parseHex(value)
}

// parseHex decodes a hex colour using go-colorful.
func parseHex(s string) (Color, error) {
	hex := s
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return Color{float64(r), float64(g), float64(b)}, nil
}

func parseTriple(s string) (Color, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return Color{}, fmt.Errorf("invalid colour %q: expected 3 channels, got %d", s, len(fields))
	}

	var c Color
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Color{}, fmt.Errorf("invalid channel %q in %q: %w", f, s, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Color{}, fmt.Errorf("invalid channel %q in %q: must be finite", f, s)
		}
		if v < 0 {
			return Color{}, fmt.Errorf("invalid channel %q in %q: must not be negative", f, s)
		}
		c[i] = v
	}
	return c, nil
}

// ParseColors parses one colour per line. Blank lines and lines starting
// with "//" or ";" are skipped, as is anything after a " #" on a line.
// A line starting with '#' is treated as a hex colour unless it is followed
// by a space ("# comment").
func ParseColors(content string) ([]Color, error) {
	colors := make([]Color, 0)

	lines := strings.Split(content, "\n")
	for lineNum, line := range lines {
		line = strings.TrimSpace(line)

		if idx := strings.Index(line, " #"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}

		if line == "" || line == "#" || strings.HasPrefix(line, "# ") ||
			strings.HasPrefix(line, "//") || strings.HasPrefix(line, ";") {
			continue
		}

		c, err := ParseColor(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		colors = append(colors, c)
	}

	return colors, nil
}
