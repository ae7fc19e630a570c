package colour

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func repeat(c Color, n int) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func TestKMeansExtractTwoClusters(t *testing.T) {
	var colors []Color
	colors = append(colors, repeat(Color{0, 0, 0}, 20)...)
	colors = append(colors, repeat(Color{10, 0, 0}, 20)...)
	colors = append(colors, repeat(Color{250, 250, 250}, 20)...)
	colors = append(colors, repeat(Color{240, 250, 250}, 20)...)

	e := NewKMeansExtractor(rand.New(rand.NewPCG(7, 7)))
	got, err := e.Extract(colors, 2)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	got = SortColors(SortLuminance, got)
	want := []Color{{5, 0, 0}, {245, 250, 250}}
	if !slices.Equal(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestKMeansExtractFewUniqueColours(t *testing.T) {
	colors := []Color{{1, 1, 1}, {2, 2, 2}, {1, 1, 1}}

	got, err := NewKMeansExtractor(nil).Extract(colors, 5)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if want := []Color{{1, 1, 1}, {2, 2, 2}}; !slices.Equal(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestKMeansExtractCount(t *testing.T) {
	colors := DefaultGrid().Colors()[:500]

	got, err := NewKMeansExtractor(rand.New(rand.NewPCG(1, 1))).Extract(colors, 8)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(got) != 8 {
		t.Errorf("expected 8 colours, got %d", len(got))
	}
}

func TestKMeansExtractErrors(t *testing.T) {
	e := NewKMeansExtractor(nil)

	tests := []struct {
		name   string
		colors []Color
		count  int
	}{
		{name: "no colours", colors: nil, count: 2},
		{name: "zero count", colors: []Color{{1, 2, 3}}, count: 0},
		{name: "count too large", colors: []Color{{1, 2, 3}}, count: MaxExtractCount + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Extract(tt.colors, tt.count); err == nil {
				t.Error("expected error")
			}
		})
	}
}
