package cli

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
)

// sortTypeValue is a pflag.Value for colour.SortType. Any string is
// accepted: unrecognised sort types leave colours in input order.
type sortTypeValue struct {
	target *colour.SortType
}

var _ pflag.Value = (*sortTypeValue)(nil)

func newSortTypeValue(def colour.SortType, p *colour.SortType) *sortTypeValue {
	*p = def
	return &sortTypeValue{target: p}
}

func (v *sortTypeValue) String() string { return string(*v.target) }

func (v *sortTypeValue) Set(s string) error {
	*v.target = colour.SortType(strings.TrimSpace(s))
	return nil
}

func (v *sortTypeValue) Type() string { return "sortType" }

// formatValue is a pflag.Value restricted to a fixed set of formats.
type formatValue struct {
	target  *string
	allowed []string
}

var _ pflag.Value = (*formatValue)(nil)

func newFormatValue(def string, allowed []string, p *string) *formatValue {
	if !slices.Contains(allowed, def) {
		def = allowed[0]
	}
	*p = def
	return &formatValue{target: p, allowed: allowed}
}

func (v *formatValue) String() string { return *v.target }

func (v *formatValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(v.allowed, s) {
		return fmt.Errorf("unsupported format %q (supported: %s)", s, strings.Join(v.allowed, ", "))
	}
	*v.target = s
	return nil
}

func (v *formatValue) Type() string { return "format" }

// sortTypeUsage lists the recognised sort types for flag help.
func sortTypeUsage() string {
	names := make([]string, 0, len(colour.SortTypes()))
	for _, t := range colour.SortTypes() {
		names = append(names, t.String())
	}
	return "sort type (" + strings.Join(names, ", ") + "; anything else keeps input order)"
}

// seedFlags holds the --seed flag shared by commands that shuffle.
type seedFlags struct {
	seed int64
}

func (s *seedFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&s.seed, "seed", 0, "random seed for shuffle sort types (default: random)")
}

// rand returns a source seeded from --seed, or nil when it was not given.
func (s *seedFlags) rand(cmd *cobra.Command) *rand.Rand {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	seed := uint64(s.seed) // #nosec G115 -- seed bits are reinterpreted, not range checked
	return rand.New(rand.NewPCG(seed, seed))
}

// sorter returns a Sorter, seeded when --seed was given.
func (s *seedFlags) sorter(cmd *cobra.Command) *colour.Sorter {
	if r := s.rand(cmd); r != nil {
		return colour.NewSorter(colour.WithRand(r))
	}
	return colour.NewSorter()
}

// extractor returns the colour extractor used by --extract, seeded when
// --seed was given.
func (s *seedFlags) extractor(cmd *cobra.Command) colour.Extractor {
	return colour.NewKMeansExtractor(s.rand(cmd))
}
