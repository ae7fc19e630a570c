package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// sortNone is the generate command's default: keep grid order.
const sortNone colour.SortType = "none"

type generateOptions struct {
	grid     colour.Grid
	sortType colour.SortType
	seedFlags
	outputFlags
}

func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a palette over an RGB sampling grid",
		Long: `Generate every RGB colour whose channels run from --start to --limit
(inclusive) in steps of --increment.

Colours are listed with red varying slowest, then blue, then green. A
channel value of 256 is printed as-is in rgb output and rendered as 255
in hex output.

Examples:
  # Default grid: 8 to 256 in steps of 8 (32768 colours)
  swatch generate

  # Coarse grid sorted by hue, as a table with previews
  swatch generate --increment 64 --sort hue --format table --preview

  # Reproducible shuffle written to a file
  swatch generate --increment 32 --sort shuffle --seed 42 -o palette.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd, opts)
		},
	}

	def := colour.DefaultGrid()
	cmd.Flags().Float64Var(&opts.grid.Start, "start", def.Start, "first channel value")
	cmd.Flags().Float64Var(&opts.grid.Increment, "increment", def.Increment, "step between channel values (must be > 0)")
	cmd.Flags().Float64Var(&opts.grid.Limit, "limit", def.Limit, "last channel value (inclusive)")
	cmd.Flags().Var(newSortTypeValue(sortNone, &opts.sortType), "sort", sortTypeUsage())
	opts.seedFlags.register(cmd)
	opts.outputFlags.register(cmd, a.config.Format)

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	if err := opts.grid.Validate(); err != nil {
		return fmt.Errorf("invalid grid: %w", err)
	}

	a.logger.Debug("generating palette",
		"start", opts.grid.Start,
		"increment", opts.grid.Increment,
		"limit", opts.grid.Limit,
		"colours", opts.grid.Len())

	palette := colour.NewPalette(opts.grid.Colors())

	if opts.sortType != sortNone {
		a.warnUnknownSort(opts.sortType)
		a.logger.Debug("sorting palette", "sort", opts.sortType)
		palette = palette.Sorted(opts.sorter(cmd), opts.sortType)
	}

	output, err := formatPalette(palette, opts.format, a.showPreview(cmd, &opts.outputFlags))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return a.writeOutput(cmd, opts.output, output)
}
