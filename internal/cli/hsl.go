package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

type hslOptions struct {
	format string
}

// hslJSON is one converted colour in JSON output.
type hslJSON struct {
	Input string     `json:"input"`
	RGB   [3]float64 `json:"rgb"`
	HSL   [3]float64 `json:"hsl"`
}

func newHSLCmd(a *app) *cobra.Command {
	opts := &hslOptions{}

	cmd := &cobra.Command{
		Use:   "hsl <colour>...",
		Short: "Convert colours to HSL",
		Long: `Convert colours to hue, saturation and lightness, each in [0, 1].

Channels are normalised by 256, so rgb(256, 256, 256) is pure white and
rgb(255, 255, 255) has a lightness just below 1.

Examples:
  swatch hsl '#ff8000' 'rgb(256, 256, 256)' 0,128,128
  swatch hsl --format json 8,16,24`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHSL(cmd, opts, args)
		},
	}

	formats := []string{formatTable, formatJSON}
	cmd.Flags().VarP(newFormatValue(formatTable, formats, &opts.format), "format", "f",
		"output format ("+strings.Join(formats, ", ")+")")

	return cmd
}

func (a *app) runHSL(cmd *cobra.Command, opts *hslOptions, args []string) error {
	results := make([]hslJSON, 0, len(args))
	for _, arg := range args {
		c, err := colour.ParseColor(arg)
		if err != nil {
			return fmt.Errorf("invalid colour argument: %w", err)
		}
		results = append(results, hslJSON{Input: arg, RGB: c, HSL: colour.RGBToHSL(c)})
	}
	a.logger.Debug("converted colours", "colours", len(results))

	var output string
	switch opts.format {
	case formatJSON:
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		output = string(data) + "\n"
	default:
		table := NewTable([]string{"Colour", "Hue", "Saturation", "Lightness"})
		for _, r := range results {
			table.AddRow([]string{
				r.Input,
				fmt.Sprintf("%.4f", r.HSL[0]),
				fmt.Sprintf("%.4f", r.HSL[1]),
				fmt.Sprintf("%.4f", r.HSL[2]),
			})
		}
		output = table.Render()
	}

	return a.writeOutput(cmd, "", output)
}
