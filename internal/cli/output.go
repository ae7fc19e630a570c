package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Output formats.
const (
	formatHex   = "hex"
	formatRGB   = "rgb"
	formatHSL   = "hsl"
	formatJSON  = "json"
	formatTable = "table"
)

// Preview block widths.
const (
	previewWidth = 4
	swatchWidth  = 6
)

// paletteFormats returns the formats supported for palette output.
func paletteFormats() []string {
	return []string{formatHex, formatRGB, formatHSL, formatJSON, formatTable}
}

// outputFlags holds flags shared by commands that print a palette.
type outputFlags struct {
	format  string
	output  string
	preview bool
}

func (o *outputFlags) register(cmd *cobra.Command, defaultFormat string) {
	formats := paletteFormats()
	cmd.Flags().VarP(newFormatValue(defaultFormat, formats, &o.format), "format", "f",
		"output format ("+strings.Join(formats, ", ")+")")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVarP(&o.preview, "preview", "p", false, "show colour previews in terminal")
}

// showPreview reports whether ANSI previews should be written for this run.
// An explicit --preview is honoured on any writer; table output on a
// terminal includes previews by default.
func (a *app) showPreview(cmd *cobra.Command, o *outputFlags) bool {
	if a.noColour || o.output != "" {
		return false
	}
	if o.preview {
		return true
	}
	return o.format == formatTable && colour.SupportsANSIColours(cmd.OutOrStdout())
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case formatHex:
		if showPreview {
			return formatLines(palette, false, func(_ int, c colour.Color) string {
				return colour.FormatColourWithPreview(c, previewWidth)
			}), nil
		}
		return formatLines(palette, false, func(_ int, c colour.Color) string { return c.Hex() }), nil
	case formatRGB:
		rgbs := palette.ToRGBSlice()
		return formatLines(palette, showPreview, func(i int, _ colour.Color) string {
			return rgbs[i].String()
		}), nil
	case formatHSL:
		return formatLines(palette, showPreview, func(_ int, c colour.Color) string {
			return colour.RGBToHSL(c).String()
		}), nil
	case formatJSON:
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	case formatTable:
		return formatPaletteTable(palette, showPreview), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(paletteFormats(), ", "))
	}
}

// formatLines writes one colour per line using text, optionally prefixed
// with a preview block.
func formatLines(palette *colour.Palette, showPreview bool, text func(int, colour.Color) string) string {
	var b strings.Builder
	for i, c := range palette.All() {
		if showPreview {
			b.WriteString(colour.ColourPreview(c, previewWidth))
			b.WriteString(" ")
		}
		b.WriteString(text(i, c))
		b.WriteString("\n")
	}
	return b.String()
}

// formatPaletteTable renders the palette as a table. The Swatch column shows
// each colour with its row number overlaid.
func formatPaletteTable(palette *colour.Palette, showPreview bool) string {
	headers := []string{"#", "Hex", "RGB", "HSL"}
	if showPreview {
		headers = append([]string{"Swatch"}, headers...)
	}

	table := NewTable(headers)
	for i, c := range palette.All() {
		index := strconv.Itoa(i + 1)
		row := []string{index, c.Hex(), c.String(), colour.RGBToHSL(c).String()}
		if showPreview {
			row = append([]string{colour.ColourPreviewWithText(c, index, swatchWidth)}, row...)
		}
		table.AddRow(row)
	}
	return table.Render()
}

// writeOutput writes output to path, or to the command's stdout when path is empty.
func (a *app) writeOutput(cmd *cobra.Command, path, output string) error {
	if path == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	a.logger.Debug("writing output", "path", path)
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil { // #nosec G306 -- palette output is not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	a.logger.Info("wrote palette", "path", path)
	return nil
}

// warnUnknownSort logs when a sort type will leave colours in input order.
func (a *app) warnUnknownSort(sortType colour.SortType) {
	if sortType != "" && sortType != sortNone && !sortType.IsKnown() {
		a.logger.Warn("unrecognised sort type, keeping input order", "sort", sortType)
	}
}
