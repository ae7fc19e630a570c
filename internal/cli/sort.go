package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
)

type sortOptions struct {
	sortType   colour.SortType
	file       string
	imagePath  string
	sampleSize int
	unique     bool
	extract    int
	seedFlags
	outputFlags
}

func newSortCmd(a *app) *cobra.Command {
	opts := &sortOptions{}

	cmd := &cobra.Command{
		Use:   "sort [colour...]",
		Short: "Sort a list of colours",
		Long: `Sort colours by luminance, hue, saturation or lightness, or shuffle them.

Colours may be given as arguments, read from a file with one colour per
line (use "-" for stdin), or sampled from an image. Each colour is a hex
code (#ff8000, #f80), rgb(r, g, b) or an r,g,b triple.

An unrecognised sort type leaves colours in their input order.

Examples:
  # Sort a few colours by hue
  swatch sort --by hue '#ff0000' '#00ff00' '#0000ff' 'rgb(128, 0, 128)'

  # Sort a palette file by lightness
  swatch sort --by lightness --file palette.txt

  # Sort the colours of a wallpaper thumbnail by saturation
  swatch sort --by sat --image wallpaper.png --size 8 --unique --format table

  # The 6 dominant colours of a wallpaper, darkest first
  swatch sort --by luminance --image wallpaper.jpg --size 64 --extract 6

  # Uniform, reproducible shuffle from stdin
  swatch generate --increment 64 | swatch sort --by uniform --seed 7 --file -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSort(cmd, opts, args)
		},
	}

	cmd.Flags().VarP(newSortTypeValue(a.config.Sort, &opts.sortType), "by", "b", sortTypeUsage())
	cmd.Flags().StringVar(&opts.file, "file", "", `read colours from a file ("-" for stdin)`)
	cmd.Flags().StringVarP(&opts.imagePath, "image", "i", "", "sample colours from an image")
	cmd.Flags().IntVar(&opts.sampleSize, "size", colour.DefaultSampleSize, "thumbnail size used when sampling an image")
	cmd.Flags().BoolVarP(&opts.unique, "unique", "u", false, "drop duplicate colours before sorting")
	cmd.Flags().IntVarP(&opts.extract, "extract", "k", 0, "reduce colours to this many with k-means clustering (0 = off)")
	opts.seedFlags.register(cmd)
	opts.outputFlags.register(cmd, a.config.Format)

	return cmd
}

func (a *app) runSort(cmd *cobra.Command, opts *sortOptions, args []string) error {
	colors, err := a.collectColours(cmd, opts, args)
	if err != nil {
		return err
	}
	if len(colors) == 0 {
		return fmt.Errorf("no colours provided: pass colours as arguments, --file or --image")
	}

	if opts.unique {
		before := len(colors)
		colors = colour.Unique(colors)
		a.logger.Debug("removed duplicate colours", "before", before, "after", len(colors))
	}

	if opts.extract > 0 {
		extracted, err := opts.extractor(cmd).Extract(colors, opts.extract)
		if err != nil {
			return fmt.Errorf("failed to extract colours: %w", err)
		}
		a.logger.Debug("extracted colours", "from", len(colors), "to", len(extracted))
		colors = extracted
	}

	a.warnUnknownSort(opts.sortType)
	a.logger.Debug("sorting colours", "sort", opts.sortType, "colours", len(colors))
	palette := colour.NewPalette(colors).Sorted(opts.sorter(cmd), opts.sortType)

	output, err := formatPalette(palette, opts.format, a.showPreview(cmd, &opts.outputFlags))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return a.writeOutput(cmd, opts.output, output)
}

// collectColours gathers colours from arguments, the file and the image, in that order.
func (a *app) collectColours(cmd *cobra.Command, opts *sortOptions, args []string) ([]colour.Color, error) {
	colors := make([]colour.Color, 0, len(args))

	for _, arg := range args {
		c, err := colour.ParseColor(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid colour argument: %w", err)
		}
		colors = append(colors, c)
	}

	if opts.file != "" {
		fileColours, err := readColourFile(cmd, opts.file)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("read colours from file", "path", opts.file, "colours", len(fileColours))
		colors = append(colors, fileColours...)
	}

	if opts.imagePath != "" {
		if err := image.ValidateImagePath(opts.imagePath); err != nil {
			return nil, fmt.Errorf("invalid image path: %w", err)
		}

		a.logger.Debug("loading image", "path", opts.imagePath)
		img, err := image.NewFileLoader().Load(opts.imagePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load image: %w", err)
		}

		bounds := img.Bounds()
		sampled := colour.SampleImage(img, opts.sampleSize)
		a.logger.Debug("sampled image",
			"width", bounds.Dx(),
			"height", bounds.Dy(),
			"size", opts.sampleSize,
			"colours", len(sampled))
		colors = append(colors, sampled...)
	}

	return colors, nil
}

func readColourFile(cmd *cobra.Command, path string) ([]colour.Color, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path) // #nosec G304 - User-specified input file, intended to be read
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read colour file: %w", err)
	}

	colors, err := colour.ParseColors(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse colour file %s: %w", path, err)
	}
	return colors, nil
}
