// Package cli provides the command-line interface for swatch.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/version"
)

// app holds state shared by all commands of one root command.
type app struct {
	config config.Config
	logger hclog.Logger

	// Global flags.
	verbose  bool
	quiet    bool
	noColour bool
}

// NewRootCmd builds the swatch command tree. Defaults are read from the
// SWATCH_* environment variables at construction time.
func NewRootCmd() *cobra.Command {
	a := &app{
		config: config.NewBuilder().WithEnvConfig().Build(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Generate, convert and sort RGB colour palettes",
		Long: `swatch generates RGB colour palettes over a sampling grid, converts colours
to HSL and sorts colour lists by luminance, hue, saturation, lightness or
at random.

Colours can come from the built-in grid, the command line, a text file or
an image.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&a.noColour, "no-colour", a.config.NoColour, "disable colour previews")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newSortCmd(a))
	rootCmd.AddCommand(newHSLCmd(a))

	return rootCmd
}

// setup configures logging once flags have been parsed.
func (a *app) setup(cmd *cobra.Command) {
	level := hclog.Warn
	if a.config.LogLevel != hclog.NoLevel {
		level = a.config.LogLevel
	}
	switch {
	case a.verbose:
		level = hclog.Debug
	case a.quiet:
		level = hclog.Error
	}

	a.logger = newLogger(cmd.ErrOrStderr(), level)
	a.logger.Debug("configuration loaded",
		"sort", a.config.Sort,
		"format", a.config.Format,
		"no_colour", a.noColour,
		"log_level", level.String())
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
				return err
			}
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to convert to JSON: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
