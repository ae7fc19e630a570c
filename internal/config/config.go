// Package config provides CLI configuration with environment overrides.
package config

import (
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Environment variables read by WithEnvConfig.
const (
	EnvSort     = "SWATCH_SORT"
	EnvFormat   = "SWATCH_FORMAT"
	EnvNoColour = "SWATCH_NO_COLOUR"
	EnvNoColor  = "NO_COLOR"
	EnvLogLevel = "SWATCH_LOG_LEVEL"
)

// Config holds defaults for CLI commands. Flags that are set explicitly
// take precedence over these values.
type Config struct {
	// Sort is the default sort type.
	Sort colour.SortType

	// Format is the default output format.
	Format string

	// NoColour disables ANSI previews.
	NoColour bool

	// LogLevel overrides the level derived from --verbose/--quiet.
	LogLevel hclog.Level
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sort:     colour.SortLuminance,
		Format:   "hex",
		NoColour: false,
		LogLevel: hclog.NoLevel,
	}
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
}

// NewBuilder creates a new Config builder with default settings.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithEnvConfig loads configuration from SWATCH_* environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	b.lookup = lookup
	return b
}

// Build constructs the Config.
func (b *Builder) Build() Config {
	config := b.config
	if !b.useEnv {
		return config
	}

	if v, ok := b.lookup(EnvSort); ok && v != "" {
		config.Sort = colour.SortType(strings.TrimSpace(v))
	}
	if v, ok := b.lookup(EnvFormat); ok && v != "" {
		config.Format = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := b.lookup(EnvNoColour); ok && isTruthy(v) {
		config.NoColour = true
	}
	// https://no-color.org: any non-empty value disables colour.
	if v, ok := b.lookup(EnvNoColor); ok && v != "" {
		config.NoColour = true
	}
	if v, ok := b.lookup(EnvLogLevel); ok && v != "" {
		config.LogLevel = hclog.LevelFromString(v)
	}

	return config
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
