package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger creates the CLI logger. Output goes to w, normally stderr, so
// that it never mixes with palette output.
func newLogger(w io.Writer, level hclog.Level) hclog.Logger {
	if level == hclog.Off {
		return hclog.NewNullLogger()
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:            "swatch",
		Output:          w,
		Level:           level,
		Color:           hclog.ColorOff,
		DisableTime:     true,
		IncludeLocation: false,
	})
}
