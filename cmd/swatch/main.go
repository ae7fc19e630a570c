// swatch - RGB palette generator and colour sorter
//
// swatch generates colour palettes over an RGB sampling grid, converts
// colours to HSL and sorts colour lists by luminance, hue, saturation,
// lightness or at random.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/swatch/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
