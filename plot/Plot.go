// Package plot renders labelled series of values against timesteps,
// either as PNG images or as interactive HTML charts
package plot

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrNoData is returned when there is nothing to plot
var ErrNoData = errors.New("no data to plot")

// Series is a labelled sequence of values. The value at index i is
// plotted at timestep i+1.
type Series struct {
	Label  string
	Values []float64
}

// Palette holds the colours of plotted series, in order. Series beyond
// the length of the palette wrap around.
var Palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x3f, B: 0xd6, A: 0xff}, // blue
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// validate ensures there is at least one non-empty series and returns
// the length of the longest series
func validate(series []Series) (int, error) {
	if len(series) == 0 {
		return 0, ErrNoData
	}

	longest := 0
	for i, s := range series {
		if len(s.Values) == 0 {
			return 0, fmt.Errorf("series %v (%q): %w", i, s.Label, ErrNoData)
		}
		if len(s.Values) > longest {
			longest = len(s.Values)
		}
	}
	return longest, nil
}
