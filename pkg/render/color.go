package render

import (
	"fmt"
	"image/color"

	"github.com/akeil/rmdoc/pkg/lines"
)

var colors = map[lines.BrushColor]RGB{
	lines.Black: {0, 0, 0},
	lines.Blue:  {0, 0, 255},
	lines.Grey:  {50, 50, 50},
	lines.Red:   {255, 0, 0},
	lines.White: {255, 255, 255},
}

// ColorOf returns the stroke color for a brush color.
func ColorOf(c lines.BrushColor) (RGB, error) {
	rgb, ok := colors[c]
	if !ok {
		return RGB{}, fmt.Errorf("unsupported color %v", c)
	}
	return rgb, nil
}

// Color converts c to an opaque color.Color.
func (c RGB) Color() color.Color {
	return color.RGBA{c.R, c.G, c.B, 255}
}
