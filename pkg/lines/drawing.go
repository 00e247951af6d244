// Package lines reads and writes the binary .rm format in which the tablet
// stores the pen strokes of a single page.
//
// A drawing consists of layers, each layer of strokes and each stroke of
// dots. Versions 3 and 5 of the format are supported.
package lines

import (
	"encoding/binary"
	"fmt"
)

var endianess = binary.LittleEndian

// Header starting a .rm binary file. This can help recognizing a .rm file.
const (
	headerV3  = "reMarkable .lines file, version=3          "
	headerV5  = "reMarkable .lines file, version=5          "
	headerLen = 43
)

// Version defines the version number of a .rm file.
type Version int

const (
	V3 Version = iota
	V5
)

func (v Version) String() string {
	switch v {
	case V3:
		return "v3"
	case V5:
		return "v5"
	default:
		return "UNKNOWN"
	}
}

// BrushColor defines the color of the brush.
type BrushColor uint32

// Colors as encoded in the file. Blue and red are only written by firmware
// which supports color export.
const (
	Black BrushColor = 0
	Grey  BrushColor = 1
	White BrushColor = 2
	Blue  BrushColor = 6
	Red   BrushColor = 7
)

func (c BrushColor) String() string {
	switch c {
	case Black:
		return "black"
	case Grey:
		return "grey"
	case White:
		return "white"
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return fmt.Sprintf("color(%d)", uint32(c))
	}
}

func validColor(c BrushColor) bool {
	switch c {
	case Black, Grey, White, Blue, Red:
		return true
	}
	return false
}

// BrushType is one of the predefined brush types.
// The brush types are different between V3 and V5 of the rm format.
type BrushType uint32

const (
	PaintBrush         BrushType = 0
	Pencil             BrushType = 1
	Ballpoint          BrushType = 2
	Marker             BrushType = 3
	Fineliner          BrushType = 4
	Highlighter        BrushType = 5
	Eraser             BrushType = 6
	MechanicalPencil   BrushType = 7
	EraseArea          BrushType = 8
	PaintBrushV5       BrushType = 12
	MechanicalPencilV5 BrushType = 13
	PencilV5           BrushType = 14
	BallpointV5        BrushType = 15
	MarkerV5           BrushType = 16
	FinelinerV5        BrushType = 17
	HighlighterV5      BrushType = 18
	CalligraphyV5      BrushType = 21
)

// BrushSize represents the base brush sizes.
type BrushSize float32

// These are the three sizes available in the UI.
// Other values are possible, e.g. through scaling.
const (
	Small  BrushSize = 1.875
	Medium BrushSize = 2.0
	Large  BrushSize = 2.125
)

const (
	// MaxWidth is the display width of the tablet in pixels.
	MaxWidth = 1404
	// MaxHeight is the display height of the tablet in pixels.
	MaxHeight = 1872
)

// Drawing represents a single page with drawings.
type Drawing struct {
	Version Version
	Layers  []Layer
}

// NewDrawing creates an empty drawing.
func NewDrawing() *Drawing {
	// A single empty layer is the minimum requirement for a valid drawing
	return &Drawing{
		Version: V5,
		Layers: []Layer{
			{},
		},
	}
}

// NumLayers returns the number of layers in the drawing.
func (d *Drawing) NumLayers() int {
	return len(d.Layers)
}

// AddLayer appends an empty layer and returns its index.
func (d *Drawing) AddLayer() int {
	d.Layers = append(d.Layers, Layer{})
	return len(d.Layers) - 1
}

// Layer is one layer in a drawing.
type Layer struct {
	Strokes []Stroke
}

// Stroke is a single continous brush stroke.
type Stroke struct {
	// BrushType is one of the predefined pencil types, e.g. "Ballpoint" or "PaintBrush"
	BrushType BrushType
	// BrushColor is one of the available colors.
	BrushColor BrushColor
	// Padding - we do not know what this means and it seems to be "0" all the time.
	Padding uint32
	// BrushSize is the base size of the Brush (small, medium, large)
	BrushSize BrushSize
	// Unknown is only present in V5 files.
	Unknown float32
	// Dots are the coordinate points that make up this stroke.
	Dots []Dot
}

// Dot is a single point from a stroke.
// The origin is the top left corner of the page, y increases downwards.
type Dot struct {
	X float32
	Y float32
	// Speed is the speed with which the stylus moved across the screen.
	Speed float32
	// Tilt is the angle at which the stylus is positioned against
	// the screen. The angle is given in radians.
	Tilt float32
	// Width is the effective width of the brush.
	Width float32
	// Pressure is the amount of pressure applied to the stylus.
	// Value range is 0.0 trough 1.0
	Pressure float32
}
