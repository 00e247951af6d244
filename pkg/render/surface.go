package render

import (
	"io"
)

// Point is a position in PDF user space, in points.
// The origin is at the bottom-left corner of the page.
type Point struct {
	X, Y float64
}

// Path is a sequence of connected points.
type Path struct {
	Points  []Point
	Closed  bool
	Filled  bool
	Stroked bool
}

// RGB is a color with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// Image is a background image parsed by a Surface.
type Image interface {
	// Size returns the intrinsic width and height of the image.
	Size() (width, height float64)
}

// Surface is a drawing backend that produces one output document.
//
// A Surface always has a current page and drawing operations apply to the
// current layer of that page. A Surface is not safe for concurrent use.
type Surface interface {
	// AddPage appends a page and makes it the current page.
	AddPage(width, height float64) error
	// AddLayer starts a new layer on the current page.
	AddLayer(name string) error
	SetStrokeColor(c RGB)
	SetStrokeWidth(w float64)
	// AddPath draws the path into the current layer.
	AddPath(p Path) error
	// ParseImage decodes an SVG background image.
	ParseImage(data []byte) (Image, error)
	// DrawImage draws img at the top-left corner of the current page,
	// scaled independently along both axes.
	DrawImage(img Image, scaleX, scaleY float64) error
	// Save writes the document to w.
	Save(w io.Writer) error
}

// NewSurfaceFunc creates a Surface for a document with the given name
// and a first page of the given size.
type NewSurfaceFunc func(name string, width, height float64) (Surface, error)
