package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/draw"

	"github.com/akeil/rmdoc/internal/logging"
)

var bgColor = color.White

// Bitmap is a Surface that paints onto RGBA images, one per page.
// One point corresponds to one pixel.
//
// Layers have no representation in a bitmap, strokes from all layers are
// painted onto the same image.
type Bitmap struct {
	pages  []*image.RGBA
	gc     *draw2dimg.GraphicContext
	height float64
	color  color.Color
	width  float64
}

// NewBitmap creates a bitmap surface with a first page of the given size.
// It is a NewSurfaceFunc.
func NewBitmap(name string, width, height float64) (Surface, error) {
	logging.Debug("Create bitmap surface for %q", name)
	b := &Bitmap{
		pages: make([]*image.RGBA, 0),
		color: color.Black,
		width: 1,
	}

	err := b.AddPage(width, height)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bitmap) AddPage(width, height float64) error {
	w := int(math.Ceil(width))
	h := int(math.Ceil(height))
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid page size %vx%v", width, height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	renderBackground(dst)

	gc := draw2dimg.NewGraphicContext(dst)
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)

	b.pages = append(b.pages, dst)
	b.gc = gc
	b.height = height
	return nil
}

func (b *Bitmap) AddLayer(name string) error {
	logging.Debug("Bitmap layer %q", name)
	return nil
}

func (b *Bitmap) SetStrokeColor(c RGB) {
	b.color = c.Color()
}

func (b *Bitmap) SetStrokeWidth(w float64) {
	b.width = w
}

func (b *Bitmap) AddPath(p Path) error {
	if len(p.Points) == 0 {
		return nil
	}

	gc := b.gc
	gc.SetStrokeColor(b.color)
	gc.SetFillColor(b.color)
	gc.SetLineWidth(b.width)

	// image coordinates have their origin at the top-left corner
	first := p.Points[0]
	gc.MoveTo(first.X, b.height-first.Y)
	for _, pt := range p.Points[1:] {
		gc.LineTo(pt.X, b.height-pt.Y)
	}
	if p.Closed {
		gc.Close()
	}

	switch {
	case p.Filled && p.Stroked:
		gc.FillStroke()
	case p.Filled:
		gc.Fill()
	case p.Stroked:
		gc.Stroke()
	default:
		return fmt.Errorf("path is neither stroked nor filled")
	}

	return nil
}

func (b *Bitmap) ParseImage(data []byte) (Image, error) {
	return parseSVG(data)
}

// DrawImage paints the path segments of an SVG template.
func (b *Bitmap) DrawImage(img Image, scaleX, scaleY float64) error {
	svg, err := asSVG(img)
	if err != nil {
		return err
	}

	gc := b.gc
	gc.Save()
	defer gc.Restore()

	gc.Scale(scaleX, scaleY)
	gc.SetStrokeColor(color.Black)
	gc.SetLineWidth(templateLineWidth * 2 / (scaleX + scaleY))

	for _, path := range svg.sb.Segments {
		var x, y float64
		for _, seg := range path {
			switch seg.Cmd {
			case 'M':
				x, y = seg.Arg[0], seg.Arg[1]
				gc.MoveTo(x, y)
			case 'L':
				x, y = seg.Arg[0], seg.Arg[1]
				gc.LineTo(x, y)
			case 'H':
				x = seg.Arg[0]
				gc.LineTo(x, y)
			case 'V':
				y = seg.Arg[0]
				gc.LineTo(x, y)
			case 'C':
				x, y = seg.Arg[4], seg.Arg[5]
				gc.CubicCurveTo(seg.Arg[0], seg.Arg[1], seg.Arg[2], seg.Arg[3], x, y)
			case 'Q':
				x, y = seg.Arg[2], seg.Arg[3]
				gc.QuadCurveTo(seg.Arg[0], seg.Arg[1], x, y)
			case 'Z':
				gc.Close()
			default:
				return fmt.Errorf("unsupported path command %q", seg.Cmd)
			}
		}
		gc.Stroke()
	}

	return nil
}

// Pages returns the painted page images.
func (b *Bitmap) Pages() []image.Image {
	pages := make([]image.Image, len(b.pages))
	for i, p := range b.pages {
		pages[i] = p
	}
	return pages
}

// Save writes all pages as a single PNG image, stacked vertically.
func (b *Bitmap) Save(w io.Writer) error {
	if len(b.pages) == 1 {
		return png.Encode(w, b.pages[0])
	}

	width, height := 0, 0
	for _, p := range b.pages {
		if p.Bounds().Dx() > width {
			width = p.Bounds().Dx()
		}
		height += p.Bounds().Dy()
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	renderBackground(dst)
	y := 0
	for _, p := range b.pages {
		r := image.Rect(0, y, p.Bounds().Dx(), y+p.Bounds().Dy())
		draw.Draw(dst, r, p, image.Point{}, draw.Src)
		y += p.Bounds().Dy()
	}

	return png.Encode(w, dst)
}

// renderBackground fills the complete destination image with the background color (white).
func renderBackground(dst draw.Image) {
	bg := image.NewUniform(bgColor)
	draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
}
