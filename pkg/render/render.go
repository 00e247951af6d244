// Package render draws the pages of a notebook onto a Surface.
//
// Two surfaces are provided: NewPDF produces a PDF document with one
// optional content group per layer, NewBitmap paints PNG images.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/akeil/rmdoc"
	"github.com/akeil/rmdoc/internal/imaging"
	"github.com/akeil/rmdoc/internal/logging"
	"github.com/akeil/rmdoc/pkg/lines"
)

// templateLayer is the name of the layer with the background template.
const templateLayer = "Template"

// WritePDF renders the document to PDF and writes the result to w.
func WritePDF(doc *rmdoc.Document, w io.Writer) error {
	return write(doc, NewPDF, w)
}

// WritePNG renders the document to a PNG image and writes the result to w.
// Pages are stacked vertically.
func WritePNG(doc *rmdoc.Document, w io.Writer) error {
	return write(doc, NewBitmap, w)
}

func write(doc *rmdoc.Document, newSurface NewSurfaceFunc, w io.Writer) error {
	s, err := Render(doc, newSurface)
	if err != nil {
		return err
	}

	err = s.Save(w)
	if err != nil {
		return renderError("", err)
	}
	return nil
}

// Render draws all pages of the given document onto a new Surface.
//
// Page size follows the document's orientation. If a template directory is
// set on the document, each page's template is drawn into a layer named
// "Template", stretched to fill the page. Stroke layers are named
// "Layer 1", "Layer 2" and so on.
//
// Rendering stops at the first error and the Surface is discarded.
// All errors are of type *rmdoc.Error.
func Render(doc *rmdoc.Document, newSurface NewSurfaceFunc) (Surface, error) {
	w, h := doc.Orientation().Size()
	logging.Debug("Render %q with %d pages (%vx%v)", doc.Name(), doc.PageCount(), w, h)

	s, err := newSurface(doc.Name(), w, h)
	if err != nil {
		return nil, renderError("", err)
	}

	flip := imaging.FlipY(h)
	for i := 0; i < doc.PageCount(); i++ {
		// the first page is created along with the surface
		if i > 0 {
			err = s.AddPage(w, h)
			if err != nil {
				return nil, renderError(doc.PageID(i).String(), err)
			}
		}

		err = renderPage(s, doc, i, w, h, flip)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func renderPage(s Surface, doc *rmdoc.Document, i int, w, h float64, flip imaging.Matrix) error {
	pageID := doc.PageID(i).String()
	logging.Debug("Render page %d (%v)", i+1, pageID)

	err := renderTemplate(s, doc, i, w, h)
	if err != nil {
		return err
	}

	for n, l := range doc.Page(i).Layers() {
		err = s.AddLayer(fmt.Sprintf("Layer %d", n+1))
		if err != nil {
			return renderError(pageID, err)
		}

		for _, stroke := range l.Strokes {
			err = renderStroke(s, stroke, flip)
			if err != nil {
				return renderError(pageID, err)
			}
		}
	}

	return nil
}

func renderTemplate(s Surface, doc *rmdoc.Document, i int, w, h float64) error {
	tpl, err := doc.Template(i)
	if err != nil {
		return err
	}
	if tpl == nil {
		return nil
	}

	img, err := s.ParseImage(tpl.Bytes())
	if err != nil {
		return templateError(tpl.Path(), err)
	}
	iw, ih := img.Size()
	if iw <= 0 || ih <= 0 {
		return templateError(tpl.Path(), fmt.Errorf("invalid image size %vx%v", iw, ih))
	}

	err = s.AddLayer(templateLayer)
	if err != nil {
		return renderError(doc.PageID(i).String(), err)
	}

	err = s.DrawImage(img, w/iw, h/ih)
	if err != nil {
		return templateError(tpl.Path(), err)
	}

	return nil
}

// renderStroke draws a single stroke as an open path.
// Stroke coordinates have their origin at the top-left corner and are
// flipped into PDF space.
func renderStroke(s Surface, stroke lines.Stroke, flip imaging.Matrix) error {
	c, err := ColorOf(stroke.BrushColor)
	if err != nil {
		return err
	}

	points := make([]Point, len(stroke.Dots))
	for i, d := range stroke.Dots {
		x, y := flip.Transform(float64(d.X), float64(d.Y))
		points[i] = Point{X: x, Y: y}
	}

	s.SetStrokeColor(c)
	s.SetStrokeWidth(float64(stroke.BrushSize))
	return s.AddPath(Path{
		Points:  points,
		Closed:  false,
		Filled:  false,
		Stroked: true,
	})
}

func renderError(pageID string, err error) error {
	var e *rmdoc.Error
	if errors.As(err, &e) {
		return err
	}
	return &rmdoc.Error{
		Stage: rmdoc.StageRender,
		Kind:  rmdoc.KindRender,
		Page:  pageID,
		Err:   err,
	}
}

func templateError(path string, err error) error {
	return &rmdoc.Error{
		Stage: rmdoc.StageTemplate,
		Kind:  rmdoc.KindRender,
		Path:  path,
		Err:   err,
	}
}
