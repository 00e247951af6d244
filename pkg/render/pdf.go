package render

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/rmdoc/internal/logging"
)

const producer = "rmdoc"

// templateLineWidth is the width of template lines on the page, in points.
const templateLineWidth = 1.0

// PDF is a Surface that produces a PDF document.
//
// Layers become optional content groups. Layers with the same name on
// different pages share one group, so a viewer can toggle e.g. "Layer 1"
// for the whole document.
type PDF struct {
	pdf     *gofpdf.Fpdf
	height  float64
	layers  map[string]int
	inLayer bool
}

// NewPDF creates a PDF document with a first page of the given size
// (in points). It is a NewSurfaceFunc.
func NewPDF(name string, width, height float64) (Surface, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})

	pdf.SetMargins(0, 0, 0) // left, top, right
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(name, true)
	pdf.SetProducer(producer, true)
	pdf.SetCreator(producer, true)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	p := &PDF{
		pdf:    pdf,
		layers: make(map[string]int),
	}

	err := p.AddPage(width, height)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *PDF) AddPage(width, height float64) error {
	p.endLayer()
	p.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: width, Ht: height})
	p.height = height
	return p.pdf.Error()
}

func (p *PDF) AddLayer(name string) error {
	p.endLayer()

	id, ok := p.layers[name]
	if !ok {
		id = p.pdf.AddLayer(name, true)
		p.layers[name] = id
	}

	logging.Debug("Begin PDF layer %q (%d)", name, id)
	p.pdf.BeginLayer(id)
	p.inLayer = true
	return p.pdf.Error()
}

func (p *PDF) endLayer() {
	if p.inLayer {
		p.pdf.EndLayer()
		p.inLayer = false
	}
}

func (p *PDF) SetStrokeColor(c RGB) {
	p.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func (p *PDF) SetStrokeWidth(w float64) {
	p.pdf.SetLineWidth(w)
}

func (p *PDF) AddPath(path Path) error {
	if len(path.Points) == 0 {
		return nil
	}

	// gofpdf has its origin at the top-left corner
	first := path.Points[0]
	p.pdf.MoveTo(first.X, p.height-first.Y)
	for _, pt := range path.Points[1:] {
		p.pdf.LineTo(pt.X, p.height-pt.Y)
	}
	if path.Closed {
		p.pdf.ClosePath()
	}

	style := ""
	if path.Filled {
		style += "F"
	}
	if path.Stroked {
		style = "D" + style
	}
	if style == "" {
		return fmt.Errorf("path is neither stroked nor filled")
	}
	p.pdf.DrawPath(style)

	return p.pdf.Error()
}

func (p *PDF) ParseImage(data []byte) (Image, error) {
	return parseSVG(data)
}

func (p *PDF) DrawImage(img Image, scaleX, scaleY float64) error {
	svg, err := asSVG(img)
	if err != nil {
		return err
	}

	// SVGBasicWrite uses the current stroke settings
	r, g, b := p.pdf.GetDrawColor()
	w := p.pdf.GetLineWidth()

	err = dontPanic(func() {
		p.pdf.TransformBegin()
		// percent, around the top-left corner
		p.pdf.TransformScale(scaleX*100, scaleY*100, 0, 0)
		p.pdf.SetDrawColor(0, 0, 0)
		p.pdf.SetLineWidth(templateLineWidth * 2 / (scaleX + scaleY))
		p.pdf.SetXY(0, 0)
		p.pdf.SVGBasicWrite(&svg.sb, 1)
		p.pdf.TransformEnd()
	})
	if err != nil {
		return err
	}

	p.pdf.SetDrawColor(r, g, b)
	p.pdf.SetLineWidth(w)
	return p.pdf.Error()
}

func (p *PDF) Save(w io.Writer) error {
	p.endLayer()
	return p.pdf.Output(w)
}
