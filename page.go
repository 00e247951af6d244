package rmdoc

import (
	"os"

	"github.com/akeil/rmdoc/internal/logging"
	"github.com/akeil/rmdoc/pkg/lines"
)

// Page is a single page of a document with its pen strokes.
type Page struct {
	drawing  *lines.Drawing
	template *Template
}

// LoadPage reads and decodes the .rm file at the given path.
func LoadPage(path string) (*Page, error) {
	p := &Page{}
	err := load(p, path)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Page) load(path string) error {
	logging.Debug("Read drawing from %q", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return newError(StagePage, KindIO, path, err)
	}

	d, err := lines.Parse(data)
	if err != nil {
		return newError(StagePage, KindParse, path, err)
	}

	p.drawing = d
	return nil
}

// Layers returns the stroke layers of this page, bottom to top.
func (p *Page) Layers() []lines.Layer {
	return p.drawing.Layers
}

// Drawing returns the decoded drawing.
func (p *Page) Drawing() *lines.Drawing {
	return p.drawing
}

// Template returns the background template or nil if none was loaded.
func (p *Page) Template() *Template {
	return p.template
}
