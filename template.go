package rmdoc

import (
	"os"

	"github.com/akeil/rmdoc/internal/logging"
)

// Template is a background image for a page, e.g. ruled paper.
// It holds the raw bytes of an SVG file.
type Template struct {
	path string
	data []byte
}

// LoadTemplate reads the template file at the given path.
//
// Templates are only used during rendering, so failures are of KindRender.
func LoadTemplate(path string) (*Template, error) {
	t := &Template{}
	err := load(t, path)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Template) load(path string) error {
	logging.Debug("Read template from %q", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return newError(StageTemplate, KindRender, path, err)
	}

	t.path = path
	t.data = data
	return nil
}

// Path is the file from which the template was read.
func (t *Template) Path() string {
	return t.path
}

// Bytes returns the raw image data.
func (t *Template) Bytes() []byte {
	return t.data
}
