package rmdoc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/akeil/rmdoc/internal/logging"
)

// Content holds the data from the `.content` file.
// It describes the sequence of pages in a document.
type Content struct {
	orientation Orientation
	pages       []ID
	fileType    string
}

type contentJSON struct {
	Orientation *Orientation `json:"orientation"`
	Pages       *[]string    `json:"pages"`
	// FileType is "notebook", "pdf" or "epub".
	FileType string `json:"fileType"`
}

// LoadContent reads the content file at the given path.
func LoadContent(path string) (*Content, error) {
	c := &Content{}
	err := load(c, path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Content) load(path string) error {
	logging.Debug("Read content from %q", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return newError(StageContent, KindIO, path, err)
	}

	var raw contentJSON
	err = json.Unmarshal(data, &raw)
	if err != nil {
		return newError(StageContent, KindParse, path, err)
	}
	if raw.Orientation == nil {
		return newError(StageContent, KindParse, path, fmt.Errorf("missing field orientation"))
	}
	if raw.Pages == nil {
		return newError(StageContent, KindParse, path, fmt.Errorf("missing field pages"))
	}

	pages := make([]ID, len(*raw.Pages))
	for i, s := range *raw.Pages {
		id, err := ParseID(s)
		if err != nil {
			return newError(StageContent, KindParse, path, fmt.Errorf("page %d: %w", i+1, err))
		}
		pages[i] = id
	}

	c.orientation = *raw.Orientation
	c.pages = pages
	c.fileType = raw.FileType
	return nil
}

// Orientation is the base layout for all pages.
func (c *Content) Orientation() Orientation {
	return c.orientation
}

// Pages returns the page IDs in the correct order.
func (c *Content) Pages() []ID {
	return c.pages
}

// FileType is the type of the original content
// ("notebook", "pdf" or "epub"), empty if unknown.
func (c *Content) FileType() string {
	return c.fileType
}
