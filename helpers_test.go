package rmdoc

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akeil/rmdoc/pkg/lines"
)

// Some fixed IDs for test fixtures.
const (
	docID    = "25e3a0ce-080a-4389-be2a-f6aa45ce0207"
	folderID = "033cab93-8da0-4672-b63b-31d3252a8dc9"
	pageA    = "0408f802-a07c-45c7-8382-7f8a36645fda"
	pageB    = "5b4c8b4b-2e22-4bd4-9d3f-3e5a0f0c6d11"
	pageC    = "9a4e2a1e-7c3b-4c59-8f0e-6b1d2c3e4f50"
)

// testStore is a notebook store in a temporary directory.
type testStore struct {
	t   *testing.T
	dir string
}

func newTestStore(t *testing.T) *testStore {
	return &testStore{t: t, dir: t.TempDir()}
}

// path returns the node path "<store>/<id>".
func (s *testStore) path(id string) string {
	return filepath.Join(s.dir, id)
}

func (s *testStore) writeFile(name, content string) {
	p := filepath.Join(s.dir, name)
	require.NoError(s.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(s.t, os.WriteFile(p, []byte(content), 0644))
}

func (s *testStore) writeJSON(name string, v interface{}) {
	data, err := json.Marshal(v)
	require.NoError(s.t, err)
	s.writeFile(name, string(data))
}

func (s *testStore) writeMetadata(id, name, parent string) {
	s.writeJSON(id+".metadata", map[string]interface{}{
		"visibleName":  name,
		"parent":       parent,
		"lastModified": "1608230074814",
		"type":         "DocumentType",
	})
}

func (s *testStore) writeContent(id, orientation string, pages ...string) {
	if pages == nil {
		pages = []string{}
	}
	s.writeJSON(id+".content", map[string]interface{}{
		"fileType":    "notebook",
		"orientation": orientation,
		"pages":       pages,
	})
}

func (s *testStore) writePagedata(id string, templates ...string) {
	s.writeFile(id+".pagedata", strings.Join(templates, "\n")+"\n")
}

func (s *testStore) writeDrawing(id, pageID string, d *lines.Drawing) {
	data, err := d.MarshalBinary()
	require.NoError(s.t, err)
	s.writeFile(filepath.Join(id, pageID+".rm"), string(data))
}

// writeNotebook creates a complete portrait document with one drawing per
// page and no templates.
func (s *testStore) writeNotebook(id, name, parent string, pages ...string) {
	s.writeMetadata(id, name, parent)
	s.writeContent(id, "portrait", pages...)
	templates := make([]string, len(pages))
	s.writePagedata(id, templates...)
	for _, p := range pages {
		s.writeDrawing(id, p, oneLine())
	}
}

// oneLine is a drawing with one black line from (0,0) to (100,100).
func oneLine() *lines.Drawing {
	d := lines.NewDrawing()
	d.Layers[0].Strokes = []lines.Stroke{
		{
			BrushType:  lines.BallpointV5,
			BrushColor: lines.Black,
			BrushSize:  2,
			Dots:       []lines.Dot{{X: 0, Y: 0}, {X: 100, Y: 100}},
		},
	}
	return d
}
