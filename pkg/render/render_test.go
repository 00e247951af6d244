package render

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/rmdoc"
	"github.com/akeil/rmdoc/internal/imaging"
	"github.com/akeil/rmdoc/pkg/lines"
)

const docID = "25e3a0ce-080a-4389-be2a-f6aa45ce0207"

var pageIDs = []string{
	"0408f802-a07c-45c7-8382-7f8a36645fda",
	"5b4c8b4b-2e22-4bd4-9d3f-3e5a0f0c6d11",
	"9a4e2a1e-7c3b-4c59-8f0e-6b1d2c3e4f50",
}

// gridSVG is a template with a size of one third of a portrait page.
const gridSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="468" height="624">
<path d="M 0 52 L 468 52 M 0 104 L 468 104 Z"/>
</svg>`

// shapesSVG has no path elements.
const shapesSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="468" height="624">
<line x1="0" y1="52" x2="468" y2="52" stroke="black"/>
<rect x="10" y="10" width="100" height="100"/>
<polyline points="0,0 50,50 100,0"/>
</svg>`

// writeDoc creates a store with one document and returns the node path.
func writeDoc(t *testing.T, orientation string, templates []string, drawings ...*lines.Drawing) string {
	dir := t.TempDir()
	write := func(name string, data []byte) {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, data, 0644))
	}

	ids := make([]string, len(drawings))
	for i, d := range drawings {
		ids[i] = fmt.Sprintf("%q", pageIDs[i])
		data, err := d.MarshalBinary()
		require.NoError(t, err)
		write(filepath.Join(docID, pageIDs[i]+".rm"), data)
	}

	write(docID+".metadata", []byte(`{"visibleName": "Test"}`))
	write(docID+".content", []byte(fmt.Sprintf(`{"orientation": %q, "pages": [%s]}`,
		orientation, strings.Join(ids, ","))))
	write(docID+".pagedata", []byte(strings.Join(templates, "\n")+"\n"))
	write(filepath.Join("templates", "Grid.svg"), []byte(gridSVG))
	write(filepath.Join("templates", "Broken.svg"), []byte("<svg"))
	write(filepath.Join("templates", "Shapes.svg"), []byte(shapesSVG))

	return filepath.Join(dir, docID)
}

func loadDoc(t *testing.T, orientation string, templates []string, drawings ...*lines.Drawing) *rmdoc.Document {
	doc, err := rmdoc.LoadDocument(writeDoc(t, orientation, templates, drawings...))
	require.NoError(t, err)
	return doc
}

func line(c lines.BrushColor, size lines.BrushSize, dots ...lines.Dot) lines.Stroke {
	return lines.Stroke{
		BrushType:  lines.FinelinerV5,
		BrushColor: c,
		BrushSize:  size,
		Dots:       dots,
	}
}

func drawing(layers ...[]lines.Stroke) *lines.Drawing {
	d := lines.NewDrawing()
	d.Layers = make([]lines.Layer, len(layers))
	for i, l := range layers {
		d.Layers[i] = lines.Layer{Strokes: l}
	}
	return d
}

// op is a call recorded by fakeSurface.
type op struct {
	name  string
	args  []interface{}
	path  Path
	image Image
}

type fakeSurface struct {
	name   string
	ops    []op
	failOn string
}

func newFake(failOn string) (*fakeSurface, NewSurfaceFunc) {
	f := &fakeSurface{failOn: failOn}
	return f, func(name string, w, h float64) (Surface, error) {
		f.name = name
		return f, f.record(op{name: "NewSurface", args: []interface{}{w, h}})
	}
}

func (f *fakeSurface) record(o op) error {
	f.ops = append(f.ops, o)
	if o.name == f.failOn {
		return errors.New("failed: " + o.name)
	}
	return nil
}

func (f *fakeSurface) AddPage(w, h float64) error {
	return f.record(op{name: "AddPage", args: []interface{}{w, h}})
}

func (f *fakeSurface) AddLayer(name string) error {
	return f.record(op{name: "AddLayer", args: []interface{}{name}})
}

func (f *fakeSurface) SetStrokeColor(c RGB) {
	f.record(op{name: "SetStrokeColor", args: []interface{}{c}})
}

func (f *fakeSurface) SetStrokeWidth(w float64) {
	f.record(op{name: "SetStrokeWidth", args: []interface{}{w}})
}

func (f *fakeSurface) AddPath(p Path) error {
	return f.record(op{name: "AddPath", path: p})
}

func (f *fakeSurface) ParseImage(data []byte) (Image, error) {
	img, err := parseSVG(data)
	if err != nil {
		return nil, err
	}
	return img, f.record(op{name: "ParseImage"})
}

func (f *fakeSurface) DrawImage(img Image, sx, sy float64) error {
	return f.record(op{name: "DrawImage", args: []interface{}{sx, sy}, image: img})
}

func (f *fakeSurface) Save(w io.Writer) error {
	return f.record(op{name: "Save"})
}

func (f *fakeSurface) calls(name string) []op {
	res := make([]op, 0)
	for _, o := range f.ops {
		if o.name == name {
			res = append(res, o)
		}
	}
	return res
}

func (f *fakeSurface) names() []string {
	res := make([]string, len(f.ops))
	for i, o := range f.ops {
		res[i] = o.name
	}
	return res
}

func TestRenderSinglePage(t *testing.T) {
	d := drawing([]lines.Stroke{
		line(lines.Black, 2, lines.Dot{X: 0, Y: 0}, lines.Dot{X: 100, Y: 100}),
	})
	doc := loadDoc(t, "portrait", []string{""}, d)

	fake, newSurface := newFake("")
	s, err := Render(doc, newSurface)
	require.NoError(t, err)
	assert.Same(t, fake, s)
	assert.Equal(t, "Test", fake.name)

	assert.Equal(t, []string{
		"NewSurface",
		"AddLayer",
		"SetStrokeColor",
		"SetStrokeWidth",
		"AddPath",
	}, fake.names())

	assert.Equal(t, []interface{}{1404.0, 1872.0}, fake.ops[0].args)
	assert.Equal(t, []interface{}{"Layer 1"}, fake.ops[1].args)
	assert.Equal(t, []interface{}{RGB{0, 0, 0}}, fake.ops[2].args)
	assert.Equal(t, []interface{}{2.0}, fake.ops[3].args)

	p := fake.ops[4].path
	assert.Equal(t, []Point{{0, 1872}, {100, 1772}}, p.Points)
	assert.False(t, p.Closed)
	assert.False(t, p.Filled)
	assert.True(t, p.Stroked)
}

func TestRenderLandscape(t *testing.T) {
	d := drawing([]lines.Stroke{
		line(lines.Blue, 1.875, lines.Dot{X: 10, Y: 20}),
	})
	doc := loadDoc(t, "landscape", []string{""}, d)

	fake, newSurface := newFake("")
	_, err := Render(doc, newSurface)
	require.NoError(t, err)

	assert.Equal(t, []interface{}{1872.0, 1404.0}, fake.ops[0].args)
	paths := fake.calls("AddPath")
	require.Len(t, paths, 1)
	assert.Equal(t, []Point{{10, 1384}}, paths[0].path.Points)
}

func TestRenderPagesAndLayers(t *testing.T) {
	d0 := drawing(
		[]lines.Stroke{line(lines.Grey, 2, lines.Dot{X: 1, Y: 1})},
		[]lines.Stroke{
			line(lines.Red, 2, lines.Dot{X: 1, Y: 1}),
			line(lines.White, 2.125, lines.Dot{X: 1, Y: 1}),
		},
	)
	d1 := drawing([]lines.Stroke{})
	d2 := drawing([]lines.Stroke{line(lines.Black, 2, lines.Dot{X: 1, Y: 1})})
	doc := loadDoc(t, "portrait", []string{"", "", ""}, d0, d1, d2)

	fake, newSurface := newFake("")
	_, err := Render(doc, newSurface)
	require.NoError(t, err)

	// first page comes with the surface
	assert.Len(t, fake.calls("NewSurface"), 1)
	assert.Len(t, fake.calls("AddPage"), 2)

	layers := make([]interface{}, 0)
	for _, o := range fake.calls("AddLayer") {
		layers = append(layers, o.args[0])
	}
	assert.Equal(t, []interface{}{"Layer 1", "Layer 2", "Layer 1", "Layer 1"}, layers)

	colors := make([]interface{}, 0)
	for _, o := range fake.calls("SetStrokeColor") {
		colors = append(colors, o.args[0])
	}
	assert.Equal(t, []interface{}{
		RGB{50, 50, 50},
		RGB{255, 0, 0},
		RGB{255, 255, 255},
		RGB{0, 0, 0},
	}, colors)

	widths := fake.calls("SetStrokeWidth")
	require.Len(t, widths, 4)
	assert.Equal(t, 2.125, widths[2].args[0])
}

func TestRenderTemplate(t *testing.T) {
	d := drawing([]lines.Stroke{line(lines.Black, 2, lines.Dot{X: 1, Y: 1})})
	path := writeDoc(t, "portrait", []string{"Grid", ""}, d, d)
	doc, err := rmdoc.LoadDocument(path)
	require.NoError(t, err)
	doc.SetTemplateDir(filepath.Join(filepath.Dir(path), "templates"))

	fake, newSurface := newFake("")
	_, err = Render(doc, newSurface)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"NewSurface",
		"ParseImage",
		"AddLayer",
		"DrawImage",
		"AddLayer",
		"SetStrokeColor",
		"SetStrokeWidth",
		"AddPath",
		"AddPage",
		"AddLayer",
		"SetStrokeColor",
		"SetStrokeWidth",
		"AddPath",
	}, fake.names())

	assert.Equal(t, []interface{}{"Template"}, fake.ops[2].args)
	assert.Equal(t, []interface{}{3.0, 3.0}, fake.ops[3].args)
	w, h := fake.ops[3].image.Size()
	assert.Equal(t, 468.0, w)
	assert.Equal(t, 624.0, h)
}

func TestRenderTemplateLandscape(t *testing.T) {
	d := drawing([]lines.Stroke{})
	path := writeDoc(t, "landscape", []string{"Grid"}, d)
	doc, err := rmdoc.LoadDocument(path)
	require.NoError(t, err)
	doc.SetTemplateDir(filepath.Join(filepath.Dir(path), "templates"))

	fake, newSurface := newFake("")
	_, err = Render(doc, newSurface)
	require.NoError(t, err)

	draws := fake.calls("DrawImage")
	require.Len(t, draws, 1)
	assert.Equal(t, []interface{}{1872.0 / 468.0, 1404.0 / 624.0}, draws[0].args)
}

func TestRenderTemplateErrors(t *testing.T) {
	d := drawing([]lines.Stroke{line(lines.Black, 2, lines.Dot{X: 1, Y: 1})})

	for _, name := range []string{"Missing", "Broken", "Shapes"} {
		path := writeDoc(t, "portrait", []string{"", name}, d, d)
		doc, err := rmdoc.LoadDocument(path)
		require.NoError(t, err)
		doc.SetTemplateDir(filepath.Join(filepath.Dir(path), "templates"))

		fake, newSurface := newFake("")
		s, err := Render(doc, newSurface)
		require.Error(t, err, name)
		assert.Nil(t, s)
		assert.True(t, rmdoc.IsRender(err), "%s: %v", name, err)
		assert.Equal(t, rmdoc.StageTemplate, rmdoc.StageOf(err))

		// nothing is drawn after the failure
		assert.Len(t, fake.calls("AddPage"), 1)
		assert.Len(t, fake.calls("AddPath"), 1)
	}
}

func TestRenderSurfaceErrors(t *testing.T) {
	d := drawing([]lines.Stroke{line(lines.Black, 2, lines.Dot{X: 1, Y: 1})})
	doc := loadDoc(t, "portrait", []string{"", ""}, d, d)

	for _, name := range []string{"NewSurface", "AddPage", "AddLayer", "AddPath"} {
		_, newSurface := newFake(name)
		s, err := Render(doc, newSurface)
		require.Error(t, err, name)
		assert.Nil(t, s)
		assert.True(t, rmdoc.IsRender(err), name)
		assert.Equal(t, rmdoc.StageRender, rmdoc.StageOf(err), name)
	}
}

func TestRenderUnsupportedColor(t *testing.T) {
	// colors are checked when a file is decoded, so use the renderer directly
	stroke := line(lines.BrushColor(3), 2, lines.Dot{X: 1, Y: 1})
	fake, newSurface := newFake("")
	s, err := newSurface("x", 1404, 1872)
	require.NoError(t, err)
	err = renderStroke(s, stroke, imaging.FlipY(1872))
	assert.Error(t, err)
	assert.Len(t, fake.calls("AddPath"), 0)
}

func TestRenderEmptyDocument(t *testing.T) {
	doc := loadDoc(t, "portrait", []string{})

	var buf bytes.Buffer
	err := WritePDF(doc, &buf)
	require.NoError(t, err)

	n, err := VerifyPDF(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWritePDF(t *testing.T) {
	d := drawing(
		[]lines.Stroke{line(lines.Black, 2, lines.Dot{X: 0, Y: 0}, lines.Dot{X: 100, Y: 100})},
		[]lines.Stroke{line(lines.Red, 2, lines.Dot{X: 200, Y: 200}, lines.Dot{X: 300, Y: 300})},
	)
	path := writeDoc(t, "portrait", []string{"Grid", "", "Grid"}, d, d, d)
	doc, err := rmdoc.LoadDocument(path)
	require.NoError(t, err)
	doc.SetTemplateDir(filepath.Join(filepath.Dir(path), "templates"))

	var buf bytes.Buffer
	err = WritePDF(doc, &buf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	n, err := VerifyPDF(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}
