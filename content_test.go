package rmdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContent(t *testing.T) {
	s := newTestStore(t)
	s.writeContent(docID, "landscape", pageA, pageB)

	c, err := LoadContent(s.path(docID + ".content"))
	require.NoError(t, err)

	assert.Equal(t, Landscape, c.Orientation())
	assert.Equal(t, "notebook", c.FileType())
	require.Len(t, c.Pages(), 2)
	assert.Equal(t, pageA, c.Pages()[0].String())
	assert.Equal(t, pageB, c.Pages()[1].String())
}

func TestContentErrors(t *testing.T) {
	s := newTestStore(t)
	s.writeFile("malformed.content", `[`)
	s.writeFile("orientation.content", `{"orientation": "square", "pages": []}`)
	s.writeFile("noorientation.content", `{"pages": []}`)
	s.writeFile("nopages.content", `{"orientation": "portrait"}`)
	s.writeFile("pageid.content", `{"orientation": "portrait", "pages": ["p1"]}`)

	for _, name := range []string{"malformed", "orientation", "noorientation", "nopages", "pageid"} {
		_, err := LoadContent(s.path(name + ".content"))
		require.Error(t, err, name)
		assert.True(t, IsParse(err), "%s: %v", name, err)
		assert.Equal(t, StageContent, StageOf(err))
	}

	_, err := LoadContent(s.path("missing.content"))
	require.Error(t, err)
	assert.True(t, IsIO(err))
}

func TestOrientationSize(t *testing.T) {
	w, h := Portrait.Size()
	assert.Equal(t, 1404.0, w)
	assert.Equal(t, 1872.0, h)

	w, h = Landscape.Size()
	assert.Equal(t, 1872.0, w)
	assert.Equal(t, 1404.0, h)
}

func TestOrientationJSON(t *testing.T) {
	var o Orientation
	require.NoError(t, o.UnmarshalJSON([]byte(`"landscape"`)))
	assert.Equal(t, Landscape, o)

	assert.Error(t, o.UnmarshalJSON([]byte(`"Landscape"`)))
	assert.Error(t, o.UnmarshalJSON([]byte(`1`)))

	b, err := Portrait.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"portrait"`, string(b))

	_, err = Orientation(7).MarshalJSON()
	assert.Error(t, err)
}
