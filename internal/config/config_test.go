package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	data := `
store: /mnt/xochitl
templates: /usr/share/remarkable/templates
workers: 2
`
	require.NoError(t, os.WriteFile(p, []byte(data), 0644))

	s, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/xochitl", s.Store)
	assert.Equal(t, "/usr/share/remarkable/templates", s.Templates)
	assert.Equal(t, 2, s.Workers)

	// defaults
	assert.Equal(t, ".", s.Output)
	assert.Equal(t, "warning", s.LogLevel)
}

func TestLoadMissing(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	p := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(p, []byte("store: [\n"), 0644))
	_, err := Load(p)
	assert.Error(t, err)

	p = filepath.Join(dir, "workers.yaml")
	require.NoError(t, os.WriteFile(p, []byte("workers: 0\n"), 0644))
	_, err = Load(p)
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	s := Default().Merge(Settings{Store: "notes", Workers: 8})
	assert.Equal(t, "notes", s.Store)
	assert.Equal(t, 8, s.Workers)
	assert.Equal(t, ".", s.Output)
	assert.Equal(t, "warning", s.LogLevel)
}
