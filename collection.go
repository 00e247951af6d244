package rmdoc

import (
	"github.com/akeil/rmdoc/internal/logging"
)

// A Collection is a folder which contains documents and other collections.
type Collection struct {
	meta *Metadata
}

// LoadCollection reads the collection at the given path ("<store>/<id>").
// Only the metadata file is required.
func LoadCollection(path string) (*Collection, error) {
	c := &Collection{}
	err := load(c, path)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collection) load(path string) error {
	logging.Debug("Load collection from %q", path)
	meta, err := LoadMetadata(withExt(path, extMetadata))
	if err != nil {
		return err
	}

	c.meta = meta
	return nil
}

// Name is the display name of the collection.
func (c *Collection) Name() string {
	return c.meta.Name()
}

// Parent returns the ID of the parent collection.
// The boolean is false for collections at the top level.
func (c *Collection) Parent() (ID, bool) {
	return c.meta.Parent()
}

// Metadata returns the metadata for this collection.
func (c *Collection) Metadata() *Metadata {
	return c.meta
}
