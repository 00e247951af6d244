package rmdoc

import (
	"github.com/akeil/rmdoc/internal/logging"
)

// EntryType is used to distinguish between documents and collections.
type EntryType int

const (
	DocumentEntry EntryType = iota + 1
	CollectionEntry
)

func (t EntryType) String() string {
	switch t {
	case DocumentEntry:
		return "document"
	case CollectionEntry:
		return "collection"
	default:
		return "UNKNOWN"
	}
}

// Entry is an item in a notebook store, either a Document or a Collection.
// Entries are created by Resolve.
type Entry struct {
	doc *Document
	col *Collection
}

// Resolve loads the item at the given path ("<store>/<id>") and determines
// whether it is a document or a collection.
//
// The store does not tag its items, so Resolve tries to load a Document and
// falls back on a Collection if that fails. Missing or invalid metadata is
// fatal in either case and the error is returned as-is.
func Resolve(path string) (Entry, error) {
	doc, err := LoadDocument(path)
	if err == nil {
		return Entry{doc: doc}, nil
	}
	if StageOf(err) == StageMetadata {
		return Entry{}, err
	}

	logging.Debug("Not a document (%v), load %q as collection", err, path)
	col, err := LoadCollection(path)
	if err != nil {
		return Entry{}, err
	}
	return Entry{col: col}, nil
}

// Type tells whether this is a document or a collection.
func (e Entry) Type() EntryType {
	switch {
	case e.doc != nil:
		return DocumentEntry
	case e.col != nil:
		return CollectionEntry
	default:
		return 0
	}
}

// Document returns the document or nil if this entry is a collection.
func (e Entry) Document() *Document {
	return e.doc
}

// Collection returns the collection or nil if this entry is a document.
func (e Entry) Collection() *Collection {
	return e.col
}

// Metadata returns the metadata of the document or collection.
func (e Entry) Metadata() *Metadata {
	switch {
	case e.doc != nil:
		return e.doc.Metadata()
	case e.col != nil:
		return e.col.Metadata()
	default:
		return nil
	}
}

// Name is the display name of the document or collection.
func (e Entry) Name() string {
	m := e.Metadata()
	if m == nil {
		return ""
	}
	return m.Name()
}
