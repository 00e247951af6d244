// Package rmdoc reads notebooks from the file system of a reMarkable tablet.
//
// A notebook store is a flat directory in which every document or folder
// (collection) is described by a set of files named after its ID:
//
//	<id>.metadata          display name and parent folder
//	<id>.content           orientation and page order (documents only)
//	<id>.pagedata          one template name per page (documents only)
//	<id>/<pageId>.rm       pen strokes for one page (documents only)
//
// Use Resolve to load a node as either a Document or a Collection and the
// render package to turn a Document into a PDF.
package rmdoc

import (
	"path/filepath"
	"strings"

	"github.com/akeil/rmdoc/internal/logging"
)

// File extensions used in a notebook store.
const (
	extMetadata = ".metadata"
	extContent  = ".content"
	extPagedata = ".pagedata"
	extPage     = ".rm"
	extTemplate = ".svg"
)

// SetLogLevel sets the log level for this package and its subpackages.
// Supported values are "debug", "info", "warning" and "error";
// any other value disables logging.
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(level))
}

// loader is implemented by every entity that can be loaded from a path.
//
// The method is unexported, so only the types of this package can be loaded
// and entities can only be obtained through the LoadXxx functions.
type loader interface {
	load(path string) error
}

func load(l loader, path string) error {
	return l.load(path)
}

// withExt replaces the extension of path with ext.
//
// A node is addressed as <store>/<id> and its files are siblings of that
// path, so "<store>/<id>" becomes "<store>/<id>.content".
func withExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
