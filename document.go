package rmdoc

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/akeil/rmdoc/internal/logging"
)

// A Document is a notebook with all of its pages.
//
// Documents are read with LoadDocument (or Resolve) and are not modified
// afterwards, except for the template directory which is configured with
// SetTemplateDir before rendering.
type Document struct {
	meta        *Metadata
	orientation Orientation
	pages       []docPage
	templateDir string
}

type docPage struct {
	id       ID
	page     *Page
	template string
}

// LoadDocument reads the document at the given path.
//
// The path names the document without extension, i.e. "<store>/<id>".
// Metadata, content and pagedata are read from the sibling files and the
// pages from the directory "<store>/<id>/".
//
// Pages and template names are paired by position. If the number of pages
// differs from the number of pagedata entries, the longer list is truncated.
func LoadDocument(path string) (*Document, error) {
	d := &Document{}
	err := load(d, path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Document) load(path string) error {
	logging.Debug("Load document from %q", path)
	meta, err := LoadMetadata(withExt(path, extMetadata))
	if err != nil {
		return err
	}

	content, err := LoadContent(withExt(path, extContent))
	if err != nil {
		return err
	}

	pd, err := LoadPagedata(withExt(path, extPagedata))
	if err != nil {
		return err
	}

	ids := content.Pages()
	n := len(ids)
	if len(pd) != n {
		logging.Warning("Document %q has %d pages but %d pagedata entries", meta.Name(), n, len(pd))
		if len(pd) < n {
			n = len(pd)
		}
	}

	dir := withExt(path, "")
	pages := make([]docPage, n)
	for i := 0; i < n; i++ {
		pp := filepath.Join(dir, ids[i].String()+extPage)
		p, err := LoadPage(pp)
		if err != nil {
			var e *Error
			if errors.As(err, &e) {
				e.Page = ids[i].String()
			}
			return err
		}
		pages[i] = docPage{id: ids[i], page: p, template: pd[i]}
	}

	d.meta = meta
	d.orientation = content.Orientation()
	d.pages = pages
	return nil
}

// Name is the display name of the document.
func (d *Document) Name() string {
	return d.meta.Name()
}

// Parent returns the ID of the parent collection.
// The boolean is false for documents at the top level.
func (d *Document) Parent() (ID, bool) {
	return d.meta.Parent()
}

// Metadata returns the metadata for this document.
func (d *Document) Metadata() *Metadata {
	return d.meta
}

// LastModified is the time of the last change, zero if unknown.
func (d *Document) LastModified() time.Time {
	return d.meta.LastModified()
}

// Orientation is the layout (Portrait or Landscape) for all pages.
func (d *Document) Orientation() Orientation {
	return d.orientation
}

// PageCount returns the number of pages in this document.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Page returns the page at index i (zero-based).
func (d *Document) Page(i int) *Page {
	return d.pages[i].page
}

// PageID returns the ID of the page at index i.
func (d *Document) PageID(i int) ID {
	return d.pages[i].id
}

// TemplateName returns the name of the background template for the page at
// index i. It is empty if the page has no template.
func (d *Document) TemplateName(i int) string {
	return d.pages[i].template
}

// SetTemplateDir sets the directory from which background templates are
// loaded during rendering. An empty string disables templates.
//
// Setting the same directory again has no effect. Templates which were loaded
// from a different directory are discarded.
func (d *Document) SetTemplateDir(dir string) *Document {
	if dir == d.templateDir {
		return d
	}

	logging.Debug("Use template directory %q for %q", dir, d.Name())
	d.templateDir = dir
	for _, p := range d.pages {
		p.page.template = nil
	}
	return d
}

// TemplateDir returns the configured template directory,
// empty if templates are disabled.
func (d *Document) TemplateDir() string {
	return d.templateDir
}

// Template loads the background template for the page at index i from the
// template directory. The file is named "<dir>/<name>.svg".
//
// It returns nil and no error if no template directory is configured or the
// page has no template. A template is read at most once per page.
func (d *Document) Template(i int) (*Template, error) {
	if d.templateDir == "" {
		return nil, nil
	}

	p := d.pages[i]
	if p.template == "" {
		return nil, nil
	}
	if p.page.template != nil {
		return p.page.template, nil
	}

	t, err := LoadTemplate(filepath.Join(d.templateDir, p.template+extTemplate))
	if err != nil {
		return nil, err
	}

	p.page.template = t
	return t, nil
}
