package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/akeil/rmdoc"
	"github.com/akeil/rmdoc/internal/config"
	"github.com/akeil/rmdoc/internal/fs"
	"github.com/akeil/rmdoc/pkg/render"
)

func doConvert(s config.Settings, path, out string) error {
	e, err := rmdoc.Resolve(path)
	if err != nil {
		return err
	}
	if e.Type() != rmdoc.DocumentEntry {
		return fmt.Errorf("%q is a %v, not a document", e.Name(), e.Type())
	}

	doc := e.Document()
	doc.SetTemplateDir(s.Templates)

	write := render.WritePDF
	if strings.EqualFold(filepath.Ext(out), ".png") {
		write = render.WritePNG
	}

	fmt.Printf("%v render %q\n", ellipsis, doc.Name())
	err = fs.WriteFile(out, func(w io.Writer) error {
		return write(doc, w)
	})
	if err != nil {
		return err
	}

	fmt.Printf("%v document %q saved as %q.\n", checkmark, doc.Name(), out)
	return nil
}
