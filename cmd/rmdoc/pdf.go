package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/akeil/rmdoc"
	"github.com/akeil/rmdoc/internal/config"
	"github.com/akeil/rmdoc/internal/fs"
	"github.com/akeil/rmdoc/internal/imaging"
	"github.com/akeil/rmdoc/internal/logging"
	"github.com/akeil/rmdoc/pkg/render"
)

// convertFunc converts one document into files below outDir.
// Output files are named after base.
type convertFunc func(doc *rmdoc.Document, outDir, base string) error

func doPdf(s config.Settings, match string, mkDirs, verify bool) error {
	return convertAll(s, match, mkDirs, func(doc *rmdoc.Document, outDir, base string) error {
		path := filepath.Join(outDir, base+".pdf")
		err := fs.WriteFile(path, func(w io.Writer) error {
			return render.WritePDF(doc, w)
		})
		if err != nil {
			return err
		}

		if verify {
			err = verifyFile(path)
			if err != nil {
				return err
			}
		}

		fmt.Printf("%v document %q saved as %q.\n", checkmark, doc.Name(), path)
		return nil
	})
}

func doPng(s config.Settings, match string, mkDirs bool, thumbnail int) error {
	return convertAll(s, match, mkDirs, func(doc *rmdoc.Document, outDir, base string) error {
		surface, err := render.Render(doc, render.NewBitmap)
		if err != nil {
			return err
		}

		for i, img := range surface.(*render.Bitmap).Pages() {
			if thumbnail > 0 {
				img = imaging.Resize(img, thumbnail)
			}

			path := filepath.Join(outDir, fmt.Sprintf("%v-%d.png", base, i+1))
			err = fs.WriteFile(path, func(w io.Writer) error {
				return png.Encode(w, img)
			})
			if err != nil {
				return err
			}
		}

		fmt.Printf("%v document %q saved to %q.\n", checkmark, doc.Name(), outDir)
		return nil
	})
}

// convertAll calls convert for every document in the store that matches the
// glob pattern. Documents are converted in parallel.
func convertAll(s config.Settings, match string, mkDirs bool, convert convertFunc) error {
	root, err := rmdoc.BuildTree(s.Store)
	if err != nil {
		return err
	}

	filters := []rmdoc.NodeFilter{rmdoc.IsDocument}
	if match != "" {
		filters = append(filters, rmdoc.MatchPath(match))
	}
	root = root.Filtered(filters...)

	if len(root.Children) == 0 {
		fmt.Printf("No matching documents for %q\n", match)
		return nil
	}

	// names are assigned up front, conversions run in parallel
	names := make(outputNames)
	var group errgroup.Group
	group.SetLimit(s.Workers)
	root.Walk(func(n *rmdoc.Node) error {
		if !n.Leaf() {
			return nil
		}
		outDir := outputDir(s.Output, n, mkDirs)
		base := names.unique(outDir, fileName(n.Name()))
		group.Go(func() error {
			return convertNode(s, n.Document(), outDir, base, convert)
		})
		return nil
	})
	return group.Wait()
}

// outputDir returns the directory for a document. With mkDirs, the folder
// structure from the tablet is mirrored below dir.
func outputDir(dir string, n *rmdoc.Node, mkDirs bool) string {
	p := n.Path()
	p = p[:len(p)-1] // drop the document itself
	if !mkDirs || len(p) == 0 {
		return dir
	}
	for i := range p {
		p[i] = fileName(p[i])
	}
	return filepath.Join(dir, filepath.Join(p...))
}

// outputNames keeps track of the file names used per output directory.
type outputNames map[string]bool

// unique returns name, or name with a numeric suffix if a document with the
// same name was already written to dir. Names differing only in case count
// as equal.
func (o outputNames) unique(dir, name string) string {
	key := func(n string) string {
		return filepath.Join(dir, strings.ToLower(n))
	}

	candidate := name
	for i := 2; o[key(candidate)]; i++ {
		candidate = fmt.Sprintf("%v (%d)", name, i)
	}
	o[key(candidate)] = true

	if candidate != name {
		logging.Warning("Duplicate name %q in %q, save as %q", name, dir, candidate)
	}
	return candidate
}

func convertNode(s config.Settings, doc *rmdoc.Document, outDir, base string, convert convertFunc) error {
	doc.SetTemplateDir(s.Templates)

	err := os.MkdirAll(outDir, 0755)
	if err != nil {
		fmt.Printf("%v Failed to create directory %q: %v\n", crossmark, outDir, err)
		return err
	}

	fmt.Printf("%v render %q\n", ellipsis, doc.Name())
	err = convert(doc, outDir, base)
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, doc.Name(), err)
		return err
	}
	return nil
}

// fileName makes a display name usable as a file name.
func fileName(name string) string {
	name = strings.ReplaceAll(name, string(filepath.Separator), "_")
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "unnamed"
	}
	return name
}
