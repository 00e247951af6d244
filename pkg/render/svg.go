package render

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// svgImage is a parsed SVG template.
// Only path elements are supported.
type svgImage struct {
	sb gofpdf.SVGBasicType
}

func parseSVG(data []byte) (*svgImage, error) {
	sb, err := gofpdf.SVGBasicParse(data)
	if err != nil {
		return nil, err
	}
	if sb.Wd <= 0 || sb.Ht <= 0 {
		return nil, fmt.Errorf("svg image without width or height")
	}
	// only path elements are read, anything else would be drawn blank
	if len(sb.Segments) == 0 {
		return nil, fmt.Errorf("svg image without path elements")
	}
	return &svgImage{sb: sb}, nil
}

func (s *svgImage) Size() (float64, float64) {
	return s.sb.Wd, s.sb.Ht
}

// asSVG checks that img was created by parseSVG.
func asSVG(img Image) (*svgImage, error) {
	svg, ok := img.(*svgImage)
	if !ok {
		return nil, fmt.Errorf("unsupported image type %T", img)
	}
	return svg, nil
}

// dontPanic calls f and returns a panic from f as an error.
func dontPanic(f func()) (err error) {
	defer func() {
		x := recover()
		if x != nil {
			err = fmt.Errorf("recovered from: %v", x)
		}
	}()

	f()
	return nil
}
