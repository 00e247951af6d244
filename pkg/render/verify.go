package render

import (
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// VerifyPDF reads and validates a PDF document and returns its page count.
func VerifyPDF(rs io.ReadSeeker) (int, error) {
	conf := pdfcpu.NewDefaultConfiguration()
	conf.ValidationMode = pdfcpu.ValidationRelaxed

	ctx, err := api.ReadContext(rs, conf)
	if err != nil {
		return 0, err
	}

	err = api.ValidateContext(ctx)
	if err != nil {
		return 0, err
	}

	return ctx.PageCount, nil
}
