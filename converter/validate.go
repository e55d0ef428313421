package converter

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// MaxPageCount is the ceiling enforced by ValidatePDF. Documents above
// it are rejected before processing as a resource-control point.
const MaxPageCount = 1000

// Validation failure causes.
var (
	ErrMalformed    = errors.New("not a valid PDF document")
	ErrNoPages      = errors.New("PDF contains no pages")
	ErrTooManyPages = fmt.Errorf("PDF exceeds the %d page limit", MaxPageCount)
)

// Validation is the outcome of inspecting an input document.
type Validation struct {
	Valid     bool
	PageCount int
	Err       error
}

// ValidatePDF checks that data parses as a PDF and that its page count
// is within bounds. Pure inspection, no side effects.
func ValidatePDF(data []byte) Validation {
	ctx, err := readContext(data)
	if err != nil {
		return Validation{Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if ctx.PageCount == 0 {
		return Validation{Err: ErrNoPages}
	}
	if ctx.PageCount > MaxPageCount {
		return Validation{PageCount: ctx.PageCount, Err: fmt.Errorf("%w: %d pages", ErrTooManyPages, ctx.PageCount)}
	}
	return Validation{Valid: true, PageCount: ctx.PageCount}
}

// readContext parses a PDF byte stream with relaxed validation and a
// resolved page count.
func readContext(data []byte) (*model.Context, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PDF: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to determine page count: %w", err)
	}
	return ctx, nil
}
