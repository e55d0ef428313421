package converter

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/rs/zerolog"
)

// Engine runs one document through the layered dark-mode transformation.
// An Engine is stateless across runs; every Process call loads, darkens
// and serializes one document start to finish.
type Engine struct {
	opts Options
	log  zerolog.Logger
	now  func() time.Time

	// beforePage, when set, runs ahead of each page transform.
	beforePage func(pageNr int) error
}

// NewEngine creates an engine for one set of processing options.
func NewEngine(opts Options, log zerolog.Logger) *Engine {
	return &Engine{opts: opts, log: log, now: time.Now}
}

// Process transforms every page of the document and reassembles it.
//
// Per-page failures are recorded in the result's error list and do not
// stop the run; only load and serialization failures are fatal. The
// returned result is always well formed, this method never panics past
// its boundary.
func (e *Engine) Process(data []byte) Result {
	start := time.Now()
	res := Result{OriginalSize: len(data)}

	ctx, err := readContext(data)
	if err != nil {
		return e.fatal(res, start, err)
	}
	res.PageCount = ctx.PageCount

	// One font object shared by every page of the run.
	font := e.embedDecorationFont(ctx)

	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		if err := e.transformPage(ctx, pageNr, ctx.PageCount, font); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("page %d: %v", pageNr, err))
			e.log.Warn().
				Int("page", pageNr).
				Str("strategy", e.opts.Strategy.String()).
				Err(err).
				Msg("page transform failed")
		}
	}

	// Plain linear serialization: no object streams, classic xref table.
	ctx.Configuration.WriteObjectStream = false
	ctx.Configuration.WriteXRefStream = false

	var buf bytes.Buffer
	if err := api.WriteContext(ctx, &buf); err != nil {
		return e.fatal(res, start, fmt.Errorf("failed to write PDF: %w", err))
	}

	res.Success = true
	res.Output = buf.Bytes()
	res.ProcessedSize = buf.Len()
	res.ProcessingTime = time.Since(start)
	return res
}

// fatal builds the failed-run result: no output, page count zeroed.
func (e *Engine) fatal(res Result, start time.Time, err error) Result {
	e.log.Error().Err(err).Msg("processing failed")
	return Result{
		OriginalSize:   res.OriginalSize,
		ProcessingTime: time.Since(start),
		Errors:         []string{err.Error()},
	}
}

// transformPage draws the darkening fills and decorations onto a single
// page. Existing content is never removed, only drawn over.
func (e *Engine) transformPage(ctx *model.Context, pageNr, totalPages int, font *types.IndirectRef) error {
	if e.beforePage != nil {
		if err := e.beforePage(pageNr); err != nil {
			return err
		}
	}

	pageDict, _, inhPAttrs, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return fmt.Errorf("failed to get page dict: %w", err)
	}

	box := mediaBox(pageDict, inhPAttrs)
	c := newCanvas(box.LL.X, box.LL.Y, box.Width(), box.Height())

	applyStrategy(c, e.opts)
	drawDecorations(c, pageNr, totalPages, e.opts, e.now(), font != nil)

	res, err := resourceDict(ctx, pageDict, inhPAttrs)
	if err != nil {
		return fmt.Errorf("failed to resolve page resources: %w", err)
	}
	if err := registerExtGStates(ctx, res, c.alphas); err != nil {
		return err
	}
	if c.usesFont && font != nil {
		if err := registerFont(ctx, res, font); err != nil {
			return err
		}
	}

	if err := ctx.AppendContent(pageDict, c.bytes()); err != nil {
		return fmt.Errorf("failed to append content: %w", err)
	}
	return nil
}

// mediaBox resolves a page's MediaBox, falling back to inherited
// attributes and finally to US Letter (612x792 points).
func mediaBox(pageDict types.Dict, inhPAttrs *model.InheritedPageAttrs) *types.Rectangle {
	if mb, found := pageDict.Find("MediaBox"); found {
		if arr, ok := mb.(types.Array); ok {
			if r := types.RectForArray(arr); r != nil {
				return r
			}
		}
	}
	if inhPAttrs != nil && inhPAttrs.MediaBox != nil {
		return inhPAttrs.MediaBox
	}
	return types.NewRectangle(0, 0, 612, 792)
}
