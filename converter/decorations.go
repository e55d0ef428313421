package converter

import (
	"fmt"
	"time"
)

// Decoration layout.
const (
	fontResName = "Fdm"

	watermarkLabel  = "DARK MODE"
	timestampLayout = "2006-01-02 15:04:05"

	decoMargin  = 10.0
	labelSize   = 8.0
	stampSize   = 6.0
	labelAlpha  = 0.6
	stampAlpha  = 0.4
	borderInset = 2.0
	borderWidth = 0.5
	borderScale = 0.3
)

// textWidth estimates the width of a line in the decoration font.
func textWidth(s string, size float64) float64 {
	return float64(len(s)) * size * 0.5
}

// drawDecorations adds the watermark labels and the page border.
//
// The watermark block consists of a fixed label top-right, the page
// position top-left and the processing timestamp bottom-left, all in
// the run's decoration font. The thin border is drawn regardless of the
// watermark setting. When no decoration font could be embedded the
// whole step is skipped; that is never a page failure.
func drawDecorations(c *canvas, pageNr, totalPages int, opts Options, now time.Time, haveFont bool) {
	if !haveFont {
		return
	}

	if opts.AddWatermark {
		labelY := c.h - decoMargin - labelSize
		c.text(watermarkLabel, c.w-decoMargin-textWidth(watermarkLabel, labelSize), labelY, labelSize, opts.Text, labelAlpha)
		c.text(fmt.Sprintf("%d/%d", pageNr, totalPages), decoMargin, labelY, labelSize, opts.Text, labelAlpha)
		c.text(now.Format(timestampLayout), decoMargin, decoMargin, stampSize, opts.Text, stampAlpha)
	}

	c.strokeRect(borderInset, borderInset, c.w-2*borderInset, c.h-2*borderInset, borderWidth, opts.Text.Scale(borderScale))
}
