package converter

import (
	"bytes"
	"fmt"
	"math"

	"pdfdusk/converter/colors"
)

// canvas accumulates content-stream drawing operators for one page.
// Coordinates passed to the drawing methods are relative to the page's
// lower-left corner; the MediaBox origin is applied internally.
type canvas struct {
	buf      bytes.Buffer
	llx, lly float64
	w, h     float64
	alphas   map[string]float64 // ExtGState name -> alpha, registered by the engine
	usesFont bool
}

func newCanvas(llx, lly, w, h float64) *canvas {
	return &canvas{llx: llx, lly: lly, w: w, h: h, alphas: map[string]float64{}}
}

func (c *canvas) bytes() []byte {
	return c.buf.Bytes()
}

// gsName reserves an ExtGState resource name for the given alpha. Names
// are derived from the alpha value so equal opacities share one state.
func (c *canvas) gsName(alpha float64) string {
	name := fmt.Sprintf("GSd%d", int(math.Round(alpha*100)))
	c.alphas[name] = alpha
	return name
}

// fillRect draws a filled rectangle. Alpha below 1 goes through an
// ExtGState; fully opaque fills skip the state change.
func (c *canvas) fillRect(x, y, w, h float64, col colors.Color, alpha float64) {
	c.buf.WriteString("q ")
	if alpha < 1 {
		fmt.Fprintf(&c.buf, "/%s gs ", c.gsName(alpha))
	}
	fmt.Fprintf(&c.buf, "%.3f %.3f %.3f rg %.2f %.2f %.2f %.2f re f Q\n",
		col.R, col.G, col.B, c.llx+x, c.lly+y, w, h)
}

// strokeRect draws a rectangle outline of the given line width.
func (c *canvas) strokeRect(x, y, w, h, lineWidth float64, col colors.Color) {
	fmt.Fprintf(&c.buf, "q %.3f %.3f %.3f RG %.2f w %.2f %.2f %.2f %.2f re S Q\n",
		col.R, col.G, col.B, lineWidth, c.llx+x, c.lly+y, w, h)
}

// line draws a single stroked line segment.
func (c *canvas) line(x1, y1, x2, y2, lineWidth float64, col colors.Color, alpha float64) {
	c.buf.WriteString("q ")
	if alpha < 1 {
		fmt.Fprintf(&c.buf, "/%s gs ", c.gsName(alpha))
	}
	fmt.Fprintf(&c.buf, "%.3f %.3f %.3f RG %.2f w %.2f %.2f m %.2f %.2f l S Q\n",
		col.R, col.G, col.B, lineWidth, c.llx+x1, c.lly+y1, c.llx+x2, c.lly+y2)
}

// text draws a single line of text in the decoration font.
func (c *canvas) text(s string, x, y, size float64, col colors.Color, alpha float64) {
	c.usesFont = true
	c.buf.WriteString("q ")
	if alpha < 1 {
		fmt.Fprintf(&c.buf, "/%s gs ", c.gsName(alpha))
	}
	fmt.Fprintf(&c.buf, "%.3f %.3f %.3f rg BT /%s %.1f Tf %.2f %.2f Td (%s) Tj ET Q\n",
		col.R, col.G, col.B, fontResName, size, c.llx+x, c.lly+y, escapeText(s))
}

// escapeText escapes the PDF string delimiters in a literal string.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '(':
			buf.WriteString(`\(`)
		case ')':
			buf.WriteString(`\)`)
		case '\\':
			buf.WriteString(`\\`)
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// Strategy tuning. The band ramp and the safe-zone fractions are a
// documented approximation, not content detection.
const (
	overlayAlpha = 0.8

	bandCount     = 6
	bandAlphaBase = 0.75
	bandAlphaRamp = 0.20

	textureSpacing = 30.0
	textureAlpha   = 0.1

	preserveBaseAlpha = 0.7
	safeZoneAlpha     = 0.15
)

var (
	white        = colors.NewColorFromRGB(1, 1, 1)
	midGray      = colors.NewColorFromRGB(0.5, 0.5, 0.5)
	textureColor = colors.NewColorFromRGB(0.1, 0.1, 0.1)
)

// applyStrategy dispatches the selected darkening strategy onto the page.
func applyStrategy(c *canvas, opts Options) {
	switch opts.Strategy {
	case StrategyOverlay:
		applyOverlay(c, opts)
	case StrategyAdvanced:
		applyAdvanced(c, opts)
	case StrategyPreserveImages:
		applyPreserveImages(c, opts)
	default:
		applyTrueInversion(c)
	}
}

// applyOverlay dims the page with one translucent full-page fill. The
// original light-background content stays visible underneath.
func applyOverlay(c *canvas, opts Options) {
	c.fillRect(0, 0, c.w, c.h, opts.Background, overlayAlpha)
}

// applyAdvanced fills the page in horizontal bands whose opacity ramps
// from 0.75 at the top towards 0.95 at the bottom, then optionally lays
// a diagonal line texture over the result.
func applyAdvanced(c *canvas, opts Options) {
	bandH := c.h / bandCount
	for i := 0; i < bandCount; i++ {
		alpha := bandAlphaBase + float64(i)/bandCount*bandAlphaRamp
		y := c.h - float64(i+1)*bandH
		c.fillRect(0, y, c.w, bandH, opts.Background, alpha)
	}

	if opts.GridPattern {
		// 45-degree lines spanning the whole page diagonal.
		for x := -c.h; x <= c.w+c.h; x += textureSpacing {
			c.line(x, 0, x+c.h, c.h, 1, textureColor, textureAlpha)
		}
	}
}

// applyPreserveImages darkens the page and then brightens three fixed
// fractional regions where images commonly sit: a wide band across the
// lower third and two blocks in the upper part of the page.
func applyPreserveImages(c *canvas, opts Options) {
	c.fillRect(0, 0, c.w, c.h, opts.Background, preserveBaseAlpha)

	if !opts.PreserveImages {
		return
	}
	c.fillRect(0.1*c.w, 0, 0.8*c.w, 0.3*c.h, white, safeZoneAlpha)
	c.fillRect(0, 0.6*c.h, 0.4*c.w, 0.4*c.h, white, safeZoneAlpha)
	c.fillRect(0.6*c.w, 0.6*c.h, 0.4*c.w, 0.4*c.h, white, safeZoneAlpha)
}

// applyTrueInversion approximates a color inversion by compositing
// three full-page fills: opaque white, opaque mid-gray, half-opacity
// white. It is an opacity approximation, not a per-pixel transform.
func applyTrueInversion(c *canvas) {
	c.fillRect(0, 0, c.w, c.h, white, 1)
	c.fillRect(0, 0, c.w, c.h, midGray, 1)
	c.fillRect(0, 0, c.w, c.h, white, 0.5)
}
