package converter

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

const (
	testW = 612.0
	testH = 792.0
)

func renderStrategy(opts Options) string {
	c := newCanvas(0, 0, testW, testH)
	applyStrategy(c, opts)
	return string(c.bytes())
}

func TestOverlayStrategy(t *testing.T) {
	t.Parallel()

	opts := GetPresetOptions("reading")
	opts.Strategy = StrategyOverlay
	got := renderStrategy(opts)

	if want := "/GSd80 gs 0.150 0.150 0.150 rg 0.00 0.00 612.00 792.00 re f"; !strings.Contains(got, want) {
		t.Errorf("overlay content missing %q:\n%s", want, got)
	}
	if n := strings.Count(got, "re f"); n != 1 {
		t.Errorf("overlay drew %d fills, want 1", n)
	}
}

func TestAdvancedStrategyBands(t *testing.T) {
	t.Parallel()

	opts := GetPresetOptions("reading")
	opts.Strategy = StrategyAdvanced
	got := renderStrategy(opts)

	// Six bands with the documented opacity ramp, top to bottom.
	for _, gs := range []string{"GSd75", "GSd78", "GSd82", "GSd85", "GSd88", "GSd92"} {
		if !strings.Contains(got, "/"+gs+" gs") {
			t.Errorf("missing band graphics state %s:\n%s", gs, got)
		}
	}
	if n := strings.Count(got, "re f"); n != 6 {
		t.Errorf("advanced drew %d fills, want 6", n)
	}

	// Top band sits at the top of the page.
	if !strings.Contains(got, "0.00 660.00 612.00 132.00 re f") {
		t.Errorf("top band misplaced:\n%s", got)
	}
	// No texture without the grid flag.
	if strings.Contains(got, " l S") {
		t.Errorf("texture drawn without GridPattern:\n%s", got)
	}
}

func TestAdvancedStrategyTexture(t *testing.T) {
	t.Parallel()

	opts := GetPresetOptions("reading")
	opts.Strategy = StrategyAdvanced
	opts.GridPattern = true
	got := renderStrategy(opts)

	if !strings.Contains(got, "/GSd10 gs") {
		t.Errorf("texture lines missing their graphics state:\n%s", got)
	}
	// Lines every 30 units from x=-h to x=w+h.
	wantLines := 0
	for x := -testH; x <= testW+testH; x += textureSpacing {
		wantLines++
	}
	if n := strings.Count(got, " l S"); n != wantLines {
		t.Errorf("texture drew %d lines, want %d", n, wantLines)
	}
}

func TestPreserveImagesStrategy(t *testing.T) {
	t.Parallel()

	opts := GetPresetOptions("reading")
	opts.Strategy = StrategyPreserveImages
	got := renderStrategy(opts)

	if !strings.Contains(got, "/GSd70 gs") {
		t.Errorf("base fill missing:\n%s", got)
	}
	// The three fixed fractional safe zones for a Letter page.
	for _, zone := range []string{
		"61.20 0.00 489.60 237.60 re f",    // lower 30% across 80% width
		"0.00 475.20 244.80 316.80 re f",   // upper left block
		"367.20 475.20 244.80 316.80 re f", // upper right block
	} {
		if !strings.Contains(got, zone) {
			t.Errorf("missing safe zone %q:\n%s", zone, got)
		}
	}

	opts.PreserveImages = false
	if n := strings.Count(renderStrategy(opts), "re f"); n != 1 {
		t.Errorf("with PreserveImages off drew %d fills, want 1", n)
	}
}

func TestTrueInversionStrategy(t *testing.T) {
	t.Parallel()

	got := renderStrategy(GetPresetOptions("reading"))

	// White, mid-gray, then half-opacity white, in that order.
	iWhite := strings.Index(got, "1.000 1.000 1.000 rg")
	iGray := strings.Index(got, "0.500 0.500 0.500 rg")
	iHalf := strings.Index(got, "/GSd50 gs 1.000 1.000 1.000 rg")
	if iWhite < 0 || iGray < 0 || iHalf < 0 {
		t.Fatalf("missing inversion layers:\n%s", got)
	}
	if !(iWhite < iGray && iGray < iHalf) {
		t.Errorf("inversion layers out of order:\n%s", got)
	}
	if n := strings.Count(got, "re f"); n != 3 {
		t.Errorf("true inversion drew %d fills, want 3", n)
	}
}

func TestDecorations(t *testing.T) {
	t.Parallel()

	opts := GetPresetOptions("reading")
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	c := newCanvas(0, 0, testW, testH)
	drawDecorations(c, 2, 3, opts, now, true)
	got := string(c.bytes())

	for _, want := range []string{
		"(DARK MODE) Tj",
		"(2/3) Tj",
		"(2026-08-30 12:00:00) Tj",
		"/GSd60 gs",
		"/GSd40 gs",
		"2.00 2.00 608.00 788.00 re S", // border inset 2, all edges
		"0.50 w",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("decorations missing %q:\n%s", want, got)
		}
	}
	if !c.usesFont {
		t.Error("decorations did not mark the font as used")
	}
}

func TestDecorationsSkippedWithoutFont(t *testing.T) {
	t.Parallel()

	c := newCanvas(0, 0, testW, testH)
	drawDecorations(c, 1, 1, GetPresetOptions("reading"), time.Now(), false)

	if len(c.bytes()) != 0 {
		t.Errorf("decorations drawn without a font:\n%s", c.bytes())
	}
}

func TestDecorationGeometryIsDeterministic(t *testing.T) {
	t.Parallel()

	opts := GetPresetOptions("presentation")
	opts.Strategy = StrategyAdvanced
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	render := func() []byte {
		c := newCanvas(0, 0, testW, testH)
		applyStrategy(c, opts)
		drawDecorations(c, 1, 2, opts, now, true)
		return c.bytes()
	}

	if !bytes.Equal(render(), render()) {
		t.Error("identical pages produced different drawing operations")
	}
}

func TestEscapeText(t *testing.T) {
	t.Parallel()

	if got := escapeText(`a(b)c\d`); got != `a\(b\)c\\d` {
		t.Errorf("escapeText = %q", got)
	}
}
