package converter

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Decoration fonts tried in order. Both are standard Type1 fonts every
// viewer provides, so no font program is carried in the output.
var decorationFonts = []string{"Helvetica", "Courier"}

// embedDecorationFont registers the run's decoration font object. On
// failure it falls back to the secondary font; if that fails too it
// returns nil and decorations are skipped for the whole run.
func (e *Engine) embedDecorationFont(ctx *model.Context) *types.IndirectRef {
	for _, base := range decorationFonts {
		d := types.Dict{
			"Type":     types.Name("Font"),
			"Subtype":  types.Name("Type1"),
			"BaseFont": types.Name(base),
		}
		ref, err := ctx.IndRefForNewObject(d)
		if err != nil {
			e.log.Warn().Str("font", base).Err(err).Msg("font embedding failed")
			continue
		}
		return ref
	}
	e.log.Warn().Msg("no decoration font available, decorations disabled")
	return nil
}

// resourceDict resolves the resource dictionary our ExtGState and font
// entries go into, creating a page-local one when the page has none.
func resourceDict(ctx *model.Context, pageDict types.Dict, inhPAttrs *model.InheritedPageAttrs) (types.Dict, error) {
	if obj, found := pageDict.Find("Resources"); found {
		o, err := ctx.Dereference(obj)
		if err != nil {
			return nil, err
		}
		if d, ok := o.(types.Dict); ok {
			return d, nil
		}
	}

	// Inherited resources are extended in place: the names we add are
	// ours alone and every page wants the same entries.
	if inhPAttrs != nil && inhPAttrs.Resources != nil {
		return inhPAttrs.Resources, nil
	}

	d := types.Dict{}
	pageDict["Resources"] = d
	return d, nil
}

// registerExtGStates adds one ExtGState object per alpha used on the
// page, keyed by the canvas-assigned resource name.
func registerExtGStates(ctx *model.Context, res types.Dict, alphas map[string]float64) error {
	if len(alphas) == 0 {
		return nil
	}

	gsDict, err := subDict(ctx, res, "ExtGState")
	if err != nil {
		return err
	}

	for name, alpha := range alphas {
		if _, found := gsDict.Find(name); found {
			continue
		}
		gs := types.Dict{
			"Type": types.Name("ExtGState"),
			"ca":   types.Float(alpha),
			"CA":   types.Float(alpha),
		}
		ref, err := ctx.IndRefForNewObject(gs)
		if err != nil {
			return fmt.Errorf("failed to register graphics state %s: %w", name, err)
		}
		gsDict[name] = *ref
	}
	return nil
}

// registerFont exposes the run's shared font object under the page's
// font resources.
func registerFont(ctx *model.Context, res types.Dict, font *types.IndirectRef) error {
	fontDict, err := subDict(ctx, res, "Font")
	if err != nil {
		return err
	}
	if _, found := fontDict.Find(fontResName); !found {
		fontDict[fontResName] = *font
	}
	return nil
}

// subDict returns the named sub-dictionary of res, creating it if absent.
func subDict(ctx *model.Context, res types.Dict, name string) (types.Dict, error) {
	if obj, found := res.Find(name); found {
		o, err := ctx.Dereference(obj)
		if err != nil {
			return nil, err
		}
		if d, ok := o.(types.Dict); ok {
			return d, nil
		}
	}
	d := types.Dict{}
	res[name] = d
	return d, nil
}
