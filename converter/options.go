package converter

import (
	"fmt"
	"strings"

	"pdfdusk/converter/colors"
)

// Strategy selects how a page is darkened.
type Strategy int

const (
	// StrategyTrueInversion layers opaque white, opaque mid-gray and
	// half-opacity white fills to approximate a color inversion. This is
	// the default strategy used by every preset.
	StrategyTrueInversion Strategy = iota

	// StrategyOverlay dims the page with a single translucent
	// background-colored fill.
	StrategyOverlay

	// StrategyAdvanced darkens the page in horizontal bands with a
	// top-to-bottom opacity ramp and an optional diagonal texture.
	StrategyAdvanced

	// StrategyPreserveImages darkens the page while keeping
	// heuristically placed image regions brighter.
	StrategyPreserveImages
)

// String returns the strategy's wire name.
func (s Strategy) String() string {
	switch s {
	case StrategyOverlay:
		return "overlay"
	case StrategyAdvanced:
		return "advanced"
	case StrategyPreserveImages:
		return "preserve-images"
	default:
		return "true-inversion"
	}
}

// ParseStrategy parses a strategy name as accepted on the command line.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(name) {
	case "true-inversion":
		return StrategyTrueInversion, nil
	case "overlay":
		return StrategyOverlay, nil
	case "advanced":
		return StrategyAdvanced, nil
	case "preserve-images":
		return StrategyPreserveImages, nil
	default:
		return StrategyTrueInversion, fmt.Errorf("unknown strategy: %s (valid: true-inversion, overlay, advanced, preserve-images)", name)
	}
}

// Options holds the configuration for one processing run. One Options
// value governs every page of the run; it is never mutated by the engine.
//
// Color channels are expected to be in [0,1]; out-of-range values are a
// caller contract violation and are not validated here.
type Options struct {
	Strategy       Strategy
	Background     colors.Color // dark page fill
	Text           colors.Color // decoration text and border
	PreserveImages bool         // run the image-safe-zone heuristic
	AddWatermark   bool         // draw watermark/page-index/timestamp text
	GridPattern    bool         // draw the diagonal texture (advanced strategy)
}

// Preset names accepted by GetPresetOptions.
const (
	PresetReading      = "reading"
	PresetPrinting     = "printing"
	PresetPresentation = "presentation"
)

// GetPresetOptions maps a preset name to its processing options.
//
// Unknown names deliberately fall back to the reading preset instead of
// failing, so callers passing unrecognized mode strings still get output.
func GetPresetOptions(mode string) Options {
	switch strings.ToLower(mode) {
	case PresetPrinting:
		return Options{
			Strategy:       StrategyTrueInversion,
			Background:     colors.NewColorFromRGB(0.25, 0.25, 0.25),
			Text:           colors.NewColorFromRGB(0.85, 0.85, 0.85),
			PreserveImages: true,
		}
	case PresetPresentation:
		return Options{
			Strategy:       StrategyTrueInversion,
			Background:     colors.NewColorFromRGB(0.15, 0.15, 0.20),
			Text:           colors.NewColorFromRGB(0.90, 0.90, 0.95),
			PreserveImages: true,
			AddWatermark:   true,
			GridPattern:    true,
		}
	default: // reading
		return Options{
			Strategy:       StrategyTrueInversion,
			Background:     colors.NewColorFromRGB(0.15, 0.15, 0.15),
			Text:           colors.NewColorFromRGB(0.95, 0.95, 0.95),
			PreserveImages: true,
			AddWatermark:   true,
		}
	}
}

// PresetNames returns the recognized preset names.
func PresetNames() []string {
	return []string{PresetReading, PresetPrinting, PresetPresentation}
}
