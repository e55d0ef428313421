// Package converter turns PDF documents into a dark-mode visual variant
// by layering translucent fills and decorations over each page's
// existing content. Page geometry and original content are preserved;
// the engine only adds drawing operations.
package converter

import "github.com/rs/zerolog"

// Process runs the transformation over one document with the given
// options and no logging. Callers wanting structured diagnostics should
// build an Engine with their own logger instead.
func Process(data []byte, opts Options) Result {
	return NewEngine(opts, zerolog.Nop()).Process(data)
}
