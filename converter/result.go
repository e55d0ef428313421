package converter

import "time"

// Result summarizes one processing run.
//
// Success false means no usable output bytes. Success true with a
// non-empty Errors list means usable output with some pages incomplete.
type Result struct {
	Success        bool
	Output         []byte        // the transformed PDF, nil on failure
	PageCount      int           // pages in the input document
	OriginalSize   int           // input size in bytes
	ProcessedSize  int           // output size in bytes, 0 on failure
	ProcessingTime time.Duration // wall clock from load to serialization
	Errors         []string      // non-fatal per-page errors, "page N: detail"
}
