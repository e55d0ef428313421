package converter

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// makePDF builds a minimal but structurally valid PDF with the given
// number of pages, each carrying one small content stream and its own
// Letter MediaBox.
func makePDF(t *testing.T, pages int) []byte {
	return buildPDF(t, pages, "/MediaBox [0 0 612 792] ", "")
}

// buildPDF emits the fixture with the MediaBox entry placed on each
// page dict, on the Pages node (inherited), or nowhere.
func buildPDF(t *testing.T, pages int, pageAttrs, pagesAttrs string) []byte {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int

	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] %s/Count %d >>\nendobj\n",
		strings.Join(kids, " "), pagesAttrs, pages))

	content := "0.2 0.2 0.2 rg 72 72 100 50 re f\n"
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R %s/Contents %d 0 R >>\nendobj\n",
			3+i, pageAttrs, 3+pages+i))
	}
	for i := 0; i < pages; i++ {
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			3+pages+i, len(content), content))
	}

	xrefOffset := buf.Len()
	size := len(offsets) + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d %05d n \n", off, 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefOffset)

	return buf.Bytes()
}
