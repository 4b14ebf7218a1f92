package compression

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Rebuilder assembles encoded page images into a new PDF, one page per
// image, in append order. Each page's size in points equals the image's
// pixel dimensions and the image covers the page completely.
type Rebuilder struct {
	pdf   *gofpdf.Fpdf
	pages int
}

// NewRebuilder creates an empty rebuilder.
func NewRebuilder() *Rebuilder {
	return &Rebuilder{pdf: gofpdf.New("P", "pt", "A4", "")}
}

// AppendPage adds one page of width x height points backed by jpegData.
func (r *Rebuilder) AppendPage(jpegData []byte, width, height int) error {
	name := fmt.Sprintf("page-%d", r.pages)
	opts := gofpdf.ImageOptions{ImageType: "JPG"}

	r.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: float64(width), Ht: float64(height)})
	r.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(jpegData))
	r.pdf.ImageOptions(name, 0, 0, float64(width), float64(height), false, opts, 0, "")
	if err := r.pdf.Error(); err != nil {
		return fmt.Errorf("append page %d: %w", r.pages, err)
	}

	r.pages++
	return nil
}

// PageCount returns the number of pages appended so far.
func (r *Rebuilder) PageCount() int {
	return r.pages
}

// Finalize serializes the rebuilt document. Call once, after the last page.
func (r *Rebuilder) Finalize() ([]byte, error) {
	// gofpdf silently inserts a blank page when closing a document with no
	// pages; a zero-page source must stay zero-page.
	if r.pages == 0 {
		return emptyPDF(), nil
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serialize rebuilt document: %w", err)
	}
	return buf.Bytes(), nil
}

// emptyPDF writes a minimal document with an empty page tree.
func emptyPDF() []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	catalogOffset := buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	pagesOffset := buf.Len()
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [] /Count 0 >>\nendobj\n")

	xrefOffset := buf.Len()
	buf.WriteString("xref\n0 3\n")
	buf.WriteString("0000000000 65535 f \n")
	fmt.Fprintf(&buf, "%010d 00000 n \n", catalogOffset)
	fmt.Fprintf(&buf, "%010d 00000 n \n", pagesOffset)
	fmt.Fprintf(&buf, "trailer\n<< /Size 3 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return buf.Bytes()
}
