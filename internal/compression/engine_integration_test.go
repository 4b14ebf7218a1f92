package compression

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/jung-kurt/gofpdf"

	"pdfpress/internal/profile"
)

// fixturePDF builds a letter-sized document with n pages of real content.
func fixturePDF(t *testing.T, n int) []byte {
	t.Helper()

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 24)
	for i := 0; i < n; i++ {
		pdf.AddPage()
		pdf.Text(72, 100, "fixture page")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatalf("build fixture pdf: %v", err)
	}
	return buf.Bytes()
}

func TestEngineEndToEnd(t *testing.T) {
	input := fixturePDF(t, 3)

	engine := NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	result, err := engine.Compress(context.Background(), input, profile.Resolve(profile.Balanced))
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	if result.PageCount != 3 {
		t.Errorf("PageCount = %d, want 3", result.PageCount)
	}
	if !bytes.HasPrefix(result.Output, []byte("%PDF")) {
		t.Error("output does not start with %PDF header")
	}
	if result.PreviewWarning != "" {
		t.Errorf("unexpected preview warning: %s", result.PreviewWarning)
	}
	if len(result.Previews) != 3 {
		t.Errorf("got %d previews, want 3", len(result.Previews))
	}

	// The rebuilt bytes must themselves be a readable document with the
	// same page count.
	doc, err := OpenDocument(result.Output)
	if err != nil {
		t.Fatalf("reopen output: %v", err)
	}
	defer doc.Close()
	if doc.NumPage() != 3 {
		t.Errorf("output NumPage = %d, want 3", doc.NumPage())
	}
}

func TestEngineOutputPageSizeMatchesRaster(t *testing.T) {
	input := fixturePDF(t, 1)

	engine := NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
	engine.SetOptimize(false)

	result, err := engine.Compress(context.Background(), input, profile.Resolve(profile.Balanced))
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	// 612x792pt at 120 dpi rasterizes to 1020x1320 pixels, and the output
	// page adopts those counts as its size in points.
	if !bytes.Contains(result.Output, []byte("/MediaBox [0 0 1020.00 1320.00]")) {
		t.Error("output page is not 1020x1320 points")
	}
}
