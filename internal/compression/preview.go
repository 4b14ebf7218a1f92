package compression

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// DefaultPreviewDPI is the fixed rendering density for previews. It is
	// independent of the profile resolution and only affects on-screen size.
	DefaultPreviewDPI = 80.0

	// MaxPreviewPages caps how many page pairs a preview contains.
	MaxPreviewPages = 5
)

// GeneratePreviews re-renders the first min(maxPages, pageCount) pages of
// both documents at previewDPI and returns index-aligned PNG pairs. It is
// isolated from the primary pipeline: every failure comes back as a
// PreviewError for the caller to downgrade to a warning.
func GeneratePreviews(opener DocumentOpener, original, compressed []byte, previewDPI float64, maxPages int) ([]PreviewPair, error) {
	origDoc, err := opener(original)
	if err != nil {
		return nil, NewPreviewError(fmt.Errorf("open original: %w", err))
	}
	defer origDoc.Close()

	compDoc, err := opener(compressed)
	if err != nil {
		return nil, NewPreviewError(fmt.Errorf("open compressed: %w", err))
	}
	defer compDoc.Close()

	count := origDoc.NumPage()
	if count > maxPages {
		count = maxPages
	}

	pairs := make([]PreviewPair, 0, count)
	for i := 0; i < count; i++ {
		origPNG, err := renderPNG(origDoc, i, previewDPI)
		if err != nil {
			return nil, NewPreviewError(fmt.Errorf("original page %d: %w", i, err))
		}
		compPNG, err := renderPNG(compDoc, i, previewDPI)
		if err != nil {
			return nil, NewPreviewError(fmt.Errorf("compressed page %d: %w", i, err))
		}
		pairs = append(pairs, PreviewPair{Index: i, Original: origPNG, Compressed: compPNG})
	}

	return pairs, nil
}

func renderPNG(doc Document, pageIndex int, dpi float64) ([]byte, error) {
	img, err := doc.ImageDPI(pageIndex, dpi)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
