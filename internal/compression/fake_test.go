package compression

import (
	"errors"
	"fmt"
	"image"
)

// fakePage describes one page of a fakeDocument in points.
type fakePage struct {
	widthPt  float64
	heightPt float64
}

// fakeDocument implements Document without MuPDF. failPage injects a render
// fault at that index (-1 disables). failDPI injects a fault only when
// rendering at that density, which lets tests break the preview pass while
// the primary pipeline succeeds.
type fakeDocument struct {
	pages    []fakePage
	failPage int
	failDPI  float64
	closed   int
}

func newFakeDocument(pages ...fakePage) *fakeDocument {
	return &fakeDocument{pages: pages, failPage: -1}
}

func (d *fakeDocument) NumPage() int {
	return len(d.pages)
}

func (d *fakeDocument) ImageDPI(pageNumber int, dpi float64) (image.Image, error) {
	if pageNumber < 0 || pageNumber >= len(d.pages) {
		return nil, fmt.Errorf("page %d out of range", pageNumber)
	}
	if d.failPage == pageNumber {
		return nil, errors.New("render fault")
	}
	if d.failDPI != 0 && d.failDPI == dpi {
		return nil, errors.New("render fault at preview density")
	}

	p := d.pages[pageNumber]
	w, h := PixelDims(p.widthPt, p.heightPt, int(dpi))
	return image.NewRGBA(image.Rect(0, 0, w, h)), nil
}

func (d *fakeDocument) Close() error {
	d.closed++
	return nil
}

func fakeOpener(doc *fakeDocument) DocumentOpener {
	return func(data []byte) (Document, error) {
		return doc, nil
	}
}
