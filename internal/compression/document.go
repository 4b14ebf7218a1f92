package compression

import (
	"image"

	fitz "github.com/gen2brain/go-fitz"
)

// Document is the minimal rendering surface the pipeline needs from an open
// PDF. go-fitz's Document satisfies it directly; tests substitute fakes to
// inject rendering faults without touching MuPDF.
type Document interface {
	NumPage() int
	ImageDPI(pageNumber int, dpi float64) (image.Image, error)
	Close() error
}

// DocumentOpener opens a Document from raw PDF bytes.
type DocumentOpener func(data []byte) (Document, error)

// OpenDocument opens PDF bytes with MuPDF.
func OpenDocument(data []byte) (Document, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, err
	}
	return fitzDocument{doc}, nil
}

// fitzDocument adapts *fitz.Document, whose ImageDPI returns *image.RGBA,
// to the Document interface's image.Image return type.
type fitzDocument struct {
	*fitz.Document
}

func (d fitzDocument) ImageDPI(pageNumber int, dpi float64) (image.Image, error) {
	return d.Document.ImageDPI(pageNumber, dpi)
}
