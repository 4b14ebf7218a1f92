package compression

import (
	"bytes"
	"errors"
	"testing"
)

func TestGeneratePreviewsCapsAtMax(t *testing.T) {
	doc := newFakeDocument(letterPages(8)...)

	pairs, err := GeneratePreviews(fakeOpener(doc), []byte("orig"), []byte("comp"), DefaultPreviewDPI, MaxPreviewPages)
	if err != nil {
		t.Fatalf("GeneratePreviews: %v", err)
	}
	if len(pairs) != MaxPreviewPages {
		t.Fatalf("got %d pairs, want %d", len(pairs), MaxPreviewPages)
	}
	for i, pair := range pairs {
		if pair.Index != i {
			t.Errorf("pair %d has Index %d", i, pair.Index)
		}
		if !bytes.HasPrefix(pair.Original, []byte("\x89PNG")) {
			t.Errorf("pair %d original is not PNG encoded", i)
		}
		if !bytes.HasPrefix(pair.Compressed, []byte("\x89PNG")) {
			t.Errorf("pair %d compressed is not PNG encoded", i)
		}
	}
}

func TestGeneratePreviewsShortDocument(t *testing.T) {
	doc := newFakeDocument(letterPages(2)...)

	pairs, err := GeneratePreviews(fakeOpener(doc), []byte("orig"), []byte("comp"), DefaultPreviewDPI, MaxPreviewPages)
	if err != nil {
		t.Fatalf("GeneratePreviews: %v", err)
	}
	if len(pairs) != 2 {
		t.Errorf("got %d pairs, want 2", len(pairs))
	}
}

func TestGeneratePreviewsOpenFailure(t *testing.T) {
	opener := func(data []byte) (Document, error) {
		return nil, errors.New("corrupt")
	}

	_, err := GeneratePreviews(opener, []byte("orig"), []byte("comp"), DefaultPreviewDPI, MaxPreviewPages)

	var previewErr *PreviewError
	if !errors.As(err, &previewErr) {
		t.Fatalf("expected *PreviewError, got %T: %v", err, err)
	}
}

func TestGeneratePreviewsRenderFailure(t *testing.T) {
	doc := newFakeDocument(letterPages(3)...)
	doc.failPage = 1

	_, err := GeneratePreviews(fakeOpener(doc), []byte("orig"), []byte("comp"), DefaultPreviewDPI, MaxPreviewPages)

	var previewErr *PreviewError
	if !errors.As(err, &previewErr) {
		t.Fatalf("expected *PreviewError, got %T: %v", err, err)
	}
}
