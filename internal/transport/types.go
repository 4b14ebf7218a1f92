package transport

import (
	"context"
	"sync"

	"pdfpress/internal/application"
	"pdfpress/internal/compression"
)

// Compressor is the slice of the application layer the HTTP handlers need.
type Compressor interface {
	Compress(ctx context.Context, request application.CompressionRequest) (*application.FileResult, *compression.Result, error)
}

// CompressResponse is the JSON body returned by the compress endpoint.
type CompressResponse struct {
	application.FileResult
	DownloadURL string `json:"download_url"`
}

// storedResult keeps a finished run's artifacts available for download and
// preview requests. Runs themselves are stateless; this is only a per-server
// result cache keyed by result id.
type storedResult struct {
	filename string
	output   []byte
	previews []compression.PreviewPair
}

// maxStoredResults caps the cache; output bytes and preview PNGs are large
// enough that unbounded retention would eat the server's memory.
const maxStoredResults = 64

type resultStore struct {
	mu      sync.RWMutex
	results map[string]storedResult
	order   []string
}

func newResultStore() *resultStore {
	return &resultStore{results: make(map[string]storedResult)}
}

func (s *resultStore) put(id string, r storedResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.results[id]; !exists {
		s.order = append(s.order, id)
	}
	s.results[id] = r
	for len(s.order) > maxStoredResults {
		delete(s.results, s.order[0])
		s.order = s.order[1:]
	}
}

func (s *resultStore) get(id string) (storedResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.results[id]
	return r, ok
}
