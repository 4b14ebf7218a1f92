package compression

import "image"

// RasterImage is one rendered page: an opaque RGB pixel buffer plus its
// dimensions in pixels. It lives only between rasterization and encoding.
type RasterImage struct {
	Image  image.Image
	Width  int
	Height int
}

// RunState tracks where a single compression run is in its lifecycle.
type RunState int

const (
	StateIdle RunState = iota
	StateLoaded
	StateCompressing
	StateCompressed
	StatePreviewing
	StateDone
	StateFailed
)

func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoaded:
		return "loaded"
	case StateCompressing:
		return "compressing"
	case StateCompressed:
		return "compressed"
	case StatePreviewing:
		return "previewing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Progress is one per-page progress event. PageIndex is zero-based and
// refers to the page that just finished.
type Progress struct {
	PageIndex  int
	TotalPages int
}

// Metrics holds before/after sizes for one run.
type Metrics struct {
	OriginalSize     int64   `json:"original_size"`
	CompressedSize   int64   `json:"compressed_size"`
	ReductionPercent float64 `json:"reduction_percent"`
}

// PreviewPair is a same-index snapshot of a page rendered from both the
// original and the compressed document, PNG encoded for display.
type PreviewPair struct {
	Index      int
	Original   []byte
	Compressed []byte
}

// Result is the outcome of a successful run. PreviewWarning carries a
// non-fatal preview failure; Output and Metrics are valid regardless.
type Result struct {
	Output         []byte
	Metrics        Metrics
	PageCount      int
	Previews       []PreviewPair
	PreviewWarning string
	State          RunState
}
