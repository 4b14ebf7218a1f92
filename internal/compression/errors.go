package compression

import "fmt"

// InputError means the input bytes could not be opened as a PDF document.
// It is fatal and surfaced before any page processing begins.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input is not a readable PDF document: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new input error
func NewInputError(err error) *InputError {
	return &InputError{Err: err}
}

// InvalidQualityError means a resolved profile carries out-of-range
// parameters. The profile table is fixed, so hitting this indicates a
// configuration defect rather than bad user input.
type InvalidQualityError struct {
	Resolution int
	Quality    int
}

func (e *InvalidQualityError) Error() string {
	return fmt.Sprintf("invalid profile parameters: resolution=%d quality=%d (want resolution > 0 and quality in [1,100])",
		e.Resolution, e.Quality)
}

// NewInvalidQualityError creates a new invalid quality error
func NewInvalidQualityError(resolution, quality int) *InvalidQualityError {
	return &InvalidQualityError{Resolution: resolution, Quality: quality}
}

// PageRenderError means a specific page failed to rasterize or re-encode.
// It is fatal for the whole run: skipping the page would break the
// page-count invariant, so no partial output is produced.
type PageRenderError struct {
	PageIndex int
	Err       error
}

func (e *PageRenderError) Error() string {
	return fmt.Sprintf("page %d failed to render: %v", e.PageIndex, e.Err)
}

func (e *PageRenderError) Unwrap() error {
	return e.Err
}

// NewPageRenderError creates a new page render error
func NewPageRenderError(pageIndex int, err error) *PageRenderError {
	return &PageRenderError{PageIndex: pageIndex, Err: err}
}

// PreviewError means preview generation failed. It is never fatal: the
// engine converts it to a warning on an otherwise valid result.
type PreviewError struct {
	Err error
}

func (e *PreviewError) Error() string {
	return fmt.Sprintf("preview generation failed: %v", e.Err)
}

func (e *PreviewError) Unwrap() error {
	return e.Err
}

// NewPreviewError creates a new preview error
func NewPreviewError(err error) *PreviewError {
	return &PreviewError{Err: err}
}
