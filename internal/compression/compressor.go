package compression

import (
	"context"
	"errors"
	"log/slog"

	"pdfpress/internal/profile"
)

// Engine runs the compression pipeline for a single document: open,
// rasterize each page in order, re-encode, rebuild, measure, preview.
// An Engine holds no per-run state, so independent runs may share one.
type Engine struct {
	opener       DocumentOpener
	logger       *slog.Logger
	previewDPI   float64
	previewPages int
	optimize     bool
	onProgress   func(Progress)
}

// NewEngine creates an engine with the MuPDF-backed document opener.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		opener:       OpenDocument,
		logger:       logger,
		previewDPI:   DefaultPreviewDPI,
		previewPages: MaxPreviewPages,
		optimize:     true,
	}
}

// SetProgressCallback sets the per-page progress callback.
func (e *Engine) SetProgressCallback(fn func(Progress)) {
	e.onProgress = fn
}

// SetDocumentOpener replaces the document opener. Used by tests to inject
// rendering faults without MuPDF.
func (e *Engine) SetDocumentOpener(opener DocumentOpener) {
	e.opener = opener
}

// SetOptimize toggles the pdfcpu cleanup pass on the rebuilt output.
func (e *Engine) SetOptimize(enabled bool) {
	e.optimize = enabled
}

// SetPreview adjusts preview rendering: dpi for the side-by-side renders
// and pages for the cap on preview pairs. pages <= 0 disables previews;
// a non-positive dpi keeps the current one.
func (e *Engine) SetPreview(dpi float64, pages int) {
	if dpi > 0 {
		e.previewDPI = dpi
	}
	e.previewPages = pages
}

func (e *Engine) progress(p Progress) {
	if e.onProgress != nil {
		e.onProgress(p)
	}
}

// Compress runs the full pipeline on input under prof. On success the
// result is complete even when previewing failed; the failure is then
// reported in Result.PreviewWarning instead of an error. On error no
// partial output is returned.
func (e *Engine) Compress(ctx context.Context, input []byte, prof profile.Profile) (*Result, error) {
	state := StateIdle
	fail := func(err error) (*Result, error) {
		e.logger.Error("compression run failed",
			"state", StateFailed.String(),
			"from", state.String(),
			"error", err)
		return nil, err
	}

	// The profile table is fixed, so this only trips on a configuration
	// defect. Checked once here, never mid-run.
	if prof.Resolution <= 0 || prof.Quality < 1 || prof.Quality > 100 {
		return fail(NewInvalidQualityError(prof.Resolution, prof.Quality))
	}

	if len(input) == 0 {
		return fail(NewInputError(errors.New("empty input")))
	}
	doc, err := e.opener(input)
	if err != nil {
		return fail(NewInputError(err))
	}
	defer doc.Close()
	state = StateLoaded

	totalPages := doc.NumPage()
	e.logger.Debug("document loaded",
		"pages", totalPages,
		"profile", string(prof.Level),
		"dpi", prof.Resolution,
		"quality", prof.Quality)

	state = StateCompressing
	rasterizer := Rasterizer{DPI: prof.Resolution}
	encoder := Encoder{Quality: prof.Quality}
	rebuilder := NewRebuilder()

	for i := 0; i < totalPages; i++ {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}

		raster, err := rasterizer.Rasterize(doc, i)
		if err != nil {
			return fail(err)
		}
		encoded, err := encoder.Encode(raster)
		if err != nil {
			return fail(NewPageRenderError(i, err))
		}
		if err := rebuilder.AppendPage(encoded, raster.Width, raster.Height); err != nil {
			return fail(NewPageRenderError(i, err))
		}

		e.progress(Progress{PageIndex: i, TotalPages: totalPages})
	}

	output, err := rebuilder.Finalize()
	if err != nil {
		return fail(err)
	}
	if e.optimize && totalPages > 0 {
		output = optimizeOutput(output, e.logger)
	}
	state = StateCompressed

	result := &Result{
		Output:    output,
		PageCount: totalPages,
		Metrics:   ComputeMetrics(int64(len(input)), int64(len(output))),
	}

	state = StatePreviewing
	if totalPages > 0 && e.previewPages > 0 {
		e.logger.Debug("generating previews",
			"state", state.String(),
			"dpi", e.previewDPI,
			"pages", e.previewPages)
		pairs, err := GeneratePreviews(e.opener, input, output, e.previewDPI, e.previewPages)
		if err != nil {
			// Preview failure never masks a successful compression.
			e.logger.Warn("preview generation failed", "error", err)
			result.PreviewWarning = err.Error()
		} else {
			result.Previews = pairs
		}
	}

	result.State = StateDone
	e.logger.Info("compression run complete",
		"pages", totalPages,
		"original_size", result.Metrics.OriginalSize,
		"compressed_size", result.Metrics.CompressedSize,
		"reduction_percent", result.Metrics.ReductionPercent)
	return result, nil
}
