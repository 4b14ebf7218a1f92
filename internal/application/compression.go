package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"pdfpress/internal/common"
	"pdfpress/internal/compression"
	"pdfpress/internal/config"
	"pdfpress/internal/database"
	"pdfpress/internal/profile"
	"pdfpress/internal/services"
)

// CompressionHandler drives single-document compression runs: profile
// resolution from request or preferences, the engine run itself, history
// recording, and stats.
type CompressionHandler struct {
	config       *config.Config
	engine       *compression.Engine
	db           *database.Database
	prefsService *services.PreferencesService
	statsManager *StatsManager
	logger       *slog.Logger
}

// NewCompressionHandler wires a handler around a fresh engine.
func NewCompressionHandler(
	cfg *config.Config,
	db *database.Database,
	prefsService *services.PreferencesService,
	statsManager *StatsManager,
) *CompressionHandler {
	engine := compression.NewEngine(cfg.Logger)
	engine.SetOptimize(cfg.OptimizeOutput)
	engine.SetPreview(cfg.PreviewDPI, cfg.PreviewPages)

	return &CompressionHandler{
		config:       cfg,
		engine:       engine,
		db:           db,
		prefsService: prefsService,
		statsManager: statsManager,
		logger:       cfg.Logger,
	}
}

// Engine exposes the underlying engine, mainly so callers can attach a
// progress callback.
func (h *CompressionHandler) Engine() *compression.Engine {
	return h.engine
}

// Compress runs one document through the pipeline. The returned FileResult
// carries the summary; the compression.Result carries output bytes and
// previews.
func (h *CompressionHandler) Compress(ctx context.Context, request CompressionRequest) (*FileResult, *compression.Result, error) {
	if len(request.Data) == 0 {
		return nil, nil, ErrNoFileProvided
	}

	level, err := profile.Parse(request.Profile)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	settings := h.runSettings()
	if request.Profile == "" {
		if preferred, err := profile.Parse(settings.DefaultProfile); err == nil {
			level = preferred
		}
	}
	prof := profile.Resolve(level)

	h.applySettings(settings)

	result, err := h.engine.Compress(ctx, request.Data, prof)
	if err != nil {
		return nil, nil, NewCompressionError("run", request.Filename, err)
	}

	fileResult := &FileResult{
		ResultID:           common.GenerateUUID(),
		OriginalFilename:   filepath.Base(request.Filename),
		CompressedFilename: common.CompressedFilename(request.Filename),
		Profile:            string(prof.Level),
		OriginalSize:       result.Metrics.OriginalSize,
		CompressedSize:     result.Metrics.CompressedSize,
		ReductionPercent:   result.Metrics.ReductionPercent,
		PageCount:          result.PageCount,
		PreviewCount:       len(result.Previews),
		PreviewWarning:     result.PreviewWarning,
	}

	h.recordRun(fileResult)

	return fileResult, result, nil
}

// CompressFile reads a document from disk, compresses it, and writes the
// output next to the original (or into outputDir when given). It returns
// the summary and the written path.
func (h *CompressionHandler) CompressFile(ctx context.Context, path, profileName, outputDir string) (*FileResult, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", NewCompressionError("read", filepath.Base(path), err)
	}

	fileResult, result, err := h.Compress(ctx, CompressionRequest{
		Filename: filepath.Base(path),
		Data:     data,
		Profile:  profileName,
	})
	if err != nil {
		return nil, "", err
	}

	if outputDir == "" {
		outputDir = filepath.Dir(path)
	}
	outPath := filepath.Join(outputDir, fileResult.CompressedFilename)
	if err := SaveCompressed(outPath, result.Output); err != nil {
		return nil, "", NewCompressionError("write", fileResult.CompressedFilename, err)
	}

	return fileResult, outPath, nil
}

// runSettings returns the stored preferences, falling back to the defaults
// when there is no database or the read fails.
func (h *CompressionHandler) runSettings() database.UserPreferencesData {
	if h.prefsService == nil {
		return database.DefaultPreferences()
	}
	prefs, err := h.prefsService.GetPreferences()
	if err != nil {
		return database.DefaultPreferences()
	}
	return *prefs
}

// applySettings reconciles config and stored preferences before a run.
// Config sets the ceiling; preferences can only switch features off.
func (h *CompressionHandler) applySettings(settings database.UserPreferencesData) {
	h.engine.SetOptimize(h.config.OptimizeOutput && settings.OptimizeOutput)

	pages := h.config.PreviewPages
	if !settings.GeneratePreviews {
		pages = 0
	}
	h.engine.SetPreview(h.config.PreviewDPI, pages)
}

func (h *CompressionHandler) recordRun(fileResult *FileResult) {
	h.statsManager.UpdateStats(fileResult.OriginalSize - fileResult.CompressedSize)

	if h.db == nil {
		return
	}
	record := &database.CompressionRecord{
		ID:               fileResult.ResultID,
		Filename:         fileResult.OriginalFilename,
		Profile:          fileResult.Profile,
		OriginalSize:     fileResult.OriginalSize,
		CompressedSize:   fileResult.CompressedSize,
		ReductionPercent: fileResult.ReductionPercent,
		PageCount:        fileResult.PageCount,
		CreatedAt:        time.Now().UTC(),
	}
	if err := h.db.RecordCompression(record); err != nil {
		// History is advisory; a write failure must not fail the run.
		h.logger.Warn("failed to record compression history", "error", err)
	}
}
