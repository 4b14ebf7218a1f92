package application

import (
	"pdfpress/internal/config"
	"pdfpress/internal/database"
	"pdfpress/internal/services"
)

// App wires the application together: config, database, services, and the
// compression handler.
type App struct {
	config       *config.Config
	db           *database.Database
	prefsService *services.PreferencesService
	statsManager *StatsManager
	compression  *CompressionHandler
}

// NewApp initializes the application. A database failure is not fatal: the
// app still compresses, it just loses preferences and history.
func NewApp(cfg *config.Config) *App {
	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		cfg.Logger.Warn("database unavailable, continuing without preferences and history",
			"path", cfg.DatabasePath,
			"error", err)
		db = nil
	}

	var prefsService *services.PreferencesService
	if db != nil {
		prefsService = services.NewPreferencesService(db)
	}
	statsManager := NewStatsManager(db)

	return &App{
		config:       cfg,
		db:           db,
		prefsService: prefsService,
		statsManager: statsManager,
		compression:  NewCompressionHandler(cfg, db, prefsService, statsManager),
	}
}

// Compression returns the compression handler.
func (a *App) Compression() *CompressionHandler {
	return a.compression
}

// Preferences returns the preferences service; nil without a database.
func (a *App) Preferences() *services.PreferencesService {
	return a.prefsService
}

// Stats returns the stats manager.
func (a *App) Stats() *StatsManager {
	return a.statsManager
}

// History returns recent compression runs; empty without a database.
func (a *App) History(limit int) ([]database.CompressionRecord, error) {
	if a.db == nil {
		return nil, nil
	}
	return a.db.RecentCompressions(limit)
}
