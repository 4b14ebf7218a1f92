package application

import (
	"sync"

	"pdfpress/internal/database"
)

// StatsManager accumulates session counters in memory and reads lifetime
// totals from the history table.
type StatsManager struct {
	mu    sync.Mutex
	db    *database.Database
	stats AppStats
}

// NewStatsManager creates a new stats manager.
func NewStatsManager(db *database.Database) *StatsManager {
	return &StatsManager{db: db}
}

// UpdateStats records one completed run.
func (m *StatsManager) UpdateStats(dataSaved int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.SessionFilesCompressed++
	m.stats.SessionDataSaved += dataSaved
}

// GetStats returns current statistics, with lifetime totals refreshed from
// the database when available.
func (m *StatsManager) GetStats() AppStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		if files, saved, err := m.db.LifetimeTotals(); err == nil {
			m.stats.TotalFilesCompressed = files
			m.stats.TotalDataSaved = saved
		}
	}

	return m.stats
}
