package database

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database handles database operations
type Database struct {
	db *gorm.DB
}

// NewDatabase creates a new database instance
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	database := &Database{db: db}

	// Auto-migrate the schema
	err = db.AutoMigrate(&UserPreferences{}, &CompressionRecord{})
	if err != nil {
		return nil, err
	}

	return database, nil
}

// GetPreferences gets the current user preferences
func (d *Database) GetPreferences() (*UserPreferencesData, error) {
	prefs, err := d.getOrCreatePreferences()
	if err != nil {
		return nil, err
	}

	prefsData := prefs.GetPreferences()
	return &prefsData, nil
}

// UpdatePreferences replaces the stored preferences
func (d *Database) UpdatePreferences(data UserPreferencesData) error {
	prefs, err := d.getOrCreatePreferences()
	if err != nil {
		return err
	}

	if err := prefs.SetPreferences(data); err != nil {
		return err
	}

	return d.db.Save(prefs).Error
}

// getOrCreatePreferences gets existing preferences or creates default ones
func (d *Database) getOrCreatePreferences() (*UserPreferences, error) {
	var prefs UserPreferences

	result := d.db.First(&prefs, 1)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			prefs = UserPreferences{
				ID: 1,
			}

			defaultPrefs := DefaultPreferences()
			if err := prefs.SetPreferences(defaultPrefs); err != nil {
				return nil, err
			}

			if err := d.db.Create(&prefs).Error; err != nil {
				return nil, err
			}
		} else {
			return nil, result.Error
		}
	}

	return &prefs, nil
}

// RecordCompression stores one completed run in the history table.
func (d *Database) RecordCompression(record *CompressionRecord) error {
	return d.db.Create(record).Error
}

// RecentCompressions returns the most recent runs, newest first.
func (d *Database) RecentCompressions(limit int) ([]CompressionRecord, error) {
	var records []CompressionRecord
	err := d.db.Order("created_at desc").Limit(limit).Find(&records).Error
	return records, err
}

// LifetimeTotals returns the number of recorded runs and the total bytes
// saved across them.
func (d *Database) LifetimeTotals() (int64, int64, error) {
	var files int64
	if err := d.db.Model(&CompressionRecord{}).Count(&files).Error; err != nil {
		return 0, 0, err
	}

	var saved struct {
		Total int64
	}
	err := d.db.Model(&CompressionRecord{}).
		Select("COALESCE(SUM(original_size - compressed_size), 0) AS total").
		Scan(&saved).Error
	if err != nil {
		return 0, 0, err
	}

	return files, saved.Total, nil
}
