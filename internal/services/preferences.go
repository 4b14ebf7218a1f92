package services

import (
	"pdfpress/internal/database"
	"pdfpress/internal/profile"
)

// PreferencesService handles user preferences operations
type PreferencesService struct {
	db *database.Database
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(db *database.Database) *PreferencesService {
	return &PreferencesService{db: db}
}

// GetPreferences gets the current user preferences
func (s *PreferencesService) GetPreferences() (*database.UserPreferencesData, error) {
	return s.db.GetPreferences()
}

// DefaultProfile returns the persisted default compression profile,
// falling back to the built-in default when preferences cannot be read.
func (s *PreferencesService) DefaultProfile() profile.Level {
	prefs, err := s.db.GetPreferences()
	if err != nil {
		return profile.DefaultLevel
	}

	level, err := profile.Parse(prefs.DefaultProfile)
	if err != nil {
		return profile.DefaultLevel
	}
	return level
}

// SetDefaultProfile persists a new default compression profile.
func (s *PreferencesService) SetDefaultProfile(level profile.Level) error {
	prefs, err := s.db.GetPreferences()
	if err != nil {
		return err
	}

	prefs.DefaultProfile = string(level)
	return s.db.UpdatePreferences(*prefs)
}

// UpdatePreferences replaces the stored preferences
func (s *PreferencesService) UpdatePreferences(data database.UserPreferencesData) error {
	return s.db.UpdatePreferences(data)
}
