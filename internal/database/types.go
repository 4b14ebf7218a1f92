package database

import (
	"encoding/json"
	"time"

	"pdfpress/internal/common"
)

// UserPreferences database model
type UserPreferences struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	PreferencesJSON string    `gorm:"type:text" json:"preferences_json"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserPreferencesData represents user preferences data
type UserPreferencesData struct {
	DefaultProfile   string `json:"default_profile"`
	GeneratePreviews bool   `json:"generate_previews"`
	OptimizeOutput   bool   `json:"optimize_output"`
}

// DefaultPreferences returns default user preferences
func DefaultPreferences() UserPreferencesData {
	return UserPreferencesData{
		DefaultProfile:   common.DefaultProfileLevel,
		GeneratePreviews: true,
		OptimizeOutput:   true,
	}
}

// GetPreferences returns the user preferences data
func (up *UserPreferences) GetPreferences() UserPreferencesData {
	if up.PreferencesJSON == "" {
		return DefaultPreferences()
	}

	var prefs UserPreferencesData
	if err := json.Unmarshal([]byte(up.PreferencesJSON), &prefs); err != nil {
		return DefaultPreferences()
	}

	return prefs
}

// SetPreferences sets the user preferences data
func (up *UserPreferences) SetPreferences(prefs UserPreferencesData) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	up.PreferencesJSON = string(data)
	return nil
}

// CompressionRecord is one completed compression run.
type CompressionRecord struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	Filename         string    `json:"filename"`
	Profile          string    `json:"profile"`
	OriginalSize     int64     `json:"original_size"`
	CompressedSize   int64     `json:"compressed_size"`
	ReductionPercent float64   `json:"reduction_percent"`
	PageCount        int       `json:"page_count"`
	CreatedAt        time.Time `json:"created_at"`
}
