package services

import (
	"path/filepath"
	"testing"

	"pdfpress/internal/database"
	"pdfpress/internal/profile"
)

func newTestService(t *testing.T) *PreferencesService {
	t.Helper()

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "test.sqlite3"))
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	return NewPreferencesService(db)
}

func TestDefaultProfileFallsBackToBalanced(t *testing.T) {
	service := newTestService(t)

	if level := service.DefaultProfile(); level != profile.Balanced {
		t.Errorf("DefaultProfile() = %q, want %q", level, profile.Balanced)
	}
}

func TestSetDefaultProfile(t *testing.T) {
	service := newTestService(t)

	if err := service.SetDefaultProfile(profile.HighQuality); err != nil {
		t.Fatalf("SetDefaultProfile: %v", err)
	}

	if level := service.DefaultProfile(); level != profile.HighQuality {
		t.Errorf("DefaultProfile() = %q, want %q", level, profile.HighQuality)
	}
}

func TestDefaultProfileIgnoresCorruptValue(t *testing.T) {
	service := newTestService(t)

	err := service.UpdatePreferences(database.UserPreferencesData{
		DefaultProfile: "turbo",
	})
	if err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}

	if level := service.DefaultProfile(); level != profile.Balanced {
		t.Errorf("DefaultProfile() = %q, want %q", level, profile.Balanced)
	}
}
