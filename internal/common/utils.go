package common

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
)

// GenerateUUID generates a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// CompressedFilename derives the output artifact name from the input name.
func CompressedFilename(original string) string {
	return CompressedFilePrefix + filepath.Base(original)
}

// HumanSize returns a human-readable byte count.
func HumanSize(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	}
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}
