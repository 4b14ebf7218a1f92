package application

import (
	"fmt"
	"os"
	"path/filepath"

	"pdfpress/internal/common"
	"pdfpress/internal/compression"
)

// SaveCompressed writes output bytes to path, creating parent directories.
func SaveCompressed(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), common.DefaultFilePermissions); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SavePreviews writes preview pairs into dir as PNG files, two per page.
func SavePreviews(dir string, pairs []compression.PreviewPair) error {
	if err := os.MkdirAll(dir, common.DefaultFilePermissions); err != nil {
		return err
	}

	for _, pair := range pairs {
		origPath := filepath.Join(dir, fmt.Sprintf("page-%d-original.png", pair.Index+1))
		if err := os.WriteFile(origPath, pair.Original, 0644); err != nil {
			return err
		}
		compPath := filepath.Join(dir, fmt.Sprintf("page-%d-compressed.png", pair.Index+1))
		if err := os.WriteFile(compPath, pair.Compressed, 0644); err != nil {
			return err
		}
	}

	return nil
}
