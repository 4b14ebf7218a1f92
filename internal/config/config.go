package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"pdfpress/internal/common"
)

// Config holds application configuration
type Config struct {
	WorkingDir   string
	AppDataDir   string
	DatabasePath string

	PreviewDPI     float64
	PreviewPages   int
	OptimizeOutput bool

	ListenAddr string

	Logger *slog.Logger
}

// New creates a new configuration instance
func New() *Config {
	cfg := &Config{
		PreviewDPI:     80,
		PreviewPages:   5,
		OptimizeOutput: true,
		ListenAddr:     ":8080",
		Logger:         slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}

	cfg.setupDirectories()

	return cfg
}

func (c *Config) setupDirectories() {
	// Working directory (temp files)
	c.WorkingDir = filepath.Join(os.TempDir(), "pdfpress")
	os.MkdirAll(c.WorkingDir, common.DefaultFilePermissions)

	// App data directory (database)
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	c.AppDataDir = filepath.Join(base, "pdfpress")
	os.MkdirAll(c.AppDataDir, common.DefaultFilePermissions)

	c.DatabasePath = filepath.Join(c.AppDataDir, "database.sqlite3")
}
