package transport

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server exposes the compression pipeline over HTTP: multipart upload in,
// metrics JSON out, with download and preview endpoints for the artifacts.
type Server struct {
	echo       *echo.Echo
	compressor Compressor
	results    *resultStore
	logger     *slog.Logger
}

// NewServer creates a new HTTP server around a compressor.
func NewServer(compressor Compressor, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:       e,
		compressor: compressor,
		results:    newResultStore(),
		logger:     logger,
	}

	e.POST("/api/compress", s.handleCompress)
	e.GET("/api/results/:id/download", s.handleDownload)
	e.GET("/api/results/:id/previews/:index/:variant", s.handlePreview)

	return s
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.echo.Start(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
