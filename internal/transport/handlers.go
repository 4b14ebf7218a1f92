package transport

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pdfpress/internal/application"
	"pdfpress/internal/compression"
)

func (s *Server) handleCompress(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file upload")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file upload")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file upload")
	}

	fileResult, result, err := s.compressor.Compress(c.Request().Context(), application.CompressionRequest{
		Filename: fileHeader.Filename,
		Data:     data,
		Profile:  c.FormValue("profile"),
	})
	if err != nil {
		return s.compressError(err)
	}

	s.results.put(fileResult.ResultID, storedResult{
		filename: fileResult.CompressedFilename,
		output:   result.Output,
		previews: result.Previews,
	})

	return c.JSON(http.StatusOK, CompressResponse{
		FileResult:  *fileResult,
		DownloadURL: fmt.Sprintf("/api/results/%s/download", fileResult.ResultID),
	})
}

func (s *Server) handleDownload(c echo.Context) error {
	stored, ok := s.results.get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown result id")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, stored.filename))
	return c.Blob(http.StatusOK, "application/pdf", stored.output)
}

func (s *Server) handlePreview(c echo.Context) error {
	stored, ok := s.results.get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown result id")
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 || index >= len(stored.previews) {
		return echo.NewHTTPError(http.StatusNotFound, "preview index out of range")
	}

	pair := stored.previews[index]
	switch c.Param("variant") {
	case "original":
		return c.Blob(http.StatusOK, "image/png", pair.Original)
	case "compressed":
		return c.Blob(http.StatusOK, "image/png", pair.Compressed)
	default:
		return echo.NewHTTPError(http.StatusNotFound, "unknown preview variant")
	}
}

// compressError maps pipeline failures onto HTTP status codes.
func (s *Server) compressError(err error) error {
	var inputErr *compression.InputError
	if errors.As(err, &inputErr) {
		return echo.NewHTTPError(http.StatusBadRequest, inputErr.Error())
	}
	if errors.Is(err, application.ErrInvalidProfile) || errors.Is(err, application.ErrNoFileProvided) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var renderErr *compression.PageRenderError
	if errors.As(err, &renderErr) {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, renderErr.Error())
	}

	s.logger.Error("compression request failed", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "compression failed")
}
