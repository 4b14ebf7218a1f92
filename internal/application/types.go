package application

// CompressionRequest is one document plus a profile selection. Profile may
// be empty, in which case the persisted default applies.
type CompressionRequest struct {
	Filename string
	Data     []byte
	Profile  string
}

// FileResult summarizes one completed run for callers and transports. The
// output bytes and previews live on the accompanying compression.Result.
type FileResult struct {
	ResultID           string  `json:"result_id"`
	OriginalFilename   string  `json:"original_filename"`
	CompressedFilename string  `json:"compressed_filename"`
	Profile            string  `json:"profile"`
	OriginalSize       int64   `json:"original_size"`
	CompressedSize     int64   `json:"compressed_size"`
	ReductionPercent   float64 `json:"reduction_percent"`
	PageCount          int     `json:"page_count"`
	PreviewCount       int     `json:"preview_count"`
	PreviewWarning     string  `json:"preview_warning,omitempty"`
}

// AppStats tracks application statistics
type AppStats struct {
	TotalFilesCompressed   int64 `json:"total_files_compressed"`
	TotalDataSaved         int64 `json:"total_data_saved"`
	SessionFilesCompressed int   `json:"session_files_compressed"`
	SessionDataSaved       int64 `json:"session_data_saved"`
}
