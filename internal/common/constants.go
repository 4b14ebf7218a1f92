package common

const (
	// Compression constants
	DefaultProfileLevel  = "balanced"
	CompressedFilePrefix = "compressed_"

	// File operation constants
	DefaultFilePermissions = 0755
)
