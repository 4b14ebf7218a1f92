package application

import (
	"errors"
	"fmt"
)

// Application error types
var (
	ErrNoFileProvided = errors.New("no file provided for compression")
	ErrInvalidProfile = errors.New("invalid compression profile")
)

// CompressionError represents compression-specific errors
type CompressionError struct {
	Operation string
	Filename  string
	Err       error
}

func (e *CompressionError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("compression %s failed for file %s: %v", e.Operation, e.Filename, e.Err)
	}
	return fmt.Sprintf("compression %s failed: %v", e.Operation, e.Err)
}

func (e *CompressionError) Unwrap() error {
	return e.Err
}

// NewCompressionError creates a new compression error
func NewCompressionError(operation, filename string, err error) *CompressionError {
	return &CompressionError{
		Operation: operation,
		Filename:  filename,
		Err:       err,
	}
}
