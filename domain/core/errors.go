package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound           = errors.New("resource not found")
	ErrDatasetNotFound    = fmt.Errorf("%w: dataset", ErrNotFound)
	ErrDatasetFileMissing = errors.New("dataset file missing from storage")

	// Ingestion errors
	ErrUnreadableFile = errors.New("file could not be parsed as tabular data")
	ErrInvalidUpload  = errors.New("unsupported upload file type")

	// Reporting errors
	ErrNoInsights       = errors.New("no insights available for dataset")
	ErrRenderingFailure = errors.New("report rendering failed")
)

// NewNotFoundError builds a not-found error carrying the resource id
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// NewUnreadableFileError wraps a parse failure, preserving the cause for diagnostics
func NewUnreadableFileError(path string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, cause)
}

// IsNotFoundError reports whether err is a not-found domain error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
