package ports

import (
	"datadash/domain/report"
	"datadash/domain/tabular"
)

// TableReader loads a tabular file into an in-memory, classified table
type TableReader interface {
	// Read parses the file at path; failures surface as core.ErrUnreadableFile
	Read(path string) (*tabular.Table, error)
}

// FileStore abstracts the upload directory
type FileStore interface {
	// Save writes data under name, resolving collisions with a numeric suffix
	// before the extension, and returns the stored name
	Save(name string, data []byte) (string, error)

	// Exists reports whether a stored file is present
	Exists(name string) bool

	// Path returns the absolute path of a stored file
	Path(name string) string

	// Read returns the contents of a stored file
	Read(name string) ([]byte, error)
}

// ReportRenderer materializes a structured report document at path
type ReportRenderer interface {
	Render(doc *report.Document, path string) error
}
