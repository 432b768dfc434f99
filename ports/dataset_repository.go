package ports

import (
	"context"

	"datadash/domain/core"
	"datadash/domain/dataset"
)

// DatasetRepository defines the interface for dataset identity persistence
type DatasetRepository interface {
	// Create inserts a new dataset record
	Create(ctx context.Context, ds *dataset.Dataset) error

	// GetByID retrieves a dataset or core.ErrDatasetNotFound
	GetByID(ctx context.Context, id core.ID) (*dataset.Dataset, error)

	// List returns all dataset records
	List(ctx context.Context) ([]*dataset.Dataset, error)

	// UpdateProcessingState records the outcome of a processing step
	UpdateProcessingState(ctx context.Context, id core.ID, processedRows int, status string) error
}
