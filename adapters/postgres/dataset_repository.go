package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"datadash/domain/core"
	"datadash/domain/dataset"
	"datadash/ports"
)

// datasetRepository implements the DatasetRepository interface
type datasetRepository struct {
	db *sqlx.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sqlx.DB) ports.DatasetRepository {
	return &datasetRepository{db: db}
}

// Create inserts a new dataset into the database
func (r *datasetRepository) Create(ctx context.Context, ds *dataset.Dataset) error {
	query := `INSERT INTO datasets (
		id, name, filename, upload_date, total_rows, processed_rows, status
	) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		ds.ID, ds.Name, ds.Filename, ds.UploadDate, ds.TotalRows, ds.ProcessedRows, ds.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create dataset: %w", err)
	}
	return nil
}

// GetByID retrieves a dataset by its ID
func (r *datasetRepository) GetByID(ctx context.Context, id core.ID) (*dataset.Dataset, error) {
	query := `SELECT id, name, filename, upload_date,
		COALESCE(total_rows, 0) as total_rows,
		COALESCE(processed_rows, 0) as processed_rows,
		COALESCE(status, '') as status
	FROM datasets WHERE id = $1`

	var ds dataset.Dataset
	err := r.db.GetContext(ctx, &ds, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrDatasetNotFound
		}
		return nil, fmt.Errorf("failed to get dataset: %w", err)
	}
	return &ds, nil
}

// List returns all datasets in upload order
func (r *datasetRepository) List(ctx context.Context) ([]*dataset.Dataset, error) {
	query := `SELECT id, name, filename, upload_date,
		COALESCE(total_rows, 0) as total_rows,
		COALESCE(processed_rows, 0) as processed_rows,
		COALESCE(status, '') as status
	FROM datasets ORDER BY upload_date, id`

	var datasets []*dataset.Dataset
	if err := r.db.SelectContext(ctx, &datasets, query); err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	return datasets, nil
}

// UpdateProcessingState records the outcome of a processing step
func (r *datasetRepository) UpdateProcessingState(ctx context.Context, id core.ID, processedRows int, status string) error {
	query := `UPDATE datasets SET processed_rows = $2, status = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, processedRows, status)
	if err != nil {
		return fmt.Errorf("failed to update dataset state: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return core.ErrDatasetNotFound
	}
	return nil
}
