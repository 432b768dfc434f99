package migration

import (
	"context"

	"datadash/internal/errors"

	"github.com/jmoiron/sqlx"
)

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createDatasetsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create datasets table")
	}

	if err := r.createInsightsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create dataset_insights table")
	}

	if err := r.createCleanedTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create dataset_cleaned table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	return nil
}

func (r *MigrationRunner) createDatasetsTable(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS datasets (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			filename VARCHAR(255) NOT NULL,
			upload_date TIMESTAMPTZ DEFAULT NOW(),
			total_rows INTEGER DEFAULT 0,
			processed_rows INTEGER DEFAULT 0,
			status VARCHAR(50) DEFAULT 'Pending'
		)`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createInsightsTable(ctx context.Context, db *sqlx.DB) error {
	// bigserial pk preserves insertion order for ordered fact reads
	query := `
		CREATE TABLE IF NOT EXISTS dataset_insights (
			id BIGSERIAL PRIMARY KEY,
			dataset_id UUID NOT NULL REFERENCES datasets(id),
			column_name VARCHAR(255) NOT NULL,
			metric_name VARCHAR(50) NOT NULL,
			metric_value VARCHAR(255)
		)`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createCleanedTable(ctx context.Context, db *sqlx.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS dataset_cleaned (
			id BIGSERIAL PRIMARY KEY,
			dataset_id UUID NOT NULL REFERENCES datasets(id),
			row_data JSONB
		)`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_dataset_insights_dataset_id ON dataset_insights(dataset_id)`,
		`CREATE INDEX IF NOT EXISTS idx_dataset_cleaned_dataset_id ON dataset_cleaned(dataset_id)`,
	}
	for _, query := range indexes {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
