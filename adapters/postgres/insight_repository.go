package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"datadash/domain/core"
	"datadash/domain/dataset"
	"datadash/ports"
)

// insightRepository implements the InsightRepository interface
type insightRepository struct {
	db *sqlx.DB
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(db *sqlx.DB) ports.InsightRepository {
	return &insightRepository{db: db}
}

// ReplaceForDataset clears all existing facts for the dataset and inserts the
// new set. Both steps run inside one transaction so readers never observe a
// partial fact set or a mix of two generations.
func (r *insightRepository) ReplaceForDataset(ctx context.Context, id core.ID, facts []dataset.InsightFact) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dataset_insights WHERE dataset_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear previous insights: %w", err)
	}

	insert := `INSERT INTO dataset_insights (dataset_id, column_name, metric_name, metric_value)
		VALUES ($1, $2, $3, $4)`
	for _, fact := range facts {
		if _, err := tx.ExecContext(ctx, insert, id, fact.ColumnName, fact.MetricName, fact.MetricValue); err != nil {
			return fmt.Errorf("failed to insert insight: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insights: %w", err)
	}
	return nil
}

// ListByDataset returns the facts in insertion order
func (r *insightRepository) ListByDataset(ctx context.Context, id core.ID) ([]dataset.InsightFact, error) {
	query := `SELECT dataset_id, column_name, metric_name, metric_value
		FROM dataset_insights WHERE dataset_id = $1 ORDER BY id`

	var facts []dataset.InsightFact
	if err := r.db.SelectContext(ctx, &facts, query, id); err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	return facts, nil
}

// CountByDataset returns the number of stored facts
func (r *insightRepository) CountByDataset(ctx context.Context, id core.ID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM dataset_insights WHERE dataset_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to count insights: %w", err)
	}
	return count, nil
}

// cleanedRowRepository implements the CleanedRowRepository interface
type cleanedRowRepository struct {
	db *sqlx.DB
}

// NewCleanedRowRepository creates a new cleaned row repository
func NewCleanedRowRepository(db *sqlx.DB) ports.CleanedRowRepository {
	return &cleanedRowRepository{db: db}
}

// ListByDataset returns the cleaned rows in insertion order
func (r *cleanedRowRepository) ListByDataset(ctx context.Context, id core.ID) ([]json.RawMessage, error) {
	query := `SELECT row_data FROM dataset_cleaned WHERE dataset_id = $1 ORDER BY id`

	var rows []json.RawMessage
	if err := r.db.SelectContext(ctx, &rows, query, id); err != nil {
		return nil, fmt.Errorf("failed to list cleaned rows: %w", err)
	}
	return rows, nil
}

// CountByDataset returns the number of cleaned rows
func (r *cleanedRowRepository) CountByDataset(ctx context.Context, id core.ID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM dataset_cleaned WHERE dataset_id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to count cleaned rows: %w", err)
	}
	return count, nil
}
