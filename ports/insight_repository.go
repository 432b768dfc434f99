package ports

import (
	"context"
	"encoding/json"

	"datadash/domain/core"
	"datadash/domain/dataset"
)

// InsightRepository persists computed insight facts. Replace semantics must be
// atomic: readers observe either the whole old fact set or the whole new one.
type InsightRepository interface {
	// ReplaceForDataset deletes all existing facts for the dataset and inserts
	// the new set within a single transaction
	ReplaceForDataset(ctx context.Context, id core.ID, facts []dataset.InsightFact) error

	// ListByDataset returns the facts in insertion order
	ListByDataset(ctx context.Context, id core.ID) ([]dataset.InsightFact, error)

	// CountByDataset returns the number of stored facts
	CountByDataset(ctx context.Context, id core.ID) (int, error)
}

// CleanedRowRepository exposes cleaned rows stored alongside a dataset
type CleanedRowRepository interface {
	ListByDataset(ctx context.Context, id core.ID) ([]json.RawMessage, error)
	CountByDataset(ctx context.Context, id core.ID) (int, error)
}
