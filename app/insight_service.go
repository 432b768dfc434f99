package app

import (
	"context"
	"fmt"
	"log"

	"datadash/domain/core"
	"datadash/domain/dataset"
	"datadash/internal/insights"
	"datadash/ports"
)

// GenerationResult summarizes one insight-generation run
type GenerationResult struct {
	DatasetID     core.ID `json:"dataset_id"`
	Filename      string  `json:"filename"`
	InsightsCount int     `json:"insights_count"`
	Message       string  `json:"message"`
}

// InsightService runs the read-classify-compute-persist pipeline
type InsightService struct {
	datasets ports.DatasetRepository
	insights ports.InsightRepository
	store    ports.FileStore
	reader   ports.TableReader
	engine   *insights.Engine
}

// NewInsightService creates a new insight service
func NewInsightService(
	datasets ports.DatasetRepository,
	insightRepo ports.InsightRepository,
	store ports.FileStore,
	reader ports.TableReader,
	engine *insights.Engine,
) *InsightService {
	return &InsightService{
		datasets: datasets,
		insights: insightRepo,
		store:    store,
		reader:   reader,
		engine:   engine,
	}
}

// Generate recomputes and stores the full fact set for a dataset. The previous
// set is replaced atomically; on a missing or unreadable backing file the
// dataset is marked Error and the failure propagates.
func (s *InsightService) Generate(ctx context.Context, id core.ID) (*GenerationResult, error) {
	ds, err := s.datasets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.store.Exists(ds.Filename) {
		s.markError(ctx, ds)
		return nil, fmt.Errorf("%w: %s", core.ErrDatasetFileMissing, ds.Filename)
	}

	table, err := s.reader.Read(s.store.Path(ds.Filename))
	if err != nil {
		s.markError(ctx, ds)
		return nil, err
	}

	facts := insights.Serialize(ds.ID, s.engine.Compute(table))
	if err := s.insights.ReplaceForDataset(ctx, ds.ID, facts); err != nil {
		return nil, err
	}

	if err := s.datasets.UpdateProcessingState(ctx, ds.ID, table.RowCount, dataset.StatusProcessed); err != nil {
		return nil, err
	}

	return &GenerationResult{
		DatasetID:     ds.ID,
		Filename:      ds.Filename,
		InsightsCount: len(facts),
		Message:       "Insights generated successfully with quartiles, mode, and std deviation",
	}, nil
}

func (s *InsightService) markError(ctx context.Context, ds *dataset.Dataset) {
	if err := s.datasets.UpdateProcessingState(ctx, ds.ID, ds.ProcessedRows, dataset.StatusError); err != nil {
		log.Printf("[InsightService] Failed to mark dataset %s as errored: %v", ds.ID, err)
	}
}
