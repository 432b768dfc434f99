package app

import (
	"context"
	"fmt"

	"datadash/domain/core"
	"datadash/internal/graphs"
	"datadash/ports"
)

// GraphService serves chart-ready raw column data for a dataset
type GraphService struct {
	datasets  ports.DatasetRepository
	store     ports.FileStore
	reader    ports.TableReader
	extractor *graphs.Extractor
}

// NewGraphService creates a new graph service
func NewGraphService(
	datasets ports.DatasetRepository,
	store ports.FileStore,
	reader ports.TableReader,
	extractor *graphs.Extractor,
) *GraphService {
	return &GraphService{
		datasets:  datasets,
		store:     store,
		reader:    reader,
		extractor: extractor,
	}
}

// GraphData reads the dataset's file fresh and returns the numeric/categorical
// split for client-side charting
func (s *GraphService) GraphData(ctx context.Context, id core.ID) (*graphs.GraphData, error) {
	ds, err := s.datasets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.store.Exists(ds.Filename) {
		return nil, fmt.Errorf("%w: %s", core.ErrDatasetFileMissing, ds.Filename)
	}

	table, err := s.reader.Read(s.store.Path(ds.Filename))
	if err != nil {
		return nil, err
	}

	return s.extractor.Extract(ctx, table)
}
