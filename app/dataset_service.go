package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"datadash/domain/core"
	"datadash/domain/dataset"
	"datadash/ports"
)

// DatasetSummary is a dataset identity with counts derived at read time
type DatasetSummary struct {
	dataset.Dataset
	CleanedRowsCount int `json:"cleaned_rows_count"`
	InsightsCount    int `json:"insights_count"`
}

// DatasetDetail is a dataset identity with its full fact and cleaned-row detail
type DatasetDetail struct {
	dataset.Dataset
	CleanedRows []json.RawMessage     `json:"cleaned_rows"`
	Insights    []dataset.InsightFact `json:"insights"`
}

// DatasetService handles dataset registration and lookup
type DatasetService struct {
	datasets ports.DatasetRepository
	insights ports.InsightRepository
	cleaned  ports.CleanedRowRepository
	store    ports.FileStore
	reader   ports.TableReader
}

// NewDatasetService creates a new dataset service
func NewDatasetService(
	datasets ports.DatasetRepository,
	insights ports.InsightRepository,
	cleaned ports.CleanedRowRepository,
	store ports.FileStore,
	reader ports.TableReader,
) *DatasetService {
	return &DatasetService{
		datasets: datasets,
		insights: insights,
		cleaned:  cleaned,
		store:    store,
		reader:   reader,
	}
}

// Register saves an uploaded file and creates its dataset record. Only CSV and
// XLSX uploads are accepted; the saved file is read back once to establish the
// row count.
func (s *DatasetService) Register(ctx context.Context, filename string, data []byte) (*dataset.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".csv" && ext != ".xlsx" {
		return nil, fmt.Errorf("%w: %s", core.ErrInvalidUpload, filename)
	}

	storedName, err := s.store.Save(filename, data)
	if err != nil {
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	table, err := s.reader.Read(s.store.Path(storedName))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ds := &dataset.Dataset{
		ID:         core.NewID(),
		Name:       strings.TrimSuffix(storedName, ext),
		Filename:   storedName,
		UploadDate: &now,
		TotalRows:  table.RowCount,
		Status:     dataset.StatusUploaded,
	}
	if err := s.datasets.Create(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// List returns all datasets with their derived counts
func (s *DatasetService) List(ctx context.Context) ([]DatasetSummary, error) {
	records, err := s.datasets.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]DatasetSummary, 0, len(records))
	for _, ds := range records {
		insightCount, err := s.insights.CountByDataset(ctx, ds.ID)
		if err != nil {
			return nil, err
		}
		cleanedCount, err := s.cleaned.CountByDataset(ctx, ds.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, DatasetSummary{
			Dataset:          *ds,
			CleanedRowsCount: cleanedCount,
			InsightsCount:    insightCount,
		})
	}
	return summaries, nil
}

// Get returns one dataset with full fact and cleaned-row detail
func (s *DatasetService) Get(ctx context.Context, id core.ID) (*DatasetDetail, error) {
	ds, err := s.datasets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	facts, err := s.insights.ListByDataset(ctx, id)
	if err != nil {
		return nil, err
	}
	cleanedRows, err := s.cleaned.ListByDataset(ctx, id)
	if err != nil {
		return nil, err
	}

	return &DatasetDetail{
		Dataset:     *ds,
		CleanedRows: cleanedRows,
		Insights:    facts,
	}, nil
}
