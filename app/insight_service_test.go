package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"datadash/domain/core"
	"datadash/domain/dataset"
	"datadash/internal/insights"
)

func newInsightFixture() (*InsightService, *MockDatasetRepository, *MockInsightRepository, *MockFileStore, *MockTableReader) {
	datasets := &MockDatasetRepository{}
	insightRepo := &MockInsightRepository{}
	store := &MockFileStore{}
	reader := &MockTableReader{}
	service := NewInsightService(datasets, insightRepo, store, reader, insights.NewEngine())
	return service, datasets, insightRepo, store, reader
}

func TestGenerate_ComputesAndReplaces(t *testing.T) {
	service, datasets, insightRepo, store, reader := newInsightFixture()
	ctx := context.Background()

	ds := &dataset.Dataset{ID: "ds-1", Filename: "data.csv", Status: dataset.StatusUploaded}
	datasets.On("GetByID", ctx, core.ID("ds-1")).Return(ds, nil)
	store.On("Exists", "data.csv").Return(true)
	store.On("Path", "data.csv").Return("/uploads/data.csv")
	reader.On("Read", "/uploads/data.csv").Return(testTable(), nil)
	insightRepo.On("ReplaceForDataset", ctx, core.ID("ds-1"), mock.Anything).Return(nil)
	datasets.On("UpdateProcessingState", ctx, core.ID("ds-1"), 3, dataset.StatusProcessed).Return(nil)

	result, err := service.Generate(ctx, "ds-1")
	assert.NoError(t, err)

	// numeric column: missing_count + 7 battery metrics; categorical: missing_count only
	assert.Equal(t, 9, result.InsightsCount)
	assert.Equal(t, core.ID("ds-1"), result.DatasetID)
	assert.Equal(t, "data.csv", result.Filename)
	assert.Len(t, insightRepo.stored, 9)
	insightRepo.AssertNumberOfCalls(t, "ReplaceForDataset", 1)
	datasets.AssertCalled(t, "UpdateProcessingState", ctx, core.ID("ds-1"), 3, dataset.StatusProcessed)
}

func TestGenerate_IdempotentUnderStableInput(t *testing.T) {
	service, datasets, insightRepo, store, reader := newInsightFixture()
	ctx := context.Background()

	ds := &dataset.Dataset{ID: "ds-1", Filename: "data.csv"}
	datasets.On("GetByID", ctx, core.ID("ds-1")).Return(ds, nil)
	store.On("Exists", "data.csv").Return(true)
	store.On("Path", "data.csv").Return("/uploads/data.csv")
	reader.On("Read", "/uploads/data.csv").Return(testTable(), nil)
	insightRepo.On("ReplaceForDataset", ctx, core.ID("ds-1"), mock.Anything).Return(nil)
	datasets.On("UpdateProcessingState", ctx, core.ID("ds-1"), 3, dataset.StatusProcessed).Return(nil)

	first, err := service.Generate(ctx, "ds-1")
	assert.NoError(t, err)
	firstFacts := append([]dataset.InsightFact(nil), insightRepo.stored...)

	second, err := service.Generate(ctx, "ds-1")
	assert.NoError(t, err)

	assert.Equal(t, first.InsightsCount, second.InsightsCount)
	assert.Equal(t, firstFacts, insightRepo.stored)
}

func TestGenerate_DatasetNotFound(t *testing.T) {
	service, datasets, _, _, _ := newInsightFixture()
	ctx := context.Background()

	datasets.On("GetByID", ctx, core.ID("ghost")).Return(nil, core.ErrDatasetNotFound)

	_, err := service.Generate(ctx, "ghost")
	assert.ErrorIs(t, err, core.ErrDatasetNotFound)
}

func TestGenerate_FileMissingMarksError(t *testing.T) {
	service, datasets, _, store, _ := newInsightFixture()
	ctx := context.Background()

	ds := &dataset.Dataset{ID: "ds-1", Filename: "gone.csv", ProcessedRows: 2}
	datasets.On("GetByID", ctx, core.ID("ds-1")).Return(ds, nil)
	store.On("Exists", "gone.csv").Return(false)
	datasets.On("UpdateProcessingState", ctx, core.ID("ds-1"), 2, dataset.StatusError).Return(nil)

	_, err := service.Generate(ctx, "ds-1")
	assert.ErrorIs(t, err, core.ErrDatasetFileMissing)
	datasets.AssertCalled(t, "UpdateProcessingState", ctx, core.ID("ds-1"), 2, dataset.StatusError)
}

func TestGenerate_UnreadableFileMarksError(t *testing.T) {
	service, datasets, _, store, reader := newInsightFixture()
	ctx := context.Background()

	ds := &dataset.Dataset{ID: "ds-1", Filename: "bad.csv"}
	datasets.On("GetByID", ctx, core.ID("ds-1")).Return(ds, nil)
	store.On("Exists", "bad.csv").Return(true)
	store.On("Path", "bad.csv").Return("/uploads/bad.csv")
	reader.On("Read", "/uploads/bad.csv").Return(nil, core.NewUnreadableFileError("/uploads/bad.csv", assert.AnError))
	datasets.On("UpdateProcessingState", ctx, core.ID("ds-1"), 0, dataset.StatusError).Return(nil)

	_, err := service.Generate(ctx, "ds-1")
	assert.ErrorIs(t, err, core.ErrUnreadableFile)
	datasets.AssertCalled(t, "UpdateProcessingState", ctx, core.ID("ds-1"), 0, dataset.StatusError)
}
