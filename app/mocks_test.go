package app

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"datadash/domain/core"
	"datadash/domain/dataset"
	"datadash/domain/report"
	"datadash/domain/tabular"
)

// Mock implementations for testing

type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) Create(ctx context.Context, ds *dataset.Dataset) error {
	args := m.Called(ctx, ds)
	return args.Error(0)
}

func (m *MockDatasetRepository) GetByID(ctx context.Context, id core.ID) (*dataset.Dataset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.Dataset), args.Error(1)
}

func (m *MockDatasetRepository) List(ctx context.Context) ([]*dataset.Dataset, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*dataset.Dataset), args.Error(1)
}

func (m *MockDatasetRepository) UpdateProcessingState(ctx context.Context, id core.ID, processedRows int, status string) error {
	args := m.Called(ctx, id, processedRows, status)
	return args.Error(0)
}

type MockInsightRepository struct {
	mock.Mock
	stored []dataset.InsightFact
}

func (m *MockInsightRepository) ReplaceForDataset(ctx context.Context, id core.ID, facts []dataset.InsightFact) error {
	args := m.Called(ctx, id, facts)
	m.stored = facts
	return args.Error(0)
}

func (m *MockInsightRepository) ListByDataset(ctx context.Context, id core.ID) ([]dataset.InsightFact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]dataset.InsightFact), args.Error(1)
}

func (m *MockInsightRepository) CountByDataset(ctx context.Context, id core.ID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockCleanedRowRepository struct {
	mock.Mock
}

func (m *MockCleanedRowRepository) ListByDataset(ctx context.Context, id core.ID) ([]json.RawMessage, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

func (m *MockCleanedRowRepository) CountByDataset(ctx context.Context, id core.ID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(name string, data []byte) (string, error) {
	args := m.Called(name, data)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Exists(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

func (m *MockFileStore) Path(name string) string {
	args := m.Called(name)
	return args.String(0)
}

func (m *MockFileStore) Read(name string) ([]byte, error) {
	args := m.Called(name)
	return args.Get(0).([]byte), args.Error(1)
}

type MockTableReader struct {
	mock.Mock
}

func (m *MockTableReader) Read(path string) (*tabular.Table, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tabular.Table), args.Error(1)
}

type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) Render(doc *report.Document, path string) error {
	args := m.Called(doc, path)
	return args.Error(0)
}

// testTable builds a small classified table for service tests
func testTable() *tabular.Table {
	cells := func(values ...string) []tabular.Cell {
		out := make([]tabular.Cell, len(values))
		for i, v := range values {
			out[i] = tabular.Cell{Raw: v, Null: v == ""}
		}
		return out
	}
	table := &tabular.Table{
		Columns: []tabular.Column{
			{Name: "age", Cells: cells("30", "41", "")},
			{Name: "city", Cells: cells("Oslo", "Lima", "Pune")},
		},
		RowCount: 3,
	}
	table.Classify()
	return table
}
