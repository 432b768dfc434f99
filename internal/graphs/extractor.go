package graphs

import (
	"context"

	"golang.org/x/sync/errgroup"

	"datadash/domain/tabular"
)

// NumericColumnData holds the raw non-null values of a numeric column
type NumericColumnData struct {
	ColumnName string    `json:"column_name"`
	Values     []float64 `json:"values"`
}

// CategoricalColumnData holds the raw non-null values of a categorical column,
// coerced to text
type CategoricalColumnData struct {
	ColumnName string   `json:"column_name"`
	Values     []string `json:"values"`
}

// GraphData is the chart-ready numeric/categorical split of a table
type GraphData struct {
	Numeric     []NumericColumnData     `json:"numeric"`
	Categorical []CategoricalColumnData `json:"categorical"`
}

// Extractor produces raw per-column value arrays for client-side charting.
// No aggregation and no sampling: downstream charting owns binning and counts.
type Extractor struct{}

// NewExtractor creates a new graph data extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract splits a classified table into numeric and categorical column data,
// dropping nulls but preserving source row order within each column. Columns
// are independent, so extraction fans out per column into indexed slots.
func (e *Extractor) Extract(ctx context.Context, table *tabular.Table) (*GraphData, error) {
	numericIdx := make([]int, 0, len(table.Columns))
	categoricalIdx := make([]int, 0, len(table.Columns))
	for i := range table.Columns {
		if table.Columns[i].Kind == tabular.KindNumeric {
			numericIdx = append(numericIdx, i)
		} else {
			categoricalIdx = append(categoricalIdx, i)
		}
	}

	data := &GraphData{
		Numeric:     make([]NumericColumnData, len(numericIdx)),
		Categorical: make([]CategoricalColumnData, len(categoricalIdx)),
	}

	g, _ := errgroup.WithContext(ctx)
	for slot, colIdx := range numericIdx {
		slot, col := slot, &table.Columns[colIdx]
		g.Go(func() error {
			data.Numeric[slot] = NumericColumnData{
				ColumnName: col.Name,
				Values:     col.Floats(),
			}
			return nil
		})
	}
	for slot, colIdx := range categoricalIdx {
		slot, col := slot, &table.Columns[colIdx]
		g.Go(func() error {
			data.Categorical[slot] = CategoricalColumnData{
				ColumnName: col.Name,
				Values:     col.Strings(),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
