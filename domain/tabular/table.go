package tabular

import (
	"strconv"
	"strings"
)

// ColumnKind classifies a column as numeric or categorical
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// Cell is a single parsed value. Empty or absent source cells are null.
type Cell struct {
	Raw  string
	Null bool
}

// Column is a named series of cells in source row order
type Column struct {
	Name  string
	Kind  ColumnKind
	Cells []Cell
}

// Table is an in-memory column-oriented view of a tabular file
type Table struct {
	Columns  []Column
	RowCount int
}

// MissingCount returns the number of null cells in the column
func (c *Column) MissingCount() int {
	count := 0
	for _, cell := range c.Cells {
		if cell.Null {
			count++
		}
	}
	return count
}

// Floats returns the non-null cells parsed as float64, preserving row order.
// Only meaningful for numeric columns.
func (c *Column) Floats() []float64 {
	values := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Null {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell.Raw), 64)
		if err != nil {
			continue
		}
		values = append(values, v)
	}
	return values
}

// Strings returns the non-null cells coerced to text, preserving row order
func (c *Column) Strings() []string {
	values := make([]string, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Null {
			continue
		}
		values = append(values, cell.Raw)
	}
	return values
}

// ClassifyColumn decides numeric vs categorical from the parsed cells alone:
// a column is numeric when every non-null cell parses as a number. An all-null
// column classifies as numeric so its statistic battery is emitted as
// undefined rather than skipped.
func ClassifyColumn(cells []Cell) ColumnKind {
	for _, cell := range cells {
		if cell.Null {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(cell.Raw), 64); err != nil {
			return KindCategorical
		}
	}
	return KindNumeric
}

// Classify tags every column with its kind. Classification runs once per read
// and is shared by all consumers of the table.
func (t *Table) Classify() {
	for i := range t.Columns {
		t.Columns[i].Kind = ClassifyColumn(t.Columns[i].Cells)
	}
}
