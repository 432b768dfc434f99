package dataset

import (
	"time"

	"datadash/domain/core"
)

// Status values tracked loosely as free text on the dataset record.
const (
	StatusPending   = "Pending"
	StatusUploaded  = "uploaded"
	StatusProcessed = "Processed"
	StatusError     = "Error"
)

// Dataset is the identity record for an uploaded tabular file
type Dataset struct {
	ID            core.ID    `db:"id" json:"dataset_id"`
	Name          string     `db:"name" json:"name"`
	Filename      string     `db:"filename" json:"filename"`
	UploadDate    *time.Time `db:"upload_date" json:"upload_date"`
	TotalRows     int        `db:"total_rows" json:"total_rows"`
	ProcessedRows int        `db:"processed_rows" json:"processed_rows"`
	Status        string     `db:"status" json:"status"`
}

// InsightFact is one computed metric for one column of one dataset
type InsightFact struct {
	DatasetID   core.ID `db:"dataset_id" json:"-"`
	ColumnName  string  `db:"column_name" json:"column_name"`
	MetricName  string  `db:"metric_name" json:"metric_name"`
	MetricValue string  `db:"metric_value" json:"metric_value"`
}

// CleanedRow is one cleaned data row stored as JSON alongside the dataset
type CleanedRow struct {
	DatasetID core.ID `db:"dataset_id" json:"-"`
	RowData   []byte  `db:"row_data" json:"row_data"`
}

// Metric names emitted by the insight engine.
const (
	MetricMissingCount = "missing_count"
	MetricMean         = "mean"
	MetricStdDev       = "std_dev"
	MetricQ1           = "Q1"
	MetricQ2           = "Q2 (Median)"
	MetricQ3           = "Q3"
	MetricQ4           = "Q4 (Max)"
	MetricMode         = "mode"
)

// MetricOrder is the canonical display order for report rows. Metrics not in
// this list sort after all listed ones, keeping their encounter order.
var MetricOrder = []string{
	MetricMissingCount,
	MetricMean,
	MetricStdDev,
	MetricQ1,
	MetricQ2,
	MetricQ3,
	MetricQ4,
	MetricMode,
}

// MetricRank returns the canonical index of a metric name, or len(MetricOrder)
// for names outside the canonical set.
func MetricRank(name string) int {
	for i, m := range MetricOrder {
		if m == name {
			return i
		}
	}
	return len(MetricOrder)
}
