package insights

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"datadash/domain/core"
	"datadash/domain/dataset"
	"datadash/domain/tabular"
)

// Fact is one computed metric for one column, still carrying its typed value.
// Serialization to text happens only when facts cross the persistence boundary.
type Fact struct {
	Column string
	Metric string
	Value  dataset.MetricValue
}

// Engine computes the fixed statistic battery for a classified table
type Engine struct{}

// NewEngine creates a new insight engine
func NewEngine() *Engine {
	return &Engine{}
}

// Compute produces the flat ordered fact list for a table. Every column emits
// missing_count; numeric columns additionally emit mean, std_dev, the four
// interpolated quantiles, and mode, in that order. Columns with no usable
// values emit the undefined sentinel instead of failing the whole run.
func (e *Engine) Compute(table *tabular.Table) []Fact {
	facts := make([]Fact, 0, len(table.Columns)*len(dataset.MetricOrder))

	for i := range table.Columns {
		col := &table.Columns[i]

		facts = append(facts, Fact{
			Column: col.Name,
			Metric: dataset.MetricMissingCount,
			Value:  dataset.Count(col.MissingCount()),
		})

		if col.Kind != tabular.KindNumeric {
			continue
		}

		facts = append(facts, e.numericBattery(col)...)
	}

	return facts
}

// numericBattery computes the numeric metrics for one column
func (e *Engine) numericBattery(col *tabular.Column) []Fact {
	values := col.Floats()

	battery := []Fact{
		{Column: col.Name, Metric: dataset.MetricMean, Value: meanOf(values)},
		{Column: col.Name, Metric: dataset.MetricStdDev, Value: stdDevOf(values)},
	}

	quantiles := quantilesOf(values)
	qMetrics := []string{dataset.MetricQ1, dataset.MetricQ2, dataset.MetricQ3, dataset.MetricQ4}
	for i, metric := range qMetrics {
		battery = append(battery, Fact{Column: col.Name, Metric: metric, Value: quantiles[i]})
	}

	battery = append(battery, Fact{Column: col.Name, Metric: dataset.MetricMode, Value: modeOf(values)})
	return battery
}

func meanOf(values []float64) dataset.MetricValue {
	if len(values) == 0 {
		return dataset.Undefined()
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return dataset.Undefined()
	}
	return dataset.Numeric(mean)
}

// stdDevOf uses the sample (n-1) convention. A single observation has no
// spread estimate and yields the undefined sentinel.
func stdDevOf(values []float64) dataset.MetricValue {
	if len(values) < 2 {
		return dataset.Undefined()
	}
	sd, err := stats.StandardDeviationSample(values)
	if err != nil {
		return dataset.Undefined()
	}
	return dataset.Numeric(sd)
}

// quantilesOf returns the 0.25, 0.50, 0.75 and 1.00 quantiles via linear
// interpolation between order statistics. The stats library's percentile
// methods use nearest-rank conventions, so the interpolation is computed here
// directly.
func quantilesOf(values []float64) [4]dataset.MetricValue {
	var result [4]dataset.MetricValue
	if len(values) == 0 {
		for i := range result {
			result[i] = dataset.Undefined()
		}
		return result
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	for i, q := range []float64{0.25, 0.50, 0.75, 1.00} {
		result[i] = dataset.Numeric(interpolatedQuantile(sorted, q))
	}
	return result
}

// interpolatedQuantile expects sorted non-empty input
func interpolatedQuantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// modeOf returns the most frequent value. Ties resolve to the smallest tied
// candidate; when every value is unique the smallest value wins, keeping the
// result reproducible.
func modeOf(values []float64) dataset.MetricValue {
	if len(values) == 0 {
		return dataset.Undefined()
	}
	modes, err := stats.Mode(values)
	if err != nil {
		return dataset.Undefined()
	}
	if len(modes) > 0 {
		// stats.Mode reports tied candidates in ascending order
		return dataset.Numeric(modes[0])
	}
	min, err := stats.Min(values)
	if err != nil {
		return dataset.Undefined()
	}
	return dataset.Numeric(min)
}

// Serialize converts typed facts into persistable insight rows for a dataset
func Serialize(datasetID core.ID, facts []Fact) []dataset.InsightFact {
	rows := make([]dataset.InsightFact, 0, len(facts))
	for _, f := range facts {
		rows = append(rows, dataset.InsightFact{
			DatasetID:   datasetID,
			ColumnName:  f.Column,
			MetricName:  f.Metric,
			MetricValue: f.Value.String(),
		})
	}
	return rows
}
