package report

import (
	"sort"

	"datadash/domain/core"
	"datadash/domain/dataset"
	"datadash/domain/report"
)

// Builder turns a dataset's stored facts into the structured report document
type Builder struct{}

// NewBuilder creates a new report builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Build groups facts by column (first-encounter order) and sorts each section's
// rows by the canonical metric order; unknown metrics keep their encounter
// order after the known ones. An empty fact list yields core.ErrNoInsights so
// callers never ship an empty report.
func (b *Builder) Build(ds *dataset.Dataset, facts []dataset.InsightFact) (*report.Document, error) {
	if len(facts) == 0 {
		return nil, core.ErrNoInsights
	}

	doc := &report.Document{
		Title:      ds.Name,
		Filename:   ds.Filename,
		DatasetID:  ds.ID.String(),
		UploadDate: "N/A",
	}
	if ds.UploadDate != nil {
		doc.UploadDate = ds.UploadDate.Format("2006-01-02 15:04:05")
	}

	sectionIdx := make(map[string]int)
	for _, fact := range facts {
		idx, ok := sectionIdx[fact.ColumnName]
		if !ok {
			idx = len(doc.Sections)
			sectionIdx[fact.ColumnName] = idx
			doc.Sections = append(doc.Sections, report.Section{Column: fact.ColumnName})
		}
		doc.Sections[idx].Rows = append(doc.Sections[idx].Rows, report.Row{
			Metric: fact.MetricName,
			Value:  fact.MetricValue,
		})
	}

	for i := range doc.Sections {
		rows := doc.Sections[i].Rows
		sort.SliceStable(rows, func(a, b int) bool {
			return dataset.MetricRank(rows[a].Metric) < dataset.MetricRank(rows[b].Metric)
		})
	}

	return doc, nil
}
