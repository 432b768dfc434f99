package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"datadash/domain/core"
	"datadash/internal/report"
	"datadash/ports"
)

// GeneratedReport points at a rendered report file
type GeneratedReport struct {
	Path         string
	DownloadName string
}

// ReportService builds report documents and hands them to the rendering sink
type ReportService struct {
	datasets   ports.DatasetRepository
	insights   ports.InsightRepository
	builder    *report.Builder
	renderer   ports.ReportRenderer
	reportsDir string
}

// NewReportService creates a new report service
func NewReportService(
	datasets ports.DatasetRepository,
	insights ports.InsightRepository,
	builder *report.Builder,
	renderer ports.ReportRenderer,
	reportsDir string,
) *ReportService {
	return &ReportService{
		datasets:   datasets,
		insights:   insights,
		builder:    builder,
		renderer:   renderer,
		reportsDir: reportsDir,
	}
}

// Generate renders the report for a dataset and returns its file location.
// The file name is deterministic per dataset; concurrent requests for the
// same dataset race on it with last-writer-wins semantics.
func (s *ReportService) Generate(ctx context.Context, id core.ID) (*GeneratedReport, error) {
	ds, err := s.datasets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	facts, err := s.insights.ListByDataset(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := s.builder.Build(ds, facts)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.reportsDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrRenderingFailure, err)
	}

	path := filepath.Join(s.reportsDir, fmt.Sprintf("report_%s.pdf", ds.ID))
	if err := s.renderer.Render(doc, path); err != nil {
		return nil, err
	}

	// The sink reported success; verify the file is actually there before
	// exposing it for download
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: rendered file missing at %s", core.ErrRenderingFailure, path)
	}

	return &GeneratedReport{
		Path:         path,
		DownloadName: sanitizeName(ds.Name) + "_report.pdf",
	}, nil
}

// sanitizeName replaces spaces and path separators with underscores
func sanitizeName(name string) string {
	return strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(name)
}
