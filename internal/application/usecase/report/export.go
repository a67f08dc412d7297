package report

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// ExportedFile is a rendered report ready for download.
type ExportedFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService dispatches ReportData to the generator of the requested format.
type ExportService struct {
	exporters map[entity.ReportFormat]adapter.ReportExporter
	clock     adapter.Clock
	metrics   adapter.ReportMetrics
}

// NewExportService creates a new ExportService with the given generators.
func NewExportService(clock adapter.Clock, metrics adapter.ReportMetrics, exporters ...adapter.ReportExporter) *ExportService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	registry := make(map[entity.ReportFormat]adapter.ReportExporter, len(exporters))
	for _, exporter := range exporters {
		registry[exporter.Format()] = exporter
	}
	return &ExportService{
		exporters: registry,
		clock:     clock,
		metrics:   metrics,
	}
}

// Export renders data in the given format. Nil data is NotReady, never an empty file.
func (s *ExportService) Export(
	format entity.ReportFormat,
	reportType entity.ReportType,
	period entity.ReportPeriod,
	data *entity.ReportData,
) (file *ExportedFile, err error) {
	exporter, ok := s.exporters[format]
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportFormat,
			fmt.Sprintf("unsupported report format %q", format),
			domainerror.ErrInvalidReportFormat,
		)
	}

	if data == nil {
		return nil, notReadyError()
	}

	start := time.Now()
	defer func() {
		s.metrics.ObserveExport(format, time.Since(start), err)
	}()

	now := s.clock.Now()
	content, err := exporter.Export(adapter.ExportDocument{
		Title:       reportType.Title(),
		Period:      period,
		GeneratedAt: now,
		Data:        data,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrReportNotReady) {
			return nil, notReadyError()
		}
		slog.Error("Report export failed",
			"format", format,
			"period", period,
			"error", err,
		)
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeExportFailed,
			"failed to render report",
			fmt.Errorf("%w: %v", domainerror.ErrExportFailed, err),
		)
	}

	return &ExportedFile{
		Filename:    entity.ReportFilename(period, format, now),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

func notReadyError() error {
	return domainerror.NewReportError(
		domainerror.ErrCodeReportNotReady,
		"report data has not been computed for these parameters",
		domainerror.ErrReportNotReady,
	)
}
