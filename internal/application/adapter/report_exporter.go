// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"time"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// ExportDocument is everything a generator needs to render one report.
type ExportDocument struct {
	Title       string
	Period      entity.ReportPeriod
	GeneratedAt time.Time
	Data        *entity.ReportData
}

// ReportExporter renders aggregated report data into a downloadable payload.
// Implementations must return domainerror.ErrReportNotReady when Data is nil.
type ReportExporter interface {
	// Format returns the format produced by this exporter.
	Format() entity.ReportFormat

	// Export renders the document.
	Export(doc ExportDocument) ([]byte, error)
}
