// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"time"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// ReportMetrics records report pipeline observations.
type ReportMetrics interface {
	// ObserveComputation records one fetch and aggregate cycle.
	ObserveComputation(period entity.ReportPeriod, duration time.Duration, err error)

	// ObserveExport records one generator run.
	ObserveExport(format entity.ReportFormat, duration time.Duration, err error)

	// IncRecordWrite counts label writes by action ("create", "delete").
	IncRecordWrite(action string, err error)
}
