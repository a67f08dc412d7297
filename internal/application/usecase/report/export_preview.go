package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// ExportPreviewInput represents an export of the on-screen preview.
type ExportPreviewInput struct {
	OwnerID uuid.UUID
	Type    entity.ReportType // Document title; financial when empty
	Period  entity.ReportPeriod
	Custom  *entity.DateRange // Must match the previewed range when Period is custom
	Format  entity.ReportFormat
}

// ExportPreviewUseCase renders the owner's committed preview snapshot.
// It never aggregates on its own: without a snapshot for the requested
// selection the export is NotReady.
type ExportPreviewUseCase struct {
	store   adapter.ReportPreviewStore
	exports *ExportService
}

// NewExportPreviewUseCase creates a new ExportPreviewUseCase instance.
func NewExportPreviewUseCase(store adapter.ReportPreviewStore, exports *ExportService) *ExportPreviewUseCase {
	return &ExportPreviewUseCase{
		store:   store,
		exports: exports,
	}
}

// Execute performs the export.
func (uc *ExportPreviewUseCase) Execute(ctx context.Context, input ExportPreviewInput) (*ExportedFile, error) {
	snapshot, err := uc.store.Load(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preview: %w", err)
	}

	reportType := input.Type
	if reportType == "" {
		reportType = entity.ReportTypeFinancial
	}
	if !reportType.IsValid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			"type must be one of financial, cash_flow, categories, taxes, debts",
			domainerror.ErrInvalidReportType,
		)
	}

	var data *entity.ReportData
	if snapshot != nil && snapshotMatches(snapshot, input.Period, input.Custom) {
		data = snapshot.Data
	}

	return uc.exports.Export(input.Format, reportType, input.Period, data)
}

// snapshotMatches reports whether the snapshot was computed for the same
// period and, for custom periods, the same calendar days.
func snapshotMatches(snapshot *adapter.PreviewSnapshot, period entity.ReportPeriod, custom *entity.DateRange) bool {
	if snapshot.Period != period {
		return false
	}
	if period != entity.ReportPeriodCustom {
		return true
	}
	if snapshot.Custom == nil || custom == nil {
		return false
	}
	return civilDay(snapshot.Custom.Start) == civilDay(custom.Start) &&
		civilDay(snapshot.Custom.End) == civilDay(custom.End)
}
