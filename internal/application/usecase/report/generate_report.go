package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// GenerateReportInput represents the input for report label creation.
type GenerateReportInput struct {
	OwnerID   uuid.UUID
	Type      entity.ReportType
	Period    entity.ReportPeriod
	Format    entity.ReportFormat
	StartDate *time.Time // Required when Period is custom
	EndDate   *time.Time // Required when Period is custom
}

// GenerateReportOutput represents the output of report label creation.
// Data is set whenever aggregation succeeded, even if the label could not be saved.
type GenerateReportOutput struct {
	Record *entity.ReportRecord
	Data   *entity.ReportData
}

// GenerateReportUseCase validates report parameters, aggregates fresh data and
// persists exactly one report label.
type GenerateReportUseCase struct {
	reportRepo adapter.ReportRepository
	computer   *ReportComputer
	metrics    adapter.ReportMetrics
}

// NewGenerateReportUseCase creates a new GenerateReportUseCase instance.
func NewGenerateReportUseCase(
	reportRepo adapter.ReportRepository,
	computer *ReportComputer,
	metrics adapter.ReportMetrics,
) *GenerateReportUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &GenerateReportUseCase{
		reportRepo: reportRepo,
		computer:   computer,
		metrics:    metrics,
	}
}

// Execute performs the report generation. On PersistFailed the output still
// carries the computed data.
func (uc *GenerateReportUseCase) Execute(ctx context.Context, input GenerateReportInput) (*GenerateReportOutput, error) {
	custom, err := validateReportParams(input)
	if err != nil {
		return nil, err
	}

	data, err := uc.computer.Compute(ctx, ComputeInput{
		OwnerID: input.OwnerID,
		Period:  input.Period,
		Custom:  custom,
	})
	if err != nil {
		return nil, err
	}

	record := entity.NewReportRecord(input.OwnerID, input.Type, input.Period, input.Format, custom)

	if err := uc.reportRepo.Create(ctx, record); err != nil {
		uc.metrics.IncRecordWrite("create", err)
		slog.Error("Failed to persist report label",
			"owner_id", input.OwnerID,
			"type", input.Type,
			"period", input.Period,
			"format", input.Format,
			"error", err,
		)
		return &GenerateReportOutput{Data: data}, domainerror.NewReportError(
			domainerror.ErrCodePersistFailed,
			"report computed but could not be saved",
			fmt.Errorf("%w: %v", domainerror.ErrPersistFailed, err),
		)
	}
	uc.metrics.IncRecordWrite("create", nil)

	slog.Info("Report label persisted",
		"report_id", record.ID,
		"owner_id", record.OwnerID,
		"type", record.Type,
		"period", record.Period,
		"format", record.Format,
	)

	return &GenerateReportOutput{
		Record: record,
		Data:   data,
	}, nil
}

// validateReportParams checks type, period and format and returns the custom range, if any.
func validateReportParams(input GenerateReportInput) (*entity.DateRange, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			"type must be one of financial, cash_flow, categories, taxes, debts",
			domainerror.ErrInvalidReportType,
		)
	}

	if !input.Format.IsValid() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportFormat,
			"format must be one of pdf, excel, csv",
			domainerror.ErrInvalidReportFormat,
		)
	}

	if !input.Period.IsValidForRecord() {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnknownPeriod,
			fmt.Sprintf("unknown period %q", input.Period),
			domainerror.ErrUnknownPeriod,
		)
	}

	if input.Period != entity.ReportPeriodCustom {
		return nil, nil
	}

	custom := &entity.DateRange{}
	if input.StartDate != nil {
		custom.Start = *input.StartDate
	}
	if input.EndDate != nil {
		custom.End = *input.EndDate
	}
	if err := ValidateCustomRange(custom); err != nil {
		return nil, err
	}
	return custom, nil
}
