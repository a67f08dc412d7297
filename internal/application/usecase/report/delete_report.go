package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
)

// DeleteReportInput represents the input for report label deletion.
type DeleteReportInput struct {
	OwnerID  uuid.UUID
	ReportID uuid.UUID
}

// DeleteReportUseCase handles report label deletion.
type DeleteReportUseCase struct {
	reportRepo adapter.ReportRepository
	metrics    adapter.ReportMetrics
}

// NewDeleteReportUseCase creates a new DeleteReportUseCase instance.
func NewDeleteReportUseCase(reportRepo adapter.ReportRepository, metrics adapter.ReportMetrics) *DeleteReportUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &DeleteReportUseCase{
		reportRepo: reportRepo,
		metrics:    metrics,
	}
}

// Execute deletes the label after checking ownership.
func (uc *DeleteReportUseCase) Execute(ctx context.Context, input DeleteReportInput) error {
	record, err := loadOwnedRecord(ctx, uc.reportRepo, input.OwnerID, input.ReportID)
	if err != nil {
		return err
	}

	if err := uc.reportRepo.Delete(ctx, record.ID); err != nil {
		uc.metrics.IncRecordWrite("delete", err)
		return fmt.Errorf("failed to delete report: %w", err)
	}
	uc.metrics.IncRecordWrite("delete", nil)

	slog.Info("Report label deleted",
		"report_id", record.ID,
		"owner_id", record.OwnerID,
	)
	return nil
}
