package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// ViewReportInput represents the input for opening a report label.
type ViewReportInput struct {
	OwnerID  uuid.UUID
	ReportID uuid.UUID
}

// ViewReportOutput represents a report label with freshly aggregated data.
type ViewReportOutput struct {
	Record *entity.ReportRecord
	Data   *entity.ReportData
}

// ViewReportUseCase re-runs aggregation for a persisted report label.
type ViewReportUseCase struct {
	reportRepo adapter.ReportRepository
	computer   *ReportComputer
}

// NewViewReportUseCase creates a new ViewReportUseCase instance.
func NewViewReportUseCase(reportRepo adapter.ReportRepository, computer *ReportComputer) *ViewReportUseCase {
	return &ViewReportUseCase{
		reportRepo: reportRepo,
		computer:   computer,
	}
}

// Execute loads the label and recomputes its data from the live record store.
func (uc *ViewReportUseCase) Execute(ctx context.Context, input ViewReportInput) (*ViewReportOutput, error) {
	record, err := loadOwnedRecord(ctx, uc.reportRepo, input.OwnerID, input.ReportID)
	if err != nil {
		return nil, err
	}

	data, err := uc.computer.Compute(ctx, ComputeInput{
		OwnerID: record.OwnerID,
		Period:  record.Period,
		Custom:  record.CustomRange(),
	})
	if err != nil {
		return nil, err
	}

	return &ViewReportOutput{
		Record: record,
		Data:   data,
	}, nil
}

// loadOwnedRecord fetches a report label and verifies it belongs to ownerID.
func loadOwnedRecord(ctx context.Context, repo adapter.ReportRepository, ownerID, reportID uuid.UUID) (*entity.ReportRecord, error) {
	record, err := repo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, domainerror.ErrReportNotFound) {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeReportNotFound,
				"report not found",
				domainerror.ErrReportNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	if record.OwnerID != ownerID {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeNotAuthorizedReport,
			"not authorized to access this report",
			domainerror.ErrNotAuthorizedReport,
		)
	}

	return record, nil
}
