package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// DownloadReportInput represents the input for downloading a report label.
type DownloadReportInput struct {
	OwnerID  uuid.UUID
	ReportID uuid.UUID
}

// DownloadReportOutput represents the rendered report file.
type DownloadReportOutput struct {
	Record *entity.ReportRecord
	File   *ExportedFile
}

// DownloadReportUseCase recomputes a report label and renders it in the label's format.
type DownloadReportUseCase struct {
	reportRepo adapter.ReportRepository
	computer   *ReportComputer
	exports    *ExportService
}

// NewDownloadReportUseCase creates a new DownloadReportUseCase instance.
func NewDownloadReportUseCase(
	reportRepo adapter.ReportRepository,
	computer *ReportComputer,
	exports *ExportService,
) *DownloadReportUseCase {
	return &DownloadReportUseCase{
		reportRepo: reportRepo,
		computer:   computer,
		exports:    exports,
	}
}

// Execute performs the download.
func (uc *DownloadReportUseCase) Execute(ctx context.Context, input DownloadReportInput) (*DownloadReportOutput, error) {
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

	file, err := uc.exports.Export(record.Format, record.Type, record.Period, data)
	if err != nil {
		return nil, err
	}

	return &DownloadReportOutput{
		Record: record,
		File:   file,
	}, nil
}
