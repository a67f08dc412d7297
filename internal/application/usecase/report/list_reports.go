package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// ListReportsInput represents the input for listing report labels.
type ListReportsInput struct {
	OwnerID uuid.UUID
}

// ListReportsOutput represents the report history of an owner.
type ListReportsOutput struct {
	Reports []*entity.ReportRecord
}

// ListReportsUseCase handles report history listing.
type ListReportsUseCase struct {
	reportRepo adapter.ReportRepository
}

// NewListReportsUseCase creates a new ListReportsUseCase instance.
func NewListReportsUseCase(reportRepo adapter.ReportRepository) *ListReportsUseCase {
	return &ListReportsUseCase{reportRepo: reportRepo}
}

// Execute lists the owner's report labels, newest first.
func (uc *ListReportsUseCase) Execute(ctx context.Context, input ListReportsInput) (*ListReportsOutput, error) {
	records, err := uc.reportRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return &ListReportsOutput{Reports: records}, nil
}
