package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// PreviewReportInput represents an interactive period selection.
type PreviewReportInput struct {
	OwnerID uuid.UUID
	Period  entity.ReportPeriod
	Custom  *entity.DateRange
}

// PreviewReportOutput represents the aggregated preview.
// Superseded is true when a newer selection started before this one finished;
// its data was not committed and should be discarded by the caller.
type PreviewReportOutput struct {
	Generation int64
	Period     entity.ReportPeriod
	Data       *entity.ReportData
	Superseded bool
}

// PreviewReportUseCase computes report data for the on-screen view and commits
// it as the owner's current snapshot. Only the latest selection wins.
type PreviewReportUseCase struct {
	computer *ReportComputer
	store    adapter.ReportPreviewStore
	clock    adapter.Clock
}

// NewPreviewReportUseCase creates a new PreviewReportUseCase instance.
func NewPreviewReportUseCase(
	computer *ReportComputer,
	store adapter.ReportPreviewStore,
	clock adapter.Clock,
) *PreviewReportUseCase {
	return &PreviewReportUseCase{
		computer: computer,
		store:    store,
		clock:    clock,
	}
}

// Execute performs the preview. If ctx is cancelled before the commit, the
// result is abandoned and ctx.Err() is returned.
func (uc *PreviewReportUseCase) Execute(ctx context.Context, input PreviewReportInput) (*PreviewReportOutput, error) {
	generation, err := uc.store.Begin(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to begin preview: %w", err)
	}

	data, err := uc.computer.Compute(ctx, ComputeInput{
		OwnerID: input.OwnerID,
		Period:  input.Period,
		Custom:  input.Custom,
	})
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		slog.Debug("Preview abandoned",
			"owner_id", input.OwnerID,
			"generation", generation,
		)
		return nil, err
	}

	committed, err := uc.store.Commit(ctx, input.OwnerID, generation, &adapter.PreviewSnapshot{
		Generation: generation,
		Period:     input.Period,
		Custom:     input.Custom,
		ComputedAt: uc.clock.Now(),
		Data:       data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to commit preview: %w", err)
	}

	if !committed {
		slog.Debug("Preview superseded by a newer selection",
			"owner_id", input.OwnerID,
			"generation", generation,
		)
	}

	return &PreviewReportOutput{
		Generation: generation,
		Period:     input.Period,
		Data:       data,
		Superseded: !committed,
	}, nil
}
