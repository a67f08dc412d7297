package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// ComputeInput identifies the records and period to aggregate.
type ComputeInput struct {
	OwnerID uuid.UUID
	Period  entity.ReportPeriod
	Custom  *entity.DateRange
}

// ReportComputer is the single read-through path from the record store to
// ReportData. Nothing is cached: every call fetches and aggregates again.
type ReportComputer struct {
	cashMovementRepo adapter.CashMovementRepository
	ledgerEntryRepo  adapter.LedgerEntryRepository
	resolver         *PeriodResolver
	aggregator       *Aggregator
	metrics          adapter.ReportMetrics
}

// NewReportComputer creates a new ReportComputer instance.
func NewReportComputer(
	cashMovementRepo adapter.CashMovementRepository,
	ledgerEntryRepo adapter.LedgerEntryRepository,
	clock adapter.Clock,
	metrics adapter.ReportMetrics,
) *ReportComputer {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &ReportComputer{
		cashMovementRepo: cashMovementRepo,
		ledgerEntryRepo:  ledgerEntryRepo,
		resolver:         NewPeriodResolver(clock),
		aggregator:       NewAggregator(clock),
		metrics:          metrics,
	}
}

// Compute resolves the period, fetches both collections concurrently and aggregates them.
// A failure of either fetch aborts the computation; no partial data is returned.
func (c *ReportComputer) Compute(ctx context.Context, input ComputeInput) (data *entity.ReportData, err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveComputation(input.Period, time.Since(start), err)
	}()

	include, err := c.resolver.Resolve(input.Period, input.Custom)
	if err != nil {
		return nil, err
	}

	var (
		movements []*entity.CashMovement
		entries   []*entity.LedgerEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var fetchErr error
		movements, fetchErr = c.cashMovementRepo.FindByOwner(gctx, input.OwnerID)
		if fetchErr != nil {
			return fmt.Errorf("cash movements: %w", fetchErr)
		}
		return nil
	})
	g.Go(func() error {
		var fetchErr error
		entries, fetchErr = c.ledgerEntryRepo.FindByOwner(gctx, input.OwnerID)
		if fetchErr != nil {
			return fmt.Errorf("ledger entries: %w", fetchErr)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		// The caller went away; not a store failure
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		slog.Warn("Report fetch failed",
			"owner_id", input.OwnerID,
			"period", input.Period,
			"error", err,
		)
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeFetchFailed,
			"failed to load records for report",
			fmt.Errorf("%w: %w", domainerror.ErrFetchFailed, err),
		)
	}

	return c.aggregator.Aggregate(movements, entries, include), nil
}

// nopMetrics discards all observations.
type nopMetrics struct{}

func (nopMetrics) ObserveComputation(entity.ReportPeriod, time.Duration, error) {}
func (nopMetrics) ObserveExport(entity.ReportFormat, time.Duration, error)     {}
func (nopMetrics) IncRecordWrite(string, error)                                {}
