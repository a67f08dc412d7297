package report

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func movement(date time.Time, movementType entity.CashMovementType, category *string, value string) *entity.CashMovement {
	return entity.NewCashMovement(uuid.Nil, date, movementType, category, nil, amount(value))
}

func ledgerEntry(date time.Time, entryType string, value string) *entity.LedgerEntry {
	return entity.NewLedgerEntry(uuid.Nil, date, entryType, nil, nil, amount(value))
}

type stubCashMovementRepository struct {
	movements []*entity.CashMovement
	err       error
}

func (r *stubCashMovementRepository) Create(context.Context, *entity.CashMovement) error { return nil }
func (r *stubCashMovementRepository) FindByID(context.Context, uuid.UUID) (*entity.CashMovement, error) {
	return nil, domainerror.ErrCashMovementNotFound
}
func (r *stubCashMovementRepository) FindByOwner(context.Context, uuid.UUID) ([]*entity.CashMovement, error) {
	return r.movements, r.err
}
func (r *stubCashMovementRepository) Update(context.Context, *entity.CashMovement) error { return nil }
func (r *stubCashMovementRepository) Delete(context.Context, uuid.UUID) error            { return nil }

// gatedCashMovementRepository blocks its first FindByOwner call until release is closed.
type gatedCashMovementRepository struct {
	stubCashMovementRepository
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func newGatedCashMovementRepository(movements []*entity.CashMovement) *gatedCashMovementRepository {
	return &gatedCashMovementRepository{
		stubCashMovementRepository: stubCashMovementRepository{movements: movements},
		entered:                    make(chan struct{}),
		release:                    make(chan struct{}),
	}
}

func (r *gatedCashMovementRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CashMovement, error) {
	r.mu.Lock()
	r.calls++
	first := r.calls == 1
	r.mu.Unlock()

	if first {
		close(r.entered)
		<-r.release
	}
	return r.stubCashMovementRepository.FindByOwner(ctx, ownerID)
}

type stubLedgerEntryRepository struct {
	entries []*entity.LedgerEntry
	err     error
}

func (r *stubLedgerEntryRepository) Create(context.Context, *entity.LedgerEntry) error { return nil }
func (r *stubLedgerEntryRepository) FindByID(context.Context, uuid.UUID) (*entity.LedgerEntry, error) {
	return nil, domainerror.ErrLedgerEntryNotFound
}
func (r *stubLedgerEntryRepository) FindByOwner(context.Context, uuid.UUID) ([]*entity.LedgerEntry, error) {
	return r.entries, r.err
}
func (r *stubLedgerEntryRepository) Update(context.Context, *entity.LedgerEntry) error { return nil }
func (r *stubLedgerEntryRepository) Delete(context.Context, uuid.UUID) error           { return nil }

type memoryReportRepository struct {
	mu        sync.Mutex
	records   map[uuid.UUID]*entity.ReportRecord
	createErr error
}

func newMemoryReportRepository() *memoryReportRepository {
	return &memoryReportRepository{records: make(map[uuid.UUID]*entity.ReportRecord)}
}

func (r *memoryReportRepository) Create(_ context.Context, record *entity.ReportRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return nil
}

func (r *memoryReportRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.ReportRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, domainerror.ErrReportNotFound
	}
	return record, nil
}

func (r *memoryReportRepository) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.ReportRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ReportRecord
	for _, record := range r.records {
		if record.OwnerID == ownerID {
			out = append(out, record)
		}
	}
	return out, nil
}

func (r *memoryReportRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

type stubExporter struct {
	format entity.ReportFormat
	err    error
	docs   []adapter.ExportDocument
}

func (e *stubExporter) Format() entity.ReportFormat { return e.format }

func (e *stubExporter) Export(doc adapter.ExportDocument) ([]byte, error) {
	if doc.Data == nil {
		return nil, domainerror.ErrReportNotReady
	}
	if e.err != nil {
		return nil, e.err
	}
	e.docs = append(e.docs, doc)
	return []byte(string(e.format) + ":" + doc.Data.NetBalance.StringFixed(2)), nil
}

type memoryPreviewStore struct {
	mu          sync.Mutex
	generations map[uuid.UUID]int64
	snapshots   map[uuid.UUID]*adapter.PreviewSnapshot
}

func newMemoryPreviewStore() *memoryPreviewStore {
	return &memoryPreviewStore{
		generations: make(map[uuid.UUID]int64),
		snapshots:   make(map[uuid.UUID]*adapter.PreviewSnapshot),
	}
}

func (s *memoryPreviewStore) Begin(_ context.Context, ownerID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[ownerID]++
	return s.generations[ownerID], nil
}

func (s *memoryPreviewStore) Commit(_ context.Context, ownerID uuid.UUID, generation int64, snapshot *adapter.PreviewSnapshot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[ownerID] != generation {
		return false, nil
	}
	s.snapshots[ownerID] = snapshot
	return true, nil
}

func (s *memoryPreviewStore) Load(_ context.Context, ownerID uuid.UUID) (*adapter.PreviewSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshots[ownerID], nil
}

var errStoreDown = errors.New("connection refused")

// reportErrorCode extracts the code of a ReportError, or "".
func reportErrorCode(err error) domainerror.ReportErrorCode {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		return reportErr.Code
	}
	return ""
}

// blockingCashMovementRepository waits for the caller to give up.
type blockingCashMovementRepository struct {
	stubCashMovementRepository
	entered chan struct{}
}

func (r *blockingCashMovementRepository) FindByOwner(ctx context.Context, _ uuid.UUID) ([]*entity.CashMovement, error) {
	close(r.entered)
	<-ctx.Done()
	return nil, ctx.Err()
}
