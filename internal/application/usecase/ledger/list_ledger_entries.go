// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// ListLedgerEntriesInput represents the input for listing ledger entries.
type ListLedgerEntriesInput struct {
	OwnerID uuid.UUID
}

// ListLedgerEntriesOutput represents the owner's ledger, newest first.
type ListLedgerEntriesOutput struct {
	Entries []*entity.LedgerEntry
}

// ListLedgerEntriesUseCase handles ledger entry listing.
type ListLedgerEntriesUseCase struct {
	ledgerEntryRepo adapter.LedgerEntryRepository
}

// NewListLedgerEntriesUseCase creates a new ListLedgerEntriesUseCase instance.
func NewListLedgerEntriesUseCase(ledgerEntryRepo adapter.LedgerEntryRepository) *ListLedgerEntriesUseCase {
	return &ListLedgerEntriesUseCase{ledgerEntryRepo: ledgerEntryRepo}
}

// Execute performs the listing.
func (uc *ListLedgerEntriesUseCase) Execute(ctx context.Context, input ListLedgerEntriesInput) (*ListLedgerEntriesOutput, error) {
	entries, err := uc.ledgerEntryRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return &ListLedgerEntriesOutput{Entries: entries}, nil
}
