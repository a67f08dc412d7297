// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
)

// DeleteLedgerEntryInput represents the input for ledger entry deletion.
type DeleteLedgerEntryInput struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
}

// DeleteLedgerEntryUseCase handles ledger entry deletion.
type DeleteLedgerEntryUseCase struct {
	ledgerEntryRepo adapter.LedgerEntryRepository
}

// NewDeleteLedgerEntryUseCase creates a new DeleteLedgerEntryUseCase instance.
func NewDeleteLedgerEntryUseCase(ledgerEntryRepo adapter.LedgerEntryRepository) *DeleteLedgerEntryUseCase {
	return &DeleteLedgerEntryUseCase{ledgerEntryRepo: ledgerEntryRepo}
}

// Execute performs the deletion.
func (uc *DeleteLedgerEntryUseCase) Execute(ctx context.Context, input DeleteLedgerEntryInput) error {
	entry, err := findOwned(ctx, uc.ledgerEntryRepo, input.OwnerID, input.ID)
	if err != nil {
		return err
	}

	if err := uc.ledgerEntryRepo.Delete(ctx, entry.ID); err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	return nil
}
