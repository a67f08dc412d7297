// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// UpdateLedgerEntryInput represents a partial update. Nil fields are left unchanged.
type UpdateLedgerEntryInput struct {
	OwnerID     uuid.UUID
	ID          uuid.UUID
	Date        *time.Time
	Type        *string
	Category    *string
	Description *string
	Amount      *decimal.Decimal
}

// UpdateLedgerEntryOutput represents the output of a ledger entry update.
type UpdateLedgerEntryOutput struct {
	Entry *entity.LedgerEntry
}

// UpdateLedgerEntryUseCase handles ledger entry updates.
type UpdateLedgerEntryUseCase struct {
	ledgerEntryRepo adapter.LedgerEntryRepository
}

// NewUpdateLedgerEntryUseCase creates a new UpdateLedgerEntryUseCase instance.
func NewUpdateLedgerEntryUseCase(ledgerEntryRepo adapter.LedgerEntryRepository) *UpdateLedgerEntryUseCase {
	return &UpdateLedgerEntryUseCase{ledgerEntryRepo: ledgerEntryRepo}
}

// Execute performs the update.
func (uc *UpdateLedgerEntryUseCase) Execute(ctx context.Context, input UpdateLedgerEntryInput) (*UpdateLedgerEntryOutput, error) {
	entry, err := findOwned(ctx, uc.ledgerEntryRepo, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	err = fields{
		date:        input.Date,
		entryType:   input.Type,
		category:    input.Category,
		description: input.Description,
		amount:      input.Amount,
	}.validate()
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		entry.Date = *input.Date
	}
	if input.Type != nil {
		entry.Type = *input.Type
	}
	if input.Category != nil {
		entry.Category = input.Category
	}
	if input.Description != nil {
		entry.Description = input.Description
	}
	if input.Amount != nil {
		entry.Amount = *input.Amount
	}
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.ledgerEntryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update ledger entry: %w", err)
	}

	return &UpdateLedgerEntryOutput{Entry: entry}, nil
}

func findOwned(ctx context.Context, repo adapter.LedgerEntryRepository, ownerID, id uuid.UUID) (*entity.LedgerEntry, error) {
	entry, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrLedgerEntryNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerEntryNotFound,
				"ledger entry not found",
				domainerror.ErrLedgerEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find ledger entry: %w", err)
	}

	if entry.OwnerID != ownerID {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNotAuthorizedLedgerEntry,
			"not authorized to modify this ledger entry",
			domainerror.ErrNotAuthorizedLedgerEntry,
		)
	}
	return entry, nil
}
