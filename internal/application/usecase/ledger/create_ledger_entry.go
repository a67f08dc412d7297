// Package ledger contains ledger entry use cases.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

// CreateLedgerEntryInput represents the input for ledger entry creation.
type CreateLedgerEntryInput struct {
	OwnerID     uuid.UUID
	Date        time.Time
	Type        string
	Category    *string
	Description *string
	Amount      decimal.Decimal
}

// CreateLedgerEntryOutput represents the output of ledger entry creation.
type CreateLedgerEntryOutput struct {
	Entry *entity.LedgerEntry
}

// CreateLedgerEntryUseCase handles ledger entry creation.
type CreateLedgerEntryUseCase struct {
	ledgerEntryRepo adapter.LedgerEntryRepository
}

// NewCreateLedgerEntryUseCase creates a new CreateLedgerEntryUseCase instance.
func NewCreateLedgerEntryUseCase(ledgerEntryRepo adapter.LedgerEntryRepository) *CreateLedgerEntryUseCase {
	return &CreateLedgerEntryUseCase{ledgerEntryRepo: ledgerEntryRepo}
}

// Execute performs the ledger entry creation.
func (uc *CreateLedgerEntryUseCase) Execute(ctx context.Context, input CreateLedgerEntryInput) (*CreateLedgerEntryOutput, error) {
	if input.Date.IsZero() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingLedgerDate,
			"date is required",
			domainerror.ErrMissingLedgerDate,
		)
	}

	err := fields{
		entryType:   &input.Type,
		category:    input.Category,
		description: input.Description,
		amount:      &input.Amount,
	}.validate()
	if err != nil {
		return nil, err
	}

	entry := entity.NewLedgerEntry(
		input.OwnerID,
		input.Date,
		input.Type,
		input.Category,
		input.Description,
		input.Amount,
	)

	if err := uc.ledgerEntryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	return &CreateLedgerEntryOutput{Entry: entry}, nil
}
