// Package cashmovement contains cash register use cases.
package cashmovement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// ListCashMovementsInput represents the input for listing cash movements.
type ListCashMovementsInput struct {
	OwnerID uuid.UUID
}

// ListCashMovementsOutput represents the owner's cash register, newest first.
type ListCashMovementsOutput struct {
	Movements []*entity.CashMovement
}

// ListCashMovementsUseCase handles cash movement listing.
type ListCashMovementsUseCase struct {
	cashMovementRepo adapter.CashMovementRepository
}

// NewListCashMovementsUseCase creates a new ListCashMovementsUseCase instance.
func NewListCashMovementsUseCase(cashMovementRepo adapter.CashMovementRepository) *ListCashMovementsUseCase {
	return &ListCashMovementsUseCase{cashMovementRepo: cashMovementRepo}
}

// Execute performs the listing.
func (uc *ListCashMovementsUseCase) Execute(ctx context.Context, input ListCashMovementsInput) (*ListCashMovementsOutput, error) {
	movements, err := uc.cashMovementRepo.FindByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash movements: %w", err)
	}
	return &ListCashMovementsOutput{Movements: movements}, nil
}
