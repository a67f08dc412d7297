// Package cashmovement contains cash register use cases.
package cashmovement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
)

// DeleteCashMovementInput represents the input for cash movement deletion.
type DeleteCashMovementInput struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
}

// DeleteCashMovementUseCase handles cash movement deletion.
type DeleteCashMovementUseCase struct {
	cashMovementRepo adapter.CashMovementRepository
}

// NewDeleteCashMovementUseCase creates a new DeleteCashMovementUseCase instance.
func NewDeleteCashMovementUseCase(cashMovementRepo adapter.CashMovementRepository) *DeleteCashMovementUseCase {
	return &DeleteCashMovementUseCase{cashMovementRepo: cashMovementRepo}
}

// Execute performs the deletion.
func (uc *DeleteCashMovementUseCase) Execute(ctx context.Context, input DeleteCashMovementInput) error {
	movement, err := findOwned(ctx, uc.cashMovementRepo, input.OwnerID, input.ID)
	if err != nil {
		return err
	}

	if err := uc.cashMovementRepo.Delete(ctx, movement.ID); err != nil {
		return fmt.Errorf("failed to delete cash movement: %w", err)
	}
	return nil
}
