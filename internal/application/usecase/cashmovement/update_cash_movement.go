// Package cashmovement contains cash register use cases.
package cashmovement

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

// UpdateCashMovementInput represents a partial update. Nil fields are left unchanged.
type UpdateCashMovementInput struct {
	OwnerID     uuid.UUID
	ID          uuid.UUID
	Date        *time.Time
	Type        *entity.CashMovementType
	Category    *string
	Description *string
	Amount      *decimal.Decimal
}

// UpdateCashMovementOutput represents the output of a cash movement update.
type UpdateCashMovementOutput struct {
	Movement *entity.CashMovement
}

// UpdateCashMovementUseCase handles cash movement updates.
type UpdateCashMovementUseCase struct {
	cashMovementRepo adapter.CashMovementRepository
}

// NewUpdateCashMovementUseCase creates a new UpdateCashMovementUseCase instance.
func NewUpdateCashMovementUseCase(cashMovementRepo adapter.CashMovementRepository) *UpdateCashMovementUseCase {
	return &UpdateCashMovementUseCase{cashMovementRepo: cashMovementRepo}
}

// Execute performs the update.
func (uc *UpdateCashMovementUseCase) Execute(ctx context.Context, input UpdateCashMovementInput) (*UpdateCashMovementOutput, error) {
	movement, err := findOwned(ctx, uc.cashMovementRepo, input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewCashMovementError(
				domainerror.ErrCodeMissingCashMovementDate,
				"date is required",
				domainerror.ErrMissingCashMovementDate,
			)
		}
		movement.Date = *input.Date
	}
	if input.Type != nil {
		if err := validateType(*input.Type); err != nil {
			return nil, err
		}
		movement.Type = *input.Type
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		movement.Amount = *input.Amount
	}
	if input.Description != nil {
		if err := validateText("description", input.Description, MaxDescriptionLength); err != nil {
			return nil, err
		}
		movement.Description = input.Description
	}
	if input.Category != nil {
		if err := validateText("category", input.Category, MaxCategoryLength); err != nil {
			return nil, err
		}
		movement.Category = input.Category
	}

	movement.UpdatedAt = time.Now().UTC()

	if err := uc.cashMovementRepo.Update(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to update cash movement: %w", err)
	}

	return &UpdateCashMovementOutput{Movement: movement}, nil
}

// findOwned loads a cash movement and checks it belongs to ownerID.
func findOwned(ctx context.Context, repo adapter.CashMovementRepository, ownerID, id uuid.UUID) (*entity.CashMovement, error) {
	movement, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCashMovementNotFound) {
			return nil, domainerror.NewCashMovementError(
				domainerror.ErrCodeCashMovementNotFound,
				"cash movement not found",
				domainerror.ErrCashMovementNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find cash movement: %w", err)
	}

	if movement.OwnerID != ownerID {
		return nil, domainerror.NewCashMovementError(
			domainerror.ErrCodeNotAuthorizedCashMovement,
			"not authorized to modify this cash movement",
			domainerror.ErrNotAuthorizedCashMovement,
		)
	}
	return movement, nil
}
