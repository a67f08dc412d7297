// Package cashmovement contains cash register use cases.
package cashmovement

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

// CreateCashMovementInput represents the input for cash movement creation.
type CreateCashMovementInput struct {
	OwnerID     uuid.UUID
	Date        time.Time
	Type        entity.CashMovementType
	Category    *string
	Description *string
	Amount      decimal.Decimal
}

// CreateCashMovementOutput represents the output of cash movement creation.
type CreateCashMovementOutput struct {
	Movement *entity.CashMovement
}

// CreateCashMovementUseCase handles cash movement creation logic.
type CreateCashMovementUseCase struct {
	cashMovementRepo adapter.CashMovementRepository
}

// NewCreateCashMovementUseCase creates a new CreateCashMovementUseCase instance.
func NewCreateCashMovementUseCase(cashMovementRepo adapter.CashMovementRepository) *CreateCashMovementUseCase {
	return &CreateCashMovementUseCase{cashMovementRepo: cashMovementRepo}
}

// Execute performs the cash movement creation.
func (uc *CreateCashMovementUseCase) Execute(ctx context.Context, input CreateCashMovementInput) (*CreateCashMovementOutput, error) {
	if input.Date.IsZero() {
		return nil, domainerror.NewCashMovementError(
			domainerror.ErrCodeMissingCashMovementDate,
			"date is required",
			domainerror.ErrMissingCashMovementDate,
		)
	}
	if err := validateType(input.Type); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateText("description", input.Description, MaxDescriptionLength); err != nil {
		return nil, err
	}
	if err := validateText("category", input.Category, MaxCategoryLength); err != nil {
		return nil, err
	}

	movement := entity.NewCashMovement(
		input.OwnerID,
		input.Date,
		input.Type,
		input.Category,
		input.Description,
		input.Amount,
	)

	if err := uc.cashMovementRepo.Create(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to create cash movement: %w", err)
	}

	return &CreateCashMovementOutput{Movement: movement}, nil
}
