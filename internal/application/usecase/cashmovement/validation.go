// Package cashmovement contains cash register use cases.
package cashmovement

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for descriptions.
	MaxDescriptionLength = 255
	// MaxCategoryLength is the maximum allowed length for categories.
	MaxCategoryLength = 100
)

func validateType(movementType entity.CashMovementType) error {
	if !movementType.IsValid() {
		return domainerror.NewCashMovementError(
			domainerror.ErrCodeInvalidCashMovementType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidCashMovementType,
		)
	}
	return nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewCashMovementError(
			domainerror.ErrCodeInvalidCashMovementAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidCashMovementAmount,
		)
	}
	if !entity.FitsAmountColumn(amount) {
		return domainerror.NewCashMovementError(
			domainerror.ErrCodeInvalidCashMovementAmount,
			"amount must have at most 2 decimal places and 13 integer digits",
			domainerror.ErrInvalidCashMovementAmount,
		)
	}
	return nil
}

func validateText(field string, value *string, limit int) error {
	if value != nil && utf8.RuneCountInString(*value) > limit {
		return domainerror.NewCashMovementError(
			domainerror.ErrCodeCashMovementFieldTooLong,
			fmt.Sprintf("%s must not exceed %d characters", field, limit),
			domainerror.ErrCashMovementFieldTooLong,
		)
	}
	return nil
}
