// Package ledger contains ledger entry use cases.
package ledger

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
)

const (
	// MaxTypeLength is the maximum allowed length for ledger types.
	MaxTypeLength = 50
	// MaxCategoryLength is the maximum allowed length for categories.
	MaxCategoryLength = 100
	// MaxDescriptionLength is the maximum allowed length for descriptions.
	MaxDescriptionLength = 255
)

// fields holds the editable values of a ledger entry; nil means "not provided".
type fields struct {
	date        *time.Time
	entryType   *string
	category    *string
	description *string
	amount      *decimal.Decimal
}

func (f fields) validate() error {
	if f.date != nil && f.date.IsZero() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeMissingLedgerDate,
			"date is required",
			domainerror.ErrMissingLedgerDate,
		)
	}
	if f.amount != nil && !f.amount.IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidLedgerAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidLedgerAmount,
		)
	}
	if f.amount != nil && !entity.FitsAmountColumn(*f.amount) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidLedgerAmount,
			"amount must have at most 2 decimal places and 13 integer digits",
			domainerror.ErrInvalidLedgerAmount,
		)
	}

	limits := []struct {
		name  string
		value *string
		max   int
	}{
		{"type", f.entryType, MaxTypeLength},
		{"category", f.category, MaxCategoryLength},
		{"description", f.description, MaxDescriptionLength},
	}
	for _, l := range limits {
		if l.value != nil && utf8.RuneCountInString(*l.value) > l.max {
			return domainerror.NewLedgerError(
				domainerror.ErrCodeLedgerFieldTooLong,
				fmt.Sprintf("%s must not exceed %d characters", l.name, l.max),
				domainerror.ErrLedgerFieldTooLong,
			)
		}
	}
	return nil
}
