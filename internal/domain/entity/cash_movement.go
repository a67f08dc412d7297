// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UncategorizedKey is the grouping key for cash movements without a category.
const UncategorizedKey = "Uncategorized"

// CashMovementType represents the direction of a cash register entry.
type CashMovementType string

const (
	CashMovementTypeIncome  CashMovementType = "income"
	CashMovementTypeExpense CashMovementType = "expense"
)

// legacyCashMovementTypes maps the spellings found in older cash register rows.
var legacyCashMovementTypes = map[string]CashMovementType{
	"income":  CashMovementTypeIncome,
	"receita": CashMovementTypeIncome,
	"entrada": CashMovementTypeIncome,
	"expense": CashMovementTypeExpense,
	"despesa": CashMovementTypeExpense,
	"saida":   CashMovementTypeExpense,
	"saída":   CashMovementTypeExpense,
}

// ParseCashMovementType converts a stored type value into a CashMovementType.
func ParseCashMovementType(value string) (CashMovementType, error) {
	t, ok := legacyCashMovementTypes[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return "", fmt.Errorf("unknown cash movement type %q", value)
	}
	return t, nil
}

// IsValid reports whether the type is income or expense.
func (t CashMovementType) IsValid() bool {
	return t == CashMovementTypeIncome || t == CashMovementTypeExpense
}

// CashMovement represents a single cash register transaction.
type CashMovement struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Date        time.Time
	Type        CashMovementType
	Category    *string // Optional
	Description *string // Optional
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCashMovement creates a new CashMovement entity.
func NewCashMovement(
	ownerID uuid.UUID,
	date time.Time,
	movementType CashMovementType,
	category *string,
	description *string,
	amount decimal.Decimal,
) *CashMovement {
	now := time.Now().UTC()

	return &CashMovement{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Date:        date,
		Type:        movementType,
		Category:    category,
		Description: description,
		Amount:      amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GroupKey returns the category used for report grouping.
func (m *CashMovement) GroupKey() string {
	return keyOrFallback(m.Category, UncategorizedKey)
}

// keyOrFallback returns the trimmed value, or fallback when it is nil or blank.
func keyOrFallback(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
