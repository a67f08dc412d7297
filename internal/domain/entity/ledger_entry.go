// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OtherLedgerTypeKey is the grouping key for ledger entries without a type.
const OtherLedgerTypeKey = "Other"

// LedgerEntry represents a recorded obligation or expense line.
// Every ledger entry counts as debt in reports, whatever its type.
type LedgerEntry struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Date        time.Time
	Type        string // e.g. "ICMS", "Fornecedor"; may be blank
	Category    *string
	Description *string
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLedgerEntry creates a new LedgerEntry entity.
func NewLedgerEntry(
	ownerID uuid.UUID,
	date time.Time,
	entryType string,
	category *string,
	description *string,
	amount decimal.Decimal,
) *LedgerEntry {
	now := time.Now().UTC()

	return &LedgerEntry{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Date:        date,
		Type:        entryType,
		Category:    category,
		Description: description,
		Amount:      amount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GroupKey returns the ledger type used for report grouping.
func (e *LedgerEntry) GroupKey() string {
	return keyOrFallback(&e.Type, OtherLedgerTypeKey)
}
