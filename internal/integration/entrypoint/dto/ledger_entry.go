// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// CreateLedgerEntryRequest represents the request body for ledger entry creation.
type CreateLedgerEntryRequest struct {
	Date        string          `json:"date" binding:"required"`
	Type        string          `json:"type"`
	Category    *string         `json:"category,omitempty"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// UpdateLedgerEntryRequest represents the request body for ledger entry update.
type UpdateLedgerEntryRequest struct {
	Date        *string          `json:"date,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

// LedgerEntryResponse represents a ledger entry in API responses.
type LedgerEntryResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	Category    *string   `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LedgerEntryListResponse represents the response for listing ledger entries.
type LedgerEntryListResponse struct {
	LedgerEntries []LedgerEntryResponse `json:"ledger_entries"`
}

// ToLedgerEntryResponse converts a domain LedgerEntry to a LedgerEntryResponse DTO.
func ToLedgerEntryResponse(e *entity.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:          e.ID.String(),
		Date:        e.Date.Format(DateLayout),
		Type:        e.Type,
		Category:    e.Category,
		Description: e.Description,
		Amount:      money(e.Amount),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToLedgerEntryListResponse converts ledger entries to a LedgerEntryListResponse.
func ToLedgerEntryListResponse(entries []*entity.LedgerEntry) LedgerEntryListResponse {
	out := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = ToLedgerEntryResponse(e)
	}
	return LedgerEntryListResponse{LedgerEntries: out}
}
