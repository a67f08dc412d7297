// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// CreateCashMovementRequest represents the request body for cash movement creation.
// Amount accepts a JSON number or a decimal string.
type CreateCashMovementRequest struct {
	Date        string          `json:"date" binding:"required"`
	Type        string          `json:"type" binding:"required"`
	Category    *string         `json:"category,omitempty"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
}

// UpdateCashMovementRequest represents the request body for cash movement update.
type UpdateCashMovementRequest struct {
	Date        *string          `json:"date,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

// CashMovementResponse represents a cash movement in API responses.
type CashMovementResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	Category    *string   `json:"category,omitempty"`
	Description *string   `json:"description,omitempty"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CashMovementListResponse represents the response for listing cash movements.
type CashMovementListResponse struct {
	CashMovements []CashMovementResponse `json:"cash_movements"`
}

// ToCashMovementResponse converts a domain CashMovement to a CashMovementResponse DTO.
func ToCashMovementResponse(m *entity.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		ID:          m.ID.String(),
		Date:        m.Date.Format(DateLayout),
		Type:        string(m.Type),
		Category:    m.Category,
		Description: m.Description,
		Amount:      money(m.Amount),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToCashMovementListResponse converts cash movements to a CashMovementListResponse.
func ToCashMovementListResponse(movements []*entity.CashMovement) CashMovementListResponse {
	out := make([]CashMovementResponse, len(movements))
	for i, m := range movements {
		out[i] = ToCashMovementResponse(m)
	}
	return CashMovementListResponse{CashMovements: out}
}
