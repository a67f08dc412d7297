// Package model defines database models for persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// CashMovementModel represents the cash_movements table in the database.
type CashMovementModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_cash_movements_owner_date"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_cash_movements_owner_date"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Category    *string         `gorm:"type:varchar(100)"`
	Description *string         `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the CashMovementModel.
func (CashMovementModel) TableName() string {
	return "cash_movements"
}

// ToEntity converts a CashMovementModel to a domain CashMovement entity.
// Legacy type spellings are normalized; unknown ones are an error.
func (m *CashMovementModel) ToEntity() (*entity.CashMovement, error) {
	movementType, err := entity.ParseCashMovementType(m.Type)
	if err != nil {
		return nil, fmt.Errorf("cash movement %s: %w", m.ID, err)
	}

	return &entity.CashMovement{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Date:        m.Date,
		Type:        movementType,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// CashMovementFromEntity creates a CashMovementModel from a domain CashMovement entity.
func CashMovementFromEntity(movement *entity.CashMovement) *CashMovementModel {
	return &CashMovementModel{
		ID:          movement.ID,
		OwnerID:     movement.OwnerID,
		Date:        movement.Date,
		Type:        string(movement.Type),
		Category:    movement.Category,
		Description: movement.Description,
		Amount:      movement.Amount,
		CreatedAt:   movement.CreatedAt,
		UpdatedAt:   movement.UpdatedAt,
	}
}
