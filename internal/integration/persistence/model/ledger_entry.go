// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// LedgerEntryModel represents the ledger_entries table in the database.
type LedgerEntryModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_ledger_entries_owner_date"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_ledger_entries_owner_date"`
	Type        string          `gorm:"type:varchar(50);not null;default:''"`
	Category    *string         `gorm:"type:varchar(100)"`
	Description *string         `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"`
}

// TableName returns the table name for the LedgerEntryModel.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}

// ToEntity converts a LedgerEntryModel to a domain LedgerEntry entity.
func (m *LedgerEntryModel) ToEntity() *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Date:        m.Date,
		Type:        m.Type,
		Category:    m.Category,
		Description: m.Description,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// LedgerEntryFromEntity creates a LedgerEntryModel from a domain LedgerEntry entity.
func LedgerEntryFromEntity(entry *entity.LedgerEntry) *LedgerEntryModel {
	return &LedgerEntryModel{
		ID:          entry.ID,
		OwnerID:     entry.OwnerID,
		Date:        entry.Date,
		Type:        entry.Type,
		Category:    entry.Category,
		Description: entry.Description,
		Amount:      entry.Amount,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
}
