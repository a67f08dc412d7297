// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// ReportModel represents the reports table. Rows are report labels only;
// aggregated data is never stored.
type ReportModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type      string     `gorm:"type:varchar(20);not null"`
	Period    string     `gorm:"type:varchar(20);not null"`
	Format    string     `gorm:"type:varchar(10);not null"`
	StartDate *time.Time `gorm:"type:date"`
	EndDate   *time.Time `gorm:"type:date"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for the ReportModel.
func (ReportModel) TableName() string {
	return "reports"
}

// ToEntity converts a ReportModel to a domain ReportRecord entity.
func (m *ReportModel) ToEntity() *entity.ReportRecord {
	return &entity.ReportRecord{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Type:      entity.ReportType(m.Type),
		Period:    entity.ReportPeriod(m.Period),
		Format:    entity.ReportFormat(m.Format),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
	}
}

// ReportFromEntity creates a ReportModel from a domain ReportRecord entity.
func ReportFromEntity(record *entity.ReportRecord) *ReportModel {
	return &ReportModel{
		ID:        record.ID,
		OwnerID:   record.OwnerID,
		Type:      string(record.Type),
		Period:    string(record.Period),
		Format:    string(record.Format),
		StartDate: record.StartDate,
		EndDate:   record.EndDate,
		CreatedAt: record.CreatedAt,
	}
}
