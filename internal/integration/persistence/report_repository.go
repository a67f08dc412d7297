// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
	domainerror "github.com/gestor-financeiro/backend/internal/domain/error"
	"github.com/gestor-financeiro/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report label repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportRepository {
	return &reportRepository{db: db}
}

// Create inserts a new report label.
func (r *reportRepository) Create(ctx context.Context, record *entity.ReportRecord) error {
	return r.db.WithContext(ctx).Create(model.ReportFromEntity(record)).Error
}

// FindByID retrieves a report label by its ID.
func (r *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReportRecord, error) {
	var m model.ReportModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrReportNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

// FindByOwner retrieves the owner's report labels, newest first.
func (r *reportRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ReportRecord, error) {
	var models []model.ReportModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.ReportRecord, len(models))
	for i := range models {
		records[i] = models[i].ToEntity()
	}
	return records, nil
}

// Delete removes a report label. Labels are hard deleted.
func (r *reportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ReportModel{}, "id = ?", id).Error
}
