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

// cashMovementRepository implements the adapter.CashMovementRepository interface.
type cashMovementRepository struct {
	db *gorm.DB
}

// NewCashMovementRepository creates a new cash movement repository instance.
func NewCashMovementRepository(db *gorm.DB) adapter.CashMovementRepository {
	return &cashMovementRepository{db: db}
}

// Create creates a new cash movement in the database.
func (r *cashMovementRepository) Create(ctx context.Context, movement *entity.CashMovement) error {
	return r.db.WithContext(ctx).Create(model.CashMovementFromEntity(movement)).Error
}

// FindByID retrieves a cash movement by its ID.
func (r *cashMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CashMovement, error) {
	var m model.CashMovementModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCashMovementNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity()
}

// FindByOwner retrieves every cash movement of the owner, newest first.
func (r *cashMovementRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CashMovement, error) {
	var models []model.CashMovementModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	movements := make([]*entity.CashMovement, len(models))
	for i := range models {
		movement, err := models[i].ToEntity()
		if err != nil {
			return nil, err
		}
		movements[i] = movement
	}
	return movements, nil
}

// Update updates an existing cash movement in the database.
func (r *cashMovementRepository) Update(ctx context.Context, movement *entity.CashMovement) error {
	return r.db.WithContext(ctx).Save(model.CashMovementFromEntity(movement)).Error
}

// Delete removes a cash movement from the database (soft delete).
func (r *cashMovementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CashMovementModel{}, "id = ?", id).Error
}
