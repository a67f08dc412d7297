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

// ledgerEntryRepository implements the adapter.LedgerEntryRepository interface.
type ledgerEntryRepository struct {
	db *gorm.DB
}

// NewLedgerEntryRepository creates a new ledger entry repository instance.
func NewLedgerEntryRepository(db *gorm.DB) adapter.LedgerEntryRepository {
	return &ledgerEntryRepository{db: db}
}

func (r *ledgerEntryRepository) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Create(model.LedgerEntryFromEntity(entry)).Error
}

func (r *ledgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error) {
	var m model.LedgerEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLedgerEntryNotFound
		}
		return nil, result.Error
	}
	return m.ToEntity(), nil
}

func (r *ledgerEntryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.LedgerEntry, error) {
	var models []model.LedgerEntryModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date DESC, created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.LedgerEntry, len(models))
	for i := range models {
		entries[i] = models[i].ToEntity()
	}
	return entries, nil
}

func (r *ledgerEntryRepository) Update(ctx context.Context, entry *entity.LedgerEntry) error {
	return r.db.WithContext(ctx).Save(model.LedgerEntryFromEntity(entry)).Error
}

func (r *ledgerEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LedgerEntryModel{}, "id = ?", id).Error
}
