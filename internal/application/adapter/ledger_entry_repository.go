// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// LedgerEntryRepository defines the interface for ledger persistence operations.
type LedgerEntryRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.LedgerEntry, error)

	// FindByOwner retrieves every ledger entry of the owner, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.LedgerEntry, error)

	Update(ctx context.Context, entry *entity.LedgerEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}
