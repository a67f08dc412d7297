// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// CashMovementRepository defines the interface for cash register persistence operations.
type CashMovementRepository interface {
	// Create inserts a new cash movement.
	Create(ctx context.Context, movement *entity.CashMovement) error

	// FindByID retrieves a cash movement by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CashMovement, error)

	// FindByOwner retrieves every cash movement of the owner, newest first.
	// No period filter is applied here.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.CashMovement, error)

	// Update persists changes to an existing cash movement.
	Update(ctx context.Context, movement *entity.CashMovement) error

	// Delete removes a cash movement.
	Delete(ctx context.Context, id uuid.UUID) error
}
