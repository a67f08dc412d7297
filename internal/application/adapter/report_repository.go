// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// ReportRepository defines the interface for report label persistence.
// Labels are immutable once created; there is no Update.
type ReportRepository interface {
	// Create inserts a new report label.
	Create(ctx context.Context, record *entity.ReportRecord) error

	// FindByID retrieves a report label by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReportRecord, error)

	// FindByOwner retrieves the owner's report labels, newest first.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.ReportRecord, error)

	// Delete removes a report label.
	Delete(ctx context.Context, id uuid.UUID) error
}
