// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

// PreviewSnapshot is the last aggregation committed for an owner's preview session.
type PreviewSnapshot struct {
	Generation int64               `json:"generation"`
	Period     entity.ReportPeriod `json:"period"`
	Custom     *entity.DateRange   `json:"custom,omitempty"` // Set when Period is custom
	ComputedAt time.Time           `json:"computed_at"`
	Data       *entity.ReportData  `json:"data"`
}

// ReportPreviewStore keeps one preview snapshot per owner with last-request-wins semantics.
type ReportPreviewStore interface {
	// Begin starts a new generation for the owner and returns its token.
	// Any generation started earlier becomes stale.
	Begin(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Commit stores the snapshot only if generation is still the latest one.
	// It reports whether the snapshot was stored.
	Commit(ctx context.Context, ownerID uuid.UUID, generation int64, snapshot *PreviewSnapshot) (bool, error)

	// Load returns the committed snapshot, or nil when there is none.
	Load(ctx context.Context, ownerID uuid.UUID) (*PreviewSnapshot, error)
}
