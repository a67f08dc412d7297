package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
)

type previewEntry struct {
	generation int64
	snapshot   *adapter.PreviewSnapshot
	expiresAt  time.Time
}

// MemoryPreviewStore implements adapter.ReportPreviewStore in process memory.
// It is used when Redis is not configured; previews are then per instance.
type MemoryPreviewStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*previewEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryPreviewStore creates a new in-memory preview store.
func NewMemoryPreviewStore(ttl time.Duration) *MemoryPreviewStore {
	return &MemoryPreviewStore{
		entries: make(map[uuid.UUID]*previewEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Begin implements adapter.ReportPreviewStore.
func (s *MemoryPreviewStore) Begin(_ context.Context, ownerID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.live(ownerID)
	if entry == nil {
		entry = &previewEntry{}
		s.entries[ownerID] = entry
	}
	entry.generation++
	entry.expiresAt = s.now().Add(s.ttl)
	return entry.generation, nil
}

// Commit implements adapter.ReportPreviewStore.
func (s *MemoryPreviewStore) Commit(_ context.Context, ownerID uuid.UUID, generation int64, snapshot *adapter.PreviewSnapshot) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.live(ownerID)
	if entry == nil || entry.generation != generation {
		return false, nil
	}
	entry.snapshot = snapshot
	entry.expiresAt = s.now().Add(s.ttl)
	return true, nil
}

// Load implements adapter.ReportPreviewStore.
func (s *MemoryPreviewStore) Load(_ context.Context, ownerID uuid.UUID) (*adapter.PreviewSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.live(ownerID)
	if entry == nil {
		return nil, nil
	}
	return entry.snapshot, nil
}

// live returns the owner's entry, dropping it if expired. Callers hold mu.
func (s *MemoryPreviewStore) live(ownerID uuid.UUID) *previewEntry {
	entry, ok := s.entries[ownerID]
	if !ok {
		return nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, ownerID)
		return nil
	}
	return entry
}
