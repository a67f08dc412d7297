// Package cache implements the report preview snapshot stores.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
)

const previewKeyPrefix = "report:preview:"

// commitScript stores the snapshot only while the generation counter still
// matches the caller's token.
var commitScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
	return 1
end
return 0
`)

// redisPreviewStore implements adapter.ReportPreviewStore on Redis.
type redisPreviewStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPreviewStore creates a Redis backed preview store. Snapshots and
// generation counters expire after ttl of inactivity.
func NewRedisPreviewStore(client *redis.Client, ttl time.Duration) adapter.ReportPreviewStore {
	return &redisPreviewStore{
		client: client,
		ttl:    ttl,
	}
}

func generationKey(ownerID uuid.UUID) string {
	return previewKeyPrefix + ownerID.String() + ":gen"
}

func snapshotKey(ownerID uuid.UUID) string {
	return previewKeyPrefix + ownerID.String() + ":snapshot"
}

// Begin implements adapter.ReportPreviewStore.
func (s *redisPreviewStore) Begin(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, generationKey(ownerID))
		pipe.PExpire(ctx, generationKey(ownerID), s.ttl)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to start preview generation: %w", err)
	}
	return incr.Val(), nil
}

// Commit implements adapter.ReportPreviewStore.
func (s *redisPreviewStore) Commit(ctx context.Context, ownerID uuid.UUID, generation int64, snapshot *adapter.PreviewSnapshot) (bool, error) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return false, fmt.Errorf("failed to encode preview snapshot: %w", err)
	}

	stored, err := commitScript.Run(ctx, s.client,
		[]string{generationKey(ownerID), snapshotKey(ownerID)},
		strconv.FormatInt(generation, 10),
		payload,
		s.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to commit preview snapshot: %w", err)
	}
	return stored == 1, nil
}

// Load implements adapter.ReportPreviewStore.
func (s *redisPreviewStore) Load(ctx context.Context, ownerID uuid.UUID) (*adapter.PreviewSnapshot, error) {
	payload, err := s.client.Get(ctx, snapshotKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load preview snapshot: %w", err)
	}

	var snapshot adapter.PreviewSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode preview snapshot: %w", err)
	}
	return &snapshot, nil
}
