package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestor-financeiro/backend/internal/application/adapter"
	"github.com/gestor-financeiro/backend/internal/domain/entity"
)

func newRedisStore(t *testing.T, ttl time.Duration) (adapter.ReportPreviewStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisPreviewStore(client, ttl), mr
}

func snapshot(generation int64, period entity.ReportPeriod, income string) *adapter.PreviewSnapshot {
	category := "Vendas"
	return &adapter.PreviewSnapshot{
		Generation: generation,
		Period:     period,
		ComputedAt: time.Date(2025, time.January, 20, 10, 0, 0, 0, time.UTC),
		Data: &entity.ReportData{
			TotalIncome: decimal.RequireFromString(income),
			ByCategory:  map[string]decimal.Decimal{"Vendas": decimal.RequireFromString(income)},
			CashMovements: []*entity.CashMovement{
				entity.NewCashMovement(uuid.New(), time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
					entity.CashMovementTypeIncome, &category, nil, decimal.RequireFromString(income)),
			},
		},
	}
}

func stores(t *testing.T) map[string]adapter.ReportPreviewStore {
	redisStore, _ := newRedisStore(t, time.Minute)
	return map[string]adapter.ReportPreviewStore{
		"redis":  redisStore,
		"memory": NewMemoryPreviewStore(time.Minute),
	}
}

func TestPreviewStore_LatestGenerationWins(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			owner := uuid.New()

			first, err := store.Begin(ctx, owner)
			require.NoError(t, err)
			second, err := store.Begin(ctx, owner)
			require.NoError(t, err)
			assert.Greater(t, second, first)

			ok, err := store.Commit(ctx, owner, second, snapshot(second, entity.ReportPeriodCurrentYear, "300"))
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = store.Commit(ctx, owner, first, snapshot(first, entity.ReportPeriodCurrentMonth, "100"))
			require.NoError(t, err)
			assert.False(t, ok, "stale generation must not overwrite")

			got, err := store.Load(ctx, owner)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, entity.ReportPeriodCurrentYear, got.Period)
			assert.True(t, got.Data.TotalIncome.Equal(decimal.NewFromInt(300)))
			assert.True(t, got.Data.ByCategory["Vendas"].Equal(decimal.NewFromInt(300)))
			require.Len(t, got.Data.CashMovements, 1)
			assert.Equal(t, "Vendas", got.Data.CashMovements[0].GroupKey())
		})
	}
}

func TestPreviewStore_KeepsCustomRange(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			owner := uuid.New()

			gen, err := store.Begin(ctx, owner)
			require.NoError(t, err)
			snap := snapshot(gen, entity.ReportPeriodCustom, "50")
			snap.Custom = &entity.DateRange{
				Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			}
			ok, err := store.Commit(ctx, owner, gen, snap)
			require.NoError(t, err)
			require.True(t, ok)

			got, err := store.Load(ctx, owner)
			require.NoError(t, err)
			require.NotNil(t, got.Custom)
			assert.True(t, got.Custom.Start.Equal(snap.Custom.Start))
			assert.True(t, got.Custom.End.Equal(snap.Custom.End))
		})
	}
}

func TestPreviewStore_OwnersAreIsolated(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			alice, bob := uuid.New(), uuid.New()

			gen, err := store.Begin(ctx, alice)
			require.NoError(t, err)
			_, err = store.Begin(ctx, bob)
			require.NoError(t, err)

			ok, err := store.Commit(ctx, alice, gen, snapshot(gen, entity.ReportPeriodAll, "50"))
			require.NoError(t, err)
			assert.True(t, ok)

			got, err := store.Load(ctx, bob)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestRedisPreviewStore_Expires(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t, time.Minute)
	owner := uuid.New()

	gen, err := store.Begin(ctx, owner)
	require.NoError(t, err)
	ok, err := store.Commit(ctx, owner, gen, snapshot(gen, entity.ReportPeriodAll, "10"))
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Minute)

	got, err := store.Load(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryPreviewStore_Expires(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPreviewStore(time.Minute)
	now := time.Date(2025, time.January, 20, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	owner := uuid.New()

	gen, err := store.Begin(ctx, owner)
	require.NoError(t, err)
	ok, err := store.Commit(ctx, owner, gen, snapshot(gen, entity.ReportPeriodAll, "10"))
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)

	got, err := store.Load(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got)

	// A commit for a generation that expired is dropped as well.
	ok, err = store.Commit(ctx, owner, gen, snapshot(gen, entity.ReportPeriodAll, "10"))
	require.NoError(t, err)
	assert.False(t, ok)
}
