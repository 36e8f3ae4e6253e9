package plancache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	_, ok, err := store.GetPlan(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	plan := jetlag.Plan{
		OriginZone:      "America/New_York",
		DestinationZone: "Asia/Tokyo",
		DifferenceHours: 13,
		Recommendations: []string{"sleep early"},
	}
	require.NoError(t, store.SavePlan(ctx, "k", plan, time.Minute))

	got, ok, err := store.GetPlan(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, plan, got)

	got.Recommendations[0] = "mutated"
	again, _, err := store.GetPlan(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "sleep early", again.Recommendations[0])
}

func TestMemoryStoreEvictsExpiredEntries(t *testing.T) {
	clock := newFakeClock()
	store := newMemoryStore(time.Hour, memoryMaxEntries, clock)
	ctx := context.Background()

	require.NoError(t, store.SavePlan(ctx, "short", jetlag.Plan{DifferenceHours: 3}, time.Minute))
	require.NoError(t, store.SavePlan(ctx, "default", jetlag.Plan{DifferenceHours: 5}, 0))
	require.Equal(t, 2, store.Len())

	clock.advance(2 * time.Minute)

	_, ok, err := store.GetPlan(ctx, "short")
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 1, store.Len())

	plan, ok, err := store.GetPlan(ctx, "default")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 5, plan.DifferenceHours)

	clock.advance(2 * time.Hour)
	require.Zero(t, store.Len())
}

func TestMemoryStoreStaysBounded(t *testing.T) {
	store := newMemoryStore(time.Hour, 8, nil)
	ctx := context.Background()

	for i := range 200 {
		require.NoError(t, store.SavePlan(ctx, fmt.Sprintf("plan-%d", i), jetlag.Plan{DifferenceHours: i % 24}, time.Hour))
	}
	require.LessOrEqual(t, store.Len(), 8)
}

func TestMemoryStoreBacksPlanner(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()
	cfg := jetlag.Config{Policy: jetlag.DefaultPolicy(), CacheTTL: time.Hour}
	svc := jetlag.NewService(cfg, store, discardLogger())

	req := jetlag.Request{
		OriginZone:      "America/New_York",
		DestinationZone: "Asia/Tokyo",
		ReferenceTime:   "2024-07-01T12:00:00Z",
	}
	first, err := svc.Plan(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	second, err := svc.Plan(ctx, req)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, store.Len())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeClock struct {
	nanos atomic.Int64
}

func newFakeClock() *fakeClock {
	c := &fakeClock{}
	c.nanos.Store(time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC).UnixNano())
	return c
}

func (c *fakeClock) NowNano() int64 { return c.nanos.Load() }

func (c *fakeClock) Tick(time.Duration) <-chan time.Time { return make(chan time.Time) }

func (c *fakeClock) advance(d time.Duration) { c.nanos.Add(int64(d)) }
