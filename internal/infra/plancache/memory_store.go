package plancache

import (
	"context"
	"slices"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
)

const (
	memoryMaxEntries = 10_000
	memoryDefaultTTL = 30 * time.Minute
)

type planRecord struct {
	payload jetlag.Plan
	ttl     time.Duration
}

// MemoryStore is a bounded in-process plan cache. Entries expire ttl after
// they are written and the least valuable ones are evicted past the size cap.
type MemoryStore struct {
	plans      *otter.Cache[string, planRecord]
	defaultTTL time.Duration
}

// NewMemoryStore constructs a store backed by process memory. defaultTTL
// applies to saves without their own TTL.
func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return newMemoryStore(defaultTTL, memoryMaxEntries, nil)
}

func newMemoryStore(defaultTTL time.Duration, maxEntries int, clock otter.Clock) *MemoryStore {
	if defaultTTL <= 0 {
		defaultTTL = memoryDefaultTTL
	}
	return &MemoryStore{
		plans: otter.Must(&otter.Options[string, planRecord]{
			MaximumSize:     maxEntries,
			InitialCapacity: 64,
			ExpiryCalculator: otter.ExpiryWritingFunc(func(e otter.Entry[string, planRecord]) time.Duration {
				return e.Value.ttl
			}),
			Clock: clock,
		}),
		defaultTTL: defaultTTL,
	}
}

// GetPlan implements jetlag.PlanCache.
func (s *MemoryStore) GetPlan(_ context.Context, key string) (jetlag.Plan, bool, error) {
	if key == "" {
		return jetlag.Plan{}, false, nil
	}
	record, ok := s.plans.GetIfPresent(key)
	if !ok {
		return jetlag.Plan{}, false, nil
	}
	return clonePlan(record.payload), true, nil
}

// SavePlan caches the plan for ttl, or the store default when ttl is not positive.
func (s *MemoryStore) SavePlan(_ context.Context, key string, plan jetlag.Plan, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	s.plans.Set(key, planRecord{payload: clonePlan(plan), ttl: ttl})
	return nil
}

// Len reports how many live entries are held after pending maintenance runs.
func (s *MemoryStore) Len() int {
	s.plans.CleanUp()
	return s.plans.EstimatedSize()
}

// clonePlan copies the slices so callers cannot mutate cached entries.
func clonePlan(p jetlag.Plan) jetlag.Plan {
	out := p
	out.DailySchedule = slices.Clone(p.DailySchedule)
	out.LightSchedule = slices.Clone(p.LightSchedule)
	out.Recommendations = slices.Clone(p.Recommendations)
	return out
}

var _ jetlag.PlanCache = (*MemoryStore)(nil)
