package jetlag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/travel-wellness/internal/domain/timezone"
	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
	"github.com/yanqian/travel-wellness/pkg/util"
)

// Service exposes circadian realignment planning.
type Service interface {
	Plan(ctx context.Context, req Request) (Plan, error)
	Compare(ctx context.Context, req CompareRequest) (timezone.Difference, error)
}

// PlanCache memoizes plans. Plans are deterministic so any hit is exact.
type PlanCache interface {
	GetPlan(ctx context.Context, key string) (Plan, bool, error)
	SavePlan(ctx context.Context, key string, plan Plan, ttl time.Duration) error
}

type service struct {
	cfg    Config
	cache  PlanCache
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the jet-lag domain. cache may be nil.
func NewService(cfg Config, cache PlanCache, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		cache:  cache,
		logger: logger.With("component", "jetlag.service"),
		now:    util.NowUTC,
	}
}

func (s *service) Plan(ctx context.Context, req Request) (Plan, error) {
	at, err := s.resolveInstant(req.ReferenceTime)
	if err != nil {
		return Plan{}, err
	}
	bedtime := s.cfg.Policy.DefaultBedtime
	if req.Bedtime != nil {
		bedtime = util.NewClockTime(int(*req.Bedtime))
	}
	wakeTime := s.cfg.Policy.DefaultWakeTime
	if req.WakeTime != nil {
		wakeTime = util.NewClockTime(int(*req.WakeTime))
	}

	key := s.cacheKey(req, at, bedtime, wakeTime)
	if plan, ok := s.lookup(ctx, key); ok {
		return plan, nil
	}

	diff, err := timezone.DifferenceHours(req.OriginZone, req.DestinationZone, at)
	if err != nil {
		return Plan{}, err
	}
	destination, err := timezone.Load(req.DestinationZone)
	if err != nil {
		return Plan{}, err
	}

	plan := BuildPlan(diff, destination, bedtime, wakeTime, s.cfg.Policy)
	s.logger.Info("jet lag plan computed",
		"origin", plan.OriginZone,
		"destination", plan.DestinationZone,
		"difference_hours", plan.DifferenceHours,
		"severity", plan.Severity,
		"days", plan.DaysToAdjust,
	)
	s.store(ctx, key, plan)
	return plan, nil
}

func (s *service) Compare(_ context.Context, req CompareRequest) (timezone.Difference, error) {
	at, err := s.resolveInstant(req.ReferenceTime)
	if err != nil {
		return timezone.Difference{}, err
	}
	return timezone.DifferenceHours(req.OriginZone, req.DestinationZone, at)
}

// resolveInstant parses an RFC3339 instant, defaulting to now. The result is
// truncated to the minute so equal requests share a cache entry.
func (s *service) resolveInstant(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return s.now().UTC().Truncate(time.Minute), nil
	}
	at, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput, "referenceTime must be RFC3339", err)
	}
	return at.UTC().Truncate(time.Minute), nil
}

func (s *service) cacheKey(req Request, at time.Time, bedtime, wakeTime util.ClockTime) string {
	return fmt.Sprintf("plan:%s:%s:%d:%d:%d:%g",
		strings.TrimSpace(req.OriginZone),
		strings.TrimSpace(req.DestinationZone),
		at.Unix(),
		bedtime.Minutes(),
		wakeTime.Minutes(),
		s.cfg.Policy.MaxDailyAdjustmentHours,
	)
}

func (s *service) lookup(ctx context.Context, key string) (Plan, bool) {
	if s.cache == nil {
		return Plan{}, false
	}
	plan, ok, err := s.cache.GetPlan(ctx, key)
	if err != nil {
		s.logger.Warn("plan cache lookup failed", "key", key, "error", err)
		return Plan{}, false
	}
	return plan, ok
}

func (s *service) store(ctx context.Context, key string, plan Plan) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return
	}
	if err := s.cache.SavePlan(ctx, key, plan, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("plan cache save failed", "key", key, "error", err)
	}
}
