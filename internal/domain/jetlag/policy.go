package jetlag

import (
	"errors"
	"math"
	"time"

	"github.com/yanqian/travel-wellness/pkg/util"
)

// MaxDailyAdjustmentHours is the largest clock shift the body tolerates per day.
const MaxDailyAdjustmentHours = 1.5

// Policy groups every threshold the planner relies on.
type Policy struct {
	MaxDailyAdjustmentHours float64
	// Upper bounds (inclusive) of each severity tier in hours.
	MinimalMaxHours  float64
	MildMaxHours     float64
	ModerateMaxHours float64
	DefaultBedtime   util.ClockTime
	DefaultWakeTime  util.ClockTime
}

// DefaultPolicy returns the stock thresholds.
func DefaultPolicy() Policy {
	return Policy{
		MaxDailyAdjustmentHours: MaxDailyAdjustmentHours,
		MinimalMaxHours:         2,
		MildMaxHours:            4,
		ModerateMaxHours:        8,
		DefaultBedtime:          util.ClockTime(23 * 60),
		DefaultWakeTime:         util.ClockTime(7 * 60),
	}
}

// Validate rejects policies that would make the planner diverge.
func (p Policy) Validate() error {
	if math.IsNaN(p.MaxDailyAdjustmentHours) || p.MaxDailyAdjustmentHours < 0.25 || p.MaxDailyAdjustmentHours > 24 {
		return errors.New("maxDailyAdjustmentHours must be between 0.25 and 24")
	}
	if !(p.MinimalMaxHours >= 0 && p.MinimalMaxHours < p.MildMaxHours && p.MildMaxHours < p.ModerateMaxHours) {
		return errors.New("severity thresholds must be non-negative and strictly increasing")
	}
	return nil
}

// Config wires runtime dependencies for the jet-lag domain.
type Config struct {
	Policy   Policy
	CacheTTL time.Duration
}
