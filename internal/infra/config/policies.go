package config

import (
	"github.com/yanqian/travel-wellness/internal/domain/exposure"
	"github.com/yanqian/travel-wellness/internal/domain/hydration"
	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
)

// Policy converts the section into the planner's policy record.
func (c JetLagConfig) Policy() jetlag.Policy {
	return jetlag.Policy{
		MaxDailyAdjustmentHours: c.MaxDailyAdjustmentHours,
		MinimalMaxHours:         c.MinimalMaxHours,
		MildMaxHours:            c.MildMaxHours,
		ModerateMaxHours:        c.ModerateMaxHours,
		DefaultBedtime:          c.DefaultBedtime,
		DefaultWakeTime:         c.DefaultWakeTime,
	}
}

// Policy converts the section into the risk engine's policy record. Only the
// activity breakpoints are configurable; the UV/heat combiner keeps its stock values.
func (c ExposureConfig) Policy() exposure.Policy {
	policy := exposure.DefaultPolicy()
	policy.Activity = exposure.Breakpoints{
		Severe:   c.Severe,
		High:     c.High,
		Moderate: c.Moderate,
	}
	return policy
}

// Policy converts the section into the intake model's policy record.
func (c HydrationConfig) Policy() hydration.Policy {
	return hydration.Policy{
		BaseMlPerKg: c.BaseMlPerKg,
		WakingHours: c.WakingHours,
	}
}
