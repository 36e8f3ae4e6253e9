package hydration

import (
	"errors"
	"math"
)

// Policy holds the tunable constants of the intake model.
type Policy struct {
	BaseMlPerKg float64
	WakingHours int
}

// DefaultPolicy returns 35 ml/kg over 16 waking hours.
func DefaultPolicy() Policy {
	return Policy{BaseMlPerKg: 35, WakingHours: 16}
}

// Validate rejects non-positive or non-finite constants.
func (p Policy) Validate() error {
	if !(p.BaseMlPerKg > 0) || math.IsInf(p.BaseMlPerKg, 0) {
		return errors.New("baseMlPerKg must be positive")
	}
	if p.WakingHours <= 0 || p.WakingHours > 24 {
		return errors.New("wakingHours must be between 1 and 24")
	}
	return nil
}

// Config wires runtime knobs for the hydration domain.
type Config struct {
	Policy Policy
}

var activityMl = map[ActivityLevel]float64{
	ActivitySedentary: 0,
	ActivityLight:     250,
	ActivityModerate:  500,
	ActivityIntense:   1000,
}

var activityRiskPoints = map[ActivityLevel]int{
	ActivitySedentary: 0,
	ActivityLight:     1,
	ActivityModerate:  2,
	ActivityIntense:   3,
}
