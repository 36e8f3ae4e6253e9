package exposure

import (
	"errors"
	"fmt"
	"math"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

// Breakpoints turn an additive point score into a RiskLevel.
type Breakpoints struct {
	Severe   int
	High     int
	Moderate int
}

// Classify applies the breakpoints; each bound is inclusive.
func (b Breakpoints) Classify(score int) RiskLevel {
	switch {
	case score >= b.Severe:
		return RiskSevere
	case score >= b.High:
		return RiskHigh
	case score >= b.Moderate:
		return RiskModerate
	default:
		return RiskLow
	}
}

func (b Breakpoints) validate() error {
	if !(b.Moderate > 0 && b.Moderate < b.High && b.High < b.Severe) {
		return errors.New("breakpoints must be positive and strictly increasing")
	}
	return nil
}

// Policy groups the tunable thresholds of the risk engine.
type Policy struct {
	UVHeat   Breakpoints
	Activity Breakpoints
}

// DefaultPolicy returns the stock breakpoints.
func DefaultPolicy() Policy {
	return Policy{
		UVHeat:   Breakpoints{Severe: 7, High: 5, Moderate: 3},
		Activity: Breakpoints{Severe: 10, High: 7, Moderate: 4},
	}
}

// Validate checks both breakpoint sets.
func (p Policy) Validate() error {
	if err := p.UVHeat.validate(); err != nil {
		return fmt.Errorf("uv/heat: %w", err)
	}
	if err := p.Activity.validate(); err != nil {
		return fmt.Errorf("activity: %w", err)
	}
	return nil
}

type bound struct {
	name     string
	value    float64
	min, max float64
}

// checkInputs rejects NaN, infinities and values outside their physical range
// before any formula sees them.
func checkInputs(bounds ...bound) error {
	for _, b := range bounds {
		if math.IsNaN(b.value) || math.IsInf(b.value, 0) {
			return apperrors.Wrap(apperrors.CodeInvalidInput, b.name+" must be a finite number", nil)
		}
		if b.value < b.min || b.value > b.max {
			return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("%s must be between %g and %g", b.name, b.min, b.max), nil)
		}
	}
	return nil
}

func temperatureBound(v float64) bound {
	return bound{name: "temperatureC", value: v, min: -90, max: 60}
}

func humidityBound(v float64) bound {
	return bound{name: "humidityPct", value: v, min: 0, max: 100}
}

func uvBound(v float64) bound {
	return bound{name: "uvIndex", value: v, min: 0, max: 30}
}

func (r EnvironmentalReading) validate() error {
	return checkInputs(
		temperatureBound(r.TemperatureC),
		humidityBound(r.HumidityPct),
		bound{name: "windSpeedMs", value: r.WindSpeedMs, min: 0, max: 120},
		bound{name: "visibilityM", value: r.VisibilityM, min: 0, max: math.MaxFloat64},
		bound{name: "cloudCoverPct", value: r.CloudCoverPct, min: 0, max: 100},
		uvBound(r.UVIndex),
		bound{name: "aqi", value: r.AQI, min: 0, max: 1000},
	)
}
