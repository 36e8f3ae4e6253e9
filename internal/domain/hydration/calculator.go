package hydration

import (
	"fmt"
	"math"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

// Calculate derives the daily intake target and the dehydration outlook.
func Calculate(req Request, p Policy) (Recommendation, error) {
	if req.ActivityLevel == "" {
		req.ActivityLevel = ActivitySedentary
	}
	if err := validate(req); err != nil {
		return Recommendation{}, err
	}

	base := req.BodyWeightKg * p.BaseMlPerKg
	adj := Adjust(req)
	daily := base/1000 + adj.Total()/1000
	hourly := int(math.Round(daily * 1000 / float64(p.WakingHours)))

	score := RiskScore(req)
	risk := ClassifyRisk(score)
	interval := ReminderMinutes(risk, req.TemperatureC)

	return Recommendation{
		DailyIntakeLiters:       daily,
		HourlyIntakeMl:          hourly,
		BaseIntakeMl:            base,
		Adjustments:             adj,
		DehydrationRisk:         risk,
		RiskScore:               score,
		ReminderIntervalMinutes: interval,
		Warnings:                warnings(req, risk),
		Recommendations:         advice(req, hourly, interval),
	}, nil
}

// Adjust computes the per-factor additions to the base intake.
func Adjust(req Request) Adjustments {
	var a Adjustments
	if req.TemperatureC > 25 {
		a.TemperatureMl = (req.TemperatureC - 25) * 150
		if req.TemperatureC > 35 {
			a.TemperatureMl += 500
		}
	}
	if req.AltitudeM > 2000 {
		a.AltitudeMl = math.Floor((req.AltitudeM-2000)/500) * 100
	}
	switch {
	case req.HumidityPct > 70:
		a.HumidityMl = 200
	case req.HumidityPct < 30:
		a.HumidityMl = 300
	}
	a.ActivityMl = activityMl[req.ActivityLevel]
	return a
}

// RiskScore sums the independent dehydration risk points.
func RiskScore(req Request) int {
	score := 0
	switch {
	case req.TemperatureC > 35:
		score += 3
	case req.TemperatureC > 30:
		score += 2
	case req.TemperatureC > 25:
		score++
	}
	switch {
	case req.HumidityPct > 80 || req.HumidityPct < 20:
		score += 2
	case req.HumidityPct > 70 || req.HumidityPct < 30:
		score++
	}
	switch {
	case req.AltitudeM > 3000:
		score += 2
	case req.AltitudeM > 2000:
		score++
	}
	score += activityRiskPoints[req.ActivityLevel]
	if req.WindSpeedMs > 15 {
		score++
	}
	return score
}

// ClassifyRisk maps a point score onto a risk tier.
func ClassifyRisk(score int) RiskLevel {
	switch {
	case score >= 8:
		return RiskSevere
	case score >= 6:
		return RiskHigh
	case score >= 4:
		return RiskModerate
	default:
		return RiskLow
	}
}

// ReminderMinutes returns how often the traveler should be prompted to drink.
func ReminderMinutes(risk RiskLevel, temperatureC float64) int {
	switch risk {
	case RiskSevere:
		return 15
	case RiskHigh:
		return 20
	case RiskModerate:
		return 30
	}
	if temperatureC > 30 {
		return 45
	}
	return 60
}

func validate(req Request) error {
	checks := []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"bodyWeightKg", req.BodyWeightKg, 0, 500},
		{"temperatureC", req.TemperatureC, -90, 60},
		{"humidityPct", req.HumidityPct, 0, 100},
		{"altitudeM", req.AltitudeM, 0, 9000},
		{"windSpeedMs", req.WindSpeedMs, 0, 120},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return apperrors.Wrap(apperrors.CodeInvalidInput, c.name+" must be a finite number", nil)
		}
		if c.value < c.min || c.value > c.max {
			return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("%s must be between %g and %g", c.name, c.min, c.max), nil)
		}
	}
	if req.BodyWeightKg == 0 {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "bodyWeightKg must be positive", nil)
	}
	if _, ok := activityMl[req.ActivityLevel]; !ok {
		return apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown activity level %q", req.ActivityLevel), nil)
	}
	return nil
}

func warnings(req Request, risk RiskLevel) []string {
	out := []string{}
	switch {
	case req.TemperatureC > 35:
		out = append(out, "Extreme heat sharply increases sweat losses.")
	case req.TemperatureC > 30:
		out = append(out, "Hot weather raises fluid needs.")
	}
	if req.AltitudeM > 2000 {
		out = append(out, "High altitude increases water lost through breathing.")
	}
	switch risk {
	case RiskSevere:
		out = append(out, "Severe dehydration risk: watch for dizziness, confusion and dark urine.")
	case RiskHigh:
		out = append(out, "High dehydration risk: drink on a schedule rather than on thirst.")
	}
	return out
}

func advice(req Request, hourly, interval int) []string {
	out := []string{
		fmt.Sprintf("Drink about %d ml every waking hour.", hourly),
		fmt.Sprintf("Set a reminder every %d minutes.", interval),
	}
	switch {
	case req.HumidityPct > 70:
		out = append(out, "Humid air slows sweat evaporation; drink before you feel thirsty.")
	case req.HumidityPct < 30:
		out = append(out, "Dry air increases insensible water loss; sip water regularly.")
	}
	if req.AltitudeM > 2000 {
		out = append(out, "Add a glass of water for every 500 m above 2000 m.")
	}
	switch req.ActivityLevel {
	case ActivityIntense:
		out = append(out, "Replace electrolytes during intense exercise, not just water.")
	case ActivityModerate:
		out = append(out, "Drink 250-500 ml for each hour of activity.")
	}
	if req.WindSpeedMs > 15 {
		out = append(out, "Wind speeds up evaporation; keep a bottle within reach.")
	}
	return out
}
