package hydration

import "time"

// ActivityLevel is the traveler's planned exertion for the day.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityIntense   ActivityLevel = "intense"
)

// RiskLevel is the dehydration risk tier.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskSevere   RiskLevel = "severe"
)

// Request carries the resolved inputs of the hydration model.
type Request struct {
	BodyWeightKg  float64       `json:"bodyWeightKg"`
	TemperatureC  float64       `json:"temperatureC"`
	HumidityPct   float64       `json:"humidityPct"`
	AltitudeM     float64       `json:"altitudeM"`
	WindSpeedMs   float64       `json:"windSpeedMs"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}

// Adjustments breaks the extra intake down by factor, in ml.
type Adjustments struct {
	TemperatureMl float64 `json:"temperatureMl"`
	AltitudeMl    float64 `json:"altitudeMl"`
	HumidityMl    float64 `json:"humidityMl"`
	ActivityMl    float64 `json:"activityMl"`
}

// Total sums every factor.
func (a Adjustments) Total() float64 {
	return a.TemperatureMl + a.AltitudeMl + a.HumidityMl + a.ActivityMl
}

// Recommendation is the daily intake target and dehydration outlook.
type Recommendation struct {
	DailyIntakeLiters       float64     `json:"dailyIntakeLiters"`
	HourlyIntakeMl          int         `json:"hourlyIntakeMl"`
	BaseIntakeMl            float64     `json:"baseIntakeMl"`
	Adjustments             Adjustments `json:"adjustments"`
	DehydrationRisk         RiskLevel   `json:"dehydrationRisk"`
	RiskScore               int         `json:"riskScore"`
	ReminderIntervalMinutes int         `json:"reminderIntervalMinutes"`
	Warnings                []string    `json:"warnings"`
	Recommendations         []string    `json:"recommendations"`
}

// ReminderInterval returns ReminderIntervalMinutes as a duration.
func (r Recommendation) ReminderInterval() time.Duration {
	return time.Duration(r.ReminderIntervalMinutes) * time.Minute
}
