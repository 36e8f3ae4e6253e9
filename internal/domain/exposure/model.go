package exposure

// DangerLevel is the heat index tier.
type DangerLevel string

const (
	DangerSafe           DangerLevel = "safe"
	DangerCaution        DangerLevel = "caution"
	DangerExtremeCaution DangerLevel = "extreme_caution"
	DangerDanger         DangerLevel = "danger"
	DangerExtremeDanger  DangerLevel = "extreme_danger"
)

// RiskLevel is the combined risk tier shared by the UV/heat and activity scorers.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskSevere   RiskLevel = "severe"
)

// OutdoorSafety is the final go/no-go call.
type OutdoorSafety string

const (
	SafetySafe    OutdoorSafety = "safe"
	SafetyCaution OutdoorSafety = "caution"
	SafetyAvoid   OutdoorSafety = "avoid"
)

// HeatWarningLevel is the active heat warning feeding the activity score.
type HeatWarningLevel string

const (
	HeatWarningNone     HeatWarningLevel = "none"
	HeatWarningModerate HeatWarningLevel = "moderate"
	HeatWarningHigh     HeatWarningLevel = "high"
	HeatWarningExtreme  HeatWarningLevel = "extreme"
)

// ActivityIntensity tunes the last block of activity guidance.
type ActivityIntensity string

const (
	IntensityLight    ActivityIntensity = "light"
	IntensityModerate ActivityIntensity = "moderate"
	IntensityIntense  ActivityIntensity = "intense"
)

// AQIScale names the scale an incoming AQI value is expressed in.
type AQIScale string

const (
	// AQIScaleEPA is the canonical 0-500 numeric scale.
	AQIScaleEPA AQIScale = "epa"
	// AQIScaleQualitative is the 1-5 band scale used by some upstream feeds.
	AQIScaleQualitative AQIScale = "qualitative"
)

// EnvironmentalReading is one resolved snapshot of outdoor conditions.
type EnvironmentalReading struct {
	TemperatureC  float64 `json:"temperatureC"`
	HumidityPct   float64 `json:"humidityPct"`
	WindSpeedMs   float64 `json:"windSpeedMs"`
	VisibilityM   float64 `json:"visibilityM"`
	CloudCoverPct float64 `json:"cloudCoverPct"`
	UVIndex       float64 `json:"uvIndex"`
	AQI           float64 `json:"aqi"`
}

// HeatIndexRequest is the payload of the heat index endpoint.
type HeatIndexRequest struct {
	TemperatureC float64 `json:"temperatureC"`
	HumidityPct  float64 `json:"humidityPct"`
}

// HeatIndexData is the perceived temperature and its tier.
type HeatIndexData struct {
	HeatIndexC      float64     `json:"heatIndexC"`
	HeatIndexF      float64     `json:"heatIndexF"`
	DangerLevel     DangerLevel `json:"dangerLevel"`
	Warnings        []string    `json:"warnings"`
	Recommendations []string    `json:"recommendations"`
}

// ExtremeHeatRequest is the payload of the extreme heat endpoint.
type ExtremeHeatRequest struct {
	UVIndex      float64 `json:"uvIndex"`
	TemperatureC float64 `json:"temperatureC"`
	HumidityPct  float64 `json:"humidityPct"`
	// Hour is the local hour of day, 0-23.
	Hour *int `json:"hour,omitempty"`
}

// ExtremeHeatWarning merges UV and heat index into one warning.
type ExtremeHeatWarning struct {
	IsActive        bool             `json:"isActive"`
	Severity        HeatWarningLevel `json:"severity"`
	CombinedRisk    RiskLevel        `json:"combinedRisk"`
	Score           int              `json:"score"`
	HeatIndexC      float64          `json:"heatIndexC"`
	UVIndex         float64          `json:"uvIndex"`
	Warnings        []string         `json:"warnings"`
	Recommendations []string         `json:"recommendations"`
	TimeOfDay       string           `json:"timeOfDay"`
}

// ActivityRequest is the payload of the activity safety endpoint.
type ActivityRequest struct {
	Reading  EnvironmentalReading `json:"reading"`
	AQIScale AQIScale             `json:"aqiScale,omitempty"`
	// HeatWarning overrides the warning derived from the reading when set.
	HeatWarning HeatWarningLevel  `json:"heatWarning,omitempty"`
	Intensity   ActivityIntensity `json:"intensity,omitempty"`
}

// RiskAssessment is the outdoor activity decision.
type RiskAssessment struct {
	OutdoorSafety    OutdoorSafety    `json:"outdoorSafety"`
	CombinedRisk     RiskLevel        `json:"combinedRisk"`
	TotalScore       int              `json:"totalScore"`
	WeatherScore     int              `json:"weatherScore"`
	AirQualityScore  int              `json:"airQualityScore"`
	HeatWarningScore int              `json:"heatWarningScore"`
	AQI              float64          `json:"aqi"`
	AQICategory      string           `json:"aqiCategory"`
	HeatWarning      HeatWarningLevel `json:"heatWarning"`
	Recommendations  []string         `json:"recommendations"`
	Warnings         []string         `json:"warnings"`
	BestTimeWindows  []string         `json:"bestTimeWindows"`
}
