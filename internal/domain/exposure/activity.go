package exposure

import (
	"fmt"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

var heatWarningPoints = map[HeatWarningLevel]int{
	HeatWarningNone:     0,
	HeatWarningModerate: 2,
	HeatWarningHigh:     3,
	HeatWarningExtreme:  5,
}

var safetyForRisk = map[RiskLevel]OutdoorSafety{
	RiskLow:      SafetySafe,
	RiskModerate: SafetyCaution,
	RiskHigh:     SafetyAvoid,
	RiskSevere:   SafetyAvoid,
}

var generalAdvice = map[RiskLevel][]string{
	RiskLow: {
		"Conditions are good for outdoor activity.",
	},
	RiskModerate: {
		"Outdoor activity is fine with precautions.",
		"Listen to your body and take breaks when needed.",
	},
	RiskHigh: {
		"Limit time outdoors and lower the intensity.",
		"Consider moving your activity indoors.",
	},
	RiskSevere: {
		"Avoid outdoor activity.",
		"Stay in a climate-controlled environment.",
	},
}

// WeatherPoints scores temperature, humidity, wind, UV and visibility bands.
func WeatherPoints(r EnvironmentalReading) int {
	points := 0
	switch t := r.TemperatureC; {
	case t > 40:
		points += 4
	case t > 35:
		points += 3
	case t > 30:
		points += 2
	case t < 0:
		points += 2
	}
	switch h := r.HumidityPct; {
	case h > 85:
		points += 2
	case h < 20:
		points++
	}
	switch w := r.WindSpeedMs; {
	case w > 20:
		points += 2
	case w > 15:
		points++
	}
	switch uv := r.UVIndex; {
	case uv >= 11:
		points += 3
	case uv >= 8:
		points += 2
	case uv >= 6:
		points++
	}
	switch v := r.VisibilityM; {
	case v < 1000:
		points += 3
	case v < 5000:
		points++
	}
	return points
}

// HeatWarningPoints scores an active heat warning.
func HeatWarningPoints(level HeatWarningLevel) (int, error) {
	points, ok := heatWarningPoints[level]
	if !ok {
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown heat warning level %q", level), nil)
	}
	return points, nil
}

// AssessActivity sums the weather, air quality and heat warning scores into one
// decision. The reading's AQI must already be on the 0-500 scale.
func AssessActivity(r EnvironmentalReading, warning HeatWarningLevel, intensity ActivityIntensity, b Breakpoints) (RiskAssessment, error) {
	if err := r.validate(); err != nil {
		return RiskAssessment{}, err
	}
	if warning == "" {
		warning = HeatWarningNone
	}
	if intensity == "" {
		intensity = IntensityModerate
	}
	heatScore, err := HeatWarningPoints(warning)
	if err != nil {
		return RiskAssessment{}, err
	}
	if _, ok := intensityAdvice[intensity]; !ok {
		return RiskAssessment{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown activity intensity %q", intensity), nil)
	}

	weatherScore := WeatherPoints(r)
	airScore := AQIPoints(r.AQI)
	total := weatherScore + airScore + heatScore
	risk := b.Classify(total)

	var recs, warns []string
	recs = append(recs, generalAdvice[risk]...)

	w, rc := weatherAdvice(r)
	warns = append(warns, w...)
	recs = append(recs, rc...)

	w, rc = airQualityAdvice(r.AQI)
	warns = append(warns, w...)
	recs = append(recs, rc...)

	w, rc = heatWarningAdvice(warning)
	warns = append(warns, w...)
	recs = append(recs, rc...)

	recs = append(recs, intensityGuidance(intensity, risk))

	if warns == nil {
		warns = []string{}
	}
	return RiskAssessment{
		OutdoorSafety:    safetyForRisk[risk],
		CombinedRisk:     risk,
		TotalScore:       total,
		WeatherScore:     weatherScore,
		AirQualityScore:  airScore,
		HeatWarningScore: heatScore,
		AQI:              r.AQI,
		AQICategory:      AQICategory(r.AQI),
		HeatWarning:      warning,
		Recommendations:  recs,
		Warnings:         warns,
		BestTimeWindows:  BestTimeWindows(r.TemperatureC, r.UVIndex),
	}, nil
}

func weatherAdvice(r EnvironmentalReading) (warnings, recs []string) {
	switch t := r.TemperatureC; {
	case t > 35:
		warnings = append(warnings, "Extreme heat: high risk of heat illness.")
		recs = append(recs, "Exercise only in the early morning or late evening.")
	case t > 30:
		recs = append(recs, "Hot conditions: hydrate before, during and after activity.")
	case t < 0:
		warnings = append(warnings, "Freezing temperatures: risk of frostbite and hypothermia.")
		recs = append(recs, "Dress in insulated layers and cover your hands, ears and face.")
	}
	switch h := r.HumidityPct; {
	case h > 85:
		warnings = append(warnings, "Very high humidity reduces your body's ability to cool down.")
	case h < 20:
		recs = append(recs, "Dry air: drink extra water and protect your skin and lips.")
	}
	if r.WindSpeedMs > 15 {
		warnings = append(warnings, "Strong winds: take care when cycling or on exposed routes.")
	}
	switch uv := r.UVIndex; {
	case uv >= 8:
		warnings = append(warnings, "Very high UV: skin damage can occur in minutes.")
		recs = append(recs, "Wear SPF 50 sunscreen, sunglasses and a hat.")
	case uv >= 6:
		recs = append(recs, "Apply SPF 30+ sunscreen and reapply every two hours.")
	}
	if r.CloudCoverPct >= 70 && r.UVIndex >= 3 {
		recs = append(recs, "Clouds do not block UV; keep sun protection on.")
	}
	switch v := r.VisibilityM; {
	case v < 1000:
		warnings = append(warnings, "Poor visibility: avoid roads and trails without lighting.")
	case v < 5000:
		recs = append(recs, "Reduced visibility: wear bright or reflective clothing.")
	}
	return warnings, recs
}

func airQualityAdvice(aqi float64) (warnings, recs []string) {
	switch AQICategory(aqi) {
	case "moderate":
		recs = append(recs, "Unusually sensitive people should reduce prolonged exertion.")
	case "unhealthy_sensitive":
		warnings = append(warnings, "Air quality is unhealthy for sensitive groups.")
		recs = append(recs, "People with asthma or heart conditions should keep activity indoors.")
	case "unhealthy":
		warnings = append(warnings, "Air quality is unhealthy for everyone.")
		recs = append(recs, "Wear an N95 mask outdoors and shorten your activity.")
	case "very_unhealthy", "hazardous":
		warnings = append(warnings, "Air quality is very unhealthy or hazardous.")
		recs = append(recs, "Stay indoors with windows closed and run an air purifier if you have one.")
	}
	return warnings, recs
}

func heatWarningAdvice(level HeatWarningLevel) (warnings, recs []string) {
	switch level {
	case HeatWarningModerate:
		warnings = append(warnings, "Heat advisory in effect.")
		recs = append(recs, "Plan activity for the cooler parts of the day.")
	case HeatWarningHigh:
		warnings = append(warnings, "High heat warning in effect.")
		recs = append(recs, "Keep outdoor activity short and stay near shade and water.")
	case HeatWarningExtreme:
		warnings = append(warnings, "Extreme heat warning in effect: outdoor activity is dangerous.")
		recs = append(recs, "Stay indoors and check on vulnerable people.")
	}
	return warnings, recs
}

var intensityAdvice = map[ActivityIntensity][2]string{
	IntensityLight: {
		"Light activity such as walking is fine.",
		"Keep even light activity brief and close to shelter.",
	},
	IntensityModerate: {
		"Moderate activity is fine; warm up and cool down properly.",
		"Keep moderate activity short and take frequent breaks.",
	},
	IntensityIntense: {
		"Intense training is fine today; stay hydrated.",
		"Swap intense training for light activity or an indoor session.",
	},
}

func intensityGuidance(intensity ActivityIntensity, risk RiskLevel) string {
	advice := intensityAdvice[intensity]
	if risk == RiskLow || (risk == RiskModerate && intensity == IntensityLight) {
		return advice[0]
	}
	return advice[1]
}

// BestTimeWindows picks fixed clock windows from the temperature band, then
// the UV band. Duplicates are dropped.
func BestTimeWindows(temperatureC, uv float64) []string {
	var windows []string
	switch {
	case temperatureC > 30:
		windows = append(windows, "Early morning (6-8 AM)", "Evening (7-9 PM)")
	case temperatureC < 5:
		windows = append(windows, "Midday (11 AM-2 PM)", "Early afternoon (1-3 PM)")
	default:
		windows = append(windows, "Morning (7-10 AM)", "Late afternoon (4-6 PM)")
	}
	switch {
	case uv >= 6:
		windows = append(windows, "Before 10 AM", "After 4 PM")
	case uv >= 3:
		windows = append(windows, "Before 11 AM", "After 3 PM")
	}
	return dedupe(windows)
}

func dedupe(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
