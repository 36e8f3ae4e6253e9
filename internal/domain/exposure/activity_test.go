package exposure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

func calmReading() EnvironmentalReading {
	return EnvironmentalReading{
		TemperatureC:  20,
		HumidityPct:   50,
		WindSpeedMs:   3,
		VisibilityM:   10000,
		CloudCoverPct: 20,
		UVIndex:       2,
		AQI:           30,
	}
}

func TestWeatherPoints(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *EnvironmentalReading)
		want   int
	}{
		{"calm", func(r *EnvironmentalReading) {}, 0},
		{"scorching", func(r *EnvironmentalReading) { r.TemperatureC = 41 }, 4},
		{"very hot", func(r *EnvironmentalReading) { r.TemperatureC = 36 }, 3},
		{"hot", func(r *EnvironmentalReading) { r.TemperatureC = 31 }, 2},
		{"exactly 30", func(r *EnvironmentalReading) { r.TemperatureC = 30 }, 0},
		{"freezing", func(r *EnvironmentalReading) { r.TemperatureC = -5 }, 2},
		{"muggy", func(r *EnvironmentalReading) { r.HumidityPct = 90 }, 2},
		{"dry", func(r *EnvironmentalReading) { r.HumidityPct = 10 }, 1},
		{"gale", func(r *EnvironmentalReading) { r.WindSpeedMs = 21 }, 2},
		{"breezy", func(r *EnvironmentalReading) { r.WindSpeedMs = 16 }, 1},
		{"extreme uv", func(r *EnvironmentalReading) { r.UVIndex = 11 }, 3},
		{"very high uv", func(r *EnvironmentalReading) { r.UVIndex = 8 }, 2},
		{"high uv", func(r *EnvironmentalReading) { r.UVIndex = 6 }, 1},
		{"fog", func(r *EnvironmentalReading) { r.VisibilityM = 500 }, 3},
		{"haze", func(r *EnvironmentalReading) { r.VisibilityM = 3000 }, 1},
		{"everything", func(r *EnvironmentalReading) {
			r.TemperatureC, r.HumidityPct, r.WindSpeedMs, r.UVIndex, r.VisibilityM = 42, 90, 25, 12, 200
		}, 14},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := calmReading()
			tc.mutate(&r)
			require.Equal(t, tc.want, WeatherPoints(r))
		})
	}
}

func TestAssessActivityCombinedScenario(t *testing.T) {
	r := calmReading()
	r.TemperatureC = 33
	r.AQI = 180

	got, err := AssessActivity(r, HeatWarningHigh, IntensityModerate, DefaultPolicy().Activity)
	require.NoError(t, err)
	require.Equal(t, 2, got.WeatherScore)
	require.Equal(t, 4, got.AirQualityScore)
	require.Equal(t, 3, got.HeatWarningScore)
	require.Equal(t, 9, got.TotalScore)
	require.Equal(t, RiskHigh, got.CombinedRisk)
	require.Equal(t, SafetyAvoid, got.OutdoorSafety)
	require.Equal(t, "unhealthy", got.AQICategory)

	require.Equal(t, []string{
		"Limit time outdoors and lower the intensity.",
		"Consider moving your activity indoors.",
		"Hot conditions: hydrate before, during and after activity.",
		"Wear an N95 mask outdoors and shorten your activity.",
		"Keep outdoor activity short and stay near shade and water.",
		"Keep moderate activity short and take frequent breaks.",
	}, got.Recommendations)
	require.Equal(t, []string{
		"Air quality is unhealthy for everyone.",
		"High heat warning in effect.",
	}, got.Warnings)
	require.Equal(t, []string{"Early morning (6-8 AM)", "Evening (7-9 PM)"}, got.BestTimeWindows)
}

func TestAssessActivityTiers(t *testing.T) {
	b := DefaultPolicy().Activity

	low, err := AssessActivity(calmReading(), HeatWarningNone, IntensityIntense, b)
	require.NoError(t, err)
	require.Equal(t, RiskLow, low.CombinedRisk)
	require.Equal(t, SafetySafe, low.OutdoorSafety)
	require.Empty(t, low.Warnings)
	require.NotNil(t, low.Warnings)
	require.Equal(t, "Intense training is fine today; stay hydrated.", low.Recommendations[len(low.Recommendations)-1])

	r := calmReading()
	r.AQI = 120
	r.UVIndex = 6
	moderate, err := AssessActivity(r, HeatWarningNone, IntensityLight, b)
	require.NoError(t, err)
	require.Equal(t, 4, moderate.TotalScore)
	require.Equal(t, RiskModerate, moderate.CombinedRisk)
	require.Equal(t, SafetyCaution, moderate.OutdoorSafety)
	require.Equal(t, "Light activity such as walking is fine.", moderate.Recommendations[len(moderate.Recommendations)-1])

	r = calmReading()
	r.TemperatureC = 41
	r.UVIndex = 11
	r.AQI = 160
	severe, err := AssessActivity(r, HeatWarningExtreme, "", b)
	require.NoError(t, err)
	require.Equal(t, 16, severe.TotalScore)
	require.Equal(t, RiskSevere, severe.CombinedRisk)
	require.Equal(t, SafetyAvoid, severe.OutdoorSafety)
	require.Equal(t, "Avoid outdoor activity.", severe.Recommendations[0])
	require.Contains(t, severe.Warnings, "Extreme heat warning in effect: outdoor activity is dangerous.")
}

func TestAssessActivityRejectsInvalidInput(t *testing.T) {
	b := DefaultPolicy().Activity
	mutations := []func(r *EnvironmentalReading){
		func(r *EnvironmentalReading) { r.TemperatureC = math.NaN() },
		func(r *EnvironmentalReading) { r.HumidityPct = 140 },
		func(r *EnvironmentalReading) { r.WindSpeedMs = -1 },
		func(r *EnvironmentalReading) { r.VisibilityM = math.Inf(1) },
		func(r *EnvironmentalReading) { r.CloudCoverPct = -5 },
		func(r *EnvironmentalReading) { r.UVIndex = -0.5 },
		func(r *EnvironmentalReading) { r.AQI = math.NaN() },
	}
	for i, mutate := range mutations {
		r := calmReading()
		mutate(&r)
		_, err := AssessActivity(r, HeatWarningNone, IntensityLight, b)
		require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput), "case %d", i)
	}

	_, err := AssessActivity(calmReading(), HeatWarningLevel("apocalyptic"), IntensityLight, b)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = AssessActivity(calmReading(), HeatWarningNone, ActivityIntensity("marathon"), b)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestBestTimeWindows(t *testing.T) {
	require.Equal(t, []string{"Morning (7-10 AM)", "Late afternoon (4-6 PM)"}, BestTimeWindows(20, 1))
	require.Equal(t, []string{"Midday (11 AM-2 PM)", "Early afternoon (1-3 PM)"}, BestTimeWindows(-3, 0))
	require.Equal(t, []string{
		"Early morning (6-8 AM)", "Evening (7-9 PM)", "Before 10 AM", "After 4 PM",
	}, BestTimeWindows(34, 9))
	require.Equal(t, []string{
		"Morning (7-10 AM)", "Late afternoon (4-6 PM)", "Before 11 AM", "After 3 PM",
	}, BestTimeWindows(22, 4))
}

func TestAssessActivityIsIdempotent(t *testing.T) {
	r := calmReading()
	r.TemperatureC = 37
	r.HumidityPct = 88
	first, err := AssessActivity(r, HeatWarningModerate, IntensityIntense, DefaultPolicy().Activity)
	require.NoError(t, err)
	second, err := AssessActivity(r, HeatWarningModerate, IntensityIntense, DefaultPolicy().Activity)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
