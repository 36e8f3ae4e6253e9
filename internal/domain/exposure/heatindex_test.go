package exposure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

func TestHeatIndexBelowFloorReturnsTemperature(t *testing.T) {
	data, err := HeatIndex(26.7, 40)
	require.NoError(t, err)
	require.Equal(t, 26.7, data.HeatIndexC)
	require.Equal(t, 80.0, data.HeatIndexF)
	require.Equal(t, DangerSafe, data.DangerLevel)
	require.Empty(t, data.Warnings)

	data, err = HeatIndex(20, 95)
	require.NoError(t, err)
	require.Equal(t, 20.0, data.HeatIndexC)
	require.Equal(t, 68.0, data.HeatIndexF)
}

func TestHeatIndexTiers(t *testing.T) {
	tests := []struct {
		tempC, humidity float64
		wantC, wantF    float64
		level           DangerLevel
	}{
		{27, 40, 27, 80, DangerSafe},
		{30, 50, 31, 88, DangerCaution},
		{32, 70, 40, 105, DangerExtremeCaution},
		{35, 60, 45, 113, DangerDanger},
		{38, 50, 49, 119, DangerDanger},
		{45, 60, 86, 186, DangerExtremeDanger},
	}
	for _, tc := range tests {
		data, err := HeatIndex(tc.tempC, tc.humidity)
		require.NoError(t, err)
		require.Equal(t, tc.wantC, data.HeatIndexC, "%v°C %v%%", tc.tempC, tc.humidity)
		require.Equal(t, tc.wantF, data.HeatIndexF, "%v°C %v%%", tc.tempC, tc.humidity)
		require.Equal(t, tc.level, data.DangerLevel, "%v°C %v%%", tc.tempC, tc.humidity)
		require.NotEmpty(t, data.Recommendations)
	}
}

func TestHeatIndexRejectsInvalidInput(t *testing.T) {
	inputs := [][2]float64{
		{math.NaN(), 50},
		{math.Inf(1), 50},
		{30, math.NaN()},
		{30, -1},
		{30, 101},
		{120, 50},
	}
	for _, in := range inputs {
		_, err := HeatIndex(in[0], in[1])
		require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput), "%v", in)
	}
}

func TestHeatIndexIsIdempotent(t *testing.T) {
	first, err := HeatIndex(36.6, 55)
	require.NoError(t, err)
	second, err := HeatIndex(36.6, 55)
	require.NoError(t, err)
	require.Equal(t, first, second)

	first.Recommendations[0] = "mutated"
	third, err := HeatIndex(36.6, 55)
	require.NoError(t, err)
	require.Equal(t, second, third)
}

func TestTemperatureConversions(t *testing.T) {
	require.Equal(t, 212.0, CelsiusToFahrenheit(100))
	require.Equal(t, 32.0, CelsiusToFahrenheit(0))
	require.Equal(t, 100.0, FahrenheitToCelsius(212))
	require.InDelta(t, 26.7, FahrenheitToCelsius(CelsiusToFahrenheit(26.7)), 1e-9)
}
