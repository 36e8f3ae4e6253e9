package exposure

import "math"

// Rothfusz regression coefficients, Fahrenheit and percent humidity.
const (
	rothfuszC1 = -42.379
	rothfuszC2 = 2.04901523
	rothfuszC3 = 10.14333127
	rothfuszC4 = -0.22475541
	rothfuszC5 = -0.00683783
	rothfuszC6 = -0.05481717
	rothfuszC7 = 0.00122874
	rothfuszC8 = 0.00085282
	rothfuszC9 = -0.00000199
)

// heatIndexFloorF is the whole-degree temperature at or below which the
// regression is not applied.
const heatIndexFloorF = 80

type heatTier struct {
	maxF            float64
	level           DangerLevel
	warnings        []string
	recommendations []string
}

var heatTiers = []heatTier{
	{
		maxF:  80,
		level: DangerSafe,
		recommendations: []string{
			"Normal outdoor activity is fine.",
			"Keep drinking water through the day.",
		},
	},
	{
		maxF:     90,
		level:    DangerCaution,
		warnings: []string{"Fatigue is possible with prolonged exposure and activity."},
		recommendations: []string{
			"Take regular breaks in the shade.",
			"Drink water regularly even if you are not thirsty.",
		},
	},
	{
		maxF:     105,
		level:    DangerExtremeCaution,
		warnings: []string{"Heat cramps and heat exhaustion are possible."},
		recommendations: []string{
			"Limit strenuous outdoor activity.",
			"Drink water every 15-20 minutes.",
			"Wear light, loose-fitting clothing.",
		},
	},
	{
		maxF:     130,
		level:    DangerDanger,
		warnings: []string{"Heat cramps and heat exhaustion are likely; heat stroke is possible."},
		recommendations: []string{
			"Avoid strenuous activity outdoors.",
			"Stay in air-conditioned spaces when possible.",
			"Check on elderly neighbours and anyone living alone.",
		},
	},
	{
		maxF:     math.Inf(1),
		level:    DangerExtremeDanger,
		warnings: []string{"Heat stroke is highly likely with continued exposure."},
		recommendations: []string{
			"Stay indoors in air conditioning.",
			"Cancel outdoor activities.",
			"Seek medical help immediately for confusion, fainting or hot dry skin.",
		},
	},
}

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts °F to °C.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// rothfusz evaluates the NWS regression in °F.
func rothfusz(t, rh float64) float64 {
	return rothfuszC1 +
		rothfuszC2*t +
		rothfuszC3*rh +
		rothfuszC4*t*rh +
		rothfuszC5*t*t +
		rothfuszC6*rh*rh +
		rothfuszC7*t*t*rh +
		rothfuszC8*t*rh*rh +
		rothfuszC9*t*t*rh*rh
}

// HeatIndex computes the perceived temperature. Readings that round to 80°F
// or below are returned unchanged; warmer ones go through the regression and
// come back rounded to a whole °C. Tiers are always judged in °F.
func HeatIndex(temperatureC, humidityPct float64) (HeatIndexData, error) {
	if err := checkInputs(temperatureBound(temperatureC), humidityBound(humidityPct)); err != nil {
		return HeatIndexData{}, err
	}

	tempF := CelsiusToFahrenheit(temperatureC)
	heatC := temperatureC
	heatF := math.Round(tempF)
	if heatF > heatIndexFloorF {
		raw := rothfusz(tempF, humidityPct)
		heatC = math.Round(FahrenheitToCelsius(raw))
		heatF = math.Round(raw)
	}

	tier := classifyHeat(heatF)
	return HeatIndexData{
		HeatIndexC:      heatC,
		HeatIndexF:      heatF,
		DangerLevel:     tier.level,
		Warnings:        cloneStrings(tier.warnings),
		Recommendations: cloneStrings(tier.recommendations),
	}, nil
}

func classifyHeat(heatF float64) heatTier {
	for _, tier := range heatTiers {
		if heatF <= tier.maxF {
			return tier
		}
	}
	return heatTiers[len(heatTiers)-1]
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
