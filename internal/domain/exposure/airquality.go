package exposure

import (
	"fmt"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

type aqiBand struct {
	max      float64
	points   int
	category string
	// level is the matching band on the 1-5 qualitative scale.
	level int
}

// EPA bands on the canonical 0-500 scale. The qualitative scale folds the
// two worst EPA bands into level 5.
var aqiBands = []aqiBand{
	{max: 50, points: 0, category: "good", level: 1},
	{max: 100, points: 1, category: "moderate", level: 2},
	{max: 150, points: 3, category: "unhealthy_sensitive", level: 3},
	{max: 200, points: 4, category: "unhealthy", level: 4},
	{max: 300, points: 5, category: "very_unhealthy", level: 5},
}

var hazardousBand = aqiBand{points: 5, category: "hazardous", level: 5}

// Representative 0-500 values for each qualitative level; each lies inside
// the EPA band of the same name.
var qualitativeToEPA = map[int]float64{
	1: 25,
	2: 75,
	3: 125,
	4: 175,
	5: 300,
}

func bandFor(aqi float64) aqiBand {
	for _, band := range aqiBands {
		if aqi <= band.max {
			return band
		}
	}
	return hazardousBand
}

// AQIPoints scores an AQI: <=50:0, <=100:1, <=150:3, <=200:4, else 5.
func AQIPoints(aqi float64) int {
	return bandFor(aqi).points
}

// AQICategory names the EPA band of an AQI value.
func AQICategory(aqi float64) string {
	return bandFor(aqi).category
}

// QualitativeLevel maps a 0-500 AQI onto the 1-5 scale.
func QualitativeLevel(aqi float64) int {
	return bandFor(aqi).level
}

// NormalizeAQI converts an incoming value to the canonical 0-500 scale.
func NormalizeAQI(value float64, scale AQIScale) (float64, error) {
	switch scale {
	case "", AQIScaleEPA:
		return value, nil
	case AQIScaleQualitative:
		level := int(value)
		epa, ok := qualitativeToEPA[level]
		if !ok || float64(level) != value {
			return 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("qualitative aqi must be an integer 1-5, got %g", value), nil)
		}
		return epa, nil
	default:
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown aqi scale %q", scale), nil)
	}
}
