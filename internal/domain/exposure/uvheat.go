package exposure

// UVPoints scores the UV index: <3:0, 3-5:1, 6-7:2, 8-10:3, 11+:4.
func UVPoints(uv float64) int {
	switch {
	case uv >= 11:
		return 4
	case uv >= 8:
		return 3
	case uv >= 6:
		return 2
	case uv >= 3:
		return 1
	default:
		return 0
	}
}

// HeatPoints scores a heat index in °C: <30:0, 30-34:1, 35-39:2, 40-44:3, 45+:4.
func HeatPoints(heatIndexC float64) int {
	switch {
	case heatIndexC >= 45:
		return 4
	case heatIndexC >= 40:
		return 3
	case heatIndexC >= 35:
		return 2
	case heatIndexC >= 30:
		return 1
	default:
		return 0
	}
}

var uvHeatBlocks = []struct {
	from            RiskLevel
	warnings        []string
	recommendations []string
}{
	{
		from:     RiskModerate,
		warnings: []string{"Elevated UV and heat: limit prolonged sun exposure."},
		recommendations: []string{
			"Apply SPF 30+ sunscreen and wear a wide-brimmed hat.",
			"Carry water and drink regularly.",
		},
	},
	{
		from:     RiskHigh,
		warnings: []string{"High UV and heat: sunburn and heat exhaustion can develop quickly."},
		recommendations: []string{
			"Avoid direct sun between 10:00 and 16:00.",
			"Rest in the shade at least every 30 minutes.",
		},
	},
	{
		from:     RiskSevere,
		warnings: []string{"Extreme UV and heat: heat stroke and severe sunburn are possible within minutes."},
		recommendations: []string{
			"Stay indoors during the hottest part of the day.",
			"Postpone strenuous outdoor activity.",
		},
	},
}

var riskRank = map[RiskLevel]int{
	RiskLow:      0,
	RiskModerate: 1,
	RiskHigh:     2,
	RiskSevere:   3,
}

var warningForRisk = map[RiskLevel]HeatWarningLevel{
	RiskLow:      HeatWarningNone,
	RiskModerate: HeatWarningModerate,
	RiskHigh:     HeatWarningHigh,
	RiskSevere:   HeatWarningExtreme,
}

// CombineUVHeat merges a UV index and a heat index into one warning. Text
// blocks accumulate: a severe warning carries the moderate and high blocks too.
func CombineUVHeat(uv, heatIndexC float64, hour *int, b Breakpoints) ExtremeHeatWarning {
	score := UVPoints(uv) + HeatPoints(heatIndexC)
	risk := b.Classify(score)

	warnings := []string{}
	recs := []string{}
	for _, block := range uvHeatBlocks {
		if riskRank[risk] < riskRank[block.from] {
			break
		}
		warnings = append(warnings, block.warnings...)
		recs = append(recs, block.recommendations...)
	}

	return ExtremeHeatWarning{
		IsActive:        risk != RiskLow,
		Severity:        warningForRisk[risk],
		CombinedRisk:    risk,
		Score:           score,
		HeatIndexC:      heatIndexC,
		UVIndex:         uv,
		Warnings:        warnings,
		Recommendations: recs,
		TimeOfDay:       timeOfDay(hour),
	}
}

func timeOfDay(hour *int) string {
	if hour == nil {
		return "any"
	}
	switch h := *hour; {
	case h >= 5 && h < 11:
		return "morning"
	case h >= 11 && h < 16:
		return "midday"
	case h >= 16 && h < 21:
		return "evening"
	default:
		return "night"
	}
}
