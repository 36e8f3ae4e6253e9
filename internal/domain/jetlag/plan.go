package jetlag

import (
	"time"

	"github.com/yanqian/travel-wellness/internal/domain/timezone"
	"github.com/yanqian/travel-wellness/pkg/util"
)

var severityAdvice = map[Severity][]string{
	SeverityMinimal: {
		"The time difference is small; no special preparation is needed.",
		"Keep your usual routine and let your body adapt naturally on arrival.",
	},
	SeverityMild: {
		"Start shifting your sleep schedule 1-2 days before departure.",
		"Expect mild fatigue for a day or two after arrival.",
	},
	SeverityModerate: {
		"Start adjusting your sleep schedule 3-4 days before departure.",
		"Consider light therapy to speed up adaptation.",
		"Limit caffeine and alcohol during the flight and stay hydrated.",
	},
	SeveritySevere: {
		"Start adjusting your sleep schedule 5-7 days before departure.",
		"Consider a stopover to split the time change into smaller steps.",
		"Use light therapy and follow the daily light schedule closely.",
		"Plan for 7-10 days of recovery after arrival before demanding activities.",
	},
}

var directionAdvice = map[Direction]string{
	DirectionEastward: "Traveling east: go to bed and wake up earlier each day (phase advance).",
	DirectionWestward: "Traveling west: stay up and sleep in later each day (phase delay).",
}

// Recommendations returns the severity-tier guidance followed by the
// direction-specific hint when there is any shift to make.
func Recommendations(severity Severity, direction Direction, differenceHours int) []string {
	tier := severityAdvice[severity]
	out := make([]string, 0, len(tier)+1)
	out = append(out, tier...)
	if differenceHours != 0 {
		out = append(out, directionAdvice[direction])
	}
	return out
}

// BuildPlan composes severity, sleep and light schedules into a single plan.
// bedtime and wakeTime are the traveler's current habits in origin time.
func BuildPlan(diff timezone.Difference, destination *time.Location, bedtime, wakeTime util.ClockTime, p Policy) Plan {
	severity := ClassifySeverity(float64(diff.Hours), p)
	direction := DirectionOf(diff.Hours)
	days := DaysToAdjust(diff.Hours, p.MaxDailyAdjustmentHours)

	localTime := ""
	if destination != nil {
		localTime = diff.At.In(destination).Format(time.RFC3339)
	}

	return Plan{
		OriginZone:               diff.OriginZone,
		DestinationZone:          diff.DestinationZone,
		OriginOffsetMinutes:      diff.OriginOffsetMinutes,
		DestinationOffsetMinutes: diff.DestinationOffsetMinutes,
		DifferenceHours:          diff.Hours,
		Severity:                 severity,
		Direction:                direction,
		DaysToAdjust:             days,
		DailySchedule:            PlanSleepSchedule(diff.Hours, bedtime, wakeTime, p.MaxDailyAdjustmentHours),
		LightSchedule:            PlanLightExposure(direction, days),
		Recommendations:          Recommendations(severity, direction, diff.Hours),
		ReferenceTime:            diff.At.UTC(),
		DestinationLocalTime:     localTime,
	}
}
