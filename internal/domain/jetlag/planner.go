package jetlag

import (
	"math"

	"github.com/yanqian/travel-wellness/pkg/util"
)

// DaysToAdjust is ceil(|diff| / maxDaily).
func DaysToAdjust(differenceHours int, maxDaily float64) int {
	if differenceHours == 0 || maxDaily <= 0 {
		return 0
	}
	return int(math.Ceil(math.Abs(float64(differenceHours)) / maxDaily))
}

// PlanSleepSchedule shifts bedtime and wake time by the running total of the
// daily increments, capped at |diff|. The last day always lands on |diff|
// exactly even when its own increment is a partial remainder.
func PlanSleepSchedule(differenceHours int, bedtime, wakeTime util.ClockTime, maxDaily float64) []SleepAdjustmentDay {
	days := DaysToAdjust(differenceHours, maxDaily)
	total := math.Abs(float64(differenceHours))
	sign := 1.0
	if DirectionOf(differenceHours) == DirectionEastward {
		sign = -1.0
	}

	schedule := make([]SleepAdjustmentDay, 0, days)
	for day := 1; day <= days; day++ {
		cumulative := math.Min(float64(day)*maxDaily, total)
		if day == days {
			cumulative = total
		}
		shift := int(math.Round(sign * cumulative * 60))
		schedule = append(schedule, SleepAdjustmentDay{
			DayIndex:                  day,
			Bedtime:                   bedtime.Add(shift),
			WakeTime:                  wakeTime.Add(shift),
			CumulativeAdjustmentHours: sign * cumulative,
		})
	}
	return schedule
}
