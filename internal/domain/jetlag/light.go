package jetlag

import "github.com/yanqian/travel-wellness/pkg/util"

type lightTemplate struct {
	morning TimeWindow
	evening TimeWindow
	note    string
}

// Fixed clock bands stand in for real sunrise/sunset.
var lightTemplates = map[Direction]lightTemplate{
	DirectionEastward: {
		morning: TimeWindow{Start: util.ClockTime(6 * 60), End: util.ClockTime(8 * 60)},
		evening: TimeWindow{Start: util.ClockTime(20 * 60), End: util.ClockTime(22 * 60)},
		note:    "Seek bright morning light to advance your body clock; dim lights and avoid screens in the evening.",
	},
	DirectionWestward: {
		morning: TimeWindow{Start: util.ClockTime(8 * 60), End: util.ClockTime(10 * 60)},
		evening: TimeWindow{Start: util.ClockTime(18 * 60), End: util.ClockTime(20 * 60)},
		note:    "Get light later in the morning and stay active into the evening to delay your body clock; avoid bright light before 08:00.",
	},
}

// PlanLightExposure emits one identical entry per adjustment day.
func PlanLightExposure(direction Direction, days int) []LightExposureDay {
	tmpl, ok := lightTemplates[direction]
	if !ok {
		tmpl = lightTemplates[DirectionWestward]
	}
	schedule := make([]LightExposureDay, 0, days)
	for day := 1; day <= days; day++ {
		schedule = append(schedule, LightExposureDay{
			DayIndex:               day,
			MorningLightWindow:     tmpl.morning,
			EveningAvoidanceWindow: tmpl.evening,
			DurationMinutes:        tmpl.morning.DurationMinutes(),
			Note:                   tmpl.note,
		})
	}
	return schedule
}
