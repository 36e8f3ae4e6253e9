package jetlag

import (
	"time"

	"github.com/yanqian/travel-wellness/pkg/util"
)

// Severity grades how disruptive a timezone shift is.
type Severity string

const (
	SeverityMinimal  Severity = "minimal"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Direction of travel relative to the body clock.
type Direction string

const (
	// DirectionEastward requires a phase advance (earlier sleep).
	DirectionEastward Direction = "eastward"
	// DirectionWestward requires a phase delay (later sleep).
	DirectionWestward Direction = "westward"
)

// Request is the payload accepted by the plan endpoint.
type Request struct {
	OriginZone      string          `json:"originZone"`
	DestinationZone string          `json:"destinationZone"`
	ReferenceTime   string          `json:"referenceTime,omitempty"`
	Bedtime         *util.ClockTime `json:"bedtime,omitempty"`
	WakeTime        *util.ClockTime `json:"wakeTime,omitempty"`
}

// CompareRequest asks for the raw offset comparison of two zones.
type CompareRequest struct {
	OriginZone      string `form:"origin"`
	DestinationZone string `form:"destination"`
	ReferenceTime   string `form:"at"`
}

// Plan is the full realignment plan for one trip.
type Plan struct {
	OriginZone               string               `json:"originZone"`
	DestinationZone          string               `json:"destinationZone"`
	OriginOffsetMinutes      int                  `json:"originOffsetMinutes"`
	DestinationOffsetMinutes int                  `json:"destinationOffsetMinutes"`
	DifferenceHours          int                  `json:"differenceHours"`
	Severity                 Severity             `json:"severity"`
	Direction                Direction            `json:"direction"`
	DaysToAdjust             int                  `json:"daysToAdjust"`
	DailySchedule            []SleepAdjustmentDay `json:"dailySchedule"`
	LightSchedule            []LightExposureDay   `json:"lightSchedule"`
	Recommendations          []string             `json:"recommendations"`
	ReferenceTime            time.Time            `json:"referenceTime"`
	DestinationLocalTime     string               `json:"destinationLocalTime"`
}

// SleepAdjustmentDay is one day of the sleep shift plan.
type SleepAdjustmentDay struct {
	DayIndex int            `json:"dayIndex"`
	Bedtime  util.ClockTime `json:"bedtime"`
	WakeTime util.ClockTime `json:"wakeTime"`
	// CumulativeAdjustmentHours is the total clock shift applied so far;
	// negative means earlier (advance), positive later (delay).
	CumulativeAdjustmentHours float64 `json:"cumulativeAdjustmentHours"`
}

// TimeWindow is a fixed clock band.
type TimeWindow struct {
	Start util.ClockTime `json:"start"`
	End   util.ClockTime `json:"end"`
}

// DurationMinutes returns the window length, wrapping past midnight.
func (w TimeWindow) DurationMinutes() int {
	return util.NormalizeMinutes(w.End.Minutes() - w.Start.Minutes())
}

func (w TimeWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// LightExposureDay pairs the bright-light and light-avoidance windows for one day.
type LightExposureDay struct {
	DayIndex               int        `json:"dayIndex"`
	MorningLightWindow     TimeWindow `json:"morningLightWindow"`
	EveningAvoidanceWindow TimeWindow `json:"eveningAvoidanceWindow"`
	DurationMinutes        int        `json:"durationMinutes"`
	Note                   string     `json:"note"`
}
