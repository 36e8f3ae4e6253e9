package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/yanqian/travel-wellness/internal/domain/exposure"
	"github.com/yanqian/travel-wellness/internal/domain/hydration"
	"github.com/yanqian/travel-wellness/internal/domain/jetlag"
	"github.com/yanqian/travel-wellness/internal/domain/timezone"
)

var (
	headingColor = color.New(color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
	warnColor    = color.New(color.FgYellow)
)

// levelColor picks a color for any ordered tier name shared by the engines.
func levelColor(level string) *color.Color {
	switch level {
	case "minimal", "low", "safe", "none":
		return color.New(color.FgGreen)
	case "mild", "moderate", "caution":
		return color.New(color.FgYellow)
	case "high", "extreme_caution", "avoid":
		return color.New(color.FgRed)
	case "severe", "danger", "extreme_danger", "extreme":
		return color.New(color.FgHiRed, color.Bold)
	default:
		return color.New(color.Reset)
	}
}

type printer struct {
	out  io.Writer
	json bool
}

func (p printer) emit(v any, text func()) error {
	if p.json {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text()
	return nil
}

func (p printer) field(label string, value any) {
	fmt.Fprintf(p.out, "%-22s %v\n", label+":", value)
}

func (p printer) level(label, level string) {
	fmt.Fprintf(p.out, "%-22s %s\n", label+":", levelColor(level).Sprint(level))
}

func (p printer) list(title string, items []string, c *color.Color) {
	if len(items) == 0 {
		return
	}
	headingColor.Fprintln(p.out, title)
	for _, item := range items {
		c.Fprintf(p.out, "  - %s\n", item)
	}
}

func (p printer) plan(plan jetlag.Plan) error {
	return p.emit(plan, func() {
		headingColor.Fprintf(p.out, "%s -> %s\n", plan.OriginZone, plan.DestinationZone)
		p.field("Difference", fmt.Sprintf("%+d h", plan.DifferenceHours))
		p.field("Direction", plan.Direction)
		p.level("Severity", string(plan.Severity))
		p.field("Days to adjust", plan.DaysToAdjust)
		p.field("Destination time", plan.DestinationLocalTime)
		if len(plan.DailySchedule) > 0 {
			headingColor.Fprintln(p.out, "Schedule")
			mutedColor.Fprintf(p.out, "  %-4s %-7s %-7s %-8s %-13s %s\n", "day", "bed", "wake", "shift", "bright light", "avoid light")
			for i, day := range plan.DailySchedule {
				light := plan.LightSchedule[i]
				fmt.Fprintf(p.out, "  %-4d %-7s %-7s %-8s %-13s %s\n",
					day.DayIndex, day.Bedtime, day.WakeTime,
					fmt.Sprintf("%+.1fh", day.CumulativeAdjustmentHours),
					light.MorningLightWindow, light.EveningAvoidanceWindow)
			}
		}
		p.list("Recommendations", plan.Recommendations, color.New(color.Reset))
	})
}

func (p printer) difference(diff timezone.Difference) error {
	return p.emit(diff, func() {
		headingColor.Fprintf(p.out, "%s -> %s\n", diff.OriginZone, diff.DestinationZone)
		p.field("Origin offset", formatOffset(diff.OriginOffsetMinutes))
		p.field("Destination offset", formatOffset(diff.DestinationOffsetMinutes))
		p.field("Difference", fmt.Sprintf("%+d h", diff.Hours))
	})
}

func (p printer) heatIndex(data exposure.HeatIndexData) error {
	return p.emit(data, func() {
		p.field("Heat index", fmt.Sprintf("%g°C / %g°F", data.HeatIndexC, data.HeatIndexF))
		p.level("Danger level", string(data.DangerLevel))
		p.list("Warnings", data.Warnings, warnColor)
		p.list("Recommendations", data.Recommendations, color.New(color.Reset))
	})
}

func (p printer) extremeHeat(w exposure.ExtremeHeatWarning) error {
	return p.emit(w, func() {
		p.field("Active", w.IsActive)
		p.level("Combined risk", string(w.CombinedRisk))
		p.level("Warning level", string(w.Severity))
		p.field("Score", w.Score)
		p.field("Time of day", w.TimeOfDay)
		p.list("Warnings", w.Warnings, warnColor)
		p.list("Recommendations", w.Recommendations, color.New(color.Reset))
	})
}

func (p printer) activity(a exposure.RiskAssessment) error {
	return p.emit(a, func() {
		p.level("Outdoor safety", string(a.OutdoorSafety))
		p.level("Combined risk", string(a.CombinedRisk))
		p.field("Score", fmt.Sprintf("%d (weather %d, air %d, heat %d)", a.TotalScore, a.WeatherScore, a.AirQualityScore, a.HeatWarningScore))
		p.field("AQI", fmt.Sprintf("%g (%s)", a.AQI, a.AQICategory))
		p.level("Heat warning", string(a.HeatWarning))
		p.list("Warnings", a.Warnings, warnColor)
		p.list("Recommendations", a.Recommendations, color.New(color.Reset))
		p.list("Best times", a.BestTimeWindows, mutedColor)
	})
}

func (p printer) hydration(r hydration.Recommendation) error {
	return p.emit(r, func() {
		p.field("Daily intake", fmt.Sprintf("%.2f L", r.DailyIntakeLiters))
		p.field("Hourly intake", fmt.Sprintf("%d ml", r.HourlyIntakeMl))
		p.level("Dehydration risk", string(r.DehydrationRisk))
		p.field("Reminder every", fmt.Sprintf("%d min", r.ReminderIntervalMinutes))
		p.list("Warnings", r.Warnings, warnColor)
		p.list("Recommendations", r.Recommendations, color.New(color.Reset))
	})
}

func formatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, minutes/60, minutes%60)
}

func joinNames[T ~string](values []T) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, "|")
}
