package jetlag

import "math"

// ClassifySeverity maps an hour difference onto a tier. Each bound is
// inclusive on the lower tier: exactly 2h is still minimal.
func ClassifySeverity(differenceHours float64, p Policy) Severity {
	abs := math.Abs(differenceHours)
	switch {
	case abs <= p.MinimalMaxHours:
		return SeverityMinimal
	case abs <= p.MildMaxHours:
		return SeverityMild
	case abs <= p.ModerateMaxHours:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

// DirectionOf is eastward iff the destination is ahead of the origin.
func DirectionOf(differenceHours int) Direction {
	if differenceHours > 0 {
		return DirectionEastward
	}
	return DirectionWestward
}
