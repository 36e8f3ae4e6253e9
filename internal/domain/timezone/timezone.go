// Package timezone resolves IANA zone offsets and the signed hour difference
// between two zones at a reference instant.
package timezone

import (
	"fmt"
	"math"
	"strings"
	"time"

	// The binary carries its own zone database so resolution never depends on the host.
	_ "time/tzdata"

	"github.com/maypok86/otter/v2"

	apperrors "github.com/yanqian/travel-wellness/pkg/errors"
)

// Difference is the result of comparing two zones at one instant.
type Difference struct {
	OriginZone               string    `json:"originZone"`
	DestinationZone          string    `json:"destinationZone"`
	OriginOffsetMinutes      int       `json:"originOffsetMinutes"`
	DestinationOffsetMinutes int       `json:"destinationOffsetMinutes"`
	Hours                    int       `json:"differenceHours"`
	At                       time.Time `json:"referenceTime"`
}

// locations memoizes parsed zones; LoadLocation unpacks the embedded
// database on every call. Only successful lookups are stored.
var locations = otter.Must(&otter.Options[string, *time.Location]{
	MaximumSize:     1024,
	InitialCapacity: 64,
})

// Load resolves an IANA identifier. Empty names and the host-dependent
// "Local" zone are rejected instead of silently meaning UTC.
func Load(name string) (*time.Location, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed == "Local" {
		return nil, apperrors.Wrap(apperrors.CodeUnknownTimeZone, fmt.Sprintf("unknown timezone %q", name), nil)
	}
	if loc, ok := locations.GetIfPresent(trimmed); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(trimmed)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknownTimeZone, fmt.Sprintf("unknown timezone %q", name), err)
	}
	locations.Set(trimmed, loc)
	return loc, nil
}

// OffsetMinutes returns the signed UTC offset of zone at the given instant,
// positive east of Greenwich.
func OffsetMinutes(zone string, at time.Time) (int, error) {
	loc, err := Load(zone)
	if err != nil {
		return 0, err
	}
	return offsetIn(loc, at), nil
}

// offsetIn renders the wall clock fields of at in loc, reads them back as if
// they were UTC and measures the gap to the real instant.
func offsetIn(loc *time.Location, at time.Time) int {
	instant := at.Truncate(time.Second)
	local := instant.In(loc)
	wall := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), local.Second(), 0, time.UTC)
	return int(wall.Sub(instant) / time.Minute)
}

// DifferenceHours compares destination against origin at the given instant.
// The minute difference is rounded half away from zero to whole hours, so
// half-hour zones lose precision.
func DifferenceHours(origin, destination string, at time.Time) (Difference, error) {
	originOffset, err := OffsetMinutes(origin, at)
	if err != nil {
		return Difference{}, err
	}
	destOffset, err := OffsetMinutes(destination, at)
	if err != nil {
		return Difference{}, err
	}
	return Difference{
		OriginZone:               strings.TrimSpace(origin),
		DestinationZone:          strings.TrimSpace(destination),
		OriginOffsetMinutes:      originOffset,
		DestinationOffsetMinutes: destOffset,
		Hours:                    RoundHours(destOffset - originOffset),
		At:                       at,
	}, nil
}

// RoundHours converts a minute delta to whole hours, rounding half away from zero.
func RoundHours(minutes int) int {
	return int(math.Round(float64(minutes) / 60))
}
