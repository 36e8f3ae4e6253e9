package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the modulus for every time-of-day value.
const MinutesPerDay = 24 * 60

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// NormalizeMinutes wraps a minute count into [0, MinutesPerDay).
func NormalizeMinutes(minutes int) int {
	m := minutes % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return m
}

// ClockTime is a time of day expressed as minutes after midnight.
// It serializes as "HH:MM".
type ClockTime int

// NewClockTime builds a normalized ClockTime from any minute count.
func NewClockTime(minutes int) ClockTime {
	return ClockTime(NormalizeMinutes(minutes))
}

// ParseClockTime parses a 24h "HH:MM" string.
func ParseClockTime(value string) (ClockTime, error) {
	trimmed := strings.TrimSpace(value)
	hh, mm, ok := strings.Cut(trimmed, ":")
	if !ok {
		return 0, fmt.Errorf("clock time %q must be formatted as HH:MM", value)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("clock time %q has invalid hour", value)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || len(mm) != 2 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock time %q has invalid minute", value)
	}
	return ClockTime(hour*60 + minute), nil
}

// Minutes returns the normalized minute of day.
func (c ClockTime) Minutes() int {
	return NormalizeMinutes(int(c))
}

// Add shifts the clock time, wrapping around midnight.
func (c ClockTime) Add(minutes int) ClockTime {
	return NewClockTime(int(c) + minutes)
}

func (c ClockTime) String() string {
	m := c.Minutes()
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// MarshalText implements encoding.TextMarshaler.
func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ClockTime) UnmarshalText(data []byte) error {
	parsed, err := ParseClockTime(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
