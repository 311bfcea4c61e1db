// Package model defines the domain types for the taskmill sync job.
package model

import (
	"strings"
	"time"
)

// Frequency represents how often a recurring task repeats.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, the rest value receivers
type Frequency string

const (
	// FrequencyUndefined is the zero frequency for tasks without a
	// recognized recurrence option.
	FrequencyUndefined Frequency = "undefined"
	// FrequencyDay repeats every calendar day.
	FrequencyDay Frequency = "day"
	// FrequencyWeek repeats every seven calendar days.
	FrequencyWeek Frequency = "week"
	// FrequencyMonth repeats every calendar month.
	FrequencyMonth Frequency = "month"
	// FrequencyYear repeats every calendar year.
	FrequencyYear Frequency = "year"
)

// ParseFrequency converts a select option name to a Frequency.
// Matching is case-insensitive; unrecognized or empty values map to
// FrequencyUndefined rather than an error, so a task with a typo in its
// frequency option is skipped instead of failing the cycle.
func ParseFrequency(value string) Frequency {
	f := Frequency(strings.ToLower(strings.TrimSpace(value)))
	if f.Valid() {
		return f
	}
	return FrequencyUndefined
}

// UnmarshalText implements encoding.TextUnmarshaler to allow env parsing.
func (f *Frequency) UnmarshalText(text []byte) error {
	*f = ParseFrequency(string(text))
	return nil
}

// Valid returns true if the Frequency is a recognized recurrence step.
func (f Frequency) Valid() bool {
	return f == FrequencyDay || f == FrequencyWeek || f == FrequencyMonth || f == FrequencyYear
}

// Next returns t advanced by one recurrence step.
//
// Month and year steps clamp to the last valid day of the target month
// (Jan 31 + one month = Feb 28 or 29) instead of the normalizing
// overflow of time.AddDate. Day and week steps are exact calendar
// additions. Next on FrequencyUndefined returns t unchanged.
func (f Frequency) Next(t time.Time) time.Time {
	switch f {
	case FrequencyDay:
		return t.AddDate(0, 0, 1)
	case FrequencyWeek:
		return t.AddDate(0, 0, 7)
	case FrequencyMonth:
		return addMonthsClamped(t, 1)
	case FrequencyYear:
		return addMonthsClamped(t, 12)
	default:
		return t
	}
}

// addMonthsClamped adds months to t, clamping the day-of-month to the
// last day of the target month when the source day does not exist there.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	m := int(month) + months
	year += (m - 1) / 12
	month = time.Month((m-1)%12 + 1)

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}

	hour, minute, sec := t.Clock()
	return time.Date(year, month, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
