package model

import "time"

// Task is a transient in-memory view of one remote todo row, held only
// for the duration of a single poll cycle. The hosted database is the
// sole source of truth; row identity is not assumed stable across
// cycles.
type Task struct {
	// ID is the opaque row identifier assigned by the hosted service.
	ID string

	// Due is the task due date; nil when the Due Date property is unset.
	Due *time.Time

	// Frequency is the parsed recurrence frequency.
	Frequency Frequency

	// Scheduled reports the _recurrence_scheduled checkbox value.
	Scheduled bool

	// HasScheduledFlag reports whether the checkbox property exists on
	// the row at all. Rows created before the schema gained the
	// property lack it.
	HasScheduledFlag bool

	// Payload carries the provider's raw row representation through a
	// cycle untouched, so the database adapter can clone the full row.
	// The sync core never inspects it.
	Payload any
}

// ShouldSchedule reports whether the next occurrence of the task should
// be created, given the current time: the task is not already scheduled
// and its due date falls inside the window [now, now+frequency].
// Deterministic for a fixed now.
func (t Task) ShouldSchedule(now time.Time) bool {
	if t.Scheduled || t.Due == nil || !t.Frequency.Valid() {
		return false
	}
	windowEnd := t.Frequency.Next(now)
	return !t.Due.Before(now) && !t.Due.After(windowEnd)
}

// NextDue returns the due date of the task's next occurrence, advanced
// from the current due date by one frequency step.
func (t Task) NextDue() (time.Time, bool) {
	if t.Due == nil || !t.Frequency.Valid() {
		return time.Time{}, false
	}
	return t.Frequency.Next(*t.Due), true
}
