package model

// Property names of the todo database schema. These are the hosted
// service's column identifiers; they are fixed at process start and
// must match the database the daemon is pointed at.
const (
	// PropRecurringFrequency is the select property holding the
	// recurrence frequency option (day, week, month, year).
	PropRecurringFrequency = "recurring frequency"

	// PropDueDate is the date property holding the task due date.
	PropDueDate = "Due Date"

	// PropRecurrenceScheduled is the checkbox property marking that the
	// next occurrence of a task has already been created.
	PropRecurrenceScheduled = "_recurrence_scheduled"
)
