package notion

import (
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmill/taskmill/internal/domain/model"
)

func pageWithProps(id string, props notionapi.Properties) notionapi.Page {
	return notionapi.Page{
		ID:         notionapi.ObjectID(id),
		Properties: props,
	}
}

func dateProp(t time.Time) *notionapi.DateProperty {
	d := notionapi.Date(t)
	return &notionapi.DateProperty{Date: &notionapi.DateObject{Start: &d}}
}

func selectProp(name string) *notionapi.SelectProperty {
	return &notionapi.SelectProperty{Select: notionapi.Option{Name: name}}
}

func TestTaskFromPage(t *testing.T) {
	due := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	page := pageWithProps("p1", notionapi.Properties{
		model.PropDueDate:             dateProp(due),
		model.PropRecurringFrequency:  selectProp("Week"),
		model.PropRecurrenceScheduled: &notionapi.CheckboxProperty{Checkbox: true},
	})

	task := taskFromPage(page)

	assert.Equal(t, "p1", task.ID)
	require.NotNil(t, task.Due)
	assert.Equal(t, due, *task.Due)
	assert.Equal(t, model.FrequencyWeek, task.Frequency)
	assert.True(t, task.HasScheduledFlag)
	assert.True(t, task.Scheduled)
	assert.Equal(t, page, task.Payload)
}

func TestTaskFromPageMissingProperties(t *testing.T) {
	task := taskFromPage(pageWithProps("p2", notionapi.Properties{}))

	assert.Equal(t, "p2", task.ID)
	assert.Nil(t, task.Due)
	assert.Equal(t, model.FrequencyUndefined, task.Frequency)
	assert.False(t, task.HasScheduledFlag)
	assert.False(t, task.Scheduled)
}

func TestTaskFromPageEmptyDateObject(t *testing.T) {
	task := taskFromPage(pageWithProps("p3", notionapi.Properties{
		model.PropDueDate: &notionapi.DateProperty{},
	}))
	assert.Nil(t, task.Due)
}

func TestTaskFromPageUnknownFrequencyOption(t *testing.T) {
	task := taskFromPage(pageWithProps("p4", notionapi.Properties{
		model.PropRecurringFrequency: selectProp("quarterly"),
	}))
	assert.Equal(t, model.FrequencyUndefined, task.Frequency)
}

func TestClonedProperties(t *testing.T) {
	oldDue := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	newDue := time.Date(2025, 6, 19, 0, 0, 0, 0, time.UTC)

	title := &notionapi.TitleProperty{}
	source := pageWithProps("p1", notionapi.Properties{
		"Name":                        title,
		model.PropDueDate:             dateProp(oldDue),
		model.PropRecurringFrequency:  selectProp("week"),
		model.PropRecurrenceScheduled: &notionapi.CheckboxProperty{Checkbox: true},
	})

	props := clonedProperties(source, newDue)

	// Untouched properties are carried over.
	assert.Same(t, title, props["Name"])
	assert.Equal(t, selectProp("week"), props[model.PropRecurringFrequency])

	// Due date is replaced with the advanced one.
	dp, ok := props[model.PropDueDate].(*notionapi.DateProperty)
	require.True(t, ok)
	require.NotNil(t, dp.Date)
	require.NotNil(t, dp.Date.Start)
	assert.Equal(t, newDue, time.Time(*dp.Date.Start))

	// The clone starts unscheduled.
	cb, ok := props[model.PropRecurrenceScheduled].(*notionapi.CheckboxProperty)
	require.True(t, ok)
	assert.False(t, cb.Checkbox)

	// Source page properties are not mutated.
	srcDue, ok := source.Properties[model.PropDueDate].(*notionapi.DateProperty)
	require.True(t, ok)
	assert.Equal(t, oldDue, time.Time(*srcDue.Date.Start))
	srcCb, ok := source.Properties[model.PropRecurrenceScheduled].(*notionapi.CheckboxProperty)
	require.True(t, ok)
	assert.True(t, srcCb.Checkbox)
}
