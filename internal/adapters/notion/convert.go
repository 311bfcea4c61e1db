package notion

import (
	"time"

	"github.com/jomei/notionapi"

	"github.com/taskmill/taskmill/internal/domain/model"
)

// taskFromPage translates a Notion page into the domain Task view.
// Missing or mistyped properties become absent fields, never errors:
// the sync core decides whether an incomplete row is skippable.
func taskFromPage(page notionapi.Page) model.Task {
	task := model.Task{
		ID:        string(page.ID),
		Frequency: model.FrequencyUndefined,
		Payload:   page,
	}

	if prop, ok := page.Properties[model.PropDueDate].(*notionapi.DateProperty); ok {
		if prop.Date != nil && prop.Date.Start != nil {
			due := time.Time(*prop.Date.Start)
			task.Due = &due
		}
	}

	if prop, ok := page.Properties[model.PropRecurringFrequency].(*notionapi.SelectProperty); ok {
		task.Frequency = model.ParseFrequency(prop.Select.Name)
	}

	if prop, ok := page.Properties[model.PropRecurrenceScheduled].(*notionapi.CheckboxProperty); ok {
		task.HasScheduledFlag = true
		task.Scheduled = prop.Checkbox
	}

	return task
}

// clonedProperties copies the source page's properties, replacing the
// due date with the advanced one and resetting the scheduled checkbox.
func clonedProperties(page notionapi.Page, due time.Time) notionapi.Properties {
	props := make(notionapi.Properties, len(page.Properties)+1)
	for name, value := range page.Properties {
		props[name] = value
	}

	start := notionapi.Date(due)
	props[model.PropDueDate] = &notionapi.DateProperty{
		Date: &notionapi.DateObject{Start: &start},
	}
	props[model.PropRecurrenceScheduled] = &notionapi.CheckboxProperty{Checkbox: false}

	return props
}
