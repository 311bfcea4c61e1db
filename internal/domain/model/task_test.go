package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestTaskShouldSchedule(t *testing.T) {
	now := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		task Task
		want bool
	}{
		{
			name: "due within day with day frequency",
			task: Task{Due: timePtr(time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC)), Frequency: FrequencyDay},
			want: true,
		},
		{
			name: "due in the past with day frequency",
			task: Task{Due: timePtr(time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)), Frequency: FrequencyDay},
			want: false,
		},
		{
			name: "due within month with month frequency",
			task: Task{Due: timePtr(time.Date(2025, 7, 1, 1, 0, 0, 0, time.UTC)), Frequency: FrequencyMonth},
			want: true,
		},
		{
			name: "due beyond month with month frequency",
			task: Task{Due: timePtr(time.Date(2025, 7, 20, 23, 0, 0, 0, time.UTC)), Frequency: FrequencyMonth},
			want: false,
		},
		{
			name: "due exactly now",
			task: Task{Due: timePtr(now), Frequency: FrequencyWeek},
			want: true,
		},
		{
			name: "due exactly at window end",
			task: Task{Due: timePtr(time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)), Frequency: FrequencyWeek},
			want: true,
		},
		{
			name: "already scheduled",
			task: Task{
				Due:       timePtr(time.Date(2025, 6, 11, 1, 0, 0, 0, time.UTC)),
				Frequency: FrequencyDay,
				Scheduled: true,
			},
			want: false,
		},
		{
			name: "no due date",
			task: Task{Frequency: FrequencyDay},
			want: false,
		},
		{
			name: "undefined frequency",
			task: Task{Due: timePtr(now), Frequency: FrequencyUndefined},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.task.ShouldSchedule(now))
		})
	}
}

func TestTaskNextDue(t *testing.T) {
	t.Run("advances due by one step", func(t *testing.T) {
		task := Task{
			Due:       timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			Frequency: FrequencyWeek,
		}
		next, ok := task.NextDue()
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), next)
	})

	t.Run("no due date", func(t *testing.T) {
		_, ok := Task{Frequency: FrequencyDay}.NextDue()
		assert.False(t, ok)
	})

	t.Run("undefined frequency", func(t *testing.T) {
		_, ok := Task{Due: timePtr(time.Now()), Frequency: FrequencyUndefined}.NextDue()
		assert.False(t, ok)
	})
}
