package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventIsOngoing(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	bounded := Event{StartDate: start, EndDate: &end}
	openEnded := Event{StartDate: start}

	tests := []struct {
		name  string
		event Event
		at    time.Time
		want  bool
	}{
		{"before start", bounded, start.Add(-time.Hour), false},
		{"at start", bounded, start, true},
		{"within window", bounded, start.Add(24 * time.Hour), true},
		{"at end", bounded, end, true},
		{"after end", bounded, end.Add(time.Minute), false},
		{"open-ended after start", openEnded, start.Add(365 * 24 * time.Hour), true},
		{"open-ended before start", openEnded, start.Add(-time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.IsOngoing(tt.at))
		})
	}
}

func TestEventToResponseOngoing(t *testing.T) {
	past := Event{
		StartDate: time.Now().Add(-2 * time.Hour),
	}
	assert.True(t, past.ToResponse().Ongoing, "open-ended started event is ongoing")

	end := time.Now().Add(-time.Hour)
	finished := Event{
		StartDate: time.Now().Add(-2 * time.Hour),
		EndDate:   &end,
	}
	assert.False(t, finished.ToResponse().Ongoing)
}
