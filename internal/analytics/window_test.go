package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindow(t *testing.T) {
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)
	w := DayWindow(now)

	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, 6, 12, 23, 59, 59, 999e6, time.UTC), w.End)
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "wednesday mid-week",
			now:       time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 15, 23, 59, 59, 999e6, time.UTC),
		},
		{
			name:      "sunday is its own week start",
			now:       time.Date(2024, 6, 9, 8, 30, 0, 0, time.UTC),
			wantStart: time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 15, 23, 59, 59, 999e6, time.UTC),
		},
		{
			name:      "saturday belongs to the preceding sunday",
			now:       time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 15, 23, 59, 59, 999e6, time.UTC),
		},
		{
			name:      "week spanning a month boundary",
			now:       time.Date(2024, 7, 2, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 7, 6, 23, 59, 59, 999e6, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WeekWindow(tt.now)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "thirty day month",
			now:       time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "leap year february",
			now:       time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "december rolls into the new year correctly",
			now:       time.Date(2024, 12, 25, 9, 0, 0, 0, time.UTC),
			wantStart: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := MonthWindow(tt.now)
			assert.Equal(t, tt.wantStart, w.Start)
			assert.Equal(t, tt.wantEnd, w.End)
		})
	}
}
