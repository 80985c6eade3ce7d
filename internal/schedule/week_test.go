package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveWeekWindow(t *testing.T) {
	tests := []struct {
		name       string
		ref        time.Time
		wantMonday time.Time
	}{
		{
			name:       "wednesday maps to same week's monday",
			ref:        time.Date(2026, 3, 4, 15, 42, 7, 0, time.UTC), // Wednesday
			wantMonday: date(2026, 3, 2),
		},
		{
			name:       "monday maps to itself",
			ref:        time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			wantMonday: date(2026, 3, 2),
		},
		{
			name:       "friday maps back to monday",
			ref:        time.Date(2026, 3, 6, 23, 59, 59, 0, time.UTC),
			wantMonday: date(2026, 3, 2),
		},
		{
			name: "saturday belongs to the week that started",
			ref:  time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),

			wantMonday: date(2026, 3, 2),
		},
		{
			name:       "sunday belongs to the previous monday, not the next",
			ref:        time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC), // Sunday
			wantMonday: date(2026, 3, 2),
		},
		{
			name:       "window may cross a month boundary",
			ref:        time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC), // Wednesday
			wantMonday: date(2026, 3, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := DeriveWeekWindow(tt.ref)
			require.Len(t, window, WeekdayCount)

			for i, d := range window {
				assert.Equal(t, tt.wantMonday.AddDate(0, 0, i), d)
				// Normalized to midnight.
				hh, mm, ss := d.Clock()
				assert.Zero(t, hh)
				assert.Zero(t, mm)
				assert.Zero(t, ss)
			}

			assert.Equal(t, time.Monday, window[0].Weekday())
			assert.Equal(t, time.Friday, window[4].Weekday())
		})
	}
}
