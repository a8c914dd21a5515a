package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dev1-one/svitloe/internal/schedule"
)

func TestDueReminder(t *testing.T) {
	target := date(7, 14, 30)

	tests := []struct {
		name        string
		minutesLeft int
		wantMinutes int
		wantDue     bool
	}{
		{"far_away", 60, 0, false},
		{"upper_30_bound_inclusive", 30, 30, true},
		{"inside_30_window", 28, 30, true},
		{"lower_30_bound_exclusive", 23, 0, false},
		{"gap_between_windows", 15, 0, false},
		{"upper_10_bound_inclusive", 10, 10, true},
		{"inside_10_window", 8, 10, true},
		{"lower_10_bound_exclusive", 3, 0, false},
		{"about_to_start", 1, 0, false},
		{"already_started", 0, 0, false},
		{"in_the_past", -20, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := target.Add(-time.Duration(tt.minutesLeft) * time.Minute)
			minutes, due := schedule.DueReminder(target, now)
			assert.Equal(t, tt.wantDue, due)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

// Sub-minute fractions truncate, so 30m59s before the target still reads as
// 30 minutes and fires the first reminder.
func TestDueReminder_TruncatesToMinutes(t *testing.T) {
	target := date(7, 14, 30)

	minutes, due := schedule.DueReminder(target, target.Add(-30*time.Minute-59*time.Second))
	assert.True(t, due)
	assert.Equal(t, 30, minutes)

	_, due = schedule.DueReminder(target, target.Add(-31*time.Minute))
	assert.False(t, due)
}
