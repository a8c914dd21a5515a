package schedule

import "time"

// Reminder thresholds in minutes before the outage start.
const (
	Reminder30 = 30
	Reminder10 = 10
)

// Each window is sized to the 7-minute invocation cadence, so barring a
// missed run exactly one invocation lands inside it: at-most-once delivery
// per threshold, best effort. If the cadence changes, these bounds must
// change with it.
const (
	window30Low = 23
	window10Low = 3
)

// DueReminder decides whether a reminder is due right now for the given
// target instant. minutes is the threshold to announce (30 or 10); due is
// false when the gap falls outside both windows or the target has passed.
func DueReminder(target, now time.Time) (minutes int, due bool) {
	diff := int(target.Sub(now).Minutes())
	if diff <= 0 {
		return 0, false
	}

	switch {
	case diff <= Reminder30 && diff > window30Low:
		return Reminder30, true
	case diff <= Reminder10 && diff > window10Low:
		return Reminder10, true
	default:
		return 0, false
	}
}
