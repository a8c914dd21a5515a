// Package schedule implements the outage-schedule domain logic: parsing the
// published per-group schedule strings into concrete time ranges, selecting
// the next outage, diffing snapshots, and reminder timing.
package schedule

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "02.01.2006"

	// TargetLayout is the stored next-outage instant, e.g. "07.11.2025 14:30".
	TargetLayout = "02.01.2006 15:04"
)

// Range is one outage interval resolved against a schedule date. From and To
// keep the published clock tokens verbatim ("21:30", "24:00") so rendered
// output matches the source; Start and End are the resolved instants. An end
// before the start wraps to the next day, so "21:30-24:00" ends at midnight
// of the following date; equal clock tokens stay a zero-length range.
type Range struct {
	From string
	To   string

	Start time.Time
	End   time.Time
}

// Token renders the range the way the utility publishes it.
func (r Range) Token() string {
	return r.From + "-" + r.To
}

// ParseRanges parses a published schedule string like
// "08:00-11:00, 21:30-24:00" against its date ("07.11.2025") into resolved
// ranges. Malformed tokens and an unparseable date degrade silently: the
// result simply omits what could not be understood, preserving source order
// of the rest.
func ParseRanges(date, scheduleStr string, loc *time.Location) []Range {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return nil
	}

	var res []Range
	for _, token := range strings.Split(scheduleStr, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		from, to, ok := strings.Cut(token, "-")
		if !ok {
			continue
		}
		from, to = strings.TrimSpace(from), strings.TrimSpace(to)

		fromH, fromM, ok := parseClock(from)
		if !ok {
			continue
		}
		toH, toM, ok := parseClock(to)
		if !ok {
			continue
		}

		// hour 24 normalizes to 00:00 of the next day here
		start := time.Date(day.Year(), day.Month(), day.Day(), fromH, fromM, 0, 0, loc)
		end := time.Date(day.Year(), day.Month(), day.Day(), toH, toM, 0, 0, loc)
		if end.Before(start) {
			end = end.AddDate(0, 0, 1)
		}

		res = append(res, Range{From: from, To: to, Start: start, End: end})
	}

	return res
}

// parseClock parses "HH:MM". "24:00" is accepted as the published way of
// saying end of day.
func parseClock(s string) (hour, minute int, ok bool) {
	hh, mm, found := strings.Cut(s, ":")
	if !found || len(hh) != 2 || len(mm) != 2 {
		return 0, 0, false
	}

	hour, ok = parseTwoDigits(hh)
	if !ok {
		return 0, 0, false
	}
	minute, ok = parseTwoDigits(mm)
	if !ok {
		return 0, 0, false
	}

	if hour == 24 && minute == 0 {
		return 24, 0, true
	}
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}

func parseTwoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// NextOutage returns the first range starting strictly after now, in source
// order. Ranges are taken as published, not re-sorted, so an out-of-order
// source yields its own first future entry.
func NextOutage(ranges []Range, now time.Time) (Range, bool) {
	for _, r := range ranges {
		if r.Start.After(now) {
			return r, true
		}
	}
	return Range{}, false
}

// FutureOnly renders the ranges that have not ended yet as a schedule string,
// keeping source order. Ongoing outages count as future.
func FutureOnly(ranges []Range, now time.Time) string {
	var tokens []string
	for _, r := range ranges {
		if r.End.After(now) {
			tokens = append(tokens, r.Token())
		}
	}
	return strings.Join(tokens, ", ")
}

// DurationText renders the range's length in Ukrainian, e.g. "3 год 30 хв",
// omitting zero components. Empty for a zero-length range.
func DurationText(r Range) string {
	total := int(r.End.Sub(r.Start).Minutes())
	hours, minutes := total/60, total%60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d год", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d хв", minutes))
	}

	return strings.Join(parts, " ")
}

// FormatTarget renders the range's start as the stored notification target.
func FormatTarget(r Range) string {
	return r.Start.Format(TargetLayout)
}

// ParseTarget parses a stored notification target back into an instant.
func ParseTarget(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(TargetLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse target %q: %w", s, err)
	}
	return t, nil
}
