package schedule

import (
	"strings"
	"time"

	"github.com/dev1-one/svitloe/internal/dal"
)

// Change describes how one group's schedule differs between two snapshots.
// OldSchedule is nil for a group absent from the previous snapshot;
// NewSchedule is nil for a group removed from the new one. Both carry
// future-only schedule strings, not the raw published ones.
type Change struct {
	ID          string
	OldSchedule *string
	NewSchedule *string
	OldDate     string
	NewDate     string
}

// Diff compares the previous snapshot against a newly fetched one and reports
// observable changes. A snapshot may carry the same group ID more than once
// (today and tomorrow rows), so all rows sharing an ID are collapsed into one
// per-group view before comparison. Schedules are filtered to future-only
// ranges first, so a past range aging out of relevance is not a change.
// Removed groups are reported only when they still had upcoming ranges.
// New and modified groups come first, removed ones after, each in source
// iteration order.
func Diff(prev, next []dal.Group, now time.Time, loc *time.Location) []Change {
	prevIDs, prevRows := rowsByID(prev)
	nextIDs, nextRows := rowsByID(next)

	var changes []Change
	for _, id := range nextIDs {
		newView := collapse(nextRows[id], now, loc)

		oldRows, existed := prevRows[id]
		if !existed {
			if newView.future == "" {
				continue
			}
			s := newView.future
			changes = append(changes, Change{
				ID:          id,
				NewSchedule: &s,
				NewDate:     newView.date,
			})
			continue
		}

		oldView := collapse(oldRows, now, loc)
		if oldView.key == newView.key {
			continue
		}

		oldCopy, newCopy := oldView.future, newView.future
		changes = append(changes, Change{
			ID:          id,
			OldSchedule: &oldCopy,
			NewSchedule: &newCopy,
			OldDate:     oldView.date,
			NewDate:     newView.date,
		})
	}

	for _, id := range prevIDs {
		if _, still := nextRows[id]; still {
			continue
		}
		oldView := collapse(prevRows[id], now, loc)
		if oldView.future == "" {
			// nothing observable was lost
			continue
		}
		s := oldView.future
		changes = append(changes, Change{
			ID:          id,
			OldSchedule: &s,
			OldDate:     oldView.date,
		})
	}

	return changes
}

// rowsByID groups snapshot rows by group ID, keeping first-appearance order.
func rowsByID(groups []dal.Group) (ids []string, rows map[string][]dal.Group) {
	rows = make(map[string][]dal.Group, len(groups))
	for _, g := range groups {
		if _, seen := rows[g.ID]; !seen {
			ids = append(ids, g.ID)
		}
		rows[g.ID] = append(rows[g.ID], g)
	}
	return ids, rows
}

// groupView is one group's rows collapsed to a comparable value. future is
// the joined future-only schedule across rows, date the date of the first
// row still carrying future ranges, and key the date-qualified form that
// comparison uses, so a schedule shifting to another day registers even when
// its tokens read the same.
type groupView struct {
	future string
	date   string
	key    string
}

func collapse(rows []dal.Group, now time.Time, loc *time.Location) groupView {
	var futures, keys []string
	date := ""
	for _, g := range rows {
		f := FutureOnly(ParseRanges(g.Date, g.Schedule, loc), now)
		if f == "" {
			continue
		}
		futures = append(futures, f)
		keys = append(keys, g.Date+" "+f)
		if date == "" {
			date = g.Date
		}
	}
	if date == "" && len(rows) > 0 {
		date = rows[0].Date
	}

	return groupView{
		future: strings.Join(futures, ", "),
		date:   date,
		key:    strings.Join(keys, "; "),
	}
}
