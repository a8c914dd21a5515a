package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev1-one/svitloe/internal/schedule"
)

var testLoc = time.FixedZone("EET", 2*60*60)

func date(day, hour, minute int) time.Time {
	return time.Date(2025, time.November, day, hour, minute, 0, 0, testLoc)
}

func TestParseRanges(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		schedule string
		want     []schedule.Range
	}{
		{
			name:     "single_range",
			date:     "07.11.2025",
			schedule: "08:00-11:00",
			want: []schedule.Range{
				{From: "08:00", To: "11:00", Start: date(7, 8, 0), End: date(7, 11, 0)},
			},
		},
		{
			name:     "multiple_ranges",
			date:     "07.11.2025",
			schedule: "08:00-11:00, 14:30-17:00",
			want: []schedule.Range{
				{From: "08:00", To: "11:00", Start: date(7, 8, 0), End: date(7, 11, 0)},
				{From: "14:30", To: "17:00", Start: date(7, 14, 30), End: date(7, 17, 0)},
			},
		},
		{
			name:     "end_of_day_wraps_to_next_midnight",
			date:     "07.11.2025",
			schedule: "21:30-24:00",
			want: []schedule.Range{
				{From: "21:30", To: "24:00", Start: date(7, 21, 30), End: date(8, 0, 0)},
			},
		},
		{
			name:     "overnight_range_ends_next_day",
			date:     "07.11.2025",
			schedule: "23:00-01:30",
			want: []schedule.Range{
				{From: "23:00", To: "01:30", Start: date(7, 23, 0), End: date(8, 1, 30)},
			},
		},
		{
			name:     "malformed_tokens_skipped",
			date:     "07.11.2025",
			schedule: "garbage, 08:00-11:00, 25:00-26:00, 14:00, , 9:0-10:0, 14:30-17:00",
			want: []schedule.Range{
				{From: "08:00", To: "11:00", Start: date(7, 8, 0), End: date(7, 11, 0)},
				{From: "14:30", To: "17:00", Start: date(7, 14, 30), End: date(7, 17, 0)},
			},
		},
		{
			name:     "equal_tokens_stay_zero_length",
			date:     "07.11.2025",
			schedule: "10:00-10:00",
			want: []schedule.Range{
				{From: "10:00", To: "10:00", Start: date(7, 10, 0), End: date(7, 10, 0)},
			},
		},
		{
			name:     "empty_schedule",
			date:     "07.11.2025",
			schedule: "",
			want:     nil,
		},
		{
			name:     "unparseable_date",
			date:     "not-a-date",
			schedule: "08:00-11:00",
			want:     nil,
		},
		{
			name:     "source_order_preserved",
			date:     "07.11.2025",
			schedule: "14:30-17:00, 08:00-11:00",
			want: []schedule.Range{
				{From: "14:30", To: "17:00", Start: date(7, 14, 30), End: date(7, 17, 0)},
				{From: "08:00", To: "11:00", Start: date(7, 8, 0), End: date(7, 11, 0)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := schedule.ParseRanges(tt.date, tt.schedule, testLoc)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.Equal(t, w.From, got[i].From)
				assert.Equal(t, w.To, got[i].To)
				assert.True(t, w.Start.Equal(got[i].Start), "Start: want %s got %s", w.Start, got[i].Start)
				assert.True(t, w.End.Equal(got[i].End), "End: want %s got %s", w.End, got[i].End)
			}
		})
	}
}

func TestNextOutage(t *testing.T) {
	ranges := schedule.ParseRanges("07.11.2025", "14:30-17:00, 08:00-11:00", testLoc)

	tests := []struct {
		name      string
		now       time.Time
		wantToken string
		wantOK    bool
	}{
		{
			name:      "before_all_picks_first_in_source_order",
			now:       date(7, 6, 0),
			wantToken: "14:30-17:00",
			wantOK:    true,
		},
		{
			// at 12:00 the out-of-order source still resolves by position:
			// 14:30 is the first entry and the only future one
			name:      "midday_picks_first_future_entry",
			now:       date(7, 12, 0),
			wantToken: "14:30-17:00",
			wantOK:    true,
		},
		{
			// 14:30 already started and 08:00 is past
			name:   "no_entry_starts_in_future",
			now:    date(7, 15, 0),
			wantOK: false,
		},
		{
			name:   "after_all",
			now:    date(7, 18, 0),
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := schedule.NextOutage(ranges, tt.now)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantToken, got.Token())
			}
		})
	}
}

func TestNextOutage_StartMustBeStrictlyFuture(t *testing.T) {
	ranges := schedule.ParseRanges("07.11.2025", "08:00-11:00, 14:30-17:00", testLoc)

	// exactly at start the outage is no longer "next"
	got, ok := schedule.NextOutage(ranges, date(7, 8, 0))
	require.True(t, ok)
	assert.Equal(t, "14:30-17:00", got.Token())

	got, ok = schedule.NextOutage(ranges, date(7, 7, 59))
	require.True(t, ok)
	assert.Equal(t, "08:00-11:00", got.Token())
}

func TestFutureOnly(t *testing.T) {
	ranges := schedule.ParseRanges("07.11.2025", "08:00-11:00, 14:30-17:00, 21:30-24:00", testLoc)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"before_all", date(7, 6, 0), "08:00-11:00, 14:30-17:00, 21:30-24:00"},
		{"ongoing_counts_as_future", date(7, 10, 0), "08:00-11:00, 14:30-17:00, 21:30-24:00"},
		{"first_ended", date(7, 11, 0), "14:30-17:00, 21:30-24:00"},
		{"wrapped_range_alive_past_published_day", date(7, 23, 30), "21:30-24:00"},
		{"all_ended", date(8, 0, 0), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.FutureOnly(ranges, tt.now))
		})
	}
}

func TestDurationText(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		want     string
	}{
		{"hours_and_minutes", "08:00-11:30", "3 год 30 хв"},
		{"hours_only", "08:00-11:00", "3 год"},
		{"minutes_only", "08:00-08:45", "45 хв"},
		{"until_end_of_day", "21:30-24:00", "2 год 30 хв"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := schedule.ParseRanges("07.11.2025", tt.schedule, testLoc)
			require.Len(t, ranges, 1)
			assert.Equal(t, tt.want, schedule.DurationText(ranges[0]))
		})
	}
}

func TestTargetRoundTrip(t *testing.T) {
	ranges := schedule.ParseRanges("07.11.2025", "14:30-17:00", testLoc)
	require.Len(t, ranges, 1)

	target := schedule.FormatTarget(ranges[0])
	assert.Equal(t, "07.11.2025 14:30", target)

	parsed, err := schedule.ParseTarget(target, testLoc)
	require.NoError(t, err)
	assert.True(t, ranges[0].Start.Equal(parsed))
}

func TestParseTarget_Invalid(t *testing.T) {
	_, err := schedule.ParseTarget("tomorrow-ish", testLoc)
	assert.Error(t, err)
}
