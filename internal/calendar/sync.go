package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dev1-one/svitloe/internal/dal"
	"github.com/dev1-one/svitloe/internal/schedule"
)

const (
	eventSummary = "Відключення електроенергії"

	// sync window: from start of today through end of tomorrow
	syncWindowDays = 2
)

// GroupsReader provides the latest scraped snapshot for sync.
type GroupsReader interface {
	GetLatestGroupsState() (dal.GroupsState, bool, error)
}

// Events is the calendar surface the sync uses.
type Events interface {
	ListOurEvents(ctx context.Context, timeMin, timeMax time.Time) ([]string, error)
	InsertEvent(ctx context.Context, summary, description string, start, end time.Time) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type Clock interface {
	Now() time.Time
}

// SyncService mirrors the tracked group's upcoming outage intervals into a
// Google Calendar with delete-then-recreate semantics: our previously created
// events in the window are removed and the current schedule is inserted fresh.
type SyncService struct {
	client  Events
	store   GroupsReader
	clock   Clock
	groupID string
	loc     *time.Location

	log *slog.Logger
	mx  *sync.Mutex
}

func NewSyncService(client Events, store GroupsReader, clock Clock, groupID string, loc *time.Location, log *slog.Logger) *SyncService {
	return &SyncService{
		client:  client,
		store:   store,
		clock:   clock,
		groupID: groupID,
		loc:     loc,
		log:     log.With("component", "calendar_sync"),
		mx:      &sync.Mutex{},
	}
}

func (s *SyncService) Sync(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	now := s.clock.Now().In(s.loc)
	timeMin := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	timeMax := timeMin.AddDate(0, 0, syncWindowDays)

	state, found, err := s.store.GetLatestGroupsState()
	if err != nil {
		return fmt.Errorf("get latest groups state: %w", err)
	}
	if !found {
		s.log.DebugContext(ctx, "no groups state yet, skipping calendar sync")
		return nil
	}

	upcoming := s.upcomingRanges(state.Groups, now)

	s.log.InfoContext(ctx, "starting calendar sync",
		"timeMin", timeMin.Format(time.RFC3339),
		"timeMax", timeMax.Format(time.RFC3339),
		"events", len(upcoming))

	ids, err := s.client.ListOurEvents(ctx, timeMin, timeMax)
	if err != nil {
		return fmt.Errorf("calendar sync: list: %w", err)
	}
	for _, id := range ids {
		if err := s.client.DeleteEvent(ctx, id); err != nil {
			return fmt.Errorf("calendar sync: delete %s: %w", id, err)
		}
	}

	for _, r := range upcoming {
		description := fmt.Sprintf("Група %s, за графіком %s", s.groupID, r.Token())
		if _, err := s.client.InsertEvent(ctx, eventSummary, description, r.Start, r.End); err != nil {
			return fmt.Errorf("calendar sync: insert %s: %w", r.Token(), err)
		}
	}

	return nil
}

// upcomingRanges collects the tracked group's ranges that have not ended yet.
// The snapshot may hold the same group twice (today and tomorrow rows share
// the id but differ by date), so all matching entries contribute.
func (s *SyncService) upcomingRanges(groups []dal.Group, now time.Time) []schedule.Range {
	var res []schedule.Range
	for _, g := range groups {
		if g.ID != s.groupID {
			continue
		}
		for _, r := range schedule.ParseRanges(g.Date, g.Schedule, s.loc) {
			if r.End.After(now) {
				res = append(res, r)
			}
		}
	}
	return res
}
