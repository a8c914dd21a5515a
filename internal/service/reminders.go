package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dev1-one/svitloe/internal/dal"
	"github.com/dev1-one/svitloe/internal/schedule"
)

//go:generate mockgen -package mocks -destination mocks/reminders.go . RemindersStore

type RemindersStore interface {
	GetLatestNotification() (dal.Notification, bool, error)
	GetLatestGroupsState() (dal.GroupsState, bool, error)
}

// Reminders fires 30- and 10-minute warnings before the tracked group's next
// predicted outage. It has no timer of its own: it is invoked on the poll
// cadence and infers "due right now" purely from the gap between now and the
// stored target, with windows sized so one invocation lands in each.
type Reminders struct {
	store  RemindersStore
	sender MessageSender
	clock  Clock

	groupID string
	loc     *time.Location

	log *slog.Logger
	mx  *sync.Mutex
}

func NewReminders(store RemindersStore, sender MessageSender, clock Clock, groupID string, loc *time.Location, log *slog.Logger) *Reminders {
	return &Reminders{
		store:   store,
		sender:  sender,
		clock:   clock,
		groupID: groupID,
		loc:     loc,
		log:     log.With("component", "service").With("service", "reminders"),
		mx:      &sync.Mutex{},
	}
}

func (s *Reminders) Check(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	notif, found, err := s.store.GetLatestNotification()
	if err != nil {
		return fmt.Errorf("get latest notification: %w", err)
	}
	if !found || notif.Target == "" {
		return nil
	}

	target, err := schedule.ParseTarget(notif.Target, s.loc)
	if err != nil {
		// a corrupt stored target must never crash the cycle
		s.log.WarnContext(ctx, "unparseable notification target", "target", notif.Target, "error", err)
		return nil
	}

	now := s.clock.Now()
	minutes, due := schedule.DueReminder(target, now)
	if !due {
		return nil
	}

	if !s.outageStillUpcoming(ctx, now) {
		s.log.InfoContext(ctx, "stored target no longer backed by current schedule, skipping reminder",
			"target", notif.Target)
		return nil
	}

	msg := fmt.Sprintf("⏰ Нагадування: Вимкнення електроенергії через %d хвилин (група %s)\nДата/час: %s (Europe/Kyiv)",
		minutes, s.groupID, notif.Target)

	s.log.InfoContext(ctx, "sending reminder", "minutes", minutes, "target", notif.Target)
	if err := s.sender.Broadcast(ctx, msg); err != nil {
		return fmt.Errorf("broadcast reminder: %w", err)
	}

	return nil
}

// outageStillUpcoming guards against phantom reminders from stale targets:
// the tracked group must be present in the latest snapshot and must still
// resolve to an upcoming outage right now.
func (s *Reminders) outageStillUpcoming(ctx context.Context, now time.Time) bool {
	state, found, err := s.store.GetLatestGroupsState()
	if err != nil {
		s.log.ErrorContext(ctx, "failed to get latest groups state", "error", err)
		return false
	}
	if !found {
		return false
	}

	ranges, found := groupRanges(state.Groups, s.groupID, s.loc)
	if !found {
		return false
	}

	_, ok := schedule.NextOutage(ranges, now)
	return ok
}
