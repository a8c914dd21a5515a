package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dev1-one/svitloe/internal/dal"
	"github.com/dev1-one/svitloe/internal/providers"
	"github.com/dev1-one/svitloe/internal/schedule"
)

//go:generate mockgen -package mocks -destination mocks/schedules.go . SchedulesStore,MenuProvider,VisionClient,PhotoSender

type PhotoSender interface {
	BroadcastPhoto(ctx context.Context, url, caption string) error
}

type MenuProvider interface {
	FetchMenu(ctx context.Context) (providers.Menu, error)
}

type VisionClient interface {
	Analyze(ctx context.Context, imageURL string) providers.VisionResult
}

type SchedulesStore interface {
	GetLatestImage() (dal.Image, bool, error)
	PutImage(url string) error
	PutNextNotification(target string) error
	GetLatestGroupsState() (dal.GroupsState, bool, error)
	PutGroupsState(groups []dal.Group) error
}

// Schedules refreshes the published outage schedule: when the utility posts a
// new graphic it is run through vision extraction, the resulting snapshot is
// diffed against the stored one, the next-outage target for the tracked group
// is updated, and subscribers get the graphic with a caption.
type Schedules struct {
	store    SchedulesStore
	provider MenuProvider
	vision   VisionClient
	text     MessageSender
	photo    PhotoSender
	clock    Clock

	groupID string
	loc     *time.Location

	log *slog.Logger
	mx  *sync.Mutex
}

func NewSchedules(
	store SchedulesStore,
	provider MenuProvider,
	vision VisionClient,
	text MessageSender,
	photo PhotoSender,
	clock Clock,
	groupID string,
	loc *time.Location,
	log *slog.Logger,
) *Schedules {
	return &Schedules{
		store:    store,
		provider: provider,
		vision:   vision,
		text:     text,
		photo:    photo,
		clock:    clock,
		groupID:  groupID,
		loc:      loc,
		log:      log.With("component", "service").With("service", "schedules"),
		mx:       &sync.Mutex{},
	}
}

func (s *Schedules) Refresh(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	menu, err := s.provider.FetchMenu(ctx)
	if err != nil {
		return fmt.Errorf("fetch schedule menu: %w", err)
	}

	latestImage, found, err := s.store.GetLatestImage()
	if err != nil {
		return fmt.Errorf("get latest image: %w", err)
	}
	if found && latestImage.URL == menu.ImageRef {
		s.log.DebugContext(ctx, "schedule graphic unchanged", "image", menu.ImageRef)
		return nil
	}

	s.log.InfoContext(ctx, "new schedule graphic published", "image", menu.ImageRef)
	now := s.clock.Now()

	snapshot := s.extractSnapshot(ctx, menu)
	caption, target := s.buildCaption(snapshot, now)

	if err := s.store.PutNextNotification(target); err != nil {
		s.log.ErrorContext(ctx, "failed to store next notification target", "error", err)
	}

	s.notifyChanges(ctx, snapshot, now)

	if err := s.photo.BroadcastPhoto(ctx, menu.ImageURL, caption); err != nil {
		// degrade to text so the update is never silent
		s.log.ErrorContext(ctx, "failed to broadcast schedule graphic", "error", err)
		if err := s.text.Broadcast(ctx, caption); err != nil {
			s.log.ErrorContext(ctx, "failed to broadcast schedule caption", "error", err)
		}
	}

	if err := s.store.PutImage(menu.ImageRef); err != nil {
		return fmt.Errorf("put image: %w", err)
	}
	if err := s.store.PutGroupsState(snapshot); err != nil {
		return fmt.Errorf("put groups state: %w", err)
	}

	return nil
}

// extractSnapshot prefers vision extraction from the graphic; when the call
// fails the menu items' own markup serves as a degraded snapshot source.
func (s *Schedules) extractSnapshot(ctx context.Context, menu providers.Menu) []dal.Group {
	res := s.vision.Analyze(ctx, menu.ImageURL)
	if res.OK {
		return res.Groups
	}

	s.log.WarnContext(ctx, "vision extraction failed, falling back to menu markup", "error", res.Err)

	snapshot := make([]dal.Group, 0, len(menu.Today)+len(menu.Tomorrow))
	snapshot = append(snapshot, menu.Today...)
	snapshot = append(snapshot, menu.Tomorrow...)
	return snapshot
}

// buildCaption resolves the tracked group's next outage and renders the photo
// caption. target is the "DD.MM.YYYY HH:mm" value to store, empty when no
// upcoming outage is resolvable.
func (s *Schedules) buildCaption(snapshot []dal.Group, now time.Time) (caption, target string) {
	undetermined := fmt.Sprintf("Наступне вимкнення електроенергії (група %s) не визначено", s.groupID)

	ranges, found := groupRanges(snapshot, s.groupID, s.loc)
	if !found {
		s.log.Warn("tracked group not found in snapshot", "group", s.groupID)
		return undetermined, ""
	}

	next, ok := schedule.NextOutage(ranges, now)
	if !ok {
		s.log.Warn("no upcoming outage for tracked group", "group", s.groupID)
		return undetermined, ""
	}

	target = schedule.FormatTarget(next)
	caption = fmt.Sprintf("Наступне вимкнення електроенергії (група %s): %s", s.groupID, target)
	if dur := schedule.DurationText(next); dur != "" {
		caption += fmt.Sprintf(" (тривалість: %s)", dur)
	}

	return caption, target
}

// notifyChanges diffs the new snapshot against the stored one and broadcasts
// a change summary when anything the subscribers still care about moved.
// First run (no stored snapshot) is not a change.
func (s *Schedules) notifyChanges(ctx context.Context, snapshot []dal.Group, now time.Time) {
	prev, found, err := s.store.GetLatestGroupsState()
	if err != nil {
		s.log.ErrorContext(ctx, "failed to get latest groups state", "error", err)
		return
	}
	if !found {
		return
	}

	changes := schedule.Diff(prev.Groups, snapshot, now, s.loc)
	if len(changes) == 0 {
		return
	}

	msg, err := renderChanges(changes)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render changes message", "error", err)
		return
	}

	if err := s.text.Broadcast(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "failed to broadcast changes", "error", err)
	}
}

// groupRanges collects the tracked group's parsed ranges across every
// snapshot row carrying the ID. Today and tomorrow rows share the ID and
// differ by date, so all of them contribute, in source order.
func groupRanges(groups []dal.Group, id string, loc *time.Location) ([]schedule.Range, bool) {
	var res []schedule.Range
	found := false
	for _, g := range groups {
		if g.ID != id {
			continue
		}
		found = true
		res = append(res, schedule.ParseRanges(g.Date, g.Schedule, loc)...)
	}
	return res, found
}
