package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dev1-one/svitloe/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/monitor.go . StatusesStore,DeviceClient,MessageSender

type Clock interface {
	Now() time.Time
}

type MessageSender interface {
	Broadcast(ctx context.Context, text string) error
}

type DeviceClient interface {
	DeviceOnline(ctx context.Context) (bool, error)
}

type StatusesStore interface {
	GetLatestStatus() (dal.Status, bool, error)
	PutStatus(status string) error
}

// Monitor polls the smart plug's cloud state and notifies about
// online/offline transitions: the plug losing power means the apartment
// lost power.
type Monitor struct {
	store  StatusesStore
	device DeviceClient
	sender MessageSender
	clock  Clock

	log *slog.Logger
	mx  *sync.Mutex
}

func NewMonitor(store StatusesStore, device DeviceClient, sender MessageSender, clock Clock, log *slog.Logger) *Monitor {
	return &Monitor{
		store:  store,
		device: device,
		sender: sender,
		clock:  clock,
		log:    log.With("component", "service").With("service", "monitor"),
		mx:     &sync.Mutex{},
	}
}

func (m *Monitor) Check(ctx context.Context) error {
	m.mx.Lock()
	defer m.mx.Unlock()

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	online, err := m.device.DeviceOnline(ctx)
	if err != nil {
		return fmt.Errorf("get device status: %w", err)
	}

	status := dal.StatusOffline
	if online {
		status = dal.StatusOnline
	}

	latest, found, err := m.store.GetLatestStatus()
	if err != nil {
		return fmt.Errorf("get latest status: %w", err)
	}
	if !found {
		m.log.InfoContext(ctx, "no previous status, recording first observation", "status", status)
		if err := m.store.PutStatus(status); err != nil {
			return fmt.Errorf("put status: %w", err)
		}
		return nil
	}

	if latest.Status == status {
		m.log.DebugContext(ctx, "no status change", "status", status, "since", latest.At)
		return nil
	}

	elapsed := formatDuration(m.clock.Now().Sub(latest.At))

	var msg string
	if online {
		msg = "💡 Світло є\n\nЕлектроенергія була відсутня: " + elapsed
	} else {
		msg = "🔴 Світла немає\n\nЕлектроенергію було увімкнено: " + elapsed
	}

	if err := m.store.PutStatus(status); err != nil {
		return fmt.Errorf("put status: %w", err)
	}
	m.log.InfoContext(ctx, "status transition", "from", latest.Status, "to", status, "elapsed", elapsed)

	if err := m.sender.Broadcast(ctx, msg); err != nil {
		// the transition is already recorded; delivery failures are not fatal
		m.log.ErrorContext(ctx, "failed to broadcast status change", "error", err)
	}

	return nil
}

// formatDuration renders a duration in Ukrainian using the two largest
// non-zero units, e.g. "2 дн та 5 год" or "42 хв".
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}

	total := int(d.Minutes())
	days := total / (24 * 60)
	hours := total % (24 * 60) / 60
	minutes := total % 60

	parts := make([]string, 0, 2) //nolint:gomnd // largest two units
	for _, p := range []struct {
		value int
		unit  string
	}{
		{days, "дн"},
		{hours, "год"},
		{minutes, "хв"},
	} {
		if p.value == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s", p.value, p.unit))
		if len(parts) == 2 { //nolint:gomnd
			break
		}
	}

	if len(parts) == 0 {
		return "менше хвилини"
	}

	return strings.Join(parts, " та ")
}
