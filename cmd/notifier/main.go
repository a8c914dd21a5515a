package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dev1-one/svitloe/internal/calendar"
	"github.com/dev1-one/svitloe/internal/config"
	"github.com/dev1-one/svitloe/internal/dal"
	"github.com/dev1-one/svitloe/internal/providers"
	"github.com/dev1-one/svitloe/internal/service"
	"github.com/dev1-one/svitloe/internal/telegram"
	"github.com/dev1-one/svitloe/pkg/clock"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	_ = godotenv.Load()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	loc := clock.Kyiv()
	clk := clock.New(loc)

	store, err := dal.NewBoltDB(conf.DBPath, clk)
	if err != nil {
		log.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	bot, err := telegram.NewBot(conf.TelegramToken, store, conf.TelegramChatIDs, conf.ScheduleAPIURL, log)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	tuya := providers.NewTuyaClient(conf.TuyaHost, conf.TuyaAccessKey, conf.TuyaSecretKey, conf.TuyaDeviceID)
	loe := providers.NewLOEClient(conf.ScheduleAPIURL)
	vision := providers.NewGeminiClient(conf.GeminiAPIKey, conf.GeminiModel)

	monitorSvc := service.NewMonitor(store, tuya, bot, clk, log)
	schedulesSvc := service.NewSchedules(store, loe, vision, bot, bot, clk, conf.ScheduleGroupID, loc, log)
	remindersSvc := service.NewReminders(store, bot, clk, conf.ScheduleGroupID, loc, log)

	wg := &sync.WaitGroup{}
	runLoop(ctx, wg, conf.PollInterval, monitorSvc.Check, log.With("component", "loop").With("action", "monitor"))
	runLoop(ctx, wg, conf.PollInterval, schedulesSvc.Refresh, log.With("component", "loop").With("action", "refresh"))
	runLoop(ctx, wg, conf.PollInterval, remindersSvc.Check, log.With("component", "loop").With("action", "remind"))
	runLoop(ctx, wg, conf.CleanupInterval, func(context.Context) error {
		return store.CleanupStatuses(conf.StatusesTTL)
	}, log.With("component", "loop").With("action", "cleanup"))

	if conf.CalendarEnabled() {
		gcal, err := calendar.NewGoogle(ctx, conf.CalendarCredentialsPath, conf.CalendarID)
		if err != nil {
			log.Error("Failed to create calendar client", "error", err)
			os.Exit(1)
		}
		syncSvc := calendar.NewSyncService(gcal, store, clk, conf.ScheduleGroupID, loc, log)
		runLoop(ctx, wg, conf.PollInterval, syncSvc.Sync, log.With("component", "loop").With("action", "calendar"))
	}

	log.Info("Starting bot")
	if err := bot.Start(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			log.Error("Failed to start bot", "error", err)
		}
	}

	wg.Wait()
	log.Info("Stopped")
}

func runLoop(ctx context.Context, wg *sync.WaitGroup, delay time.Duration, task func(context.Context) error, log *slog.Logger) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer log.InfoContext(ctx, "Stopped loop")

		log.InfoContext(ctx, "Starting loop", "interval", delay)
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
				err := task(ctx)
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return
					}
					if errors.Is(err, context.DeadlineExceeded) {
						log.WarnContext(ctx, "Task timed out", "error", err)
						continue
					}

					log.ErrorContext(ctx, "Task failed", "error", err)
				}
			}
		}
	}()
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
