package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/dev1-one/svitloe/internal/dal"
)

const (
	pollTimeout = 5 * time.Second

	// photo uploads are the slowest call we make
	sendTimeout = 20 * time.Second

	// /status shows the freshest observations only
	statusHistoryLimit = 10
	statusTimeLayout   = "02.01.2006 15:04"

	msgGreeting = "👋🏻 Привіт! Я слідкую за розумною розеткою та графіками відключень.\n" +
		"Команди: /schedule — поточний графік, /status — стан розетки, /ping — перевірка зв'язку."
	msgPong         = "🏓"
	msgNoSchedule   = "Графік відключень ще не завантажено. Спробуйте пізніше."
	msgNoStatuses   = "Спостережень за розеткою ще немає."
	msgErrorFetch   = "Щось пішло не так. Будь ласка, спробуйте пізніше."
	captionDefault  = "Графік відключень електроенергії"
	statusesHeading = "Останні спостереження за розеткою (нові зверху):"
)

// markdownV2Escaper escapes Telegram MarkdownV2 reserved punctuation.
//
//nolint:gochecknoglobals // it's a static replacer
var markdownV2Escaper = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]",
	"(", "\\(", ")", "\\)", "~", "\\~", "`", "\\`",
	">", "\\>", "#", "\\#", "+", "\\+", "-", "\\-",
	"=", "\\=", "|", "\\|", "{", "\\{", "}", "\\}",
	".", "\\.", "!", "\\!",
)

func EscapeMarkdownV2(text string) string {
	return markdownV2Escaper.Replace(text)
}

// StoreView is the read-only slice of the store the bot commands need.
type StoreView interface {
	GetLatestImage() (dal.Image, bool, error)
	GetLatestNotification() (dal.Notification, bool, error)
	GetStatuses(limit int) ([]dal.Status, error)
}

// Bot is the interactive Telegram bot and the outbound delivery channel for
// all notifications.
type Bot struct {
	bot     *tb.Bot
	view    StoreView
	chatIDs []int64

	// imageBaseURL turns stored relative graphic refs into absolute URLs
	imageBaseURL string

	log *slog.Logger
}

func NewBot(token string, view StoreView, chatIDs []int64, imageBaseURL string, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: pollTimeout},
		Client: &http.Client{Timeout: sendTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot:          bot,
		view:         view,
		chatIDs:      chatIDs,
		imageBaseURL: strings.TrimSuffix(imageBaseURL, "/"),
		log:          log.With("component", "bot"),
	}, nil
}

func (b *Bot) Start(ctx context.Context) error {
	b.bot.Handle("/start", b.StartHandler)
	b.bot.Handle("/schedule", b.ScheduleHandler)
	b.bot.Handle("/status", b.StatusHandler)
	b.bot.Handle("/ping", b.PingHandler)

	go func() {
		<-ctx.Done()
		if _, err := b.bot.Close(); err != nil {
			b.log.Error("Failed to close telegram bot", "error", err)
		}
	}()

	b.bot.Start()

	return nil
}

func (b *Bot) StartHandler(c tb.Context) error {
	b.log.Debug("start handler called", "chatID", c.Sender().ID)
	return c.Send(msgGreeting)
}

func (b *Bot) PingHandler(c tb.Context) error {
	return c.Send(msgPong)
}

func (b *Bot) ScheduleHandler(c tb.Context) error {
	chatID := c.Sender().ID

	img, found, err := b.view.GetLatestImage()
	if err != nil {
		b.log.Error("failed to get latest image", "error", err, "chatID", chatID)
		return c.Send(msgErrorFetch)
	}
	if !found {
		return c.Send(msgNoSchedule)
	}

	caption := captionDefault
	notif, found, err := b.view.GetLatestNotification()
	if err != nil {
		b.log.Error("failed to get latest notification", "error", err, "chatID", chatID)
	} else if found && notif.Target != "" {
		caption = fmt.Sprintf("%s. Наступне вимкнення: %s", captionDefault, notif.Target)
	}

	return c.Send(&tb.Photo{
		File:    tb.FromURL(b.imageBaseURL + "/" + strings.TrimPrefix(img.URL, "/")),
		Caption: caption,
	})
}

func (b *Bot) StatusHandler(c tb.Context) error {
	statuses, err := b.view.GetStatuses(statusHistoryLimit)
	if err != nil {
		b.log.Error("failed to get statuses", "error", err, "chatID", c.Sender().ID)
		return c.Send(msgErrorFetch)
	}

	return c.Send(renderStatusHistory(statuses))
}

// renderStatusHistory renders plug observations newest first, one line per
// record: 💡 while the plug was reachable, 🔴 otherwise.
func renderStatusHistory(statuses []dal.Status) string {
	if len(statuses) == 0 {
		return msgNoStatuses
	}

	var sb strings.Builder
	sb.WriteString(statusesHeading)
	for _, st := range statuses {
		icon := "🔴"
		if st.Status == dal.StatusOnline {
			icon = "💡"
		}
		sb.WriteString(fmt.Sprintf("\n%s %s", icon, st.At.Format(statusTimeLayout)))
	}

	return sb.String()
}

// Broadcast sends a text message to every configured chat concurrently.
// Text is escaped for MarkdownV2 before send. A failure for one recipient is
// logged and never blocks delivery to the others; the joined errors are
// returned once all sends settle.
func (b *Bot) Broadcast(ctx context.Context, text string) error {
	escaped := EscapeMarkdownV2(text)
	opts := &tb.SendOptions{ParseMode: tb.ModeMarkdownV2}

	return b.fanOut(ctx, func(chatID int64) error {
		_, err := b.bot.Send(tb.ChatID(chatID), escaped, opts)
		return err
	})
}

// BroadcastPhoto sends a photo by URL with a plain-text caption to every
// configured chat concurrently.
func (b *Bot) BroadcastPhoto(ctx context.Context, url, caption string) error {
	return b.fanOut(ctx, func(chatID int64) error {
		_, err := b.bot.Send(tb.ChatID(chatID), &tb.Photo{
			File:    tb.FromURL(url),
			Caption: caption,
		})
		return err
	})
}

func (b *Bot) fanOut(ctx context.Context, send func(chatID int64) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("fan out: %w", err)
	}

	var (
		wg   sync.WaitGroup
		mx   sync.Mutex
		errs []error
	)
	for _, chatID := range b.chatIDs {
		wg.Add(1)
		go func(chatID int64) {
			defer wg.Done()
			if err := send(chatID); err != nil {
				b.log.Error("failed to send to chat", "chatID", chatID, "error", err)
				mx.Lock()
				errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
				mx.Unlock()
			}
		}(chatID)
	}
	wg.Wait()

	return errors.Join(errs...)
}
