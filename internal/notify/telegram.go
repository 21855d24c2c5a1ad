// Package notify surfaces run summaries and unmatched-title warnings over
// Telegram.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Min interval between messages to the same chat to stay clear of the
// Telegram per-chat rate limit.
const sendInterval = 2 * time.Second

// Max unmatched titles listed in a single summary message.
const maxUnmatchedInMessage = 10

// RunSummary is what a driver reports after one pass over the season.
type RunSummary struct {
	Service        string
	Season         string
	Processed      int
	Matched        int
	VideosAttached int
	Unmatched      []string
}

// TelegramNotifier queues summaries and sends them from a background
// worker with rate limiting. All methods are safe on a nil receiver, so
// callers don't need to guard the "notifications disabled" case.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64

	mu       sync.Mutex
	lastSend time.Time

	queue  chan string
	done   chan struct{}
	cancel context.CancelFunc
}

// NewTelegramNotifier creates the notifier and starts its worker.
// Returns nil (disabled notifier) when the bot cannot be reached.
func NewTelegramNotifier(token string, chatID int64) *TelegramNotifier {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		slog.Error("Failed to create telegram bot", "error", err)
		return nil
	}
	if _, err := bot.GetMe(); err != nil {
		slog.Error("Failed to get telegram bot info", "error", err)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	n := &TelegramNotifier{
		bot:    bot,
		chatID: chatID,
		queue:  make(chan string, 16),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	go n.sender(ctx)

	slog.Info("Telegram notifier initialized", "chat_id", chatID)
	return n
}

// SendRunSummary queues a run summary (non-blocking).
func (n *TelegramNotifier) SendRunSummary(ctx context.Context, s RunSummary) error {
	if n == nil || n.bot == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case n.queue <- formatSummary(s):
		return nil
	default:
		slog.Warn("Telegram queue full, dropping summary", "service", s.Service)
		return fmt.Errorf("message queue is full")
	}
}

// Stop drains the queue and waits for the worker to finish.
func (n *TelegramNotifier) Stop() {
	if n == nil {
		return
	}
	n.cancel()
	<-n.done
}

func (n *TelegramNotifier) sender(ctx context.Context) {
	defer close(n.done)
	for {
		select {
		case <-ctx.Done():
			// Drain remaining messages before exit
			for {
				select {
				case text := <-n.queue:
					n.send(text)
				default:
					return
				}
			}
		case text := <-n.queue:
			n.send(text)
		}
	}
}

func (n *TelegramNotifier) send(text string) {
	n.mu.Lock()
	if elapsed := time.Since(n.lastSend); elapsed < sendInterval {
		time.Sleep(sendInterval - elapsed)
	}
	n.lastSend = time.Now()
	n.mu.Unlock()

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := n.bot.Send(msg); err != nil {
		slog.Error("Telegram send failed", "error", err)
		return
	}
	slog.Info("Telegram summary sent", "queue_length", len(n.queue))
}

func formatSummary(s RunSummary) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("*%s run finished*\n\n", escapeMarkdown(s.Service)))
	if s.Season != "" {
		b.WriteString(fmt.Sprintf("Season: *%s*\n", escapeMarkdown(s.Season)))
	}
	b.WriteString(fmt.Sprintf("Processed: %d\n", s.Processed))
	b.WriteString(fmt.Sprintf("Matched: %d\n", s.Matched))
	b.WriteString(fmt.Sprintf("Videos attached: %d\n", s.VideosAttached))
	if len(s.Unmatched) > 0 {
		b.WriteString(fmt.Sprintf("\nUnmatched titles (%d):\n", len(s.Unmatched)))
		for i, title := range s.Unmatched {
			if i == maxUnmatchedInMessage {
				b.WriteString(fmt.Sprintf("… and %d more\n", len(s.Unmatched)-maxUnmatchedInMessage))
				break
			}
			b.WriteString(fmt.Sprintf("• %s\n", escapeMarkdown(title)))
		}
	}
	b.WriteString(fmt.Sprintf("\n_%s_", time.Now().UTC().Format("2006-01-02 15:04 UTC")))
	return b.String()
}

func escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_",
		"*", "\\*",
		"[", "\\[",
		"`", "\\`",
	)
	return replacer.Replace(text)
}
