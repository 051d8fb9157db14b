// Package ingest normalizes Telegram updates into pipeline messages.
// It supports two delivery modes, chosen once at construction time:
// pull (long polling with an explicit update cursor) and push (webhook).
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mwrites/ledgerbot/internal/config"
	"github.com/mwrites/ledgerbot/internal/model"
	"github.com/mwrites/ledgerbot/internal/pipeline"
	"github.com/mwrites/ledgerbot/internal/service"
)

// Gateway receives updates from the transport and drives the pipeline.
type Gateway interface {
	Run(ctx context.Context) error
}

// New selects the gateway implementation from configuration. The mode is
// decided here, once, never re-evaluated per message.
func New(cfg config.TelegramConfig, fetcher UpdateFetcher, processor service.Processor, sender service.Sender, logger *slog.Logger) (Gateway, error) {
	d := dispatcher{processor: processor, sender: sender, logger: logger}

	switch cfg.Mode {
	case config.ModePull:
		return NewPullGateway(fetcher, d, cfg.PollTimeout), nil
	case config.ModePush:
		return NewPushGateway(cfg.WebhookAddr, cfg.WebhookSecret, d), nil
	default:
		return nil, fmt.Errorf("unknown ingestion mode %q", cfg.Mode)
	}
}

// dispatcher normalizes one update and runs it through the processor.
// Each update is handled in its own goroutine; two concurrent messages
// from the same sender may persist out of arrival order.
type dispatcher struct {
	processor service.Processor
	sender    service.Sender
	logger    *slog.Logger
}

func (d dispatcher) handle(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message == nil || upd.Message.From == nil {
		return
	}

	chatID := upd.Message.Chat.ID

	// Non-text updates (photos, stickers, voice) get the guidance
	// response without touching the access gate or the engine.
	if upd.Message.Text == "" {
		d.reply(chatID, pipeline.GuidanceResponse)
		return
	}

	msg := model.Message{
		Text:       upd.Message.Text,
		SenderID:   strconv.FormatInt(upd.Message.From.ID, 10),
		ReceivedAt: time.Now().UTC(),
	}

	result := d.processor.Process(ctx, msg)
	d.reply(chatID, result.Message)
}

func (d dispatcher) reply(chatID int64, text string) {
	if err := d.sender.Send(chatID, text); err != nil {
		d.logger.Error("failed to send reply", "chat_id", chatID, "error", err)
	}
}
