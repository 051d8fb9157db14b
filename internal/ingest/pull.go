package ingest

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UpdateFetcher is the slice of the Telegram Bot API the poller needs.
// *tgbotapi.BotAPI satisfies it.
type UpdateFetcher interface {
	GetUpdates(config tgbotapi.UpdateConfig) ([]tgbotapi.Update, error)
}

// maxSeen bounds the duplicate-filter window. Telegram redelivers
// recent updates after transient failures; anything older than this
// window has long been acknowledged via the offset cursor.
const maxSeen = 512

// PullGateway long-polls for updates after the highest update id already
// processed. Delivery is at-least-once, so already-seen update ids are
// filtered before they reach the pipeline.
type PullGateway struct {
	fetcher     UpdateFetcher
	seen        map[int]struct{}
	seenOrder   []int
	d           dispatcher
	offset      int
	pollTimeout time.Duration
}

// NewPullGateway creates a polling gateway.
func NewPullGateway(fetcher UpdateFetcher, d dispatcher, pollTimeout time.Duration) *PullGateway {
	if pollTimeout <= 0 {
		pollTimeout = 30 * time.Second
	}
	return &PullGateway{
		fetcher:     fetcher,
		d:           d,
		pollTimeout: pollTimeout,
		seen:        make(map[int]struct{}),
	}
}

// Run polls until the context is canceled. Fetch errors are logged and
// retried after a short pause; they never stop the loop.
func (g *PullGateway) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		cfg := tgbotapi.NewUpdate(g.offset)
		cfg.Timeout = int(g.pollTimeout.Seconds())

		updates, err := g.fetcher.GetUpdates(cfg)
		if err != nil {
			g.d.logger.Warn("failed to fetch updates, retrying", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, upd := range g.Filter(updates) {
			go g.d.handle(ctx, upd)
		}
	}
}

// Filter advances the cursor past every update in the batch and returns
// only the ones not seen before.
func (g *PullGateway) Filter(updates []tgbotapi.Update) []tgbotapi.Update {
	fresh := make([]tgbotapi.Update, 0, len(updates))
	for _, upd := range updates {
		if upd.UpdateID >= g.offset {
			g.offset = upd.UpdateID + 1
		}
		if _, dup := g.seen[upd.UpdateID]; dup {
			continue
		}
		g.remember(upd.UpdateID)
		fresh = append(fresh, upd)
	}
	return fresh
}

func (g *PullGateway) remember(id int) {
	g.seen[id] = struct{}{}
	g.seenOrder = append(g.seenOrder, id)
	if len(g.seenOrder) > maxSeen {
		oldest := g.seenOrder[0]
		g.seenOrder = g.seenOrder[1:]
		delete(g.seen, oldest)
	}
}

// Offset exposes the update cursor, the next update id to request.
func (g *PullGateway) Offset() int {
	return g.offset
}
