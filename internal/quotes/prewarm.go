package quotes

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Prewarmer keeps a recent quote cached so the detail page can still show
// one when the live fetch fails. It fetches once at start and then on a
// cron schedule.
type Prewarmer struct {
	client *Client
	cron   *cron.Cron
	log    *zap.Logger
}

func NewPrewarmer(client *Client, log *zap.Logger) *Prewarmer {
	return &Prewarmer{
		client: client,
		cron:   cron.New(),
		log:    log,
	}
}

// Start warms the fallback immediately and refreshes it hourly.
func (p *Prewarmer) Start() {
	p.refresh()

	if _, err := p.cron.AddFunc("@hourly", p.refresh); err != nil {
		p.log.Error("failed to schedule quote prewarm", zap.Error(err))
		return
	}
	p.cron.Start()
}

// Stop halts the refresh schedule.
func (p *Prewarmer) Stop() {
	p.cron.Stop()
}

func (p *Prewarmer) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	q, err := p.client.Random(ctx)
	if err != nil {
		// Keep whatever fallback we already have.
		p.log.Warn("quote prewarm failed", zap.Error(err))
		return
	}

	p.client.setFallback(q)
	p.log.Debug("quote prewarmed", zap.String("author", q.Author))
}
