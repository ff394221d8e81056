// Package poller provides fixed-interval re-invocation for live-price
// refresh and backtest status polling. No backoff, no jitter; ticks for a
// single poller never overlap.
package poller

import (
	"context"
	"time"

	"github.com/alphadesk/alphadesk/internal/common"
)

// Func is one polling tick. Returning done=true stops the poller; a non-nil
// error is logged and polling continues at the next interval.
type Func func(ctx context.Context) (done bool, err error)

// Poller re-invokes a function at a fixed interval.
type Poller struct {
	name     string
	interval time.Duration
	logger   *common.Logger
}

// New creates a poller with the given name and interval.
func New(name string, interval time.Duration, logger *common.Logger) *Poller {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Poller{
		name:     name,
		interval: interval,
		logger:   logger,
	}
}

// Run invokes fn immediately and then every interval until fn signals done
// or the context is cancelled. Returns ctx.Err() on cancellation, nil when
// fn signals done.
func (p *Poller) Run(ctx context.Context, fn Func) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		done, err := fn(ctx)
		if err != nil {
			p.logger.Warn().Err(err).Str("poller", p.name).Msg("Poll tick failed")
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
