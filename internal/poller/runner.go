// internal/poller/runner.go
package poller

import (
	"context"
	"errors"
	"time"
)

// Run starts the ticker loop and emits PollResult on the provided channel.
// The first cycle runs immediately. No overlap. No retries.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) error {
	if p.cfg.Interval <= 0 {
		return errors.New("poller: interval must be > 0")
	}

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- p.PollOnce():
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
