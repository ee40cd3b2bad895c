package sync

import (
	"context"
	"time"

	"calendar-mirror/internal/remote"
)

// withBackoff runs fn up to cfg.MaxAttempts times, doubling the delay
// between attempts. Only transient and rate-limited remote errors are
// retried; anything else is returned as-is.
func (e *Engine) withBackoff(ctx context.Context, op string, fn func() error) error {
	delay := e.cfg.RetryBaseDelay
	var err error
	for attempt := 1; attempt <= e.cfg.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !remote.Retryable(err) || attempt == e.cfg.MaxAttempts {
			return err
		}
		e.l.Warnf(ctx, "sync: %s attempt %d/%d failed, retrying in %s: %v",
			op, attempt, e.cfg.MaxAttempts, delay, err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
