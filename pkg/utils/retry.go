package utils

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	// Jitter spreads each delay by up to this fraction in either direction.
	Jitter float64
	// Retryable limits retries to matching errors, nil retries everything
	Retryable func(err error) bool
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.Multiplier <= 1 {
		c.Multiplier = 2.0
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = 100 * time.Millisecond
	}
	if c.Jitter < 0 || c.Jitter > 1 {
		c.Jitter = 0
	}
	return c
}

// Retry calls fn until it succeeds, attempts run out or ctx is done. Errors
// matching one of permanent are returned at once. When ctx ends during a
// backoff the last error from fn is returned joined with ctx.Err().
func Retry(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error, permanent ...error) error {
	cfg = cfg.withDefaults()
	delay := cfg.InitialDelay

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt >= cfg.MaxAttempts || isPermanent(err, permanent) {
			return err
		}
		if cfg.Retryable != nil && !cfg.Retryable(err) {
			return err
		}

		timer := time.NewTimer(cfg.jittered(delay))
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(err, ctx.Err())
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}
}

func (c RetryConfig) jittered(d time.Duration) time.Duration {
	if c.Jitter == 0 {
		return d
	}
	spread := (rand.Float64()*2 - 1) * c.Jitter
	return time.Duration(float64(d) * (1 + spread))
}

func isPermanent(err error, permanent []error) bool {
	for _, p := range permanent {
		if errors.Is(err, p) {
			return true
		}
	}
	return false
}
