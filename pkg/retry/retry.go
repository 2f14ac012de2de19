// Package retry retries network-class failures with exponential backoff.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

// Policy describes how many times and how fast to retry.
type Policy struct {
	MaxRetries uint64
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	// Jitter is the randomization factor applied to each delay (0.5 = ±50%).
	Jitter float64
}

// DefaultPolicy retries three times starting at 500ms with ±50% jitter.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: 3,
		BaseDelay:  500 * time.Millisecond,
		MaxDelay:   10 * time.Second,
		Jitter:     0.5,
	}
}

// FromConfig converts the retry section of the config.
func FromConfig(cfg config.RetryConfig) Policy {
	return Policy{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay,
		MaxDelay:   cfg.MaxDelay,
		Jitter:     cfg.Jitter,
	}
}

func (p Policy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.BaseDelay
	b.Multiplier = 2
	b.RandomizationFactor = p.Jitter
	b.MaxInterval = p.MaxDelay
	b.MaxElapsedTime = 0
	b.Reset()
	return backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)
}

// Do runs fn until it succeeds, fails with a non-network error, exhausts the
// policy, or ctx is done. Only transfer.NetworkError values are retried.
func Do[T any](ctx context.Context, p Policy, logger *zap.Logger, op string, fn func(context.Context) (T, error)) (T, error) {
	attempt := 0
	operation := func() (T, error) {
		attempt++
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if !transfer.IsNetwork(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	notify := func(err error, wait time.Duration) {
		metrics.RetriesTotal.WithLabelValues(op).Inc()
		if logger != nil {
			logger.Warn("Retrying after network error",
				zap.String("operation", op),
				zap.Int("attempt", attempt),
				zap.Duration("wait", wait),
				zap.Error(err))
		}
	}

	return backoff.RetryNotifyWithData(operation, p.backOff(ctx), notify)
}
