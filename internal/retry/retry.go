// Package retry provides bounded exponential-backoff retry for network-bound
// operations. A non-success HTTP status is treated the same as a transport
// error: the attempt failed and the next one waits for the current delay.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrMaxAttemptsExceeded is returned when all attempts have failed.
var ErrMaxAttemptsExceeded = errors.New("max retry attempts exceeded")

// Policy configures retry behavior.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration
	// MaxDelay caps the exponential backoff.
	MaxDelay time.Duration
	// BackoffMultiplier scales the delay after each failed attempt.
	BackoffMultiplier float64
}

// DefaultPolicy mirrors the collection defaults: two attempts, one second
// initial delay doubling up to five seconds.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:       2,
		InitialDelay:      time.Second,
		MaxDelay:          5 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

func (p Policy) withDefaults() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 2
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = time.Second
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = 5 * time.Second
	}
	if p.BackoffMultiplier <= 0 {
		p.BackoffMultiplier = 2.0
	}
	return p
}

// Executor runs operations under a retry policy.
type Executor struct {
	policy Policy

	// sleep is swapped out in tests to record the delay sequence.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewExecutor creates an Executor for the given policy.
func NewExecutor(policy Policy) *Executor {
	return &Executor{
		policy: policy.withDefaults(),
		sleep:  sleepContext,
	}
}

// Do runs fn up to MaxAttempts times, waiting between attempts with
// exponential backoff. The last failure is propagated when attempts are
// exhausted; the caller decides whether that is fatal.
func (e *Executor) Do(ctx context.Context, fn func() error) error {
	var lastErr error
	delay := e.policy.InitialDelay

	for attempt := 1; attempt <= e.policy.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt == e.policy.MaxAttempts {
			break
		}

		if err := e.sleep(ctx, delay); err != nil {
			return err
		}
		delay = time.Duration(float64(delay) * e.policy.BackoffMultiplier)
		if delay > e.policy.MaxDelay {
			delay = e.policy.MaxDelay
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrMaxAttemptsExceeded, e.policy.MaxAttempts, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
