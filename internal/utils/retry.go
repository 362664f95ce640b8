package utils

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrRetriesExhausted is returned when every attempt of a retried operation failed.
var ErrRetriesExhausted = errors.New("all retry attempts failed")

// RetryPolicy is a bounded-attempt policy with exponential backoff. The delay
// before attempt n is BaseDelay * 2^(n-1).
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the retry ceiling used around external AI calls.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts: 3,
	BaseDelay:   500 * time.Millisecond,
}

// Retry runs fn up to p.MaxAttempts times. It returns nil on the first
// success, ctx.Err() if the context is cancelled between attempts, and
// ErrRetriesExhausted wrapping the last failure otherwise.
func Retry(ctx context.Context, p RetryPolicy, fn func(ctx context.Context) error) error {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	var lastErr error
	delay := p.BaseDelay

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}

		if attempt == p.MaxAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}
