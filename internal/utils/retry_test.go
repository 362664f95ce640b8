package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fastPolicy(attempts int) RetryPolicy {
	return RetryPolicy{MaxAttempts: attempts, BaseDelay: time.Millisecond}
}

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastPolicy(3), func(ctx context.Context) error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_EventualSuccess(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastPolicy(3), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetry_Exhausted(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Retry(context.Background(), fastPolicy(3), func(ctx context.Context) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, 3, calls)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, fastPolicy(3), func(ctx context.Context) error {
		t.Fatal("fn should not run with a cancelled context")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_ZeroAttemptsRunsOnce(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), RetryPolicy{}, func(ctx context.Context) error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}
