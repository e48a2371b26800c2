package indexing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryWithBackoff_Success(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), func() error {
		attempts++
		return nil
	}, 3, 10*time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetryWithBackoff_EventualSuccess(t *testing.T) {
	attempts := 0
	err := RetryWithBackoff(context.Background(), func() error {
		attempts++
		if attempts < 3 {
			return errors.New("temporary error")
		}
		return nil
	}, 5, time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoff_AllAttemptsFail(t *testing.T) {
	attempts := 0
	expected := errors.New("persistent error")
	err := RetryWithBackoff(context.Background(), func() error {
		attempts++
		return expected
	}, 3, time.Millisecond)

	assert.Equal(t, expected, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryWithBackoff_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	err := RetryWithBackoff(ctx, func() error {
		attempts++
		if attempts == 2 {
			cancel()
		}
		return errors.New("error")
	}, 10, time.Millisecond)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, attempts)
}

func TestRetryWithBackoff_CanceledDuringWait(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := RetryWithBackoff(ctx, func() error {
		return errors.New("error")
	}, 5, time.Second)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond, "should not wait out the full delay")
}

func TestRetryWithBackoff_ExponentialDelay(t *testing.T) {
	var stamps []time.Time
	_ = RetryWithBackoff(context.Background(), func() error {
		stamps = append(stamps, time.Now())
		return errors.New("error")
	}, 3, 20*time.Millisecond)

	require.Len(t, stamps, 3)
	first := stamps[1].Sub(stamps[0])
	second := stamps[2].Sub(stamps[1])
	assert.GreaterOrEqual(t, first, 20*time.Millisecond)
	assert.GreaterOrEqual(t, second, 40*time.Millisecond)
}

func TestRetryWithBackoff_InvalidMaxAttempts(t *testing.T) {
	for _, n := range []int{0, -1} {
		called := false
		err := RetryWithBackoff(context.Background(), func() error {
			called = true
			return nil
		}, n, time.Millisecond)

		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
		assert.False(t, called)
	}
}
