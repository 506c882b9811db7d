package services

import (
	"errors"
	"fmt"
)

// ErrMaxRetriesExceeded is reported when every attempt of a retried
// operation lost its optimistic concurrency race.
var ErrMaxRetriesExceeded = errors.New("maximum retry attempts exceeded")

// RetryPolicy controls the retry executor. IsRetryable decides which
// errors mean "reload and try again"; everything else aborts
// immediately. OnRetry is optional instrumentation invoked before each
// re-attempt.
type RetryPolicy struct {
	Attempts    int
	IsRetryable func(error) bool
	OnRetry     func(attempt int, err error)
}

// Retry runs fn up to policy.Attempts times. fn must re-read any state
// it mutates on every call: a retryable failure means the first read
// went stale. Exhausting the attempts reports ErrMaxRetriesExceeded
// wrapping the last failure.
func Retry[T any](policy RetryPolicy, fn func() (T, error)) (T, error) {
	var zero T

	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		value, err := fn()
		if err == nil {
			return value, nil
		}

		if policy.IsRetryable == nil || !policy.IsRetryable(err) {
			return zero, err
		}

		lastErr = err
		if attempt < attempts && policy.OnRetry != nil {
			policy.OnRetry(attempt, err)
		}
	}

	return zero, fmt.Errorf("%w after %d attempts: %v", ErrMaxRetriesExceeded, attempts, lastErr)
}
