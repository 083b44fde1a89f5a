// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package retry

import "context"

// Loop implements a trivial, synchronous looping behavior. When used
// with a [Producer], the attempt limit applies to each batch.
type Loop struct {
	MaxAttempts int              // Per batch. Defaults to 2 if unset.
	Retryable   func(error) bool // Defaults to retrying all errors.
}

// Policy returns a [Policy] that retries immediately.
func (l *Loop) Policy() Policy {
	attempts := l.MaxAttempts
	if attempts == 0 {
		attempts = 2
	}
	fn := l.Retryable
	if fn == nil {
		fn = func(_ error) bool { return true }
	}
	return FromClassifier(func(_ context.Context, state *int, err error) (<-chan struct{}, error) {
		if !fn(err) {
			return nil, err
		}
		*state++
		if *state >= attempts {
			return nil, &MaxAttemptsError{Attempts: *state, Err: err}
		}
		ch := make(chan struct{}, 1)
		ch <- struct{}{}
		return ch, nil
	})
}
