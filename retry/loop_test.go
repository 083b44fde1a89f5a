// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package retry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoopCustomRetryable verifies that the Retryable predicate
// controls which errors are retried and which are returned immediately.
func TestLoopCustomRetryable(t *testing.T) {
	r := require.New(t)

	permanent := errors.New("permanent")
	p := (&Loop{
		MaxAttempts: 5,
		Retryable: func(err error) bool {
			return !errors.Is(err, permanent)
		},
	}).Policy()

	attempts := 0
	err := p(t.Context(), func() error {
		attempts++
		return permanent
	})
	r.ErrorIs(err, permanent)
	r.Equal(1, attempts)

	// A non-permanent error should be retried.
	transient := errors.New("transient")
	attempts = 0
	err = p(t.Context(), func() error {
		attempts++
		if attempts < 3 {
			return transient
		}
		return nil
	})
	r.NoError(err)
	r.Equal(3, attempts)
}

// TestLoopDefaults verifies that a zero-value Loop makes two attempts
// and retries all errors.
func TestLoopDefaults(t *testing.T) {
	r := require.New(t)

	boom := errors.New("boom")
	attempts := 0
	err := (&Loop{}).Policy()(t.Context(), func() error {
		attempts++
		return boom
	})
	r.Equal(2, attempts)
	r.ErrorIs(err, boom)
	var att *MaxAttemptsError
	r.ErrorAs(err, &att)
	r.Equal(2, att.Attempts)
	r.Equal("gave up after 2 attempts: boom", err.Error())
}

// TestLoopStateIsPerCall verifies that attempt counts are not shared
// between calls to the same Policy.
func TestLoopStateIsPerCall(t *testing.T) {
	r := require.New(t)

	p := (&Loop{MaxAttempts: 2}).Policy()
	for range 3 {
		attempts := 0
		r.NoError(p(t.Context(), func() error {
			attempts++
			if attempts == 1 {
				return errors.New("once")
			}
			return nil
		}))
		r.Equal(2, attempts)
	}
}
