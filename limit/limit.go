// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package limit paces the rate at which elements are demanded from a
// lazy sequence.
//
// Since elements of a lazy sequence are produced on demand, limiting
// the consumer also limits the producer. This is useful when the
// producer is backed by an external service, e.g. a paged API feeding
// [vawter.tech/lazy.UntilEmpty].
package limit

import (
	"context"
	"errors"
	"iter"
	"runtime/trace"

	"golang.org/x/time/rate"
)

// Rate is a wrapper around a [rate.Limiter] that allows r elements per
// second to be demanded from seq, with bursts of up to b elements. The
// limiter is shared by all traversals of the returned sequence.
func Rate[T any](ctx context.Context, seq iter.Seq[T], r float64, b int) iter.Seq2[T, error] {
	if b <= 0 {
		panic(errors.New("burst must be greater than zero"))
	}
	return Limiter(ctx, seq, rate.NewLimiter(rate.Limit(r), b))
}

// Limiter returns a sequence that waits for a token from l before
// demanding each element of seq. If the wait fails, e.g. because the
// context has been canceled, the error is yielded alongside the zero
// value of T and the sequence ends.
func Limiter[T any](ctx context.Context, seq iter.Seq[T], l *rate.Limiter) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		next, stop := iter.Pull(seq)
		defer stop()

		for {
			if err := wait(ctx, l); err != nil {
				var zero T
				yield(zero, err)
				return
			}
			v, ok := next()
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

func wait(ctx context.Context, l *rate.Limiter) error {
	// Fast-path: there's capacity.
	if l.Allow() {
		return nil
	}

	defer trace.StartRegion(ctx, "rate limit wait").End()
	return l.Wait(ctx)
}
