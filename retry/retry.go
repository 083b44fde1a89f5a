// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package retry retries the fallible batch producers that feed
// [lazy.UntilEmptyE], such as a client reading a paged API.
//
// A [Policy] is a general-purpose building block for retryable
// behaviors, usually constructed from a [Classifier] function that
// drives the retry policy. An exponential [Backoff] and a trivial
// [Loop] implementation are provided.
//
// A [Producer] applies the Policy to each batch separately: attempt
// counts and delays start over for every page that is fetched, so a
// long traversal tolerates one transient failure per page rather than
// a fixed number of failures overall.
//
// A Classifier that swallows an error (see [Classifier]) turns the
// failed fetch into an empty batch. Since an empty batch is how a
// producer reports that it has run dry, this ends the traversal
// without an error. Classifiers for paged sources should usually retry
// or reject an error instead.
package retry

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"runtime/trace"

	"vawter.tech/lazy"
	"vawter.tech/lazy/internal/safe"
)

// A Classifier is a function that determines if an error is retryable.
// Each call to a [Policy] is associated with a state value, which is
// initially the zero value for the S type. If an attempt fails, the
// error and the current state are passed to the Classifier. The
// Classifier may return an error to fail the call if it should not be
// retried.
//
// If the attempt should be retried, the Classifier returns a channel
// that emits a value when the attempt should be retried (e.g.:
// [time.After]). Closing the channel without emitting a value will
// abandon the retry, failing with the error most recently passed to the
// Classifier.
//
// If the context is canceled while waiting for the retry signal, the
// call will be failed with the previously examined error joined with
// the context's error.
//
// If the returned channel and error are both nil, the error will be
// considered to have been handled by the Classifier function and the
// call will be considered a success.
type Classifier[S, N any] func(ctx context.Context, state *S, err error) (<-chan N, error)

// A Policy executes an attempt, possibly several times, until it
// succeeds or the Policy gives up.
type Policy func(ctx context.Context, attempt func() error) error

// FromClassifier constructs a [Policy] around a [Classifier] function.
func FromClassifier[S, N any](fn Classifier[S, N]) Policy {
	return func(ctx context.Context, attempt func() error) error {
		var state S
		for {
			// Make the attempt.
			err := attempt()
			if err == nil {
				return nil
			}
			// Classify the error.
			next, fail := fn(ctx, &state, err)
			// Classifier is rejecting the error.
			if fail != nil {
				return fail
			}
			// Classifier ate the error condition.
			if next == nil {
				return nil
			}
			// Wait for a decision.
			if err := waitOnChannel(ctx, next, err); err != nil {
				return err
			}
		}
	}
}

func waitOnChannel[N any](ctx context.Context, next <-chan N, err error) error {
	defer trace.StartRegion(ctx, "retry wait").End()
	select {
	case _, ok := <-next:
		if ok {
			return nil
		}
		return err
	case <-ctx.Done():
		return errors.Join(err, ctx.Err())
	}
}

// Producer returns a batch producer that invokes next under the
// [Policy]. Each batch is retried independently. A panic in next is
// converted into an error, which the Policy may choose to retry. If
// the Policy gives up, the last error is returned, annotated with the
// zero-based number of the batch, and no batch is produced. If the
// Policy treats a failure as handled, an empty batch is returned.
func Producer[X any](
	ctx context.Context, p Policy, next func(context.Context) ([]X, error),
) func() ([]X, error) {
	count := 0
	return func() ([]X, error) {
		idx := count
		count++

		var batch []X
		err := p(ctx, func() error {
			b, err := safe.CallRE(func() ([]X, error) {
				return next(ctx)
			})
			if err != nil {
				batch = nil
				return err
			}
			batch = b
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", idx, err)
		}
		return batch, nil
	}
}

// UntilEmpty is a convenience for passing a [Producer] to
// [lazy.UntilEmptyE]. Each traversal uses a new Producer, so batches
// are numbered from zero again when the sequence is restarted.
func UntilEmpty[X any](
	ctx context.Context, p Policy, next func(context.Context) ([]X, error),
) iter.Seq2[X, error] {
	return func(yield func(X, error) bool) {
		for x, err := range lazy.UntilEmptyE(Producer(ctx, p, next)) {
			if !yield(x, err) {
				return
			}
		}
	}
}
