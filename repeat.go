// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import "iter"

// UntilEmpty returns a sequence that concatenates the batches returned
// by successive calls to next, stopping at the first empty batch.
//
// The function is not called until the first element is demanded, and
// it is not called again until every element of the current batch has
// been consumed. Only the current batch is retained. Once an empty
// batch has been observed, next will not be invoked again within that
// traversal. If next never returns an empty batch, the sequence is
// infinite and the caller must bound it (e.g. with [TakeUntil]).
//
// Each traversal of the returned sequence starts over with a fresh call
// to next.
func UntilEmpty[X any](next func() []X) iter.Seq[X] {
	return func(yield func(X) bool) {
		for {
			batch := next()
			if len(batch) == 0 {
				return
			}
			for _, x := range batch {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// UntilEmptySeq is a variant of [UntilEmpty] where each batch is itself
// a lazy sequence. Elements are forwarded as they are produced; a batch
// that produces no elements ends the sequence. A nil batch is empty.
func UntilEmptySeq[X any](next func() iter.Seq[X]) iter.Seq[X] {
	return func(yield func(X) bool) {
		for {
			batch := next()
			if batch == nil {
				return
			}
			empty := true
			for x := range batch {
				empty = false
				if !yield(x) {
					return
				}
			}
			if empty {
				return
			}
		}
	}
}

// UntilEmptyE is a variant of [UntilEmpty] for producers that can fail.
// A non-nil error is yielded, unchanged, alongside the zero value of X
// and ends the sequence. A failing call's batch is discarded.
func UntilEmptyE[X any](next func() ([]X, error)) iter.Seq2[X, error] {
	return func(yield func(X, error) bool) {
		for {
			batch, err := next()
			if err != nil {
				var zero X
				yield(zero, err)
				return
			}
			if len(batch) == 0 {
				return
			}
			for _, x := range batch {
				if !yield(x, nil) {
					return
				}
			}
		}
	}
}
