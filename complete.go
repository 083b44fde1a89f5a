// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import (
	"iter"
	"sync/atomic"
)

// OnComplete returns a sequence with the same elements as seq. After
// the consumer has received the last element and the source has
// reported its end, f is called with the original sequence. The
// callback is run for side effects only.
//
// If the consumer stops early, or if seq never ends, f is not called.
// Wrapping a sequence does not evaluate any of its elements.
//
// Each traversal that fully drains seq invokes f once, so a source that
// can be ranged over twice reports two completions. Sources that cannot
// be restarted, such as those backed by [iter.Pull] or a channel, must
// use [OnCompleteOnce] instead: ranging over an exhausted single-use
// source ends immediately and would call f again.
func OnComplete[X any](seq iter.Seq[X], f func(iter.Seq[X])) iter.Seq[X] {
	return func(yield func(X) bool) {
		for x := range seq {
			if !yield(x) {
				return
			}
		}
		f(seq)
	}
}

// OnComplete2 is a pairwise version of [OnComplete].
func OnComplete2[K, V any](seq iter.Seq2[K, V], f func(iter.Seq2[K, V])) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range seq {
			if !yield(k, v) {
				return
			}
		}
		f(seq)
	}
}

// OnCompleteOnce is like [OnComplete], except that f is invoked at most
// once over the lifetime of the returned sequence: only the first
// traversal that drains seq fires the callback.
func OnCompleteOnce[X any](seq iter.Seq[X], f func(iter.Seq[X])) iter.Seq[X] {
	var fired atomic.Bool
	return OnComplete(seq, func(s iter.Seq[X]) {
		if fired.CompareAndSwap(false, true) {
			f(s)
		}
	})
}
