// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import "iter"

// TakeUntil returns a sequence of the elements of seq up to and
// including the first element for which p returns true. If no element
// satisfies p, the entire source sequence is produced.
//
// Unlike a take-while over the negated predicate, the satisfying
// element is part of the output. No element past it is demanded from
// the source, and p is evaluated exactly once per element.
func TakeUntil[X any](seq iter.Seq[X], p func(X) bool) iter.Seq[X] {
	return func(yield func(X) bool) {
		for x := range seq {
			// Evaluate before yielding, since the consumer owns x after.
			done := p(x)
			if !yield(x) || done {
				return
			}
		}
	}
}

// TakeUntil2 is a pairwise version of [TakeUntil].
func TakeUntil2[K, V any](seq iter.Seq2[K, V], p func(K, V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range seq {
			done := p(k, v)
			if !yield(k, v) || done {
				return
			}
		}
	}
}
