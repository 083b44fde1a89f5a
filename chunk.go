// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import "iter"

// Chunked partitions seq into contiguous, non-empty chunks.
//
// Each chunk starts with the accumulator set to zero. For every source
// element x, accumulate(acc, x) is computed; if cont accepts the new
// value, x joins the current chunk. Otherwise, the current chunk is
// closed and x is offered again to a new chunk, starting over from
// zero. A trailing partial chunk is emitted as-is.
//
// If a new chunk rejects its very first element, no progress can be
// made. An [*UnchunkableError] is yielded and the sequence ends.
//
// Chunks are produced on demand: the elements of the next chunk are
// not pulled from seq until the consumer asks for it. Determining where
// a chunk ends requires pulling the first element that does not fit,
// which is retained for the following chunk. Each yielded slice is
// owned by the consumer.
func Chunked[X, A any](
	seq iter.Seq[X], zero A, accumulate func(A, X) A, cont func(A) bool,
) iter.Seq2[[]X, error] {
	return func(yield func([]X, error) bool) {
		var chunk []X
		acc := zero
		idx := -1
		for x := range seq {
			idx++
			next := accumulate(acc, x)
			ok := cont(next)
			if !ok && len(chunk) > 0 {
				if !yield(chunk, nil) {
					return
				}
				chunk = nil
				next = accumulate(zero, x)
				ok = cont(next)
			}
			if !ok {
				yield(nil, &UnchunkableError{Index: idx, Element: x})
				return
			}
			chunk = append(chunk, x)
			acc = next
		}
		if len(chunk) > 0 {
			yield(chunk, nil)
		}
	}
}

// ChunkedN groups seq into chunks of n elements. The final chunk may be
// shorter. ChunkedN panics if n is less than 1.
func ChunkedN[X any](seq iter.Seq[X], n int) iter.Seq[[]X] {
	if n < 1 {
		panic("chunk size must be at least 1")
	}
	chunks := Chunked(seq, 0,
		func(count int, _ X) int { return count + 1 },
		func(count int) bool { return count <= n },
	)
	return func(yield func([]X) bool) {
		for chunk, err := range chunks {
			if err != nil {
				// A counting accumulator always admits one element.
				panic(err)
			}
			if !yield(chunk) {
				return
			}
		}
	}
}

// ChunkedWeight groups seq into chunks whose total weight does not
// exceed limit. A single element heavier than limit is unchunkable.
func ChunkedWeight[X any](seq iter.Seq[X], limit int, weight func(X) int) iter.Seq2[[]X, error] {
	return Chunked(seq, 0,
		func(total int, x X) int { return total + weight(x) },
		func(total int) bool { return total <= limit },
	)
}
