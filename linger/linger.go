// Copyright 2025 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package linger contains a utility for reporting on where traversals
// of a sequence were started but never finished.
//
// A push iterator returns once its consumer stops asking for elements.
// Sequences consumed through [iter.Pull] are the exception: if the
// stop function is never called, the producer stays suspended
// indefinitely. Wrapping the producer with [Track] makes such
// traversals visible to [CheckClean].
package linger

import (
	"iter"
	"runtime"
	"sync"
	"sync/atomic"
)

// This value is sensitive to the code structure.
const callersOffset = 3

// NewRecorder constructs a [Recorder] that samples the call stack at the
// requested depth. A depth of 1 will record the location at which the
// tracked sequence was invoked, e.g. the function containing the range
// statement.
func NewRecorder(depth int) *Recorder {
	return &Recorder{depth: depth}
}

// A Recorder records the call stack where a traversal of a tracked
// sequence began. The entry is removed once the sequence function
// returns. It is primarily useful for testing scenarios, to ensure that
// no traversal is left suspended after a consumer abandons it.
type Recorder struct {
	counter atomic.Uintptr
	data    sync.Map
	depth   int
}

// Callers returns a snapshot of the caller stacks associated with any
// traversals that are currently in progress.
func (r *Recorder) Callers() [][]uintptr {
	var ret [][]uintptr
	r.data.Range(func(_, value any) bool {
		ret = append(ret, value.([]uintptr))
		return true
	})
	return ret
}

// Len returns the number of traversals in progress.
func (r *Recorder) Len() int {
	count := 0
	r.data.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// start samples the caller of the tracked sequence and returns a
// function to discard the sample.
func (r *Recorder) start() func() {
	pc := make([]uintptr, r.depth)
	pc = pc[:runtime.Callers(callersOffset, pc)]

	id := r.counter.Add(1)
	r.data.Store(id, pc)
	return func() { r.data.Delete(id) }
}

// Track returns a sequence that records each traversal of seq in the
// Recorder for as long as seq is running.
func Track[T any](r *Recorder, seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		done := r.start()
		defer done()
		seq(yield)
	}
}

// Track2 is a pairwise version of [Track].
func Track2[K, V any](r *Recorder, seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		done := r.start()
		defer done()
		seq(yield)
	}
}
