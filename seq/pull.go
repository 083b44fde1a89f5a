// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"fmt"
	"iter"
	"sync"

	"vawter.tech/lazy/internal/safe"
)

// A puller serializes access to a pull iterator that is shared by
// several workers and assigns each pulled pair its input index.
type puller[K, V any] struct {
	mu   sync.Mutex
	idx  int
	next func() (K, V, bool)
	stop func()
}

func newPuller[T any](items iter.Seq[T]) *puller[T, struct{}] {
	next, stop := iter.Pull(items)
	return &puller[T, struct{}]{
		next: func() (T, struct{}, bool) {
			v, ok := next()
			return v, struct{}{}, ok
		},
		stop: stop,
	}
}

func newPuller2[K, V any](items iter.Seq2[K, V]) *puller[K, V] {
	next, stop := iter.Pull2(items)
	return &puller[K, V]{next: next, stop: stop}
}

// pull collects the next pair. A panic raised by the source is
// returned as an error. If onPull is non-nil, it is called with the
// index of a successfully pulled pair while the lock is still held and
// may veto the pair by returning false.
func (p *puller[K, V]) pull(onPull func(idx int) bool) (idx int, k K, v V, ok bool, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx = p.idx
	p.idx++
	if err = safe.CallE(func() error {
		k, v, ok = p.next()
		return nil
	}); err != nil {
		return idx, k, v, false, fmt.Errorf("source at index %d: %w", idx, err)
	}
	if ok && onPull != nil {
		ok = onPull(idx)
	}
	return
}

// close stops the source. It must not be called while a worker is
// still pulling.
func (p *puller[K, V]) close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stop()
}
