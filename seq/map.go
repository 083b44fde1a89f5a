// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
	"vawter.tech/lazy/internal/safe"
)

type result[R any] struct {
	Err    error
	Result R
}

// Map returns a lazy sequence that concurrently applies the given
// function to the elements of the input sequence, using up to
// numWorkers goroutines. Nothing is pulled from the input until the
// returned sequence is ranged over.
//
// The returned sequence maintains the input order. That is, the Nth
// output is the result of applying the function to the Nth input value.
// Workers run at most numWorkers elements ahead of the consumer.
//
// Any error returned by (or panic raised in) the callback is emitted
// via the sequence without preemptively stopping. A panic raised while
// producing an input, or the cancellation of ctx, ends the work and is
// emitted as a final, extra, element in the sequence. Breaking out of
// the sequence cancels the context passed to the callbacks and waits
// for them to return.
func Map[T, R any](
	ctx context.Context,
	items iter.Seq[T],
	numWorkers int,
	fn func(context.Context, int, T) (R, error),
) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		mapOrdered(ctx, newPuller(items), numWorkers,
			func(ctx context.Context, idx int, item T, _ struct{}) (R, error) {
				return fn(ctx, idx, item)
			}, yield)
	}
}

// Map2 is a pairwise version of [Map].
func Map2[K, V, R any](
	ctx context.Context,
	items iter.Seq2[K, V],
	numWorkers int,
	fn func(context.Context, int, K, V) (R, error),
) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		mapOrdered(ctx, newPuller2(items), numWorkers, fn, yield)
	}
}

func mapOrdered[K, V, R any](
	ctx context.Context,
	p *puller[K, V],
	numWorkers int,
	fn func(context.Context, int, K, V) (R, error),
	yield func(R, error) bool,
) {
	numWorkers = max(numWorkers, 1)
	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)

	// Deferred calls run in reverse: workers exit before the source is
	// stopped.
	defer p.close()
	defer func() {
		cancel()
		_ = g.Wait()
	}()

	results := make(chan (<-chan result[R]), numWorkers)
	for range numWorkers {
		g.Go(func() error {
			for {
				// Just respond to hard stop.
				if err := ctx.Err(); err != nil {
					return err
				}
				retChan := make(chan result[R], 1)

				// Only enqueue a result channel if there's an item to
				// process. We need to enqueue the return channel while
				// holding the lock to guarantee ordering.
				idx, k, v, ok, err := p.pull(func(int) bool {
					select {
					case results <- retChan:
						return true
					case <-ctx.Done():
						return false
					}
				})
				if err != nil {
					return err
				}
				// Clean exit.
				if !ok {
					return nil
				}

				ret, err := safe.CallRE(func() (R, error) {
					return fn(ctx, idx, k, v)
				})
				retChan <- result[R]{Err: err, Result: ret}
			}
		})
	}

	var waitErr error
	go func() {
		waitErr = g.Wait()
		close(results)
	}()

	for resultCh := range results {
		// The callback is wrapped in a panic handler, so we're
		// guaranteed to see a value on the channel.
		r := <-resultCh
		if !yield(r.Result, r.Err) {
			return
		}
	}
	// The write to waitErr happens before results is closed.
	if waitErr != nil {
		yield(*new(R), waitErr)
	}
}
