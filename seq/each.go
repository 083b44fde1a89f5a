// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"context"
	"fmt"
	"iter"

	"golang.org/x/sync/errgroup"
	"vawter.tech/lazy/internal/safe"
)

// ForEach concurrently executes the callback for each item in the
// sequence. The maximum concurrency is bounded to the provided limit.
// Items are pulled from the sequence only when a worker is free to
// process them.
//
// The first error returned by (or panic raised in) the callback
// cancels the context passed to the other callbacks, stops pulling
// from the sequence, and is returned annotated with the item's index.
// A panic raised while producing an item is returned in the same way,
// as a [*safe.RecoveredError].
func ForEach[T any](
	ctx context.Context,
	items iter.Seq[T],
	numWorkers int,
	fn func(context.Context, int, T) error,
) error {
	return forEach(ctx, newPuller(items), numWorkers,
		func(ctx context.Context, idx int, item T, _ struct{}) error {
			return fn(ctx, idx, item)
		})
}

// ForEach2 is a pairwise version of [ForEach].
func ForEach2[K, V any](
	ctx context.Context,
	items iter.Seq2[K, V],
	numWorkers int,
	fn func(context.Context, int, K, V) error,
) error {
	return forEach(ctx, newPuller2(items), numWorkers, fn)
}

// ForEachChunk is a version of [ForEach2] that consumes the output of
// [vawter.tech/lazy.Chunked]. The callback receives each chunk. An
// error yielded by the chunk sequence stops the work and is returned.
func ForEachChunk[T any](
	ctx context.Context,
	chunks iter.Seq2[[]T, error],
	numWorkers int,
	fn func(context.Context, int, []T) error,
) error {
	return ForEach2(ctx, chunks, numWorkers,
		func(ctx context.Context, idx int, chunk []T, err error) error {
			if err != nil {
				return err
			}
			return fn(ctx, idx, chunk)
		})
}

func forEach[K, V any](
	ctx context.Context,
	p *puller[K, V],
	numWorkers int,
	fn func(context.Context, int, K, V) error,
) error {
	defer p.close()

	g, ctx := errgroup.WithContext(ctx)
	for range max(numWorkers, 1) {
		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				idx, k, v, ok, err := p.pull(nil)
				if err != nil {
					return err
				}
				if !ok {
					// Clean exit.
					return nil
				}
				if err := safe.CallE(func() error {
					return fn(ctx, idx, k, v)
				}); err != nil {
					return fmt.Errorf("index %d: %w", idx, err)
				}
			}
		})
	}
	return g.Wait()
}
