// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package lazy provides transformations over lazily-evaluated
// [iter.Seq] and [iter.Seq2] sequences.
//
// All operators are pull-driven: constructing a sequence evaluates
// nothing, and elements are produced only as the consumer asks for
// them. Each element is produced at most once per traversal, and never
// further ahead than the consumer has requested. A consumer may stop at
// any time by breaking out of its range loop; no operator holds
// resources beyond the lifetime of the traversal.
//
// # Building sequences
//
// [UntilEmpty] turns a function that returns successive batches, such
// as a paging API or a queue drain, into a single sequence that ends at
// the first empty batch. [UntilEmptySeq] and [UntilEmptyE] accept lazy
// batches and fallible producers, respectively.
//
//	items := lazy.UntilEmpty(func() []Item { return queue.Poll(100) })
//
// # Bounding sequences
//
// [TakeUntil] stops a possibly-infinite sequence immediately after the
// first element satisfying a predicate. The satisfying element is
// included in the output.
//
// # Observing completion
//
// [OnComplete] attaches a callback that runs once the source has been
// fully drained, e.g. to log or to release a cursor. An abandoned
// traversal never runs the callback. [OnCompleteOnce] guards the
// callback for single-use sources.
//
// # Chunking
//
// [Chunked] greedily partitions a sequence into non-empty chunks using
// a caller-supplied accumulator and continuation predicate. [ChunkedN]
// and [ChunkedWeight] cover the common count- and size-bounded cases.
// An element that cannot start a chunk on its own is reported as an
// [*UnchunkableError] instead of being dropped.
//
// # Errors
//
// Operators never catch, wrap, or retry failures in caller-supplied
// functions. Panics propagate to the code driving the traversal.
// Fallible producers report errors as the second element of an
// [iter.Seq2].
//
// # Concurrency
//
// Sequences returned by this package are intended for a single
// consumer at a time. The [vawter.tech/lazy/seq] package provides
// bounded-concurrency consumers and an order-preserving concurrent map
// that pull from a sequence on behalf of many workers.
//
// # Sub-packages
//
// The [vawter.tech/lazy/limit] package paces element demand using a
// token-bucket rate limiter. The [vawter.tech/lazy/retry] package wraps
// fallible batch producers with exponential backoff, for use with
// [UntilEmptyE]. The [vawter.tech/lazy/record] package contains a
// mergeable partial record that is commonly batched with
// [ChunkedWeight]. The [vawter.tech/lazy/linger] package helps tests
// detect traversals that were started but never finished.
package lazy
