// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package seq contains helpers for concurrent consumption of lazy
// sequences.
//
// The sequence itself is pulled by one logical consumer at a time, so
// the single-consumer guarantees of the [vawter.tech/lazy] package
// hold. Only the callbacks run concurrently. A panic raised by the
// source while it is being pulled is returned as an error rather than
// crashing a worker goroutine.
package seq
