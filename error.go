// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy

import (
	"errors"
	"fmt"
)

// ErrUnchunkable is the sentinel wrapped by [UnchunkableError].
var ErrUnchunkable = errors.New("single element refuses to chunk")

// UnchunkableError is reported by [Chunked] when an element cannot
// start a new chunk.
type UnchunkableError struct {
	Index   int // Zero-based position of the element in the source.
	Element any
}

// Error implements error.
func (e *UnchunkableError) Error() string {
	return fmt.Sprintf("element %d (%v): %v", e.Index, e.Element, ErrUnchunkable)
}

// Unwrap returns [ErrUnchunkable].
func (e *UnchunkableError) Unwrap() error {
	return ErrUnchunkable
}
