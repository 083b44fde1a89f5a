// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package safe contains utilities for executing user-provided
// functions from helpers that report failures as errors.
package safe

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const captureDepth = 32

// A RecoveredError associates an error with a stack trace.
type RecoveredError struct {
	Err   error
	Stack []uintptr
}

// Error implements error.
func (e *RecoveredError) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "recovered: %v\n", e.Err)
	frames := runtime.CallersFrames(e.Stack)
	for {
		frame, more := frames.Next()
		_, _ = fmt.Fprintf(&sb, "%s ( %s:%d )\n", frame.Function, frame.File, frame.Line)

		if !more {
			return sb.String()
		}
	}
}

// String is for debugging use only.
func (e *RecoveredError) String() string {
	return e.Error()
}

// Unwrap return the enclosed error.
func (e *RecoveredError) Unwrap() error { return e.Err }

// CallE executes the function. If the function panics, the recovered
// value will be added to the returned error.
func CallE(fn func() error) error {
	_, err := CallRE(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// CallRE executes the function, returning some result value. If the
// function panics, the recovered value will be added to the returned
// error and the zero value is returned.
func CallRE[R any](fn func() (R, error)) (ret R, err error) {
	defer func() {
		if r := recover(); r != nil {
			ret = *new(R)
			err = recovered(r, err)
		}
	}()
	ret, err = fn()
	return
}

// recovered converts a value obtained from recover into a
// RecoveredError, joined with any error already being returned.
func recovered(r any, err error) error {
	switch t := r.(type) {
	case error:
		err = errors.Join(err, t)
	default:
		err = errors.Join(err, fmt.Errorf("panic: %v", t))
	}
	// Skip runtime.Callers, this function, and the deferred closure.
	stack := make([]uintptr, captureDepth)
	stack = stack[:runtime.Callers(3, stack)]
	return &RecoveredError{
		Err:   err,
		Stack: stack,
	}
}
