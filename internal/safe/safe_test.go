// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package safe

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireStack asserts that the RecoveredError has a non-empty Stack
// whose frames include the named function.
func requireStack(r *require.Assertions, err error, funcName string) {
	var recovered *RecoveredError
	r.ErrorAs(err, &recovered)
	r.NotEmpty(recovered.Stack)

	frames := runtime.CallersFrames(recovered.Stack)
	var found bool
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.Function, funcName) {
			found = true
			break
		}
		if !more {
			break
		}
	}
	r.True(found, "expected stack to contain %q, got:\n%s",
		funcName, recovered.String())
}

func TestCallE(t *testing.T) {
	r := require.New(t)

	r.NoError(CallE(func() error { return nil }))

	boom := errors.New("boom")
	r.Same(boom, CallE(func() error { return boom }))

	kaboom := errors.New("kaboom")
	err := CallE(func() error { panic(kaboom) })
	r.ErrorIs(err, kaboom)
	requireStack(r, err, "TestCallE")

	err = CallE(func() error { panic("oops") })
	r.ErrorContains(err, "panic: oops")
	requireStack(r, err, "TestCallE")
}

func TestCallRE(t *testing.T) {
	r := require.New(t)

	val, err := CallRE(func() ([]int, error) { return []int{42}, nil })
	r.NoError(err)
	r.Equal([]int{42}, val)

	// Values returned alongside an error are preserved.
	boom := errors.New("boom")
	val, err = CallRE(func() ([]int, error) { return []int{99}, boom })
	r.ErrorIs(err, boom)
	r.Equal([]int{99}, val)

	kaboom := errors.New("kaboom")
	val, err = CallRE(func() ([]int, error) { panic(kaboom) })
	r.ErrorIs(err, kaboom)
	r.Nil(val)
	requireStack(r, err, "TestCallRE")

	// A deferred panic after returning an error masks the return values.
	val, err = CallRE(func() ([]int, error) {
		defer func() { panic(kaboom) }()
		return []int{123}, boom
	})
	r.ErrorIs(err, kaboom)
	r.NotErrorIs(err, boom)
	r.Nil(val)
	requireStack(r, err, "TestCallRE")
}
