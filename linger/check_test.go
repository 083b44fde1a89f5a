// Copyright 2025 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package linger

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckEmpty(t *testing.T) {
	rec := NewRecorder(1)
	CheckClean(t, rec)
}

func TestLingering(t *testing.T) {
	here := make([]uintptr, 1)
	runtime.Callers(1, here)

	r := require.New(t)

	rec := NewRecorder(1)
	rec.data.Store(uintptr(1), here)

	fake := &fakeTB{t: t}
	CheckClean(fake, rec)

	r.True(fake.failed)
	r.Len(fake.msgs, 3)
	r.Equal("lingering traversals detected", fake.msgs[0])
	r.Equal("  suspended traversal started at:", fake.msgs[1])
	r.Contains(fake.msgs[2], "vawter.tech/lazy/linger.TestLingering")
	r.Contains(fake.msgs[2], "check_test.go")
}

type fakeTB struct {
	failed bool
	msgs   []string
	t      *testing.T
}

func (f *fakeTB) Helper() {}
func (f *fakeTB) Errorf(s string, a ...any) {
	f.failed = true
	f.msgs = append(f.msgs, fmt.Sprintf(s, a...))
	f.t.Logf(s, a...)
}
