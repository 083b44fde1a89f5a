// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package lazy_test

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"vawter.tech/lazy"
)

func ExampleUntilEmpty() {
	// Simulate a paged source.
	pages := [][]string{{"alpha", "bravo"}, {"charlie"}, {}}
	next := func() []string {
		page := pages[0]
		pages = pages[1:]
		return page
	}

	for v := range lazy.UntilEmpty(next) {
		fmt.Println(v)
	}
	// Output:
	// alpha
	// bravo
	// charlie
}

func ExampleTakeUntil() {
	naturals := func(yield func(int) bool) {
		for i := 1; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	// The first multiple of 7 is included.
	fmt.Println(slices.Collect(lazy.TakeUntil(naturals, func(x int) bool { return x%7 == 0 })))
	// Output:
	// [1 2 3 4 5 6 7]
}

func ExampleOnComplete() {
	items := slices.Values([]string{"a", "b", "c"})
	logged := lazy.OnComplete(items, func(s iter.Seq[string]) {
		fmt.Println("done:", strings.Join(slices.Collect(s), ","))
	})

	for v := range logged {
		fmt.Println(v)
	}
	// Output:
	// a
	// b
	// c
	// done: a,b,c
}

func ExampleChunked() {
	// Fixed-size groups of two, expressed as a counting accumulator.
	chunks := lazy.Chunked(slices.Values([]int{1, 2, 3, 4, 5}), 0,
		func(count, _ int) int { return count + 1 },
		func(count int) bool { return count <= 2 },
	)
	for chunk, err := range chunks {
		if err != nil {
			panic(err)
		}
		fmt.Println(chunk)
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleChunkedWeight() {
	words := slices.Values([]string{"the", "quick", "brown", "fox", "jumps", "extraordinary"})
	lines := lazy.ChunkedWeight(words, 10, func(s string) int { return len(s) + 1 })
	for line, err := range lines {
		if errors.Is(err, lazy.ErrUnchunkable) {
			fmt.Println("too long:", err)
			break
		}
		fmt.Println(strings.Join(line, " "))
	}
	// Output:
	// the quick
	// brown fox
	// jumps
	// too long: element 5 (extraordinary): single element refuses to chunk
}
