// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package retry_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vawter.tech/lazy/retry"
)

func ExampleBackoff() {
	myError := errors.New("boom")

	p := (&retry.Backoff{
		Jitter:      time.Millisecond,
		MaxAttempts: 2,
		MaxDelay:    10 * time.Millisecond,
		MinDelay:    time.Millisecond,
		Multiplier:  10,
		Retryable: func(err error) bool {
			// This might look for an HTTP 503 from a paging API.
			return errors.Is(err, myError)
		},
	}).Policy()

	items := retry.UntilEmpty(context.Background(), p,
		func(context.Context) ([]string, error) {
			fmt.Println("attempt")
			return nil, myError
		})

	for _, err := range items {
		fmt.Println(err.Error())
	}
	// Output:
	// attempt
	// attempt
	// batch 0: gave up after 2 attempts: boom
}

func ExampleUntilEmpty() {
	pages := [][]string{{"alpha", "bravo"}, {"charlie"}}
	failures := 1

	items := retry.UntilEmpty(context.Background(), (&retry.Loop{}).Policy(),
		func(context.Context) ([]string, error) {
			if failures > 0 {
				failures--
				return nil, errors.New("transient")
			}
			if len(pages) == 0 {
				return nil, nil
			}
			page := pages[0]
			pages = pages[1:]
			return page, nil
		})

	for v, err := range items {
		if err != nil {
			panic(err)
		}
		fmt.Println(v)
	}
	// Output:
	// alpha
	// bravo
	// charlie
}
