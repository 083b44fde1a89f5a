// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package retry

import "fmt"

// MaxAttemptsError indicates that fetching a batch failed on every
// allowed attempt.
type MaxAttemptsError struct {
	Attempts int   // The number of failed attempts.
	Err      error // The error returned by the final attempt.
}

// Error implements error.
func (e *MaxAttemptsError) Error() string {
	return fmt.Sprintf("gave up after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns the enclosed error.
func (e *MaxAttemptsError) Unwrap() error {
	return e.Err
}
