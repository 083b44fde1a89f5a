// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package record contains a partial metric record that is assembled by
// merging fragments produced in different places.
//
// Each field of a [Record] may be set by at most one fragment. Merging
// two fragments that both set the same field, or that share a key in
// one of the map fields, is a collision.
package record

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"time"

	"vawter.tech/lazy"
)

// ErrCollision is the sentinel wrapped by [CollisionError].
var ErrCollision = errors.New("field set more than once")

// CollisionError identifies a field that was set in both operands of
// [Merge]. Key is set for collisions within a map field.
type CollisionError struct {
	Field string
	Key   string
}

// Error implements error.
func (e *CollisionError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Field, ErrCollision)
	}
	return fmt.Sprintf("%s[%q]: %v", e.Field, e.Key, ErrCollision)
}

// Unwrap returns [ErrCollision].
func (e *CollisionError) Unwrap() error {
	return ErrCollision
}

// A Record is a possibly-partial metric observation. Scalar fields are
// considered set when they hold a non-zero value.
type Record struct {
	Name       string
	Unit       string
	Value      *float64
	Time       time.Time
	Dimensions map[string][]string
	Properties map[string]string
}

// DimensionCount returns the total number of dimension values.
func (r Record) DimensionCount() int {
	count := 0
	for _, values := range r.Dimensions {
		count += len(values)
	}
	return count
}

// IsZero returns true if no field of the record is set.
func (r Record) IsZero() bool {
	return r.Name == "" && r.Unit == "" && r.Value == nil && r.Time.IsZero() &&
		len(r.Dimensions) == 0 && len(r.Properties) == 0
}

// Merge combines two fragments into a new Record. Neither operand is
// modified. Every collision is reported, joined into a single error.
func Merge(a, b Record) (Record, error) {
	var errs []error
	ret := Record{
		Name:  scalar(&errs, "name", a.Name, b.Name),
		Unit:  scalar(&errs, "unit", a.Unit, b.Unit),
		Value: scalar(&errs, "value", a.Value, b.Value),
		Time:  a.Time,
	}
	switch {
	case a.Time.IsZero():
		ret.Time = b.Time
	case !b.Time.IsZero():
		errs = append(errs, &CollisionError{Field: "time"})
	}

	var err error
	ret.Dimensions, err = union("dimensions", a.Dimensions, b.Dimensions)
	errs = append(errs, err)
	ret.Properties, err = union("properties", a.Properties, b.Properties)
	errs = append(errs, err)

	if err := errors.Join(errs...); err != nil {
		return Record{}, err
	}
	return ret, nil
}

// scalar returns whichever of a or b is set.
func scalar[T comparable](errs *[]error, field string, a, b T) T {
	var zero T
	switch {
	case a == zero:
		return b
	case b != zero:
		*errs = append(*errs, &CollisionError{Field: field})
	}
	return a
}

// union returns a key-disjoint union of the maps, or nil if both are
// empty.
func union[V any](field string, a, b map[string]V) (map[string]V, error) {
	if len(a) == 0 && len(b) == 0 {
		return nil, nil
	}
	ret := make(map[string]V, len(a)+len(b))
	maps.Copy(ret, a)
	var errs []error
	for k, v := range b {
		if _, dup := ret[k]; dup {
			errs = append(errs, &CollisionError{Field: field, Key: k})
			continue
		}
		ret[k] = v
	}
	return ret, errors.Join(errs...)
}

// MergeAll folds a sequence of fragments into a single Record. The
// first failing merge stops the fold, and its error is returned
// annotated with the position of the offending fragment.
func MergeAll(seq iter.Seq[Record]) (Record, error) {
	var ret Record
	idx := 0
	for r := range seq {
		next, err := Merge(ret, r)
		if err != nil {
			return Record{}, fmt.Errorf("fragment %d: %w", idx, err)
		}
		ret = next
		idx++
	}
	return ret, nil
}

// Batches groups records so that the number of dimension values in each
// batch does not exceed maxDimensions. Records without dimensions
// still count toward the batch as a single value. A record that does
// not fit into an empty batch ends the sequence with a
// [lazy.UnchunkableError].
func Batches(seq iter.Seq[Record], maxDimensions int) iter.Seq2[[]Record, error] {
	return lazy.ChunkedWeight(seq, maxDimensions, func(r Record) int {
		return max(r.DimensionCount(), 1)
	})
}
