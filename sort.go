// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerable

import (
	"cmp"
	"iter"

	"vawter.tech/enumerable/internal/bucket"
)

// SortBy returns a sequence containing the elements of the source in
// ascending order of the key extracted from each element. Keys use
// their natural ordering, as defined by [cmp.Compare]. The sort is
// stable.
//
// See [SortByFunc] for details.
func SortBy[T any, K cmp.Ordered](source iter.Seq[T], key func(T) K) (iter.Seq[T], error) {
	const op = "enumerable.SortBy"
	if source == nil {
		return nil, nilArgument(op, "source")
	}
	if key == nil {
		return nil, nilArgument(op, "key")
	}
	return sortBy(source, key, cmp.Compare[K]), nil
}

// SortByFunc returns a sequence containing the elements of the source
// in ascending order of the key extracted from each element, as
// determined by the compare function. The compare function must define
// a total order and return a negative number when a < b, a positive
// number when a > b and zero when the keys are equivalent. The key type
// need not be comparable with ==.
//
// An [ArgumentError] is returned immediately if any argument is nil.
//
// The sort is stable: elements with equivalent keys are emitted in the
// order in which they appear in the source. The entire source is read,
// and the key function invoked once per element, when the first element
// of the returned sequence is requested. Each iteration of the returned
// sequence re-reads the source.
func SortByFunc[T, K any](
	source iter.Seq[T], key func(T) K, compare func(a, b K) int,
) (iter.Seq[T], error) {
	const op = "enumerable.SortByFunc"
	if source == nil {
		return nil, nilArgument(op, "source")
	}
	if key == nil {
		return nil, nilArgument(op, "key")
	}
	if compare == nil {
		return nil, nilArgument(op, "compare")
	}
	return sortBy(source, key, compare), nil
}

func sortBy[T, K any](source iter.Seq[T], key func(T) K, compare func(a, b K) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		// The minimum key isn't known until the source is exhausted.
		buckets := bucket.New[K, T](compare)
		for v := range source {
			buckets.Add(key(v), v)
		}
		for v := range buckets.All() {
			if !yield(v) {
				return
			}
		}
	}
}
