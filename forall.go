// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerable

import "iter"

// ForAll reports whether every element of the source satisfies the
// predicate. It returns true for an empty source. Iteration stops at
// the first element that does not satisfy the predicate.
//
// An [ArgumentError] is returned if either argument is nil.
func ForAll[T any](source iter.Seq[T], predicate func(T) bool) (bool, error) {
	const op = "enumerable.ForAll"
	if source == nil {
		return false, nilArgument(op, "source")
	}
	if predicate == nil {
		return false, nilArgument(op, "predicate")
	}

	for v := range source {
		if !predicate(v) {
			return false, nil
		}
	}
	return true, nil
}
