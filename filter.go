// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerable

import "iter"

// Filter returns a sequence containing, in their original order, only
// those elements of the source for which the predicate returns true.
//
// An [ArgumentError] is returned immediately if either argument is nil.
// The predicate is invoked once per source element visited; elements
// past the point where the consumer stops iterating are never visited.
func Filter[T any](source iter.Seq[T], predicate func(T) bool) (iter.Seq[T], error) {
	const op = "enumerable.Filter"
	if source == nil {
		return nil, nilArgument(op, "source")
	}
	if predicate == nil {
		return nil, nilArgument(op, "predicate")
	}

	return func(yield func(T) bool) {
		for v := range source {
			if predicate(v) && !yield(v) {
				return
			}
		}
	}, nil
}
