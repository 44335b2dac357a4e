// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerable

import "iter"

// Transform returns a sequence whose Nth element is the result of
// applying the transformer to the Nth element of the source.
//
// An [ArgumentError] is returned immediately if either argument is
// nil. The transformer is invoked once per element visited.
func Transform[T, R any](source iter.Seq[T], transformer func(T) R) (iter.Seq[R], error) {
	const op = "enumerable.Transform"
	if source == nil {
		return nil, nilArgument(op, "source")
	}
	if transformer == nil {
		return nil, nilArgument(op, "transformer")
	}

	return func(yield func(R) bool) {
		for v := range source {
			if !yield(transformer(v)) {
				return
			}
		}
	}, nil
}
