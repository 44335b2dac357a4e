// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerable

import "iter"

// Generate returns a sequence of count integers, where the Nth element
// (starting from zero) is fn(start+N). The addition wraps on overflow.
// The function is invoked once per element consumed.
//
// An [ArgumentError] wrapping [ErrOutOfRange] is returned if count is
// negative, or one wrapping [ErrNilArgument] if fn is nil.
func Generate(start, count int, fn func(int) int) (iter.Seq[int], error) {
	const op = "enumerable.Generate"
	if count < 0 {
		return nil, &ArgumentError{Op: op, Name: "count", Err: ErrOutOfRange}
	}
	if fn == nil {
		return nil, nilArgument(op, "fn")
	}

	return func(yield func(int) bool) {
		for i := range count {
			if !yield(fn(start + i)) {
				return
			}
		}
	}, nil
}
