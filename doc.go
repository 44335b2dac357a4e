// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package enumerable provides generic, lazily-evaluated operators over
// [iter.Seq] sequences.
//
// # Validation and production
//
// Every operator runs in two phases. The exported function validates
// its arguments synchronously and reports problems as an error:
//
//	evens, err := enumerable.Filter(nums, func(i int) bool { return i%2 == 0 })
//	if err != nil {
//	    return err // e.g. a nil predicate
//	}
//
// The returned sequence contains no validation logic. Its elements are
// produced only as the consumer requests them, so an operator that is
// never ranged over never touches its source, and a consumer that
// breaks out of a loop stops the walk over the source:
//
//	for v := range evens {
//	    if v > 100 {
//	        break // No further source elements are visited.
//	    }
//	}
//
// Results are re-iterable whenever the source is. Each range over a
// result sequence ranges over the source again.
//
// # Operators
//
//   - [Filter] retains elements satisfying a predicate.
//   - [Transform] maps each element to a new value.
//   - [SortBy] and [SortByFunc] perform a stable sort by an extracted
//     key, using natural ordering or a custom comparison.
//   - [CastTo] converts an untyped sequence to a typed one, failing
//     before returning if any element has the wrong type.
//   - [ForAll] reports whether every element satisfies a predicate.
//   - [Generate] produces a bounded sequence of computed integers.
//
// [SortBy] and [SortByFunc] must see the entire source before emitting
// the smallest element, so they read the source in full when the first
// element is requested. [CastTo] reads the source in full before it
// returns.
//
// # Errors
//
// Invalid arguments are reported with an [ArgumentError], which wraps
// either [ErrNilArgument] or [ErrOutOfRange]. Elements that cannot be
// cast are reported with a [CastError], which wraps [ErrInvalidCast].
// Use [errors.Is] or [errors.As] to inspect them. Panics raised by
// caller-provided functions are not recovered.
//
// The operators in this package perform no concurrent work and are
// safe to call from multiple goroutines, provided that the sources and
// functions passed to them are.
package enumerable
