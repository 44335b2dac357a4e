// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerable

import (
	"iter"
	"slices"
)

// A tracked source records how it has been consumed.
type tracked[T any] struct {
	values []T
	passes int // Number of times the sequence was ranged over.
	pulled int // Total number of elements yielded.
}

func track[T any](values ...T) *tracked[T] {
	return &tracked[T]{values: values}
}

func (s *tracked[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.passes++
		for _, v := range s.values {
			s.pulled++
			if !yield(v) {
				return
			}
		}
	}
}

// singleUse returns a sequence that is exhausted after the first
// iteration, like one backed by a channel or a network stream.
func singleUse[T any](values ...T) iter.Seq[T] {
	remaining := slices.Clone(values)
	return func(yield func(T) bool) {
		for len(remaining) > 0 {
			v := remaining[0]
			remaining = remaining[1:]
			if !yield(v) {
				return
			}
		}
	}
}

// counter returns a function that counts its invocations.
func counter[T, R any](fn func(T) R) (func(T) R, *int) {
	var n int
	return func(v T) R {
		n++
		return fn(v)
	}, &n
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
