// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package enumerable

import (
	"iter"
	"reflect"
	"slices"
)

type castConfig struct {
	buffered bool
}

// A CastOption configures [CastTo].
type CastOption func(*castConfig)

// CastBuffered causes [CastTo] to retain the elements that it examines
// during validation. The returned sequence is then produced from the
// retained elements instead of re-reading the source. This allows
// single-use sources to be cast, at the cost of holding every element
// in memory.
func CastBuffered() CastOption {
	return func(cfg *castConfig) {
		cfg.buffered = true
	}
}

// CastTo returns a sequence that contains each element of the source
// converted to type R.
//
// Every element of the source is checked before CastTo returns. If any
// element is not of type R, a [CastError] identifying the first such
// element is returned and no sequence is produced. A nil element can
// never be cast, even when R is an interface type. An [ArgumentError]
// is returned if the source is nil.
//
// By default, the returned sequence performs a second, independent
// iteration over the source. The source must therefore be able to
// produce its elements more than once; see [CastBuffered] for sources
// that cannot. If the second iteration encounters an element that is
// not of type R, the sequence will panic with a [CastError].
func CastTo[R any](source iter.Seq[any], opts ...CastOption) (iter.Seq[R], error) {
	const op = "enumerable.CastTo"
	if source == nil {
		return nil, nilArgument(op, "source")
	}

	var cfg castConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var buf []R
	idx := 0
	for v := range source {
		cast, ok := v.(R)
		if !ok {
			return nil, castError[R](op, idx, v)
		}
		if cfg.buffered {
			buf = append(buf, cast)
		}
		idx++
	}

	if cfg.buffered {
		return slices.Values(buf), nil
	}

	return func(yield func(R) bool) {
		idx := 0
		for v := range source {
			cast, ok := v.(R)
			if !ok {
				// The source changed since it was validated.
				panic(castError[R](op, idx, v))
			}
			if !yield(cast) {
				return
			}
			idx++
		}
	}, nil
}

func castError[R any](op string, idx int, v any) *CastError {
	return &CastError{
		Op:     op,
		Index:  idx,
		Value:  v,
		Target: reflect.TypeFor[R](),
	}
}
