// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package bucket contains an ordered multimap that groups values by a
// key without requiring the key to be hashable.
package bucket

import (
	"iter"

	"github.com/google/btree"
)

// degree is the btree node fan-out.
const degree = 32

type entry[K, V any] struct {
	key    K
	values []V
}

// A Tree maps keys to buckets of values. Keys are ordered by a
// comparison function and values within a bucket retain their insertion
// order. A Tree is not safe for concurrent use.
type Tree[K, V any] struct {
	probe entry[K, V]
	tree  *btree.BTreeG[*entry[K, V]]
}

// New constructs an empty Tree whose keys are ordered by compare, which
// must define a total order in the style of [cmp.Compare]. Two keys for
// which compare returns zero share a bucket.
func New[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{
		tree: btree.NewG[*entry[K, V]](degree, func(a, b *entry[K, V]) bool {
			return compare(a.key, b.key) < 0
		}),
	}
}

// Add appends the value to the bucket for the key, creating the bucket
// if necessary.
func (t *Tree[K, V]) Add(key K, value V) {
	t.probe.key = key
	found, ok := t.tree.Get(&t.probe)
	t.probe.key = *new(K) // Don't retain the key.
	if ok {
		found.values = append(found.values, value)
		return
	}
	t.tree.ReplaceOrInsert(&entry[K, V]{key: key, values: []V{value}})
}

// All returns the contents of every bucket, in ascending key order.
func (t *Tree[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		t.tree.Ascend(func(e *entry[K, V]) bool {
			for _, v := range e.values {
				if !yield(v) {
					return false
				}
			}
			return true
		})
	}
}

// Len returns the number of distinct buckets.
func (t *Tree[K, V]) Len() int {
	return t.tree.Len()
}
