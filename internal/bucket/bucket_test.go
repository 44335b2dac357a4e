// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package bucket

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreeEmpty(t *testing.T) {
	r := require.New(t)

	tr := New[int, string](cmp.Compare[int])
	r.Zero(tr.Len())
	r.Empty(slices.Collect(tr.All()))
}

func TestTreeOrdering(t *testing.T) {
	r := require.New(t)

	tr := New[int, string](cmp.Compare[int])
	tr.Add(3, "c1")
	tr.Add(1, "a1")
	tr.Add(3, "c2")
	tr.Add(2, "b1")
	tr.Add(1, "a2")

	r.Equal(3, tr.Len())
	r.Equal([]string{"a1", "a2", "b1", "c1", "c2"}, slices.Collect(tr.All()))
}

// TestTreeCustomCompare verifies that keys comparing equal share a
// bucket, even if they are not identical.
func TestTreeCustomCompare(t *testing.T) {
	r := require.New(t)

	tr := New[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	tr.Add("b", 1)
	tr.Add("A", 2)
	tr.Add("B", 3)
	tr.Add("a", 4)

	r.Equal(2, tr.Len())
	r.Equal([]int{2, 4, 1, 3}, slices.Collect(tr.All()))
}

func TestTreeEarlyBreak(t *testing.T) {
	r := require.New(t)

	tr := New[int, int](cmp.Compare[int])
	for i := range 10 {
		tr.Add(i%3, i)
	}

	var got []int
	for v := range tr.All() {
		got = append(got, v)
		if len(got) == 5 {
			break
		}
	}
	r.Equal([]int{0, 3, 6, 9, 1}, got)
}

// TestTreeLarge exercises node splits and checks the result against a
// stable sort.
func TestTreeLarge(t *testing.T) {
	r := require.New(t)

	type item struct {
		key, seq int
	}
	rnd := rand.New(rand.NewPCG(1, 2))
	tr := New[int, item](cmp.Compare[int])
	var all []item
	distinct := make(map[int]struct{})
	for i := range 5000 {
		it := item{key: rnd.IntN(300), seq: i}
		all = append(all, it)
		distinct[it.key] = struct{}{}
		tr.Add(it.key, it)
	}
	slices.SortStableFunc(all, func(a, b item) int {
		return cmp.Compare(a.key, b.key)
	})

	r.Equal(len(distinct), tr.Len())
	r.Equal(all, slices.Collect(tr.All()))
}
