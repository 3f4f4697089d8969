// Copyright 2025 go-sortkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parallel

import (
	"math/rand"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortkit/sortkit"
)

func newTestPool(t *testing.T, size int) *ants.Pool {
	t.Helper()
	pool, err := ants.NewPool(size)
	require.NoError(t, err)
	t.Cleanup(pool.Release)
	return pool
}

func randomInt64(n int, seed int64) []int64 {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int64, n)
	for i := range data {
		data[i] = rng.Int63() - rng.Int63()
	}
	return data
}

func TestParallelSortMatchesSequential(t *testing.T) {
	pool := newTestPool(t, 4)

	data := randomInt64(MinParallelSortLen*4, 1)
	want := slices.Clone(data)
	slices.Sort(want)

	Sort(pool, data)
	require.Equal(t, want, data)
}

func TestParallelSortSmallFallsBack(t *testing.T) {
	pool := newTestPool(t, 4)

	data := randomInt64(100, 2)
	want := slices.Clone(data)
	slices.Sort(want)

	Sort(pool, data)
	require.Equal(t, want, data)
}

func TestParallelSortNilPool(t *testing.T) {
	data := randomInt64(MinParallelSortLen*2, 3)
	want := slices.Clone(data)
	slices.Sort(want)

	Sort(nil, data)
	require.Equal(t, want, data)
}

func TestParallelSortFunc(t *testing.T) {
	pool := newTestPool(t, 3)

	data := randomInt64(MinParallelSortLen*2, 4)
	want := slices.Clone(data)
	slices.SortFunc(want, func(a, b int64) int {
		switch {
		case b < a:
			return -1
		case a < b:
			return 1
		}
		return 0
	})

	SortFunc(pool, data, func(a, b int64) bool { return b < a })
	require.Equal(t, want, data)
}

func TestParallelSortStableKeepsOrder(t *testing.T) {
	type record struct {
		key int32
		seq int
	}

	pool := newTestPool(t, 4)

	rng := rand.New(rand.NewSource(5))
	n := MinParallelSortLen * 3
	data := make([]record, n)
	for i := range data {
		data[i] = record{key: int32(rng.Intn(8)), seq: i}
	}
	want := slices.Clone(data)
	slices.SortStableFunc(want, func(a, b record) int {
		return int(a.key) - int(b.key)
	})

	SortStableFunc(pool, data, func(a, b record) bool { return a.key < b.key })
	require.Equal(t, want, data)
}

func TestParallelSortOddLengths(t *testing.T) {
	pool := newTestPool(t, 5)

	// Lengths that do not divide evenly across 5 workers, so the last
	// chunk and the final partial merges get exercised.
	for _, n := range []int{MinParallelSortLen, MinParallelSortLen + 1, MinParallelSortLen*2 + 7} {
		data := randomInt64(n, int64(n))
		want := slices.Clone(data)
		slices.Sort(want)

		SortStable(pool, data)
		require.Equal(t, want, data, "n=%d", n)
	}
}

// countingLess is stateful but safe for concurrent use, the contract a
// comparator must meet here since chunks compare concurrently.
type countingLess struct {
	calls *atomic.Int64
}

func (c countingLess) Less(a, b int64) bool {
	c.calls.Add(1)
	return a < b
}

func TestParallelSortConcurrentComparator(t *testing.T) {
	pool := newTestPool(t, 4)

	data := randomInt64(MinParallelSortLen*4, 7)
	want := slices.Clone(data)
	slices.Sort(want)

	var calls atomic.Int64
	SortWith(pool, data, countingLess{calls: &calls})
	require.Equal(t, want, data)
	require.Greater(t, calls.Load(), int64(len(data)))
}

func TestParallelSortWithComparator(t *testing.T) {
	pool := newTestPool(t, 4)

	data := randomInt64(MinParallelSortLen*2, 6)
	SortWith(pool, data, sortkit.Descending[int64]{})
	require.True(t, sortkit.IsSortedWith(data, sortkit.Descending[int64]{}))
}
