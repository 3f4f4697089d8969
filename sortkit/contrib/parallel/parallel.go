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

// Package parallel sorts large slices by splitting them into
// per-worker chunks, sorting the chunks concurrently on a shared
// goroutine pool, and merging the results.
//
// The pool is a panjf2000/ants pool owned by the caller and reused
// across calls:
//
//	pool, _ := ants.NewPool(runtime.GOMAXPROCS(0))
//	defer pool.Release()
//
//	parallel.Sort(pool, data)
//
// Each call still assumes exclusive access to its slice; the pool only
// parallelizes work inside one call. Within that call the comparator is
// invoked concurrently from every chunk goroutine, so a stateful
// comparator must be safe for concurrent use. A nil pool, or a slice
// below MinParallelSortLen, falls back to the sequential sorts.
package parallel

import (
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/ajroetker/go-sortkit/sortkit"
)

// MinParallelSortLen is the minimum slice length before chunk sorting
// pays for its merge passes and pool scheduling overhead.
const MinParallelSortLen = 1 << 14

// Sort sorts data in-place in ascending natural order. Unstable.
func Sort[T sortkit.Ordered](pool *ants.Pool, data []T) {
	SortWith(pool, data, sortkit.Ascending[T]{})
}

// SortFunc sorts data in-place under less. Unstable.
func SortFunc[T any](pool *ants.Pool, data []T, less func(a, b T) bool) {
	SortWith(pool, data, sortkit.LessFunc[T]{Fn: less})
}

// SortWith sorts data in-place under cmp. Unstable.
func SortWith[T any, C sortkit.Comparator[T]](pool *ants.Pool, data []T, cmp C) {
	if pool == nil || len(data) < MinParallelSortLen {
		sortkit.SortWith(data, cmp)
		return
	}
	sortChunks(pool, data, cmp, false)
}

// SortStable sorts data in-place in ascending natural order,
// preserving the relative order of equal elements.
func SortStable[T sortkit.Ordered](pool *ants.Pool, data []T) {
	SortStableWith(pool, data, sortkit.Ascending[T]{})
}

// SortStableFunc sorts data in-place under less, preserving the
// relative order of elements that compare equal.
func SortStableFunc[T any](pool *ants.Pool, data []T, less func(a, b T) bool) {
	SortStableWith(pool, data, sortkit.LessFunc[T]{Fn: less})
}

// SortStableWith sorts data in-place under cmp, preserving the relative
// order of equal elements. Chunks are sorted stably and merged stably
// in chunk order, so the combined result is stable too.
func SortStableWith[T any, C sortkit.Comparator[T]](pool *ants.Pool, data []T, cmp C) {
	if pool == nil || len(data) < MinParallelSortLen {
		sortkit.SortStableWith(data, cmp)
		return
	}
	sortChunks(pool, data, cmp, true)
}

// sortChunks sorts data[i*chunk:(i+1)*chunk] concurrently, one task per
// chunk, then merges adjacent chunk pairs until one run remains.
func sortChunks[T any, C sortkit.Comparator[T]](pool *ants.Pool, data []T, cmp C, stable bool) {
	n := len(data)

	// An unbounded pool reports Cap() < 0; cap the fan-out at the
	// number of usable CPUs either way.
	workers := pool.Cap()
	if workers <= 0 || workers > runtime.GOMAXPROCS(0) {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers <= 1 {
		if stable {
			sortkit.SortStableWith(data, cmp)
		} else {
			sortkit.SortWith(data, cmp)
		}
		return
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		part := data[lo:min(lo+chunk, n)]
		wg.Add(1)
		task := func() {
			defer wg.Done()
			if stable {
				sortkit.SortStableWith(part, cmp)
			} else {
				sortkit.SortWith(part, cmp)
			}
		}
		// Run inline if the pool refuses the task (released or
		// overloaded); correctness never depends on concurrency.
		if err := pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	scratch := make([]T, n)
	for width := chunk; width < n; width <<= 1 {
		for lo := 0; lo+width < n; lo += width << 1 {
			hi := min(lo+width<<1, n)
			sortkit.MergeWith(data[lo:hi], width, scratch, cmp)
		}
	}
}
