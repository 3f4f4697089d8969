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

package sortkit

// Sort sorts data in-place in ascending natural order. The sort is
// unstable: the relative order of equal elements is not preserved.
//
// Wide integer slices above radixMinLen are dispatched to the O(n)
// radix sort; everything else goes through introsort. O(n log n)
// comparisons worst case either way.
func Sort[T Ordered](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	if n >= radixMinLen {
		switch v := any(data).(type) {
		case []int32:
			RadixSort(v)
			return
		case []int64:
			RadixSort(v)
			return
		case []uint32:
			RadixSort(v)
			return
		case []uint64:
			RadixSort(v)
			return
		}
	}

	SortWith(data, Ascending[T]{})
}

// SortFunc sorts data in-place using less as the ordering. The sort is
// unstable. less must define a strict weak ordering; see Comparator.
//
// Example: descending order
//
//	sortkit.SortFunc(data, func(a, b int32) bool { return b < a })
//
// Internally this wraps less in a LessFunc comparator; use SortWith
// with a concrete comparator type to avoid the indirect call.
func SortFunc[T any](data []T, less func(a, b T) bool) {
	SortWith(data, LessFunc[T]{Fn: less})
}

// SortWith sorts data in-place under cmp. The sort is unstable.
//
// This is an introsort variant that combines:
//   - Insertion sort for small subarrays
//   - Three-way quicksort partitioning with a sampled pivot
//   - Heapsort fallback for the O(n log n) worst-case guarantee
//
// O(log n) auxiliary stack, no heap allocation. cmp is consulted fresh
// on every comparison; nothing is cached across calls.
func SortWith[T any, C Comparator[T]](data []T, cmp C) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Max recursion depth before the heapsort fallback: 2 * floor(log2(n))
	maxDepth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		maxDepth++
	}
	maxDepth *= 2

	sortImpl(data, cmp, maxDepth)
}

// SortStable sorts data in-place in ascending natural order, preserving
// the relative order of equal elements.
func SortStable[T Ordered](data []T) {
	SortStableWith(data, Ascending[T]{})
}

// SortStableFunc sorts data in-place using less as the ordering,
// preserving the relative order of elements that compare equal.
func SortStableFunc[T any](data []T, less func(a, b T) bool) {
	SortStableWith(data, LessFunc[T]{Fn: less})
}

// SortStableWith sorts data in-place under cmp, preserving the relative
// order of equal elements. Merge sort over insertion-sorted runs;
// O(n log n) comparisons worst case, with an O(n) scratch buffer
// allocated for the duration of the call.
func SortStableWith[T any, C Comparator[T]](data []T, cmp C) {
	if len(data) <= 1 {
		return
	}
	stableSort(data, cmp)
}

// IsSorted reports whether data is in ascending natural order.
func IsSorted[T Ordered](data []T) bool {
	return IsSortedWith(data, Ascending[T]{})
}

// IsSortedFunc reports whether data is ordered under less.
func IsSortedFunc[T any](data []T, less func(a, b T) bool) bool {
	return IsSortedWith(data, LessFunc[T]{Fn: less})
}

// IsSortedWith reports whether data is ordered under cmp.
func IsSortedWith[T any, C Comparator[T]](data []T, cmp C) bool {
	for i := len(data) - 1; i > 0; i-- {
		if cmp.Less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}
