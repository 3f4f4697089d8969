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

// Thresholds for different sorting strategies.
const (
	// sortInsertionThreshold: use insertion sort for subarrays this
	// size or smaller.
	sortInsertionThreshold = 24

	// radixMinLen: minimum length before Sort dispatches wide integer
	// slices to radix sort. Below this the histogram passes cost more
	// than they save.
	radixMinLen = 256
)

// sortImpl is the recursive core of SortWith.
//
// Every scan below is index-bounded, so even a comparator that is not
// a strict weak ordering cannot drive a read or write out of range;
// depthLimit guarantees termination by forcing heapsort.
func sortImpl[T any, C Comparator[T]](data []T, cmp C, depthLimit int) {
	n := len(data)

	if n <= sortInsertionThreshold {
		insertionSort(data, cmp)
		return
	}

	// Fallback to heapsort if recursion too deep
	if depthLimit == 0 {
		heapSort(data, cmp)
		return
	}

	// Select pivot using sampled median
	pivot := pivotSampled(data, cmp)

	// Partition using 3-way partition
	lt, gt := partition3Way(data, pivot, cmp)

	// Recurse on partitions
	if lt > 0 {
		sortImpl(data[:lt], cmp, depthLimit-1)
	}
	if gt < n {
		sortImpl(data[gt:], cmp, depthLimit-1)
	}
}

// insertionSort is insertion sort for small subarrays. Stable.
func insertionSort[T any, C Comparator[T]](data []T, cmp C) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && cmp.Less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// heapSort is heapsort for the O(n log n) worst-case guarantee.
func heapSort[T any, C Comparator[T]](data []T, cmp C) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, cmp)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, 0, i, cmp)
	}
}

func siftDown[T any, C Comparator[T]](data []T, i, n int, cmp C) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && cmp.Less(data[largest], data[left]) {
			largest = left
		}
		if right < n && cmp.Less(data[largest], data[right]) {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}

// pivotMedianOf3 selects the pivot as the median of the first, middle,
// and last elements.
func pivotMedianOf3[T any, C Comparator[T]](data []T, cmp C) T {
	n := len(data)
	if n <= 2 {
		return data[0]
	}

	a := data[0]
	b := data[n/2]
	c := data[n-1]

	if cmp.Less(b, a) {
		a, b = b, a
	}
	if cmp.Less(c, b) {
		b = c
		if cmp.Less(b, a) {
			b = a
		}
	}
	return b
}

// pivotSampled selects the pivot by sampling elements at regular
// intervals. For larger arrays this gives a better pivot estimate than
// median-of-3.
func pivotSampled[T any, C Comparator[T]](data []T, cmp C) T {
	n := len(data)
	if n <= 8 {
		return pivotMedianOf3(data, cmp)
	}

	samples := [5]T{
		data[0],
		data[n/4],
		data[n/2],
		data[3*n/4],
		data[n-1],
	}

	insertionSort(samples[:], cmp)
	return samples[2]
}

// partition3Way performs 3-way partitioning (Dutch National Flag).
// Returns (lt, gt) such that data[:lt] < pivot, data[lt:gt] == pivot,
// and data[gt:] > pivot under cmp.
func partition3Way[T any, C Comparator[T]](data []T, pivot T, cmp C) (int, int) {
	lt := 0
	gt := len(data)
	i := 0

	for i < gt {
		if cmp.Less(data[i], pivot) {
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		} else if cmp.Less(pivot, data[i]) {
			gt--
			data[i], data[gt] = data[gt], data[i]
		} else {
			i++
		}
	}

	return lt, gt
}
