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

// stableRunLen is the length of the insertion-sorted runs the merge
// phase starts from.
const stableRunLen = 32

// stableSort is the core of SortStableWith: insertion sort runs of
// stableRunLen, then bottom-up merging of run pairs through a scratch
// buffer. Insertion sort and the merge both resolve ties toward the
// earlier run, which is what makes the whole sort stable.
func stableSort[T any, C Comparator[T]](data []T, cmp C) {
	n := len(data)
	if n <= stableRunLen {
		insertionSort(data, cmp)
		return
	}

	for lo := 0; lo < n; lo += stableRunLen {
		insertionSort(data[lo:min(lo+stableRunLen, n)], cmp)
	}

	// Scratch only ever holds the left run of a merge. The buffer lives
	// for this call only; nothing is retained after return.
	scratch := make([]T, n)
	for width := stableRunLen; width < n; width <<= 1 {
		for lo := 0; lo+width < n; lo += width << 1 {
			hi := min(lo+width<<1, n)
			MergeWith(data[lo:hi], width, scratch, cmp)
		}
	}
}

// MergeWith merges the two adjacent sorted runs data[:mid] and
// data[mid:] in place, stably: on ties the element from the left run
// comes first. scratch must have length at least mid; its contents are
// clobbered. 0 < mid <= len(data) is the caller's responsibility.
func MergeWith[T any, C Comparator[T]](data []T, mid int, scratch []T, cmp C) {
	// Already ordered across the boundary: nothing to move.
	if !cmp.Less(data[mid], data[mid-1]) {
		return
	}

	left := scratch[:mid]
	copy(left, data[:mid])

	i, j, k := 0, mid, 0
	for i < len(left) && j < len(data) {
		if cmp.Less(data[j], left[i]) {
			data[k] = data[j]
			j++
		} else {
			data[k] = left[i]
			i++
		}
		k++
	}

	// If the left run has leftovers they belong at the end; leftovers
	// of the right run are already in place.
	copy(data[k:], left[i:])
}
