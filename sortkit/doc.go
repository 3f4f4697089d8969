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

// Package sortkit provides in-place sorting primitives over slices of
// fixed-width numeric elements, with natural-order and
// comparator-driven variants of both a stable and an unstable sort.
//
// # Entry points
//
// Each sort comes as a quartet:
//   - Sort / SortStable: intrinsic ascending order, Ordered element types
//   - SortFunc / SortStableFunc: caller-supplied less callback, any element type
//   - SortWith / SortStableWith: the same, over a Comparator value
//
// The unstable sorts are introsort (three-way quicksort with a sampled
// pivot, insertion sort below a threshold, heapsort fallback at the
// recursion depth limit); no allocation, O(log n) stack. The stable
// sorts are merge sorts over insertion-sorted runs and allocate an
// O(n) scratch buffer for the duration of the call. RadixSort is an
// O(n) natural-order alternative for integer element types, and Sort
// dispatches large wide-integer slices to it automatically.
//
// # Comparators
//
// An ordering is a value with a single method, Less(a, b T) bool,
// reporting whether a strictly precedes b. Orderings that need state
// carry it in the comparator value itself; LessFunc adapts a plain
// callback (closing over whatever it likes), and ThreeWay adapts the
// emirpasic/gods three-way convention. Less must be a strict weak
// ordering for the sort's result to mean anything; a broken comparator
// yields some permutation of the input but never an out-of-bounds
// access or a hang.
//
// # Contract
//
// The engine borrows the slice exclusively for the duration of one
// call, mutates only its arrangement (the multiset of values is
// unchanged), retains no reference afterwards, and performs no
// internal synchronization: concurrent calls are fine if and only if
// their slices, and any state reachable through their comparators, do
// not overlap. There is no error channel; precondition violations are
// the caller's problem, not detected and not reported.
//
// Natural order on float slices uses < directly: NaN placement is
// unspecified (though safe). Sort NaN-laden data with a comparator
// that defines a total order if placement matters.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sortkit/sortkit"
//
//	func Process(data []int32) {
//	    sortkit.Sort(data) // in-place ascending sort
//	}
//
//	func ByMagnitude(data []float64) {
//	    sortkit.SortStableFunc(data, func(a, b float64) bool {
//	        return math.Abs(a) < math.Abs(b)
//	    })
//	}
package sortkit
