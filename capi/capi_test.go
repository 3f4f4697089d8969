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

package main

import (
	"slices"
	"testing"
)

func TestSortUnstableI32(t *testing.T) {
	v := []int32{5, 3, 3, 1}
	sortUnstableI32(v)
	if !slices.Equal(v, []int32{1, 3, 3, 5}) {
		t.Errorf("sort_unstable_i32 = %v, want [1 3 3 5]", v)
	}
}

func TestSortStableI32(t *testing.T) {
	v := []int32{5, 3, 3, 1}
	sortStableI32(v)
	if !slices.Equal(v, []int32{1, 3, 3, 5}) {
		t.Errorf("sort_stable_i32 = %v, want [1 3 3 5]", v)
	}
}

func TestSortEmptyNullData(t *testing.T) {
	// Zero length with a null data pointer must be a no-op, not a fault.
	sortUnstableI32(nil)
	sortStableI32(nil)
	sortUnstableU64(nil)
	sortStableU64(nil)
}

func TestSortU64FullWidth(t *testing.T) {
	v := []uint64{18446744073709551615, 0, 1}
	sortUnstableU64(v)
	if !slices.Equal(v, []uint64{0, 1, 18446744073709551615}) {
		t.Errorf("sort_unstable_u64 = %v, want [0 1 max]", v)
	}
}

func TestSortI32ByDescending(t *testing.T) {
	v := []int32{2, 4, 1, 3}
	sortUnstableI32Desc(v)
	if !slices.Equal(v, []int32{4, 3, 2, 1}) {
		t.Errorf("sort_unstable_i32_by(desc) = %v, want [4 3 2 1]", v)
	}
}

func TestSortI32ByContextMultiplier(t *testing.T) {
	v := []int32{1, 2, 3}
	sortStableI32Mul(v, -1)
	if !slices.Equal(v, []int32{3, 2, 1}) {
		t.Errorf("sort_stable_i32_by(ctx=-1) = %v, want [3 2 1]", v)
	}

	sortStableI32Mul(v, 1)
	if !slices.Equal(v, []int32{1, 2, 3}) {
		t.Errorf("sort_stable_i32_by(ctx=+1) = %v, want [1 2 3]", v)
	}
}

func TestSortU64By(t *testing.T) {
	v := []uint64{3, 18446744073709551615, 0}
	sortUnstableU64Asc(v)
	if !slices.Equal(v, []uint64{0, 3, 18446744073709551615}) {
		t.Errorf("sort_unstable_u64_by = %v, want [0 3 max]", v)
	}
}
