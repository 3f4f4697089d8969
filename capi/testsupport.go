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

// Test files cannot use cgo, so the C comparators the tests need and
// the C-typed calls into the exported quartet live here as pure-Go
// wrappers. These are unreferenced in a c-shared build and cost
// nothing in the shipped library.

package main

/*
#include "sortkit_abi.h"

// Comparator that ignores its context.
static bool test_i32_desc(const int32_t* a, const int32_t* b, uint8_t* ctx) {
	(void)ctx;
	return *b < *a;
}

// Comparator that reads a signed multiplier out of its context; with a
// multiplier of -1 the order flips to descending.
static bool test_i32_mul(const int32_t* a, const int32_t* b, uint8_t* ctx) {
	int8_t m = *(int8_t*)ctx;
	return (*a * m) < (*b * m);
}

static bool test_u64_asc(const uint64_t* a, const uint64_t* b, uint8_t* ctx) {
	(void)ctx;
	return *a < *b;
}

static sortkit_i32_less_t test_i32_desc_fn(void) { return test_i32_desc; }
static sortkit_i32_less_t test_i32_mul_fn(void) { return test_i32_mul; }
static sortkit_u64_less_t test_u64_asc_fn(void) { return test_u64_asc; }
*/
import "C"

import "unsafe"

func i32Ptr(v []int32) *C.int32_t {
	if len(v) == 0 {
		return nil
	}
	return (*C.int32_t)(unsafe.Pointer(&v[0]))
}

func u64Ptr(v []uint64) *C.uint64_t {
	if len(v) == 0 {
		return nil
	}
	return (*C.uint64_t)(unsafe.Pointer(&v[0]))
}

// Natural-order wrappers. An empty slice becomes a null data pointer
// with zero length, so they double as the null no-op case.

func sortUnstableI32(v []int32) {
	sort_unstable_i32(i32Ptr(v), C.size_t(len(v)))
}

func sortStableI32(v []int32) {
	sort_stable_i32(i32Ptr(v), C.size_t(len(v)))
}

func sortUnstableU64(v []uint64) {
	sort_unstable_u64(u64Ptr(v), C.size_t(len(v)))
}

func sortStableU64(v []uint64) {
	sort_stable_u64(u64Ptr(v), C.size_t(len(v)))
}

// Comparator wrappers, one per C test comparator.

func sortUnstableI32Desc(v []int32) {
	sort_unstable_i32_by(i32Ptr(v), C.size_t(len(v)), C.test_i32_desc_fn(), nil)
}

func sortStableI32Mul(v []int32, m int8) {
	cm := C.int8_t(m)
	sort_stable_i32_by(i32Ptr(v), C.size_t(len(v)), C.test_i32_mul_fn(), (*C.uint8_t)(unsafe.Pointer(&cm)))
}

func sortUnstableU64Asc(v []uint64) {
	sort_unstable_u64_by(u64Ptr(v), C.size_t(len(v)), C.test_u64_asc_fn(), nil)
}
