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

// The capi package is the C-callable boundary of go-sortkit, built as
// a shared library:
//
//	go build -buildmode=c-shared -o libsortkit.so ./capi
//
// Per element type T it exports the quartet
//
//	void sort_stable_T(T* data, size_t len);
//	void sort_stable_T_by(T* data, size_t len, less, uint8_t* ctx);
//	void sort_unstable_T(T* data, size_t len);
//	void sort_unstable_T_by(T* data, size_t len, less, uint8_t* ctx);
//
// where less is bool (*)(const T*, const T*, uint8_t*), returning true
// iff a strictly precedes b, and ctx is handed back verbatim on every
// comparison. Two representative instantiations are exported (int32_t
// and uint64_t); further types are mechanical repetition of the same
// dozen lines.
//
// The host owns the buffer and guarantees data[0:len] stays valid and
// exclusively ours for the duration of the call; nothing is validated
// here and nothing is retained after return. All functions return
// void: completion means the buffer holds the requested permutation.
//
// cgo cannot call a C function pointer directly, so bridge.c carries
// one bridge function per type; the Go side closes over the bridge,
// the pointer, and ctx to form the comparator.
package main

/*
#include <stddef.h>

#include "sortkit_abi.h"
*/
import "C"

import (
	"unsafe"

	"github.com/ajroetker/go-sortkit/sortkit"
)

func i32Slice(data *C.int32_t, n C.size_t) []int32 {
	return unsafe.Slice((*int32)(unsafe.Pointer(data)), int(n))
}

func u64Slice(data *C.uint64_t, n C.size_t) []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(data)), int(n))
}

func i32Less(fn C.sortkit_i32_less_t, ctx *C.uint8_t) func(a, b int32) bool {
	return func(a, b int32) bool {
		return bool(C.sortkit_i32_less_call(fn, C.int32_t(a), C.int32_t(b), ctx))
	}
}

func u64Less(fn C.sortkit_u64_less_t, ctx *C.uint8_t) func(a, b uint64) bool {
	return func(a, b uint64) bool {
		return bool(C.sortkit_u64_less_call(fn, C.uint64_t(a), C.uint64_t(b), ctx))
	}
}

// --- int32_t ---

//export sort_stable_i32
func sort_stable_i32(data *C.int32_t, n C.size_t) {
	sortkit.SortStable(i32Slice(data, n))
}

//export sort_stable_i32_by
func sort_stable_i32_by(data *C.int32_t, n C.size_t, less C.sortkit_i32_less_t, ctx *C.uint8_t) {
	sortkit.SortStableFunc(i32Slice(data, n), i32Less(less, ctx))
}

//export sort_unstable_i32
func sort_unstable_i32(data *C.int32_t, n C.size_t) {
	sortkit.Sort(i32Slice(data, n))
}

//export sort_unstable_i32_by
func sort_unstable_i32_by(data *C.int32_t, n C.size_t, less C.sortkit_i32_less_t, ctx *C.uint8_t) {
	sortkit.SortFunc(i32Slice(data, n), i32Less(less, ctx))
}

// --- uint64_t ---

//export sort_stable_u64
func sort_stable_u64(data *C.uint64_t, n C.size_t) {
	sortkit.SortStable(u64Slice(data, n))
}

//export sort_stable_u64_by
func sort_stable_u64_by(data *C.uint64_t, n C.size_t, less C.sortkit_u64_less_t, ctx *C.uint8_t) {
	sortkit.SortStableFunc(u64Slice(data, n), u64Less(less, ctx))
}

//export sort_unstable_u64
func sort_unstable_u64(data *C.uint64_t, n C.size_t) {
	sortkit.Sort(u64Slice(data, n))
}

//export sort_unstable_u64_by
func sort_unstable_u64_by(data *C.uint64_t, n C.size_t, less C.sortkit_u64_less_t, ctx *C.uint8_t) {
	sortkit.SortFunc(u64Slice(data, n), u64Less(less, ctx))
}

func main() {}
