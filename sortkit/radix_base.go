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

// RadixSort sorts data in-place in ascending natural order using an
// LSD byte-bucket radix sort: one counting pass per byte of the element
// type, with a sign-aware final pass for signed types. O(n) time,
// O(n) auxiliary space. Each pass is stable, so the whole sort is.
func RadixSort[T Integers](data []T) {
	n := len(data)
	if n <= 1 {
		return
	}

	var zero T
	width, signed := 8, false
	switch any(zero).(type) {
	case int8:
		width, signed = 1, true
	case int16:
		width, signed = 2, true
	case int32:
		width, signed = 4, true
	case int64:
		width, signed = 8, true
	case uint8:
		width = 1
	case uint16:
		width = 2
	case uint32:
		width = 4
	case uint64:
		width = 8
	}

	buf := make([]T, n)
	src, dst := data, buf
	for pass := 0; pass < width; pass++ {
		shift := pass * 8
		if signed && pass == width-1 {
			radixPassSigned(src, dst, shift)
		} else {
			radixPass(src, dst, shift)
		}
		src, dst = dst, src
	}

	// Odd number of passes leaves the result in buf.
	if width&1 == 1 {
		copy(data, src)
	}
}

// radixPass performs one pass of LSD radix sort.
// shift selects which byte to use for bucketing (0, 8, 16, ...).
func radixPass[T Integers](src, dst []T, shift int) {
	// Count histogram for each bucket (256 buckets for 8 bits)
	var count [256]int
	for _, v := range src {
		count[(uint64(v)>>shift)&0xFF]++
	}

	// Compute prefix sum to get bucket offsets
	offset := 0
	for b := 0; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}

	// Scatter elements to destination
	for _, v := range src {
		digit := (uint64(v) >> shift) & 0xFF
		dst[count[digit]] = v
		count[digit]++
	}
}

// radixPassSigned performs the final pass for signed integers. The top
// byte carries the sign bit, so buckets 128-255 (negative values) must
// come before buckets 0-127 (positive values).
func radixPassSigned[T Integers](src, dst []T, shift int) {
	var count [256]int
	for _, v := range src {
		count[(uint64(v)>>shift)&0xFF]++
	}

	offset := 0
	for b := 128; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}
	for b := 0; b < 128; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}

	for _, v := range src {
		digit := (uint64(v) >> shift) & 0xFF
		dst[count[digit]] = v
		count[digit]++
	}
}
