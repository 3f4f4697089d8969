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

import "github.com/emirpasic/gods/utils"

// Comparator defines the ordering used by the comparator-driven sort
// entry points. Less must implement a strict weak ordering for the
// duration of one sort call: irreflexive, asymmetric, transitive, with
// transitive incomparability. A comparator that violates this may
// produce an arbitrary permutation, but the sort still terminates and
// never touches memory outside the slice.
//
// Any state the ordering needs (key tables, collation data, ...) lives
// inside the Comparator value itself.
type Comparator[T any] interface {
	// Less reports whether a strictly precedes b.
	Less(a, b T) bool
}

// LessFunc wraps a callback function as a Comparator.
// This allows callback-based APIs to use the comparator infrastructure
// internally. The callback and whatever it closes over are captured
// once at construction; invoking Less allocates nothing.
type LessFunc[T any] struct {
	Fn func(a, b T) bool
}

func (c LessFunc[T]) Less(a, b T) bool {
	return c.Fn(a, b)
}

// Ascending orders elements by their intrinsic order.
type Ascending[T Ordered] struct{}

func (Ascending[T]) Less(a, b T) bool {
	return a < b
}

// Descending orders elements by the inverse of their intrinsic order.
type Descending[T Ordered] struct{}

func (Descending[T]) Less(a, b T) bool {
	return b < a
}

type reversed[T any] struct {
	cmp Comparator[T]
}

func (r reversed[T]) Less(a, b T) bool {
	return r.cmp.Less(b, a)
}

// Reverse returns a Comparator with the opposite ordering of cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return reversed[T]{cmp: cmp}
}

// ThreeWay adapts a three-way comparison function in the
// emirpasic/gods convention (negative, zero, positive) into a
// Comparator, so orderings written for gods collections (for example
// utils.IntComparator) can drive a sort directly.
type ThreeWay[T any] struct {
	Cmp utils.Comparator
}

func (c ThreeWay[T]) Less(a, b T) bool {
	return c.Cmp(a, b) < 0
}
