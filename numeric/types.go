// Copyright 2025 go-numeric Authors
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

package numeric

import (
	"unsafe"

	"github.com/hikogui/go-numeric/numeric/internal/lanes"
	"github.com/hikogui/go-numeric/numeric/reg"
)

// Floats is a constraint for floating-point lane types.
type Floats = lanes.Floats

// SignedInts is a constraint for signed integer lane types.
type SignedInts = lanes.SignedInts

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts = lanes.UnsignedInts

// Integers is a constraint for all integer lane types.
type Integers = lanes.Integers

// Lanes is a constraint for every type an Array can hold.
type Lanes = lanes.Lanes

// Storage is the backing array of an Array: a power-of-two count of T.
type Storage[T Lanes] interface {
	~[1]T | ~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

// RoundMode selects the rounding direction of Round.
type RoundMode = reg.RoundMode

// Rounding modes.
const (
	RoundCurrent     = reg.RoundCurrent
	RoundNearestEven = reg.RoundNearestEven
	RoundDown        = reg.RoundDown
	RoundUp          = reg.RoundUp
	RoundTowardZero  = reg.RoundTowardZero
)

// Array is a fixed-length numeric vector of len(S) lanes of T.
//
// Lane i is element i of the backing array on every host. Size and alignment
// equal those of S, the zero value has every lane zero, and copies are plain
// value copies.
type Array[T Lanes, S Storage[T]] struct {
	v S
}

// view returns the lanes of a as a slice aliasing a.
func (a *Array[T, S]) view() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&a.v)), len(a.v))
}

// Len returns the number of lanes N.
func (a Array[T, S]) Len() int {
	return len(a.v)
}

// Lanes returns the backing array.
func (a Array[T, S]) Lanes() S {
	return a.v
}

// Slice returns the lanes in a new slice.
func (a Array[T, S]) Slice() []T {
	return append([]T(nil), a.view()...)
}

// FromLanes wraps a backing array.
func FromLanes[T Lanes, S Storage[T]](v S) Array[T, S] {
	return Array[T, S]{v}
}
