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
	"fmt"
	"strings"
	"unsafe"

	"github.com/hikogui/go-numeric/numeric/internal/lanes"
)

// New builds an array from up to N values; the remaining lanes are zero.
// It panics when more than N values are given.
func New[T Lanes, S Storage[T]](v ...T) Array[T, S] {
	var r Array[T, S]
	if len(v) > len(r.v) {
		panic(fmt.Sprintf("New: %d values for %d lanes", len(v), len(r.v)))
	}
	copy(r.view(), v)
	return r
}

// FromSlice loads the first N elements of s. It panics when s is shorter.
func FromSlice[T Lanes, S Storage[T]](s []T) Array[T, S] {
	var r Array[T, S]
	if len(s) < len(r.v) {
		panic(fmt.Sprintf("FromSlice: slice of %d elements for %d lanes", len(s), len(r.v)))
	}
	copy(r.view(), s)
	return r
}

// Broadcast sets every lane to x.
func Broadcast[T Lanes, S Storage[T]](x T) Array[T, S] {
	var r Array[T, S]
	lanes.Broadcast(r.view(), x)
	return r
}

// FromMask sets lane i to all ones when bit i of m is set, else zero.
func FromMask[T Lanes, S Storage[T]](m uint64) Array[T, S] {
	var r Array[T, S]
	lanes.CheckMask("FromMask", m, len(r.v))
	lanes.FromMask(r.view(), m)
	return r
}

// Ones returns an array with every bit set.
func Ones[T Lanes, S Storage[T]]() Array[T, S] {
	var r Array[T, S]
	return FromMask[T, S](lanes.MaskBits(len(r.v)))
}

// Store writes the lanes to the start of s. It panics when s is shorter than N.
func (a Array[T, S]) Store(s []T) {
	if len(s) < len(a.v) {
		panic(fmt.Sprintf("Store: slice of %d elements for %d lanes", len(s), len(a.v)))
	}
	copy(s, a.view())
}

// Get returns lane i.
func (a Array[T, S]) Get(i int) T {
	lanes.CheckLane("Get", i, len(a.v))
	return a.v[i]
}

// Insert returns a with lane i replaced by x.
func (a Array[T, S]) Insert(i int, x T) Array[T, S] {
	lanes.CheckLane("Insert", i, len(a.v))
	a.v[i] = x
	return a
}

// InsertFrom returns a with lane to replaced by lane from of b, then the
// lanes selected by zero cleared.
func (a Array[T, S]) InsertFrom(from, to int, b Array[T, S], zero uint64) Array[T, S] {
	lanes.CheckLane("InsertFrom", from, len(a.v))
	lanes.CheckLane("InsertFrom", to, len(a.v))
	a.v[to] = b.v[from]
	return a.SetZero(zero)
}

// BroadcastLane0 copies lane 0 to every lane.
func (a Array[T, S]) BroadcastLane0() Array[T, S] {
	return Broadcast[T, S](a.v[0])
}

func (a Array[T, S]) lane(name string, i int) T {
	if i >= len(a.v) {
		panic(fmt.Sprintf("%s: requires at least %d lanes, have %d", name, i+1, len(a.v)))
	}
	return a.v[i]
}

// X returns lane 0.
func (a Array[T, S]) X() T { return a.lane("X", 0) }

// Y returns lane 1.
func (a Array[T, S]) Y() T { return a.lane("Y", 1) }

// Z returns lane 2.
func (a Array[T, S]) Z() T { return a.lane("Z", 2) }

// W returns lane 3.
func (a Array[T, S]) W() T { return a.lane("W", 3) }

// R returns lane 0 (red).
func (a Array[T, S]) R() T { return a.lane("R", 0) }

// G returns lane 1 (green).
func (a Array[T, S]) G() T { return a.lane("G", 1) }

// B returns lane 2 (blue).
func (a Array[T, S]) B() T { return a.lane("B", 2) }

// A returns lane 3 (alpha).
func (a Array[T, S]) A() T { return a.lane("A", 3) }

// Width returns lane 0 of an extent.
func (a Array[T, S]) Width() T { return a.lane("Width", 0) }

// Height returns lane 1 of an extent.
func (a Array[T, S]) Height() T { return a.lane("Height", 1) }

// Depth returns lane 2 of an extent.
func (a Array[T, S]) Depth() T { return a.lane("Depth", 2) }

// bytes returns the memory of a as a byte slice aliasing it.
func (a *Array[T, S]) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&a.v)), unsafe.Sizeof(a.v))
}

// LoadBytes copies the first N*sizeof(T) bytes of b into a new array, in host
// byte order. It panics when b is shorter.
func LoadBytes[T Lanes, S Storage[T]](b []byte) Array[T, S] {
	var r Array[T, S]
	dst := r.bytes()
	if len(b) < len(dst) {
		panic(fmt.Sprintf("LoadBytes: %d bytes for a %d-byte array", len(b), len(dst)))
	}
	copy(dst, b)
	return r
}

// StoreBytes copies the memory of a to the start of b, in host byte order.
func (a Array[T, S]) StoreBytes(b []byte) {
	src := a.bytes()
	if len(b) < len(src) {
		panic(fmt.Sprintf("StoreBytes: %d bytes for a %d-byte array", len(b), len(src)))
	}
	copy(b, src)
}

// BitCast reinterprets the memory of v as a To. It panics unless both types
// have the same size.
func BitCast[To, From any](v From) To {
	var r To
	if unsafe.Sizeof(r) != unsafe.Sizeof(v) {
		panic(fmt.Sprintf("BitCast: size mismatch, %d bytes to %d bytes", unsafe.Sizeof(v), unsafe.Sizeof(r)))
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(&r)), unsafe.Sizeof(r))
	copy(dst, unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
	return r
}

// Equal reports whether every lane of a has the bit pattern of the same lane
// of b. A NaN equals itself.
func (a Array[T, S]) Equal(b Array[T, S]) bool {
	for i := range len(a.v) {
		if lanes.ToBits(a.v[i]) != lanes.ToBits(b.v[i]) {
			return false
		}
	}
	return true
}

// String formats the lanes as "(a; b; c)".
func (a Array[T, S]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range a.view() {
		if i > 0 {
			sb.WriteString("; ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(')')
	return sb.String()
}
