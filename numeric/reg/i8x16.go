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

package reg

import (
	"github.com/hikogui/go-numeric/numeric/internal/lanes"
	"github.com/hikogui/go-numeric/numeric/swizzle"
)

// I8x16 holds sixteen int8 lanes, the SSE2 __m128i register class.
// Lane 0 is the low-order element. The zero value has every lane zero.
type I8x16 struct {
	v [16]int8
}

var i8x16Ops = portable[int8, [16]int8]()

var i8x16Int = portableInt[int8, [16]int8]()

// NewI8x16 builds a register from up to 16 values; missing lanes are zero.
func NewI8x16(v ...int8) I8x16 {
	var r I8x16
	fill("NewI8x16", r.v[:], v)
	return r
}

// LoadI8x16 loads the first 16 elements of s. No alignment is assumed.
func LoadI8x16(s []int8) I8x16 {
	var r I8x16
	load("LoadI8x16", r.v[:], s)
	return r
}

// I8x16FromArray wraps a.
func I8x16FromArray(a [16]int8) I8x16 {
	return I8x16{a}
}

// BroadcastI8x16 sets every lane to x.
func BroadcastI8x16(x int8) I8x16 {
	var r I8x16
	lanes.Broadcast(r.v[:], x)
	return r
}

// I8x16FromMask sets lane i to all ones when bit i of m is set.
func I8x16FromMask(m uint64) I8x16 {
	lanes.CheckMask("I8x16FromMask", m, 16)
	var r I8x16
	lanes.FromMask(r.v[:], m)
	return r
}

// OnesI8x16 returns a register with every bit set.
func OnesI8x16() I8x16 {
	return I8x16FromMask(0b1111111111111111)
}

// Array returns the lanes.
func (a I8x16) Array() [16]int8 {
	return a.v
}

// Store writes the lanes to the start of s. No alignment is assumed.
func (a I8x16) Store(s []int8) {
	store("I8x16.Store", s, a.v[:])
}

// Get returns lane i.
func (a I8x16) Get(i int) int8 {
	lanes.CheckLane("I8x16.Get", i, 16)
	return a.v[i]
}

// Insert returns a with lane i replaced by x.
func (a I8x16) Insert(i int, x int8) I8x16 {
	lanes.CheckLane("I8x16.Insert", i, 16)
	a.v[i] = x
	return a
}

// BroadcastLane0 copies lane 0 to every lane.
func (a I8x16) BroadcastLane0() I8x16 {
	return BroadcastI8x16(a.v[0])
}

func (a I8x16) String() string {
	return format(a.v[:])
}

// Eq compares bit patterns; lane i is all ones when equal.
func (a I8x16) Eq(b I8x16) I8x16 { return I8x16{i8x16Ops.eq(a.v, b.v)} }
func (a I8x16) Ne(b I8x16) I8x16 { return I8x16{i8x16Ops.ne(a.v, b.v)} }
func (a I8x16) Lt(b I8x16) I8x16 { return I8x16{i8x16Ops.lt(a.v, b.v)} }
func (a I8x16) Gt(b I8x16) I8x16 { return I8x16{i8x16Ops.gt(a.v, b.v)} }
func (a I8x16) Le(b I8x16) I8x16 { return I8x16{i8x16Ops.le(a.v, b.v)} }
func (a I8x16) Ge(b I8x16) I8x16 { return I8x16{i8x16Ops.ge(a.v, b.v)} }

// Mask gathers the sign bit of each lane; bit i is lane i.
func (a I8x16) Mask() uint64 {
	return i8x16Ops.mask(a.v)
}

func (a I8x16) Add(b I8x16) I8x16 { return I8x16{i8x16Ops.add(a.v, b.v)} }
func (a I8x16) Sub(b I8x16) I8x16 { return I8x16{i8x16Ops.sub(a.v, b.v)} }
func (a I8x16) Mul(b I8x16) I8x16 { return I8x16{i8x16Ops.mul(a.v, b.v)} }
func (a I8x16) Min(b I8x16) I8x16 { return I8x16{i8x16Ops.min(a.v, b.v)} }
func (a I8x16) Max(b I8x16) I8x16 { return I8x16{i8x16Ops.max(a.v, b.v)} }
func (a I8x16) Neg() I8x16 { return I8x16{i8x16Ops.neg(a.v)} }
func (a I8x16) Abs() I8x16 { return I8x16{i8x16Ops.abs(a.v)} }

func (a I8x16) And(b I8x16) I8x16 { return I8x16{i8x16Ops.and(a.v, b.v)} }
func (a I8x16) Or(b I8x16) I8x16 { return I8x16{i8x16Ops.or(a.v, b.v)} }
func (a I8x16) Xor(b I8x16) I8x16 { return I8x16{i8x16Ops.xor(a.v, b.v)} }
func (a I8x16) Not() I8x16 { return I8x16{i8x16Ops.not(a.v)} }

// AndNot computes (^a) & b.
func (a I8x16) AndNot(b I8x16) I8x16 {
	return I8x16{i8x16Ops.andNot(a.v, b.v)}
}

// Blend takes lane i from b when bit i of m is set, else from a.
func (a I8x16) Blend(b I8x16, m uint64) I8x16 {
	lanes.CheckMask("I8x16.Blend", m, 16)
	return I8x16{i8x16Ops.blend(a.v, b.v, m)}
}

// SetZero zeroes lane i when bit i of m is set.
func (a I8x16) SetZero(m uint64) I8x16 {
	lanes.CheckMask("I8x16.SetZero", m, 16)
	return I8x16{i8x16Ops.setZero(a.v, m)}
}

// Permute reorders lanes by p; literal and keep characters leave the lane as is.
func (a I8x16) Permute(p swizzle.Pattern) I8x16 {
	return I8x16{i8x16Ops.permute(a.v, p)}
}

// Swizzle reorders lanes by p and writes the literals '0' and '1'.
func (a I8x16) Swizzle(p swizzle.Pattern) I8x16 {
	return swizzleWith(a, p, 16, BroadcastI8x16(1))
}

// HorizontalAdd returns the pairwise sums of a in the low half and of b in the high half.
func (a I8x16) HorizontalAdd(b I8x16) I8x16 {
	return I8x16{i8x16Ops.hadd(a.v, b.v)}
}

// HorizontalSub returns the pairwise differences of a in the low half and of b in the high half.
func (a I8x16) HorizontalSub(b I8x16) I8x16 {
	return I8x16{i8x16Ops.hsub(a.v, b.v)}
}

// InterleaveLo alternates the low halves of a and b, starting with lane 0 of a.
func (a I8x16) InterleaveLo(b I8x16) I8x16 {
	return I8x16{i8x16Ops.ilo(a.v, b.v)}
}

// HorizontalSum broadcasts the left-to-right sum of all lanes.
func (a I8x16) HorizontalSum() I8x16 {
	return I8x16{i8x16Ops.hsum(a.v)}
}

// DotProduct broadcasts the sum of a[i]*b[i] over the lanes selected by m.
func (a I8x16) DotProduct(b I8x16, m uint64) I8x16 {
	lanes.CheckMask("I8x16.DotProduct", m, 16)
	return I8x16{i8x16Ops.dot(a.v, b.v, m)}
}

// ShiftLeft shifts every lane left by n bits; n must be below the lane width.
func (a I8x16) ShiftLeft(n uint) I8x16 {
	lanes.CheckShift[int8]("I8x16.ShiftLeft", n)
	return I8x16{i8x16Int.shl(a.v, n)}
}

// ShiftRight shifts every lane right by n bits, arithmetically.
func (a I8x16) ShiftRight(n uint) I8x16 {
	lanes.CheckShift[int8]("I8x16.ShiftRight", n)
	return I8x16{i8x16Int.shr(a.v, n)}
}
