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

// I16x8 holds eight int16 lanes, the SSE2 __m128i register class.
// Lane 0 is the low-order element. The zero value has every lane zero.
type I16x8 struct {
	v [8]int16
}

var i16x8Ops = portable[int16, [8]int16]()

var i16x8Int = portableInt[int16, [8]int16]()

// NewI16x8 builds a register from up to 8 values; missing lanes are zero.
func NewI16x8(v ...int16) I16x8 {
	var r I16x8
	fill("NewI16x8", r.v[:], v)
	return r
}

// LoadI16x8 loads the first 8 elements of s. No alignment is assumed.
func LoadI16x8(s []int16) I16x8 {
	var r I16x8
	load("LoadI16x8", r.v[:], s)
	return r
}

// I16x8FromArray wraps a.
func I16x8FromArray(a [8]int16) I16x8 {
	return I16x8{a}
}

// BroadcastI16x8 sets every lane to x.
func BroadcastI16x8(x int16) I16x8 {
	var r I16x8
	lanes.Broadcast(r.v[:], x)
	return r
}

// I16x8FromMask sets lane i to all ones when bit i of m is set.
func I16x8FromMask(m uint64) I16x8 {
	lanes.CheckMask("I16x8FromMask", m, 8)
	var r I16x8
	lanes.FromMask(r.v[:], m)
	return r
}

// OnesI16x8 returns a register with every bit set.
func OnesI16x8() I16x8 {
	return I16x8FromMask(0b11111111)
}

// Array returns the lanes.
func (a I16x8) Array() [8]int16 {
	return a.v
}

// Store writes the lanes to the start of s. No alignment is assumed.
func (a I16x8) Store(s []int16) {
	store("I16x8.Store", s, a.v[:])
}

// Get returns lane i.
func (a I16x8) Get(i int) int16 {
	lanes.CheckLane("I16x8.Get", i, 8)
	return a.v[i]
}

// Insert returns a with lane i replaced by x.
func (a I16x8) Insert(i int, x int16) I16x8 {
	lanes.CheckLane("I16x8.Insert", i, 8)
	a.v[i] = x
	return a
}

// BroadcastLane0 copies lane 0 to every lane.
func (a I16x8) BroadcastLane0() I16x8 {
	return BroadcastI16x8(a.v[0])
}

func (a I16x8) String() string {
	return format(a.v[:])
}

// Eq compares bit patterns; lane i is all ones when equal.
func (a I16x8) Eq(b I16x8) I16x8 { return I16x8{i16x8Ops.eq(a.v, b.v)} }
func (a I16x8) Ne(b I16x8) I16x8 { return I16x8{i16x8Ops.ne(a.v, b.v)} }
func (a I16x8) Lt(b I16x8) I16x8 { return I16x8{i16x8Ops.lt(a.v, b.v)} }
func (a I16x8) Gt(b I16x8) I16x8 { return I16x8{i16x8Ops.gt(a.v, b.v)} }
func (a I16x8) Le(b I16x8) I16x8 { return I16x8{i16x8Ops.le(a.v, b.v)} }
func (a I16x8) Ge(b I16x8) I16x8 { return I16x8{i16x8Ops.ge(a.v, b.v)} }

// Mask gathers the sign bit of each lane; bit i is lane i.
func (a I16x8) Mask() uint64 {
	return i16x8Ops.mask(a.v)
}

func (a I16x8) Add(b I16x8) I16x8 { return I16x8{i16x8Ops.add(a.v, b.v)} }
func (a I16x8) Sub(b I16x8) I16x8 { return I16x8{i16x8Ops.sub(a.v, b.v)} }
func (a I16x8) Mul(b I16x8) I16x8 { return I16x8{i16x8Ops.mul(a.v, b.v)} }
func (a I16x8) Min(b I16x8) I16x8 { return I16x8{i16x8Ops.min(a.v, b.v)} }
func (a I16x8) Max(b I16x8) I16x8 { return I16x8{i16x8Ops.max(a.v, b.v)} }
func (a I16x8) Neg() I16x8 { return I16x8{i16x8Ops.neg(a.v)} }
func (a I16x8) Abs() I16x8 { return I16x8{i16x8Ops.abs(a.v)} }

func (a I16x8) And(b I16x8) I16x8 { return I16x8{i16x8Ops.and(a.v, b.v)} }
func (a I16x8) Or(b I16x8) I16x8 { return I16x8{i16x8Ops.or(a.v, b.v)} }
func (a I16x8) Xor(b I16x8) I16x8 { return I16x8{i16x8Ops.xor(a.v, b.v)} }
func (a I16x8) Not() I16x8 { return I16x8{i16x8Ops.not(a.v)} }

// AndNot computes (^a) & b.
func (a I16x8) AndNot(b I16x8) I16x8 {
	return I16x8{i16x8Ops.andNot(a.v, b.v)}
}

// Blend takes lane i from b when bit i of m is set, else from a.
func (a I16x8) Blend(b I16x8, m uint64) I16x8 {
	lanes.CheckMask("I16x8.Blend", m, 8)
	return I16x8{i16x8Ops.blend(a.v, b.v, m)}
}

// SetZero zeroes lane i when bit i of m is set.
func (a I16x8) SetZero(m uint64) I16x8 {
	lanes.CheckMask("I16x8.SetZero", m, 8)
	return I16x8{i16x8Ops.setZero(a.v, m)}
}

// Permute reorders lanes by p; literal and keep characters leave the lane as is.
func (a I16x8) Permute(p swizzle.Pattern) I16x8 {
	return I16x8{i16x8Ops.permute(a.v, p)}
}

// Swizzle reorders lanes by p and writes the literals '0' and '1'.
func (a I16x8) Swizzle(p swizzle.Pattern) I16x8 {
	return swizzleWith(a, p, 8, BroadcastI16x8(1))
}

// HorizontalAdd returns the pairwise sums of a in the low half and of b in the high half.
func (a I16x8) HorizontalAdd(b I16x8) I16x8 {
	return I16x8{i16x8Ops.hadd(a.v, b.v)}
}

// HorizontalSub returns the pairwise differences of a in the low half and of b in the high half.
func (a I16x8) HorizontalSub(b I16x8) I16x8 {
	return I16x8{i16x8Ops.hsub(a.v, b.v)}
}

// InterleaveLo alternates the low halves of a and b, starting with lane 0 of a.
func (a I16x8) InterleaveLo(b I16x8) I16x8 {
	return I16x8{i16x8Ops.ilo(a.v, b.v)}
}

// HorizontalSum broadcasts the left-to-right sum of all lanes.
func (a I16x8) HorizontalSum() I16x8 {
	return I16x8{i16x8Ops.hsum(a.v)}
}

// DotProduct broadcasts the sum of a[i]*b[i] over the lanes selected by m.
func (a I16x8) DotProduct(b I16x8, m uint64) I16x8 {
	lanes.CheckMask("I16x8.DotProduct", m, 8)
	return I16x8{i16x8Ops.dot(a.v, b.v, m)}
}

// ShiftLeft shifts every lane left by n bits; n must be below the lane width.
func (a I16x8) ShiftLeft(n uint) I16x8 {
	lanes.CheckShift[int16]("I16x8.ShiftLeft", n)
	return I16x8{i16x8Int.shl(a.v, n)}
}

// ShiftRight shifts every lane right by n bits, arithmetically.
func (a I16x8) ShiftRight(n uint) I16x8 {
	lanes.CheckShift[int16]("I16x8.ShiftRight", n)
	return I16x8{i16x8Int.shr(a.v, n)}
}
