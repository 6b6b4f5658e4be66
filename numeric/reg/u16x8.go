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

// U16x8 holds eight uint16 lanes, the SSE2 __m128i register class.
// Lane 0 is the low-order element. The zero value has every lane zero.
type U16x8 struct {
	v [8]uint16
}

var u16x8Ops = portable[uint16, [8]uint16]()

var u16x8Int = portableInt[uint16, [8]uint16]()

// NewU16x8 builds a register from up to 8 values; missing lanes are zero.
func NewU16x8(v ...uint16) U16x8 {
	var r U16x8
	fill("NewU16x8", r.v[:], v)
	return r
}

// LoadU16x8 loads the first 8 elements of s. No alignment is assumed.
func LoadU16x8(s []uint16) U16x8 {
	var r U16x8
	load("LoadU16x8", r.v[:], s)
	return r
}

// U16x8FromArray wraps a.
func U16x8FromArray(a [8]uint16) U16x8 {
	return U16x8{a}
}

// BroadcastU16x8 sets every lane to x.
func BroadcastU16x8(x uint16) U16x8 {
	var r U16x8
	lanes.Broadcast(r.v[:], x)
	return r
}

// U16x8FromMask sets lane i to all ones when bit i of m is set.
func U16x8FromMask(m uint64) U16x8 {
	lanes.CheckMask("U16x8FromMask", m, 8)
	var r U16x8
	lanes.FromMask(r.v[:], m)
	return r
}

// OnesU16x8 returns a register with every bit set.
func OnesU16x8() U16x8 {
	return U16x8FromMask(0b11111111)
}

// Array returns the lanes.
func (a U16x8) Array() [8]uint16 {
	return a.v
}

// Store writes the lanes to the start of s. No alignment is assumed.
func (a U16x8) Store(s []uint16) {
	store("U16x8.Store", s, a.v[:])
}

// Get returns lane i.
func (a U16x8) Get(i int) uint16 {
	lanes.CheckLane("U16x8.Get", i, 8)
	return a.v[i]
}

// Insert returns a with lane i replaced by x.
func (a U16x8) Insert(i int, x uint16) U16x8 {
	lanes.CheckLane("U16x8.Insert", i, 8)
	a.v[i] = x
	return a
}

// BroadcastLane0 copies lane 0 to every lane.
func (a U16x8) BroadcastLane0() U16x8 {
	return BroadcastU16x8(a.v[0])
}

func (a U16x8) String() string {
	return format(a.v[:])
}

// Eq compares bit patterns; lane i is all ones when equal.
func (a U16x8) Eq(b U16x8) U16x8 { return U16x8{u16x8Ops.eq(a.v, b.v)} }
func (a U16x8) Ne(b U16x8) U16x8 { return U16x8{u16x8Ops.ne(a.v, b.v)} }
func (a U16x8) Lt(b U16x8) U16x8 { return U16x8{u16x8Ops.lt(a.v, b.v)} }
func (a U16x8) Gt(b U16x8) U16x8 { return U16x8{u16x8Ops.gt(a.v, b.v)} }
func (a U16x8) Le(b U16x8) U16x8 { return U16x8{u16x8Ops.le(a.v, b.v)} }
func (a U16x8) Ge(b U16x8) U16x8 { return U16x8{u16x8Ops.ge(a.v, b.v)} }

// Mask gathers the sign bit of each lane; bit i is lane i.
func (a U16x8) Mask() uint64 {
	return u16x8Ops.mask(a.v)
}

func (a U16x8) Add(b U16x8) U16x8 { return U16x8{u16x8Ops.add(a.v, b.v)} }
func (a U16x8) Sub(b U16x8) U16x8 { return U16x8{u16x8Ops.sub(a.v, b.v)} }
func (a U16x8) Mul(b U16x8) U16x8 { return U16x8{u16x8Ops.mul(a.v, b.v)} }
func (a U16x8) Min(b U16x8) U16x8 { return U16x8{u16x8Ops.min(a.v, b.v)} }
func (a U16x8) Max(b U16x8) U16x8 { return U16x8{u16x8Ops.max(a.v, b.v)} }
func (a U16x8) Neg() U16x8 { return U16x8{u16x8Ops.neg(a.v)} }
func (a U16x8) Abs() U16x8 { return U16x8{u16x8Ops.abs(a.v)} }

func (a U16x8) And(b U16x8) U16x8 { return U16x8{u16x8Ops.and(a.v, b.v)} }
func (a U16x8) Or(b U16x8) U16x8 { return U16x8{u16x8Ops.or(a.v, b.v)} }
func (a U16x8) Xor(b U16x8) U16x8 { return U16x8{u16x8Ops.xor(a.v, b.v)} }
func (a U16x8) Not() U16x8 { return U16x8{u16x8Ops.not(a.v)} }

// AndNot computes (^a) & b.
func (a U16x8) AndNot(b U16x8) U16x8 {
	return U16x8{u16x8Ops.andNot(a.v, b.v)}
}

// Blend takes lane i from b when bit i of m is set, else from a.
func (a U16x8) Blend(b U16x8, m uint64) U16x8 {
	lanes.CheckMask("U16x8.Blend", m, 8)
	return U16x8{u16x8Ops.blend(a.v, b.v, m)}
}

// SetZero zeroes lane i when bit i of m is set.
func (a U16x8) SetZero(m uint64) U16x8 {
	lanes.CheckMask("U16x8.SetZero", m, 8)
	return U16x8{u16x8Ops.setZero(a.v, m)}
}

// Permute reorders lanes by p; literal and keep characters leave the lane as is.
func (a U16x8) Permute(p swizzle.Pattern) U16x8 {
	return U16x8{u16x8Ops.permute(a.v, p)}
}

// Swizzle reorders lanes by p and writes the literals '0' and '1'.
func (a U16x8) Swizzle(p swizzle.Pattern) U16x8 {
	return swizzleWith(a, p, 8, BroadcastU16x8(1))
}

// HorizontalAdd returns the pairwise sums of a in the low half and of b in the high half.
func (a U16x8) HorizontalAdd(b U16x8) U16x8 {
	return U16x8{u16x8Ops.hadd(a.v, b.v)}
}

// HorizontalSub returns the pairwise differences of a in the low half and of b in the high half.
func (a U16x8) HorizontalSub(b U16x8) U16x8 {
	return U16x8{u16x8Ops.hsub(a.v, b.v)}
}

// InterleaveLo alternates the low halves of a and b, starting with lane 0 of a.
func (a U16x8) InterleaveLo(b U16x8) U16x8 {
	return U16x8{u16x8Ops.ilo(a.v, b.v)}
}

// HorizontalSum broadcasts the left-to-right sum of all lanes.
func (a U16x8) HorizontalSum() U16x8 {
	return U16x8{u16x8Ops.hsum(a.v)}
}

// DotProduct broadcasts the sum of a[i]*b[i] over the lanes selected by m.
func (a U16x8) DotProduct(b U16x8, m uint64) U16x8 {
	lanes.CheckMask("U16x8.DotProduct", m, 8)
	return U16x8{u16x8Ops.dot(a.v, b.v, m)}
}

// ShiftLeft shifts every lane left by n bits; n must be below the lane width.
func (a U16x8) ShiftLeft(n uint) U16x8 {
	lanes.CheckShift[uint16]("U16x8.ShiftLeft", n)
	return U16x8{u16x8Int.shl(a.v, n)}
}

// ShiftRight shifts every lane right by n bits, logically.
func (a U16x8) ShiftRight(n uint) U16x8 {
	lanes.CheckShift[uint16]("U16x8.ShiftRight", n)
	return U16x8{u16x8Int.shr(a.v, n)}
}
