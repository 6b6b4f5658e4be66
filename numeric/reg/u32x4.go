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

// U32x4 holds four uint32 lanes, the SSE2 __m128i register class.
// Lane 0 is the low-order element. The zero value has every lane zero.
type U32x4 struct {
	v [4]uint32
}

var u32x4Ops = portable[uint32, [4]uint32]()

var u32x4Int = portableInt[uint32, [4]uint32]()

// NewU32x4 builds a register from up to 4 values; missing lanes are zero.
func NewU32x4(v ...uint32) U32x4 {
	var r U32x4
	fill("NewU32x4", r.v[:], v)
	return r
}

// LoadU32x4 loads the first 4 elements of s. No alignment is assumed.
func LoadU32x4(s []uint32) U32x4 {
	var r U32x4
	load("LoadU32x4", r.v[:], s)
	return r
}

// U32x4FromArray wraps a.
func U32x4FromArray(a [4]uint32) U32x4 {
	return U32x4{a}
}

// BroadcastU32x4 sets every lane to x.
func BroadcastU32x4(x uint32) U32x4 {
	var r U32x4
	lanes.Broadcast(r.v[:], x)
	return r
}

// U32x4FromMask sets lane i to all ones when bit i of m is set.
func U32x4FromMask(m uint64) U32x4 {
	lanes.CheckMask("U32x4FromMask", m, 4)
	var r U32x4
	lanes.FromMask(r.v[:], m)
	return r
}

// OnesU32x4 returns a register with every bit set.
func OnesU32x4() U32x4 {
	return U32x4FromMask(0b1111)
}

// Array returns the lanes.
func (a U32x4) Array() [4]uint32 {
	return a.v
}

// Store writes the lanes to the start of s. No alignment is assumed.
func (a U32x4) Store(s []uint32) {
	store("U32x4.Store", s, a.v[:])
}

// Get returns lane i.
func (a U32x4) Get(i int) uint32 {
	lanes.CheckLane("U32x4.Get", i, 4)
	return a.v[i]
}

// Insert returns a with lane i replaced by x.
func (a U32x4) Insert(i int, x uint32) U32x4 {
	lanes.CheckLane("U32x4.Insert", i, 4)
	a.v[i] = x
	return a
}

// BroadcastLane0 copies lane 0 to every lane.
func (a U32x4) BroadcastLane0() U32x4 {
	return BroadcastU32x4(a.v[0])
}

func (a U32x4) String() string {
	return format(a.v[:])
}

// Eq compares bit patterns; lane i is all ones when equal.
func (a U32x4) Eq(b U32x4) U32x4 { return U32x4{u32x4Ops.eq(a.v, b.v)} }
func (a U32x4) Ne(b U32x4) U32x4 { return U32x4{u32x4Ops.ne(a.v, b.v)} }
func (a U32x4) Lt(b U32x4) U32x4 { return U32x4{u32x4Ops.lt(a.v, b.v)} }
func (a U32x4) Gt(b U32x4) U32x4 { return U32x4{u32x4Ops.gt(a.v, b.v)} }
func (a U32x4) Le(b U32x4) U32x4 { return U32x4{u32x4Ops.le(a.v, b.v)} }
func (a U32x4) Ge(b U32x4) U32x4 { return U32x4{u32x4Ops.ge(a.v, b.v)} }

// Mask gathers the sign bit of each lane; bit i is lane i.
func (a U32x4) Mask() uint64 {
	return u32x4Ops.mask(a.v)
}

func (a U32x4) Add(b U32x4) U32x4 { return U32x4{u32x4Ops.add(a.v, b.v)} }
func (a U32x4) Sub(b U32x4) U32x4 { return U32x4{u32x4Ops.sub(a.v, b.v)} }
func (a U32x4) Mul(b U32x4) U32x4 { return U32x4{u32x4Ops.mul(a.v, b.v)} }
func (a U32x4) Min(b U32x4) U32x4 { return U32x4{u32x4Ops.min(a.v, b.v)} }
func (a U32x4) Max(b U32x4) U32x4 { return U32x4{u32x4Ops.max(a.v, b.v)} }
func (a U32x4) Neg() U32x4 { return U32x4{u32x4Ops.neg(a.v)} }
func (a U32x4) Abs() U32x4 { return U32x4{u32x4Ops.abs(a.v)} }

func (a U32x4) And(b U32x4) U32x4 { return U32x4{u32x4Ops.and(a.v, b.v)} }
func (a U32x4) Or(b U32x4) U32x4 { return U32x4{u32x4Ops.or(a.v, b.v)} }
func (a U32x4) Xor(b U32x4) U32x4 { return U32x4{u32x4Ops.xor(a.v, b.v)} }
func (a U32x4) Not() U32x4 { return U32x4{u32x4Ops.not(a.v)} }

// AndNot computes (^a) & b.
func (a U32x4) AndNot(b U32x4) U32x4 {
	return U32x4{u32x4Ops.andNot(a.v, b.v)}
}

// Blend takes lane i from b when bit i of m is set, else from a.
func (a U32x4) Blend(b U32x4, m uint64) U32x4 {
	lanes.CheckMask("U32x4.Blend", m, 4)
	return U32x4{u32x4Ops.blend(a.v, b.v, m)}
}

// SetZero zeroes lane i when bit i of m is set.
func (a U32x4) SetZero(m uint64) U32x4 {
	lanes.CheckMask("U32x4.SetZero", m, 4)
	return U32x4{u32x4Ops.setZero(a.v, m)}
}

// Permute reorders lanes by p; literal and keep characters leave the lane as is.
func (a U32x4) Permute(p swizzle.Pattern) U32x4 {
	return U32x4{u32x4Ops.permute(a.v, p)}
}

// Swizzle reorders lanes by p and writes the literals '0' and '1'.
func (a U32x4) Swizzle(p swizzle.Pattern) U32x4 {
	return swizzleWith(a, p, 4, BroadcastU32x4(1))
}

// HorizontalAdd returns the pairwise sums of a in the low half and of b in the high half.
func (a U32x4) HorizontalAdd(b U32x4) U32x4 {
	return U32x4{u32x4Ops.hadd(a.v, b.v)}
}

// HorizontalSub returns the pairwise differences of a in the low half and of b in the high half.
func (a U32x4) HorizontalSub(b U32x4) U32x4 {
	return U32x4{u32x4Ops.hsub(a.v, b.v)}
}

// InterleaveLo alternates the low halves of a and b, starting with lane 0 of a.
func (a U32x4) InterleaveLo(b U32x4) U32x4 {
	return U32x4{u32x4Ops.ilo(a.v, b.v)}
}

// HorizontalSum broadcasts the left-to-right sum of all lanes.
func (a U32x4) HorizontalSum() U32x4 {
	return U32x4{u32x4Ops.hsum(a.v)}
}

// DotProduct broadcasts the sum of a[i]*b[i] over the lanes selected by m.
func (a U32x4) DotProduct(b U32x4, m uint64) U32x4 {
	lanes.CheckMask("U32x4.DotProduct", m, 4)
	return U32x4{u32x4Ops.dot(a.v, b.v, m)}
}

// ShiftLeft shifts every lane left by n bits; n must be below the lane width.
func (a U32x4) ShiftLeft(n uint) U32x4 {
	lanes.CheckShift[uint32]("U32x4.ShiftLeft", n)
	return U32x4{u32x4Int.shl(a.v, n)}
}

// ShiftRight shifts every lane right by n bits, logically.
func (a U32x4) ShiftRight(n uint) U32x4 {
	lanes.CheckShift[uint32]("U32x4.ShiftRight", n)
	return U32x4{u32x4Int.shr(a.v, n)}
}
