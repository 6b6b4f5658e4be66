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

// I32x4 holds four int32 lanes, the SSE2 __m128i register class.
// Lane 0 is the low-order element. The zero value has every lane zero.
type I32x4 struct {
	v [4]int32
}

var i32x4Ops = portable[int32, [4]int32]()

var i32x4Int = portableInt[int32, [4]int32]()

// NewI32x4 builds a register from up to 4 values; missing lanes are zero.
func NewI32x4(v ...int32) I32x4 {
	var r I32x4
	fill("NewI32x4", r.v[:], v)
	return r
}

// LoadI32x4 loads the first 4 elements of s. No alignment is assumed.
func LoadI32x4(s []int32) I32x4 {
	var r I32x4
	load("LoadI32x4", r.v[:], s)
	return r
}

// I32x4FromArray wraps a.
func I32x4FromArray(a [4]int32) I32x4 {
	return I32x4{a}
}

// BroadcastI32x4 sets every lane to x.
func BroadcastI32x4(x int32) I32x4 {
	var r I32x4
	lanes.Broadcast(r.v[:], x)
	return r
}

// I32x4FromMask sets lane i to all ones when bit i of m is set.
func I32x4FromMask(m uint64) I32x4 {
	lanes.CheckMask("I32x4FromMask", m, 4)
	var r I32x4
	lanes.FromMask(r.v[:], m)
	return r
}

// OnesI32x4 returns a register with every bit set.
func OnesI32x4() I32x4 {
	return I32x4FromMask(0b1111)
}

// Array returns the lanes.
func (a I32x4) Array() [4]int32 {
	return a.v
}

// Store writes the lanes to the start of s. No alignment is assumed.
func (a I32x4) Store(s []int32) {
	store("I32x4.Store", s, a.v[:])
}

// Get returns lane i.
func (a I32x4) Get(i int) int32 {
	lanes.CheckLane("I32x4.Get", i, 4)
	return a.v[i]
}

// Insert returns a with lane i replaced by x.
func (a I32x4) Insert(i int, x int32) I32x4 {
	lanes.CheckLane("I32x4.Insert", i, 4)
	a.v[i] = x
	return a
}

// BroadcastLane0 copies lane 0 to every lane.
func (a I32x4) BroadcastLane0() I32x4 {
	return BroadcastI32x4(a.v[0])
}

func (a I32x4) String() string {
	return format(a.v[:])
}

// Eq compares bit patterns; lane i is all ones when equal.
func (a I32x4) Eq(b I32x4) I32x4 { return I32x4{i32x4Ops.eq(a.v, b.v)} }
func (a I32x4) Ne(b I32x4) I32x4 { return I32x4{i32x4Ops.ne(a.v, b.v)} }
func (a I32x4) Lt(b I32x4) I32x4 { return I32x4{i32x4Ops.lt(a.v, b.v)} }
func (a I32x4) Gt(b I32x4) I32x4 { return I32x4{i32x4Ops.gt(a.v, b.v)} }
func (a I32x4) Le(b I32x4) I32x4 { return I32x4{i32x4Ops.le(a.v, b.v)} }
func (a I32x4) Ge(b I32x4) I32x4 { return I32x4{i32x4Ops.ge(a.v, b.v)} }

// Mask gathers the sign bit of each lane; bit i is lane i.
func (a I32x4) Mask() uint64 {
	return i32x4Ops.mask(a.v)
}

func (a I32x4) Add(b I32x4) I32x4 { return I32x4{i32x4Ops.add(a.v, b.v)} }
func (a I32x4) Sub(b I32x4) I32x4 { return I32x4{i32x4Ops.sub(a.v, b.v)} }
func (a I32x4) Mul(b I32x4) I32x4 { return I32x4{i32x4Ops.mul(a.v, b.v)} }
func (a I32x4) Min(b I32x4) I32x4 { return I32x4{i32x4Ops.min(a.v, b.v)} }
func (a I32x4) Max(b I32x4) I32x4 { return I32x4{i32x4Ops.max(a.v, b.v)} }
func (a I32x4) Neg() I32x4 { return I32x4{i32x4Ops.neg(a.v)} }
func (a I32x4) Abs() I32x4 { return I32x4{i32x4Ops.abs(a.v)} }

func (a I32x4) And(b I32x4) I32x4 { return I32x4{i32x4Ops.and(a.v, b.v)} }
func (a I32x4) Or(b I32x4) I32x4 { return I32x4{i32x4Ops.or(a.v, b.v)} }
func (a I32x4) Xor(b I32x4) I32x4 { return I32x4{i32x4Ops.xor(a.v, b.v)} }
func (a I32x4) Not() I32x4 { return I32x4{i32x4Ops.not(a.v)} }

// AndNot computes (^a) & b.
func (a I32x4) AndNot(b I32x4) I32x4 {
	return I32x4{i32x4Ops.andNot(a.v, b.v)}
}

// Blend takes lane i from b when bit i of m is set, else from a.
func (a I32x4) Blend(b I32x4, m uint64) I32x4 {
	lanes.CheckMask("I32x4.Blend", m, 4)
	return I32x4{i32x4Ops.blend(a.v, b.v, m)}
}

// SetZero zeroes lane i when bit i of m is set.
func (a I32x4) SetZero(m uint64) I32x4 {
	lanes.CheckMask("I32x4.SetZero", m, 4)
	return I32x4{i32x4Ops.setZero(a.v, m)}
}

// Permute reorders lanes by p; literal and keep characters leave the lane as is.
func (a I32x4) Permute(p swizzle.Pattern) I32x4 {
	return I32x4{i32x4Ops.permute(a.v, p)}
}

// Swizzle reorders lanes by p and writes the literals '0' and '1'.
func (a I32x4) Swizzle(p swizzle.Pattern) I32x4 {
	return swizzleWith(a, p, 4, BroadcastI32x4(1))
}

// HorizontalAdd returns the pairwise sums of a in the low half and of b in the high half.
func (a I32x4) HorizontalAdd(b I32x4) I32x4 {
	return I32x4{i32x4Ops.hadd(a.v, b.v)}
}

// HorizontalSub returns the pairwise differences of a in the low half and of b in the high half.
func (a I32x4) HorizontalSub(b I32x4) I32x4 {
	return I32x4{i32x4Ops.hsub(a.v, b.v)}
}

// InterleaveLo alternates the low halves of a and b, starting with lane 0 of a.
func (a I32x4) InterleaveLo(b I32x4) I32x4 {
	return I32x4{i32x4Ops.ilo(a.v, b.v)}
}

// HorizontalSum broadcasts the left-to-right sum of all lanes.
func (a I32x4) HorizontalSum() I32x4 {
	return I32x4{i32x4Ops.hsum(a.v)}
}

// DotProduct broadcasts the sum of a[i]*b[i] over the lanes selected by m.
func (a I32x4) DotProduct(b I32x4, m uint64) I32x4 {
	lanes.CheckMask("I32x4.DotProduct", m, 4)
	return I32x4{i32x4Ops.dot(a.v, b.v, m)}
}

// ShiftLeft shifts every lane left by n bits; n must be below the lane width.
func (a I32x4) ShiftLeft(n uint) I32x4 {
	lanes.CheckShift[int32]("I32x4.ShiftLeft", n)
	return I32x4{i32x4Int.shl(a.v, n)}
}

// ShiftRight shifts every lane right by n bits, arithmetically.
func (a I32x4) ShiftRight(n uint) I32x4 {
	lanes.CheckShift[int32]("I32x4.ShiftRight", n)
	return I32x4{i32x4Int.shr(a.v, n)}
}
