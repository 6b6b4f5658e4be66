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

// I64x4 holds four int64 lanes, the AVX2 __m256i register class.
// Lane 0 is the low-order element. The zero value has every lane zero.
type I64x4 struct {
	v [4]int64
}

var i64x4Ops = portable[int64, [4]int64]()

var i64x4Int = portableInt[int64, [4]int64]()

// NewI64x4 builds a register from up to 4 values; missing lanes are zero.
func NewI64x4(v ...int64) I64x4 {
	var r I64x4
	fill("NewI64x4", r.v[:], v)
	return r
}

// LoadI64x4 loads the first 4 elements of s. No alignment is assumed.
func LoadI64x4(s []int64) I64x4 {
	var r I64x4
	load("LoadI64x4", r.v[:], s)
	return r
}

// I64x4FromArray wraps a.
func I64x4FromArray(a [4]int64) I64x4 {
	return I64x4{a}
}

// BroadcastI64x4 sets every lane to x.
func BroadcastI64x4(x int64) I64x4 {
	var r I64x4
	lanes.Broadcast(r.v[:], x)
	return r
}

// I64x4FromMask sets lane i to all ones when bit i of m is set.
func I64x4FromMask(m uint64) I64x4 {
	lanes.CheckMask("I64x4FromMask", m, 4)
	var r I64x4
	lanes.FromMask(r.v[:], m)
	return r
}

// OnesI64x4 returns a register with every bit set.
func OnesI64x4() I64x4 {
	return I64x4FromMask(0b1111)
}

// Array returns the lanes.
func (a I64x4) Array() [4]int64 {
	return a.v
}

// Store writes the lanes to the start of s. No alignment is assumed.
func (a I64x4) Store(s []int64) {
	store("I64x4.Store", s, a.v[:])
}

// Get returns lane i.
func (a I64x4) Get(i int) int64 {
	lanes.CheckLane("I64x4.Get", i, 4)
	return a.v[i]
}

// Insert returns a with lane i replaced by x.
func (a I64x4) Insert(i int, x int64) I64x4 {
	lanes.CheckLane("I64x4.Insert", i, 4)
	a.v[i] = x
	return a
}

// BroadcastLane0 copies lane 0 to every lane.
func (a I64x4) BroadcastLane0() I64x4 {
	return BroadcastI64x4(a.v[0])
}

func (a I64x4) String() string {
	return format(a.v[:])
}

// Eq compares bit patterns; lane i is all ones when equal.
func (a I64x4) Eq(b I64x4) I64x4 { return I64x4{i64x4Ops.eq(a.v, b.v)} }
func (a I64x4) Ne(b I64x4) I64x4 { return I64x4{i64x4Ops.ne(a.v, b.v)} }
func (a I64x4) Lt(b I64x4) I64x4 { return I64x4{i64x4Ops.lt(a.v, b.v)} }
func (a I64x4) Gt(b I64x4) I64x4 { return I64x4{i64x4Ops.gt(a.v, b.v)} }
func (a I64x4) Le(b I64x4) I64x4 { return I64x4{i64x4Ops.le(a.v, b.v)} }
func (a I64x4) Ge(b I64x4) I64x4 { return I64x4{i64x4Ops.ge(a.v, b.v)} }

// Mask gathers the sign bit of each lane; bit i is lane i.
func (a I64x4) Mask() uint64 {
	return i64x4Ops.mask(a.v)
}

func (a I64x4) Add(b I64x4) I64x4 { return I64x4{i64x4Ops.add(a.v, b.v)} }
func (a I64x4) Sub(b I64x4) I64x4 { return I64x4{i64x4Ops.sub(a.v, b.v)} }
func (a I64x4) Mul(b I64x4) I64x4 { return I64x4{i64x4Ops.mul(a.v, b.v)} }
func (a I64x4) Min(b I64x4) I64x4 { return I64x4{i64x4Ops.min(a.v, b.v)} }
func (a I64x4) Max(b I64x4) I64x4 { return I64x4{i64x4Ops.max(a.v, b.v)} }
func (a I64x4) Neg() I64x4 { return I64x4{i64x4Ops.neg(a.v)} }
func (a I64x4) Abs() I64x4 { return I64x4{i64x4Ops.abs(a.v)} }

func (a I64x4) And(b I64x4) I64x4 { return I64x4{i64x4Ops.and(a.v, b.v)} }
func (a I64x4) Or(b I64x4) I64x4 { return I64x4{i64x4Ops.or(a.v, b.v)} }
func (a I64x4) Xor(b I64x4) I64x4 { return I64x4{i64x4Ops.xor(a.v, b.v)} }
func (a I64x4) Not() I64x4 { return I64x4{i64x4Ops.not(a.v)} }

// AndNot computes (^a) & b.
func (a I64x4) AndNot(b I64x4) I64x4 {
	return I64x4{i64x4Ops.andNot(a.v, b.v)}
}

// Blend takes lane i from b when bit i of m is set, else from a.
func (a I64x4) Blend(b I64x4, m uint64) I64x4 {
	lanes.CheckMask("I64x4.Blend", m, 4)
	return I64x4{i64x4Ops.blend(a.v, b.v, m)}
}

// SetZero zeroes lane i when bit i of m is set.
func (a I64x4) SetZero(m uint64) I64x4 {
	lanes.CheckMask("I64x4.SetZero", m, 4)
	return I64x4{i64x4Ops.setZero(a.v, m)}
}

// Permute reorders lanes by p; literal and keep characters leave the lane as is.
func (a I64x4) Permute(p swizzle.Pattern) I64x4 {
	return I64x4{i64x4Ops.permute(a.v, p)}
}

// Swizzle reorders lanes by p and writes the literals '0' and '1'.
func (a I64x4) Swizzle(p swizzle.Pattern) I64x4 {
	return swizzleWith(a, p, 4, BroadcastI64x4(1))
}

// HorizontalAdd returns the pairwise sums of a in the low half and of b in the high half.
func (a I64x4) HorizontalAdd(b I64x4) I64x4 {
	return I64x4{i64x4Ops.hadd(a.v, b.v)}
}

// HorizontalSub returns the pairwise differences of a in the low half and of b in the high half.
func (a I64x4) HorizontalSub(b I64x4) I64x4 {
	return I64x4{i64x4Ops.hsub(a.v, b.v)}
}

// InterleaveLo alternates the low halves of a and b, starting with lane 0 of a.
func (a I64x4) InterleaveLo(b I64x4) I64x4 {
	return I64x4{i64x4Ops.ilo(a.v, b.v)}
}

// HorizontalSum broadcasts the left-to-right sum of all lanes.
func (a I64x4) HorizontalSum() I64x4 {
	return I64x4{i64x4Ops.hsum(a.v)}
}

// DotProduct broadcasts the sum of a[i]*b[i] over the lanes selected by m.
func (a I64x4) DotProduct(b I64x4, m uint64) I64x4 {
	lanes.CheckMask("I64x4.DotProduct", m, 4)
	return I64x4{i64x4Ops.dot(a.v, b.v, m)}
}

// ShiftLeft shifts every lane left by n bits; n must be below the lane width.
func (a I64x4) ShiftLeft(n uint) I64x4 {
	lanes.CheckShift[int64]("I64x4.ShiftLeft", n)
	return I64x4{i64x4Int.shl(a.v, n)}
}

// ShiftRight shifts every lane right by n bits, arithmetically.
func (a I64x4) ShiftRight(n uint) I64x4 {
	lanes.CheckShift[int64]("I64x4.ShiftRight", n)
	return I64x4{i64x4Int.shr(a.v, n)}
}
