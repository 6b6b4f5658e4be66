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

// F32x4 holds four float32 lanes, the SSE __m128 / NEON float32x4_t register class.
// Lane 0 is the low-order element. The zero value has every lane zero.
type F32x4 struct {
	v [4]float32
}

var f32x4Ops = portable[float32, [4]float32]()

var f32x4Float = portableFloat[float32, [4]float32]()

// NewF32x4 builds a register from up to 4 values; missing lanes are zero.
func NewF32x4(v ...float32) F32x4 {
	var r F32x4
	fill("NewF32x4", r.v[:], v)
	return r
}

// LoadF32x4 loads the first 4 elements of s. No alignment is assumed.
func LoadF32x4(s []float32) F32x4 {
	var r F32x4
	load("LoadF32x4", r.v[:], s)
	return r
}

// F32x4FromArray wraps a.
func F32x4FromArray(a [4]float32) F32x4 {
	return F32x4{a}
}

// BroadcastF32x4 sets every lane to x.
func BroadcastF32x4(x float32) F32x4 {
	var r F32x4
	lanes.Broadcast(r.v[:], x)
	return r
}

// F32x4FromMask sets lane i to all ones when bit i of m is set.
func F32x4FromMask(m uint64) F32x4 {
	lanes.CheckMask("F32x4FromMask", m, 4)
	var r F32x4
	lanes.FromMask(r.v[:], m)
	return r
}

// OnesF32x4 returns a register with every bit set.
func OnesF32x4() F32x4 {
	return F32x4FromMask(0b1111)
}

// Array returns the lanes.
func (a F32x4) Array() [4]float32 {
	return a.v
}

// Store writes the lanes to the start of s. No alignment is assumed.
func (a F32x4) Store(s []float32) {
	store("F32x4.Store", s, a.v[:])
}

// Get returns lane i.
func (a F32x4) Get(i int) float32 {
	lanes.CheckLane("F32x4.Get", i, 4)
	return a.v[i]
}

// Insert returns a with lane i replaced by x.
func (a F32x4) Insert(i int, x float32) F32x4 {
	lanes.CheckLane("F32x4.Insert", i, 4)
	a.v[i] = x
	return a
}

// BroadcastLane0 copies lane 0 to every lane.
func (a F32x4) BroadcastLane0() F32x4 {
	return BroadcastF32x4(a.v[0])
}

func (a F32x4) String() string {
	return format(a.v[:])
}

// Eq compares bit patterns; lane i is all ones when equal.
func (a F32x4) Eq(b F32x4) F32x4 { return F32x4{f32x4Ops.eq(a.v, b.v)} }
func (a F32x4) Ne(b F32x4) F32x4 { return F32x4{f32x4Ops.ne(a.v, b.v)} }
func (a F32x4) Lt(b F32x4) F32x4 { return F32x4{f32x4Ops.lt(a.v, b.v)} }
func (a F32x4) Gt(b F32x4) F32x4 { return F32x4{f32x4Ops.gt(a.v, b.v)} }
func (a F32x4) Le(b F32x4) F32x4 { return F32x4{f32x4Ops.le(a.v, b.v)} }
func (a F32x4) Ge(b F32x4) F32x4 { return F32x4{f32x4Ops.ge(a.v, b.v)} }

// Mask gathers the sign bit of each lane; bit i is lane i.
func (a F32x4) Mask() uint64 {
	return f32x4Ops.mask(a.v)
}

func (a F32x4) Add(b F32x4) F32x4 { return F32x4{f32x4Ops.add(a.v, b.v)} }
func (a F32x4) Sub(b F32x4) F32x4 { return F32x4{f32x4Ops.sub(a.v, b.v)} }
func (a F32x4) Mul(b F32x4) F32x4 { return F32x4{f32x4Ops.mul(a.v, b.v)} }
func (a F32x4) Min(b F32x4) F32x4 { return F32x4{f32x4Ops.min(a.v, b.v)} }
func (a F32x4) Max(b F32x4) F32x4 { return F32x4{f32x4Ops.max(a.v, b.v)} }
func (a F32x4) Neg() F32x4 { return F32x4{f32x4Ops.neg(a.v)} }
func (a F32x4) Abs() F32x4 { return F32x4{f32x4Ops.abs(a.v)} }

func (a F32x4) And(b F32x4) F32x4 { return F32x4{f32x4Ops.and(a.v, b.v)} }
func (a F32x4) Or(b F32x4) F32x4 { return F32x4{f32x4Ops.or(a.v, b.v)} }
func (a F32x4) Xor(b F32x4) F32x4 { return F32x4{f32x4Ops.xor(a.v, b.v)} }
func (a F32x4) Not() F32x4 { return F32x4{f32x4Ops.not(a.v)} }

// AndNot computes (^a) & b.
func (a F32x4) AndNot(b F32x4) F32x4 {
	return F32x4{f32x4Ops.andNot(a.v, b.v)}
}

// Blend takes lane i from b when bit i of m is set, else from a.
func (a F32x4) Blend(b F32x4, m uint64) F32x4 {
	lanes.CheckMask("F32x4.Blend", m, 4)
	return F32x4{f32x4Ops.blend(a.v, b.v, m)}
}

// SetZero zeroes lane i when bit i of m is set.
func (a F32x4) SetZero(m uint64) F32x4 {
	lanes.CheckMask("F32x4.SetZero", m, 4)
	return F32x4{f32x4Ops.setZero(a.v, m)}
}

// Permute reorders lanes by p; literal and keep characters leave the lane as is.
func (a F32x4) Permute(p swizzle.Pattern) F32x4 {
	return F32x4{f32x4Ops.permute(a.v, p)}
}

// Swizzle reorders lanes by p and writes the literals '0' and '1'.
func (a F32x4) Swizzle(p swizzle.Pattern) F32x4 {
	return swizzleWith(a, p, 4, BroadcastF32x4(1))
}

// HorizontalAdd returns the pairwise sums of a in the low half and of b in the high half.
func (a F32x4) HorizontalAdd(b F32x4) F32x4 {
	return F32x4{f32x4Ops.hadd(a.v, b.v)}
}

// HorizontalSub returns the pairwise differences of a in the low half and of b in the high half.
func (a F32x4) HorizontalSub(b F32x4) F32x4 {
	return F32x4{f32x4Ops.hsub(a.v, b.v)}
}

// InterleaveLo alternates the low halves of a and b, starting with lane 0 of a.
func (a F32x4) InterleaveLo(b F32x4) F32x4 {
	return F32x4{f32x4Ops.ilo(a.v, b.v)}
}

// HorizontalSum broadcasts the left-to-right sum of all lanes.
func (a F32x4) HorizontalSum() F32x4 {
	return F32x4{f32x4Ops.hsum(a.v)}
}

// DotProduct broadcasts the sum of a[i]*b[i] over the lanes selected by m.
func (a F32x4) DotProduct(b F32x4, m uint64) F32x4 {
	lanes.CheckMask("F32x4.DotProduct", m, 4)
	return F32x4{f32x4Ops.dot(a.v, b.v, m)}
}

func (a F32x4) Div(b F32x4) F32x4 { return F32x4{f32x4Float.div(a.v, b.v)} }
func (a F32x4) Sqrt() F32x4 { return F32x4{f32x4Float.sqrt(a.v)} }
func (a F32x4) Floor() F32x4 { return F32x4{f32x4Float.floor(a.v)} }
func (a F32x4) Ceil() F32x4 { return F32x4{f32x4Float.ceil(a.v)} }

// Round rounds every lane to an integral value.
func (a F32x4) Round(mode RoundMode) F32x4 {
	return F32x4{f32x4Float.round(a.v, mode)}
}

// Rcp is 1/a, correctly rounded.
func (a F32x4) Rcp() F32x4 {
	return F32x4{f32x4Float.rcp(a.v)}
}

// Rsqrt is 1/sqrt(a), each step correctly rounded (within 1 ULP of exact).
func (a F32x4) Rsqrt() F32x4 {
	return F32x4{f32x4Float.rsqrt(a.v)}
}

// AlmostEq sets lane i to all ones when |a-b| < eps.
func (a F32x4) AlmostEq(b F32x4, eps float32) F32x4 {
	return F32x4{f32x4Float.almostEq(a.v, b.v, eps)}
}
