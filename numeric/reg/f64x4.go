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

// F64x4 holds four float64 lanes, the AVX __m256d register class.
// Lane 0 is the low-order element. The zero value has every lane zero.
type F64x4 struct {
	v [4]float64
}

var f64x4Ops = portable[float64, [4]float64]()

var f64x4Float = portableFloat[float64, [4]float64]()

// NewF64x4 builds a register from up to 4 values; missing lanes are zero.
func NewF64x4(v ...float64) F64x4 {
	var r F64x4
	fill("NewF64x4", r.v[:], v)
	return r
}

// LoadF64x4 loads the first 4 elements of s. No alignment is assumed.
func LoadF64x4(s []float64) F64x4 {
	var r F64x4
	load("LoadF64x4", r.v[:], s)
	return r
}

// F64x4FromArray wraps a.
func F64x4FromArray(a [4]float64) F64x4 {
	return F64x4{a}
}

// BroadcastF64x4 sets every lane to x.
func BroadcastF64x4(x float64) F64x4 {
	var r F64x4
	lanes.Broadcast(r.v[:], x)
	return r
}

// F64x4FromMask sets lane i to all ones when bit i of m is set.
func F64x4FromMask(m uint64) F64x4 {
	lanes.CheckMask("F64x4FromMask", m, 4)
	var r F64x4
	lanes.FromMask(r.v[:], m)
	return r
}

// OnesF64x4 returns a register with every bit set.
func OnesF64x4() F64x4 {
	return F64x4FromMask(0b1111)
}

// Array returns the lanes.
func (a F64x4) Array() [4]float64 {
	return a.v
}

// Store writes the lanes to the start of s. No alignment is assumed.
func (a F64x4) Store(s []float64) {
	store("F64x4.Store", s, a.v[:])
}

// Get returns lane i.
func (a F64x4) Get(i int) float64 {
	lanes.CheckLane("F64x4.Get", i, 4)
	return a.v[i]
}

// Insert returns a with lane i replaced by x.
func (a F64x4) Insert(i int, x float64) F64x4 {
	lanes.CheckLane("F64x4.Insert", i, 4)
	a.v[i] = x
	return a
}

// BroadcastLane0 copies lane 0 to every lane.
func (a F64x4) BroadcastLane0() F64x4 {
	return BroadcastF64x4(a.v[0])
}

func (a F64x4) String() string {
	return format(a.v[:])
}

// Eq compares bit patterns; lane i is all ones when equal.
func (a F64x4) Eq(b F64x4) F64x4 { return F64x4{f64x4Ops.eq(a.v, b.v)} }
func (a F64x4) Ne(b F64x4) F64x4 { return F64x4{f64x4Ops.ne(a.v, b.v)} }
func (a F64x4) Lt(b F64x4) F64x4 { return F64x4{f64x4Ops.lt(a.v, b.v)} }
func (a F64x4) Gt(b F64x4) F64x4 { return F64x4{f64x4Ops.gt(a.v, b.v)} }
func (a F64x4) Le(b F64x4) F64x4 { return F64x4{f64x4Ops.le(a.v, b.v)} }
func (a F64x4) Ge(b F64x4) F64x4 { return F64x4{f64x4Ops.ge(a.v, b.v)} }

// Mask gathers the sign bit of each lane; bit i is lane i.
func (a F64x4) Mask() uint64 {
	return f64x4Ops.mask(a.v)
}

func (a F64x4) Add(b F64x4) F64x4 { return F64x4{f64x4Ops.add(a.v, b.v)} }
func (a F64x4) Sub(b F64x4) F64x4 { return F64x4{f64x4Ops.sub(a.v, b.v)} }
func (a F64x4) Mul(b F64x4) F64x4 { return F64x4{f64x4Ops.mul(a.v, b.v)} }
func (a F64x4) Min(b F64x4) F64x4 { return F64x4{f64x4Ops.min(a.v, b.v)} }
func (a F64x4) Max(b F64x4) F64x4 { return F64x4{f64x4Ops.max(a.v, b.v)} }
func (a F64x4) Neg() F64x4 { return F64x4{f64x4Ops.neg(a.v)} }
func (a F64x4) Abs() F64x4 { return F64x4{f64x4Ops.abs(a.v)} }

func (a F64x4) And(b F64x4) F64x4 { return F64x4{f64x4Ops.and(a.v, b.v)} }
func (a F64x4) Or(b F64x4) F64x4 { return F64x4{f64x4Ops.or(a.v, b.v)} }
func (a F64x4) Xor(b F64x4) F64x4 { return F64x4{f64x4Ops.xor(a.v, b.v)} }
func (a F64x4) Not() F64x4 { return F64x4{f64x4Ops.not(a.v)} }

// AndNot computes (^a) & b.
func (a F64x4) AndNot(b F64x4) F64x4 {
	return F64x4{f64x4Ops.andNot(a.v, b.v)}
}

// Blend takes lane i from b when bit i of m is set, else from a.
func (a F64x4) Blend(b F64x4, m uint64) F64x4 {
	lanes.CheckMask("F64x4.Blend", m, 4)
	return F64x4{f64x4Ops.blend(a.v, b.v, m)}
}

// SetZero zeroes lane i when bit i of m is set.
func (a F64x4) SetZero(m uint64) F64x4 {
	lanes.CheckMask("F64x4.SetZero", m, 4)
	return F64x4{f64x4Ops.setZero(a.v, m)}
}

// Permute reorders lanes by p; literal and keep characters leave the lane as is.
func (a F64x4) Permute(p swizzle.Pattern) F64x4 {
	return F64x4{f64x4Ops.permute(a.v, p)}
}

// Swizzle reorders lanes by p and writes the literals '0' and '1'.
func (a F64x4) Swizzle(p swizzle.Pattern) F64x4 {
	return swizzleWith(a, p, 4, BroadcastF64x4(1))
}

// HorizontalAdd returns the pairwise sums of a in the low half and of b in the high half.
func (a F64x4) HorizontalAdd(b F64x4) F64x4 {
	return F64x4{f64x4Ops.hadd(a.v, b.v)}
}

// HorizontalSub returns the pairwise differences of a in the low half and of b in the high half.
func (a F64x4) HorizontalSub(b F64x4) F64x4 {
	return F64x4{f64x4Ops.hsub(a.v, b.v)}
}

// InterleaveLo alternates the low halves of a and b, starting with lane 0 of a.
func (a F64x4) InterleaveLo(b F64x4) F64x4 {
	return F64x4{f64x4Ops.ilo(a.v, b.v)}
}

// HorizontalSum broadcasts the left-to-right sum of all lanes.
func (a F64x4) HorizontalSum() F64x4 {
	return F64x4{f64x4Ops.hsum(a.v)}
}

// DotProduct broadcasts the sum of a[i]*b[i] over the lanes selected by m.
func (a F64x4) DotProduct(b F64x4, m uint64) F64x4 {
	lanes.CheckMask("F64x4.DotProduct", m, 4)
	return F64x4{f64x4Ops.dot(a.v, b.v, m)}
}

func (a F64x4) Div(b F64x4) F64x4 { return F64x4{f64x4Float.div(a.v, b.v)} }
func (a F64x4) Sqrt() F64x4 { return F64x4{f64x4Float.sqrt(a.v)} }
func (a F64x4) Floor() F64x4 { return F64x4{f64x4Float.floor(a.v)} }
func (a F64x4) Ceil() F64x4 { return F64x4{f64x4Float.ceil(a.v)} }

// Round rounds every lane to an integral value.
func (a F64x4) Round(mode RoundMode) F64x4 {
	return F64x4{f64x4Float.round(a.v, mode)}
}

// Rcp is 1/a, correctly rounded.
func (a F64x4) Rcp() F64x4 {
	return F64x4{f64x4Float.rcp(a.v)}
}

// Rsqrt is 1/sqrt(a), each step correctly rounded (within 1 ULP of exact).
func (a F64x4) Rsqrt() F64x4 {
	return F64x4{f64x4Float.rsqrt(a.v)}
}

// AlmostEq sets lane i to all ones when |a-b| < eps.
func (a F64x4) AlmostEq(b F64x4, eps float64) F64x4 {
	return F64x4{f64x4Float.almostEq(a.v, b.v, eps)}
}
