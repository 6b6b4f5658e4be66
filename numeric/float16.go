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
	"math"
)

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage; arithmetic happens after conversion to float32.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero      Float16 = 0x0000 // Positive zero
	Float16NegZero   Float16 = 0x8000 // Negative zero
	Float16One       Float16 = 0x3C00 // 1.0
	Float16NegOne    Float16 = 0xBC00 // -1.0
	Float16MaxValue  Float16 = 0x7BFF // 65504 (max finite value)
	Float16MinNormal Float16 = 0x0400 // 2^-14
	Float16MinValue  Float16 = 0x0001 // 2^-24, smallest denormal
	Float16Inf       Float16 = 0x7C00 // Positive infinity
	Float16NegInf    Float16 = 0xFC00 // Negative infinity
	Float16NaN       Float16 = 0x7E00 // Quiet NaN (canonical)
)

// Float16ToFloat32 converts h to float32. The conversion is exact.
func Float16ToFloat32(h Float16) float32 {
	sign := uint32(h&0x8000) << 16
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	switch exp {
	case 0:
		// Zero or denormal: mant * 2^-24 is exact in float32.
		f := float32(mant) * (1.0 / (1 << 24))
		return math.Float32frombits(math.Float32bits(f) | sign)
	case 31:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		// NaN keeps its payload and becomes quiet.
		return math.Float32frombits(sign | 0x7FC00000 | mant<<13)
	}
	return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
}

// Float32ToFloat16 converts f to Float16 with round-to-nearest-even.
// Values too large become infinity; values too small become (signed) zero.
func Float32ToFloat16(f float32) Float16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & 0x8000
	exp := int(bits>>23) & 0xFF
	mant := bits & 0x7FFFFF

	if exp == 0xFF {
		if mant != 0 {
			return Float16(sign | 0x7E00 | uint16(mant>>13))
		}
		return Float16(sign | 0x7C00)
	}

	e := exp - 127 + 15
	switch {
	case e >= 31:
		return Float16(sign | 0x7C00)
	case e <= 0:
		if e < -10 {
			return Float16(sign)
		}
		// Denormal: shift the full significand, implicit bit included.
		m := mant | 0x800000
		shift := uint(14 - e)
		return Float16(sign | uint16(roundShift(m, shift)))
	}
	// A carry out of the mantissa bumps the exponent, up to infinity.
	r := uint32(e)<<10 | mant>>13
	if rem := mant & 0x1FFF; rem > 0x1000 || (rem == 0x1000 && r&1 == 1) {
		r++
	}
	return Float16(sign | uint16(r))
}

// roundShift returns m >> shift rounded to nearest, ties to even.
func roundShift(m uint32, shift uint) uint32 {
	r := m >> shift
	rem := m & (1<<shift - 1)
	half := uint32(1) << (shift - 1)
	if rem > half || (rem == half && r&1 == 1) {
		r++
	}
	return r
}

// NewFloat16 creates a Float16 from a float32 value.
func NewFloat16(f float32) Float16 {
	return Float32ToFloat16(f)
}

// Float32 converts h to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}

// Float64 converts h to float64.
func (h Float16) Float64() float64 {
	return float64(Float16ToFloat32(h))
}

// Bits returns the raw uint16 representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// IsNaN returns true if h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&0x7C00 == 0x7C00 && h&0x3FF != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&0x7FFF == 0x7C00
}

// IsZero returns true if h is positive or negative zero.
func (h Float16) IsZero() bool {
	return h&0x7FFF == 0
}

func (h Float16) String() string {
	return fmt.Sprint(h.Float32())
}

// F16x4 is four half-precision lanes, the storage form of an RGBA color.
// It converts to F32x4 for arithmetic.
type F16x4 [4]Float16

// F16x4FromF32x4 converts every lane of a to Float16.
func F16x4FromF32x4(a F32x4) F16x4 {
	var r F16x4
	for i, x := range a.v {
		r[i] = Float32ToFloat16(x)
	}
	return r
}

// ToF32x4 converts every lane to float32.
func (h F16x4) ToF32x4() F32x4 {
	var r F32x4
	for i, x := range h {
		r.v[i] = Float16ToFloat32(x)
	}
	return r
}

// Composit places the color over on top of under, computing in float32.
func (h F16x4) Composit(over F16x4) F16x4 {
	return F16x4FromF32x4(Composit(h.ToF32x4(), over.ToF32x4()))
}

// Arithmetic on F16x4 computes in float32 and rounds each lane back once.
// float32 carries more than twice the precision of Float16, so Add, Sub, Mul
// and Div are correctly rounded. A NaN lane comes back quiet.

func (h F16x4) f32(b F16x4, op func(x, y F32x4) F32x4) F16x4 {
	return F16x4FromF32x4(op(h.ToF32x4(), b.ToF32x4()))
}

func (h F16x4) Add(b F16x4) F16x4 { return h.f32(b, F32x4.Add) }
func (h F16x4) Sub(b F16x4) F16x4 { return h.f32(b, F32x4.Sub) }
func (h F16x4) Mul(b F16x4) F16x4 { return h.f32(b, F32x4.Mul) }
func (h F16x4) Div(b F16x4) F16x4 { return h.f32(b, F32x4.Div) }
func (h F16x4) Min(b F16x4) F16x4 { return h.f32(b, F32x4.Min) }
func (h F16x4) Max(b F16x4) F16x4 { return h.f32(b, F32x4.Max) }

// compare sets lane i to 0xFFFF when the float32 comparison mask has bit i.
func (h F16x4) compare(m uint64) F16x4 {
	var r F16x4
	for i := range r {
		if m&(1<<uint(i)) != 0 {
			r[i] = 0xFFFF
		}
	}
	return r
}

// Eq and Ne compare bit patterns, like every other float array.
func (h F16x4) Eq(b F16x4) F16x4 {
	var m uint64
	for i := range h {
		if h[i] == b[i] {
			m |= 1 << uint(i)
		}
	}
	return h.compare(m)
}

func (h F16x4) Ne(b F16x4) F16x4 { return h.compare(^h.Eq(b).Mask() & 0xF) }
func (h F16x4) Lt(b F16x4) F16x4 { return h.compare(h.ToF32x4().LtMask(b.ToF32x4())) }
func (h F16x4) Gt(b F16x4) F16x4 { return h.compare(h.ToF32x4().GtMask(b.ToF32x4())) }
func (h F16x4) Le(b F16x4) F16x4 { return h.compare(h.ToF32x4().LeMask(b.ToF32x4())) }
func (h F16x4) Ge(b F16x4) F16x4 { return h.compare(h.ToF32x4().GeMask(b.ToF32x4())) }

// Mask gathers the sign bit of every lane; bit i is lane i.
func (h F16x4) Mask() uint64 {
	var m uint64
	for i, x := range h {
		if x&0x8000 != 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}
