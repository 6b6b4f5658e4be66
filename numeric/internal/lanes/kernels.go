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

package lanes

import "math"

// Lane-wise kernels. dst, a and b have the same length and dst may alias
// either input.

func Broadcast[T Lanes](dst []T, x T) {
	for i := range dst {
		dst[i] = x
	}
}

func Add[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func Sub[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func Mul[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Div divides lane-wise. Integer division by zero panics.
func Div[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// Mod is the truncated remainder (C fmod / Go %).
func Mod[T Lanes](dst, a, b []T) {
	float, signed := IsFloat[T](), IsSigned[T]()
	for i := range dst {
		switch {
		case float:
			dst[i] = T(math.Mod(float64(a[i]), float64(b[i])))
		case signed:
			dst[i] = T(int64(a[i]) % int64(b[i]))
		default:
			dst[i] = T(uint64(a[i]) % uint64(b[i]))
		}
	}
}

// Neg flips the sign bit of floats and two's-complement negates integers.
func Neg[T Lanes](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// NegMask negates the lanes selected by m.
func NegMask[T Lanes](dst, a []T, m uint64) {
	for i := range dst {
		if m&(1<<uint(i)) != 0 {
			dst[i] = -a[i]
		} else {
			dst[i] = a[i]
		}
	}
}

// Abs clears the sign bit of floats (NaN payloads survive) and negates
// negative integers. The most negative integer stays negative.
func Abs[T Lanes](dst, a []T) {
	float := IsFloat[T]()
	sign := signBit[T]()
	for i, x := range a {
		switch {
		case float:
			dst[i] = FromBits[T](ToBits(x) &^ sign)
		case x < 0:
			dst[i] = -x
		default:
			dst[i] = x
		}
	}
}

// Min returns a where a < b, else b. With a NaN operand the result is b.
func Min[T Lanes](dst, a, b []T) {
	for i := range dst {
		if a[i] < b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// Max returns a where a > b, else b. With a NaN operand the result is b.
func Max[T Lanes](dst, a, b []T) {
	for i := range dst {
		if a[i] > b[i] {
			dst[i] = a[i]
		} else {
			dst[i] = b[i]
		}
	}
}

// Clamp computes Min(Max(a, lo), hi).
func Clamp[T Lanes](dst, a, lo, hi []T) {
	Max(dst, a, lo)
	Min(dst, dst, hi)
}

func And[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = FromBits[T](ToBits(a[i]) & ToBits(b[i]))
	}
}

func Or[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = FromBits[T](ToBits(a[i]) | ToBits(b[i]))
	}
}

func Xor[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = FromBits[T](ToBits(a[i]) ^ ToBits(b[i]))
	}
}

// AndNot computes (^a) & b.
func AndNot[T Lanes](dst, a, b []T) {
	for i := range dst {
		dst[i] = FromBits[T](^ToBits(a[i]) & ToBits(b[i]))
	}
}

func Not[T Lanes](dst, a []T) {
	for i := range dst {
		dst[i] = FromBits[T](^ToBits(a[i]))
	}
}

// ShiftLeft shifts every lane left by n, which must be below the lane width.
func ShiftLeft[T Integers](dst, a []T, n uint) {
	for i := range dst {
		dst[i] = a[i] << n
	}
}

// ShiftRight shifts arithmetically for signed lanes and logically for unsigned.
func ShiftRight[T Integers](dst, a []T, n uint) {
	for i := range dst {
		dst[i] = a[i] >> n
	}
}

// RotateLeft rotates the bits of every lane; 0 < n < width.
func RotateLeft[T Integers](dst, a []T, n uint) {
	w := Width[T]()
	keep := MaskBits(int(w))
	for i := range dst {
		u := ToBits(a[i])
		dst[i] = FromBits[T]((u<<n | u>>(w-n)) & keep)
	}
}

// RotateRight rotates the bits of every lane; 0 < n < width.
func RotateRight[T Integers](dst, a []T, n uint) {
	RotateLeft(dst, a, Width[T]()-n)
}

func compare[T Lanes](dst, a, b []T, pred func(x, y T) bool) {
	ones := AllOnes[T]()
	for i := range dst {
		if pred(a[i], b[i]) {
			dst[i] = ones
		} else {
			dst[i] = 0
		}
	}
}

// Eq compares bit patterns, so a NaN equals itself.
func Eq[T Lanes](dst, a, b []T) {
	compare(dst, a, b, func(x, y T) bool { return ToBits(x) == ToBits(y) })
}

func Ne[T Lanes](dst, a, b []T) {
	compare(dst, a, b, func(x, y T) bool { return ToBits(x) != ToBits(y) })
}

func Lt[T Lanes](dst, a, b []T) {
	compare(dst, a, b, func(x, y T) bool { return x < y })
}

func Gt[T Lanes](dst, a, b []T) {
	compare(dst, a, b, func(x, y T) bool { return x > y })
}

func Le[T Lanes](dst, a, b []T) {
	compare(dst, a, b, func(x, y T) bool { return x <= y })
}

func Ge[T Lanes](dst, a, b []T) {
	compare(dst, a, b, func(x, y T) bool { return x >= y })
}

// Mask gathers the sign bit of every lane; bit i is lane i.
func Mask[T Lanes](a []T) uint64 {
	var m uint64
	for i, x := range a {
		if SignBit(x) {
			m |= 1 << uint(i)
		}
	}
	return m
}

// FromMask sets lane i to all ones when bit i of m is set, else zero.
func FromMask[T Lanes](dst []T, m uint64) {
	ones := AllOnes[T]()
	for i := range dst {
		if m&(1<<uint(i)) != 0 {
			dst[i] = ones
		} else {
			dst[i] = 0
		}
	}
}

// Blend takes lane i from b when bit i of m is set, else from a.
func Blend[T Lanes](dst, a, b []T, m uint64) {
	for i := range dst {
		if m&(1<<uint(i)) != 0 {
			dst[i] = b[i]
		} else {
			dst[i] = a[i]
		}
	}
}

// SetZero zeroes lane i when bit i of m is set.
func SetZero[T Lanes](dst, a []T, m uint64) {
	for i := range dst {
		if m&(1<<uint(i)) != 0 {
			dst[i] = 0
		} else {
			dst[i] = a[i]
		}
	}
}

// Float-only kernels.

func Sqrt[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Sqrt(float64(a[i])))
	}
}

func Floor[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Floor(float64(a[i])))
	}
}

func Ceil[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Ceil(float64(a[i])))
	}
}

// Round rounds every lane to an integral value in the given mode.
func Round[T Floats](dst, a []T, mode RoundMode) {
	var f func(float64) float64
	switch mode {
	case RoundDown:
		f = math.Floor
	case RoundUp:
		f = math.Ceil
	case RoundTowardZero:
		f = math.Trunc
	default:
		f = math.RoundToEven
	}
	for i := range dst {
		dst[i] = T(f(float64(a[i])))
	}
}

// Rcp is the correctly rounded 1/x.
func Rcp[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = 1 / a[i]
	}
}

// Rsqrt is 1/sqrt(x) with both steps correctly rounded in T.
func Rsqrt[T Floats](dst, a []T) {
	for i := range dst {
		dst[i] = 1 / T(math.Sqrt(float64(a[i])))
	}
}

// AlmostEq sets lane i to all ones when |a-b| < eps.
func AlmostEq[T Floats](dst, a, b []T, eps T) {
	compare(dst, a, b, func(x, y T) bool {
		d := x - y
		if d < 0 {
			d = -d
		}
		return d < eps
	})
}

// RoundMode selects the rounding direction of Round.
type RoundMode int

const (
	// RoundCurrent uses the floating-point environment's direction, which is
	// always round-to-nearest-even in Go.
	RoundCurrent RoundMode = iota
	RoundNearestEven
	RoundDown
	RoundUp
	RoundTowardZero
)

// String returns the mode name.
func (m RoundMode) String() string {
	switch m {
	case RoundCurrent:
		return "current"
	case RoundNearestEven:
		return "nearest-even"
	case RoundDown:
		return "down"
	case RoundUp:
		return "up"
	case RoundTowardZero:
		return "toward-zero"
	default:
		return "unknown"
	}
}
