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
	"math"

	"github.com/hikogui/go-numeric/numeric/internal/lanes"
)

// Floating-point operations are functions rather than methods so that the
// lane type can be constrained to Floats.

func Sqrt[T Floats, S Storage[T]](a Array[T, S]) Array[T, S] {
	return a.unary(opSqrt, lanes.Sqrt[T])
}

func Floor[T Floats, S Storage[T]](a Array[T, S]) Array[T, S] {
	return a.unary(opFloor, lanes.Floor[T])
}

func Ceil[T Floats, S Storage[T]](a Array[T, S]) Array[T, S] {
	return a.unary(opCeil, lanes.Ceil[T])
}

// Rcp is 1/a, correctly rounded.
func Rcp[T Floats, S Storage[T]](a Array[T, S]) Array[T, S] {
	return a.unary(opRcp, lanes.Rcp[T])
}

// Rsqrt is 1/sqrt(a) with both steps correctly rounded, so it is within
// 1 ULP of the exact value.
func Rsqrt[T Floats, S Storage[T]](a Array[T, S]) Array[T, S] {
	return a.unary(opRsqrt, lanes.Rsqrt[T])
}

// Round rounds every lane to an integral value in the given mode.
func Round[T Floats, S Storage[T]](a Array[T, S], mode RoundMode) Array[T, S] {
	if be := backendFor[T, S](); be != nil {
		if r, ok := be.round(a.v, mode); ok {
			return Array[T, S]{r}
		}
	}
	var r Array[T, S]
	lanes.Round(r.view(), a.view(), mode)
	return r
}

// AlmostEq sets lane i to all ones when |a-b| < eps.
func AlmostEq[T Floats, S Storage[T]](a, b Array[T, S], eps T) Array[T, S] {
	if be := backendFor[T, S](); be != nil {
		if r, ok := be.almostEq(a.v, b.v, float64(eps)); ok {
			return Array[T, S]{r}
		}
	}
	var r Array[T, S]
	lanes.AlmostEq(r.view(), a.view(), b.view(), eps)
	return r
}

// SquaredHypot is the dot product of a with itself over the lanes in m.
func SquaredHypot[T Floats, S Storage[T]](a Array[T, S], m uint64) T {
	return a.Dot(a, m)
}

// Hypot is the length of the vector formed by the lanes of a in m.
func Hypot[T Floats, S Storage[T]](a Array[T, S], m uint64) T {
	return T(math.Sqrt(float64(SquaredHypot(a, m))))
}

// RcpHypot is 1/Hypot(a, m).
func RcpHypot[T Floats, S Storage[T]](a Array[T, S], m uint64) T {
	return 1 / Hypot(a, m)
}

// Normalize scales the lanes of a in m to unit length and zeroes the others.
func Normalize[T Floats, S Storage[T]](a Array[T, S], m uint64) Array[T, S] {
	s := RcpHypot(a, m)
	return a.Mul(Broadcast[T, S](s)).SetZero(^m & lanes.MaskBits(len(a.v)))
}
