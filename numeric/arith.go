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
	"github.com/hikogui/go-numeric/numeric/internal/lanes"
)

// binary runs op on the register backend for S when there is one, else the
// reference kernel k.
func (a Array[T, S]) binary(b Array[T, S], op binaryOp, k func(dst, a, b []T)) Array[T, S] {
	if be := backendFor[T, S](); be != nil {
		if r, ok := be.binary(a.v, b.v, op); ok {
			return Array[T, S]{r}
		}
	}
	var r Array[T, S]
	k(r.view(), a.view(), b.view())
	return r
}

func (a Array[T, S]) unary(op unaryOp, k func(dst, a []T)) Array[T, S] {
	if be := backendFor[T, S](); be != nil {
		if r, ok := be.unary(a.v, op); ok {
			return Array[T, S]{r}
		}
	}
	var r Array[T, S]
	k(r.view(), a.view())
	return r
}

func (a Array[T, S]) masked(b Array[T, S], m uint64, op maskedOp, k func(dst, a, b []T, m uint64)) Array[T, S] {
	if be := backendFor[T, S](); be != nil {
		if r, ok := be.masked(a.v, b.v, m, op); ok {
			return Array[T, S]{r}
		}
	}
	var r Array[T, S]
	k(r.view(), a.view(), b.view(), m)
	return r
}

// Add adds lane-wise; integers wrap.
func (a Array[T, S]) Add(b Array[T, S]) Array[T, S] { return a.binary(b, opAdd, lanes.Add[T]) }

// Sub subtracts lane-wise; integers wrap.
func (a Array[T, S]) Sub(b Array[T, S]) Array[T, S] { return a.binary(b, opSub, lanes.Sub[T]) }

// Mul multiplies lane-wise; integers wrap.
func (a Array[T, S]) Mul(b Array[T, S]) Array[T, S] { return a.binary(b, opMul, lanes.Mul[T]) }

// Div divides lane-wise. Integer division by zero panics.
func (a Array[T, S]) Div(b Array[T, S]) Array[T, S] { return a.binary(b, opDiv, lanes.Div[T]) }

// Mod is the truncated remainder; floats follow math.Mod. No register has a
// remainder instruction, so it always runs the reference kernel.
func (a Array[T, S]) Mod(b Array[T, S]) Array[T, S] {
	var r Array[T, S]
	lanes.Mod(r.view(), a.view(), b.view())
	return r
}

// Min returns a where a < b, else b.
func (a Array[T, S]) Min(b Array[T, S]) Array[T, S] { return a.binary(b, opMin, lanes.Min[T]) }

// Max returns a where a > b, else b.
func (a Array[T, S]) Max(b Array[T, S]) Array[T, S] { return a.binary(b, opMax, lanes.Max[T]) }

// Clamp limits every lane to [lo, hi].
func (a Array[T, S]) Clamp(lo, hi Array[T, S]) Array[T, S] {
	return a.Max(lo).Min(hi)
}

// Neg negates every lane. On floats it flips the sign bit.
func (a Array[T, S]) Neg() Array[T, S] { return a.unary(opNeg, lanes.Neg[T]) }

// NegMask negates the lanes selected by m.
func (a Array[T, S]) NegMask(m uint64) Array[T, S] {
	lanes.CheckMask("NegMask", m, len(a.v))
	return a.Blend(a.Neg(), m)
}

// Abs clears the sign bit of floats and negates negative integers.
func (a Array[T, S]) Abs() Array[T, S] { return a.unary(opAbs, lanes.Abs[T]) }

// AddSub adds b on the lanes selected by m and subtracts it on the others.
func (a Array[T, S]) AddSub(b Array[T, S], m uint64) Array[T, S] {
	lanes.CheckMask("AddSub", m, len(a.v))
	return a.Sub(b).Blend(a.Add(b), m)
}

func (a Array[T, S]) And(b Array[T, S]) Array[T, S] { return a.binary(b, opAnd, lanes.And[T]) }
func (a Array[T, S]) Or(b Array[T, S]) Array[T, S] { return a.binary(b, opOr, lanes.Or[T]) }
func (a Array[T, S]) Xor(b Array[T, S]) Array[T, S] { return a.binary(b, opXor, lanes.Xor[T]) }
func (a Array[T, S]) Not() Array[T, S] { return a.unary(opNot, lanes.Not[T]) }

// AndNot computes (^a) & b.
func (a Array[T, S]) AndNot(b Array[T, S]) Array[T, S] {
	return a.binary(b, opAndNot, lanes.AndNot[T])
}

func (a Array[T, S]) shift(n uint, left bool, k func(dst, a []T, n uint)) Array[T, S] {
	if be := backendFor[T, S](); be != nil {
		if r, ok := be.shift(a.v, n, left); ok {
			return Array[T, S]{r}
		}
	}
	var r Array[T, S]
	k(r.view(), a.view(), n)
	return r
}

// ShiftLeft shifts every lane of a left by n bits; n must be below the lane width.
func ShiftLeft[T Integers, S Storage[T]](a Array[T, S], n uint) Array[T, S] {
	lanes.CheckShift[T]("ShiftLeft", n)
	return a.shift(n, true, lanes.ShiftLeft[T])
}

// ShiftRight shifts every lane of a right by n bits, arithmetically for signed
// lanes and logically for unsigned ones.
func ShiftRight[T Integers, S Storage[T]](a Array[T, S], n uint) Array[T, S] {
	lanes.CheckShift[T]("ShiftRight", n)
	return a.shift(n, false, lanes.ShiftRight[T])
}

func checkRotate[T Integers](op string, n uint) {
	if n == 0 {
		panic(op + ": rotate count must be positive")
	}
	lanes.CheckShift[T](op, n)
}

// Rotl rotates the bits of every lane left by n, 0 < n < width.
func Rotl[T Integers, S Storage[T]](a Array[T, S], n uint) Array[T, S] {
	checkRotate[T]("Rotl", n)
	var r Array[T, S]
	lanes.RotateLeft(r.view(), a.view(), n)
	return r
}

// Rotr rotates the bits of every lane right by n, 0 < n < width.
func Rotr[T Integers, S Storage[T]](a Array[T, S], n uint) Array[T, S] {
	checkRotate[T]("Rotr", n)
	var r Array[T, S]
	lanes.RotateRight(r.view(), a.view(), n)
	return r
}
