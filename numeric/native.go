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
	"github.com/hikogui/go-numeric/numeric/reg"
	"github.com/hikogui/go-numeric/numeric/swizzle"
)

// useRegisters gates every dispatch to a register wrapper. It is false when
// the dispatch level is scalar (NUMERIC_NO_SIMD, or no SIMD on the host).
var useRegisters = reg.CurrentLevel() != reg.DispatchScalar

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
	opDiv
	opMin
	opMax
	opAnd
	opOr
	opXor
	opAndNot
	opEq
	opNe
	opLt
	opGt
	opLe
	opGe
	opHorizontalAdd
	opHorizontalSub
	opInterleaveLo
)

type unaryOp int

const (
	opNeg unaryOp = iota
	opAbs
	opNot
	opHorizontalSum
	opSqrt
	opFloor
	opCeil
	opRcp
	opRsqrt
)

type maskedOp int

const (
	opBlend maskedOp = iota
	opDotProduct
)

// register is the operation surface every wrapper in package reg shares.
// Float-only and integer-only operations are probed per call.
type register[R any] interface {
	Add(b R) R
	Sub(b R) R
	Mul(b R) R
	Min(b R) R
	Max(b R) R
	And(b R) R
	Or(b R) R
	Xor(b R) R
	AndNot(b R) R
	Eq(b R) R
	Ne(b R) R
	Lt(b R) R
	Gt(b R) R
	Le(b R) R
	Ge(b R) R
	HorizontalAdd(b R) R
	HorizontalSub(b R) R
	InterleaveLo(b R) R
	Neg() R
	Abs() R
	Not() R
	HorizontalSum() R
	Blend(b R, m uint64) R
	DotProduct(b R, m uint64) R
	SetZero(m uint64) R
	Permute(p swizzle.Pattern) R
	Swizzle(p swizzle.Pattern) R
	Mask() uint64
}

// backend runs operations on the register wrapper for one storage type.
type backend[S any] interface {
	binary(a, b S, op binaryOp) (S, bool)
	unary(a S, op unaryOp) (S, bool)
	masked(a, b S, m uint64, op maskedOp) (S, bool)
	setZero(a S, m uint64) S
	permute(a S, p swizzle.Pattern) S
	swizzle(a S, p swizzle.Pattern) S
	round(a S, mode RoundMode) (S, bool)
	almostEq(a, b S, eps float64) (S, bool)
	shift(a S, n uint, left bool) (S, bool)
	mask(a S) uint64
}

// Register backends, one per wrapper. They are stored as interface values so
// that backendFor only performs an interface-to-interface assertion.
var (
	f32x4Backend any = wrapper[[4]float32, reg.F32x4]{reg.F32x4FromArray, reg.F32x4.Array}
	f64x4Backend any = wrapper[[4]float64, reg.F64x4]{reg.F64x4FromArray, reg.F64x4.Array}
	i32x4Backend any = wrapper[[4]int32, reg.I32x4]{reg.I32x4FromArray, reg.I32x4.Array}
	u32x4Backend any = wrapper[[4]uint32, reg.U32x4]{reg.U32x4FromArray, reg.U32x4.Array}
	i64x4Backend any = wrapper[[4]int64, reg.I64x4]{reg.I64x4FromArray, reg.I64x4.Array}
	i8x16Backend any = wrapper[[16]int8, reg.I8x16]{reg.I8x16FromArray, reg.I8x16.Array}
	i16x8Backend any = wrapper[[8]int16, reg.I16x8]{reg.I16x8FromArray, reg.I16x8.Array}
	u16x8Backend any = wrapper[[8]uint16, reg.U16x8]{reg.U16x8FromArray, reg.U16x8.Array}
)

// backendFor returns the register backend for S, or nil when the array must
// take its scalar reference path. Only the exact backing array types of the
// wrappers match; the registry constants remove the cases the target lacks.
func backendFor[T Lanes, S Storage[T]]() backend[S] {
	if !useRegisters {
		return nil
	}
	var zero S
	var b any
	switch any(zero).(type) {
	case [4]float32:
		if reg.NativeF32x4 {
			b = f32x4Backend
		}
	case [4]float64:
		if reg.NativeF64x4 {
			b = f64x4Backend
		}
	case [4]int32:
		if reg.NativeI32x4 {
			b = i32x4Backend
		}
	case [4]uint32:
		if reg.NativeU32x4 {
			b = u32x4Backend
		}
	case [4]int64:
		if reg.NativeI64x4 {
			b = i64x4Backend
		}
	case [16]int8:
		if reg.NativeI8x16 {
			b = i8x16Backend
		}
	case [8]int16:
		if reg.NativeI16x8 {
			b = i16x8Backend
		}
	case [8]uint16:
		if reg.NativeU16x8 {
			b = u16x8Backend
		}
	}
	if b == nil {
		return nil
	}
	return b.(backend[S])
}

// wrapper runs the operations of register R, whose lanes are the array A.
type wrapper[A any, R register[R]] struct {
	in  func(A) R
	out func(R) A
}

func (w wrapper[A, R]) binary(a, b A, op binaryOp) (A, bool) {
	x, y := w.in(a), w.in(b)
	var r R
	switch op {
	case opAdd:
		r = x.Add(y)
	case opSub:
		r = x.Sub(y)
	case opMul:
		r = x.Mul(y)
	case opDiv:
		d, ok := any(x).(interface{ Div(b R) R })
		if !ok {
			return a, false
		}
		r = d.Div(y)
	case opMin:
		r = x.Min(y)
	case opMax:
		r = x.Max(y)
	case opAnd:
		r = x.And(y)
	case opOr:
		r = x.Or(y)
	case opXor:
		r = x.Xor(y)
	case opAndNot:
		r = x.AndNot(y)
	case opEq:
		r = x.Eq(y)
	case opNe:
		r = x.Ne(y)
	case opLt:
		r = x.Lt(y)
	case opGt:
		r = x.Gt(y)
	case opLe:
		r = x.Le(y)
	case opGe:
		r = x.Ge(y)
	case opHorizontalAdd:
		r = x.HorizontalAdd(y)
	case opHorizontalSub:
		r = x.HorizontalSub(y)
	case opInterleaveLo:
		r = x.InterleaveLo(y)
	default:
		return a, false
	}
	return w.out(r), true
}

type floatRegister[R any] interface {
	Sqrt() R
	Floor() R
	Ceil() R
	Rcp() R
	Rsqrt() R
	Round(mode RoundMode) R
}

type intRegister[R any] interface {
	ShiftLeft(n uint) R
	ShiftRight(n uint) R
}

func (w wrapper[A, R]) unary(a A, op unaryOp) (A, bool) {
	x := w.in(a)
	var r R
	switch op {
	case opNeg:
		r = x.Neg()
	case opAbs:
		r = x.Abs()
	case opNot:
		r = x.Not()
	case opHorizontalSum:
		r = x.HorizontalSum()
	default:
		f, ok := any(x).(floatRegister[R])
		if !ok {
			return a, false
		}
		switch op {
		case opSqrt:
			r = f.Sqrt()
		case opFloor:
			r = f.Floor()
		case opCeil:
			r = f.Ceil()
		case opRcp:
			r = f.Rcp()
		case opRsqrt:
			r = f.Rsqrt()
		default:
			return a, false
		}
	}
	return w.out(r), true
}

func (w wrapper[A, R]) masked(a, b A, m uint64, op maskedOp) (A, bool) {
	x, y := w.in(a), w.in(b)
	switch op {
	case opBlend:
		return w.out(x.Blend(y, m)), true
	case opDotProduct:
		return w.out(x.DotProduct(y, m)), true
	}
	return a, false
}

func (w wrapper[A, R]) setZero(a A, m uint64) A {
	return w.out(w.in(a).SetZero(m))
}

func (w wrapper[A, R]) permute(a A, p swizzle.Pattern) A {
	return w.out(w.in(a).Permute(p))
}

func (w wrapper[A, R]) swizzle(a A, p swizzle.Pattern) A {
	return w.out(w.in(a).Swizzle(p))
}

func (w wrapper[A, R]) round(a A, mode RoundMode) (A, bool) {
	f, ok := any(w.in(a)).(floatRegister[R])
	if !ok {
		return a, false
	}
	return w.out(f.Round(mode)), true
}

// almostEq carries eps as float64; a float32 eps converts back exactly.
func (w wrapper[A, R]) almostEq(a, b A, eps float64) (A, bool) {
	x, y := w.in(a), w.in(b)
	switch f := any(x).(type) {
	case interface{ AlmostEq(b R, eps float32) R }:
		return w.out(f.AlmostEq(y, float32(eps))), true
	case interface{ AlmostEq(b R, eps float64) R }:
		return w.out(f.AlmostEq(y, eps)), true
	}
	return a, false
}

func (w wrapper[A, R]) shift(a A, n uint, left bool) (A, bool) {
	s, ok := any(w.in(a)).(intRegister[R])
	if !ok {
		return a, false
	}
	if left {
		return w.out(s.ShiftLeft(n)), true
	}
	return w.out(s.ShiftRight(n)), true
}

func (w wrapper[A, R]) mask(a A) uint64 {
	return w.in(a).Mask()
}
