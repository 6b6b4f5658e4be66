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

//go:build amd64 && goexperiment.simd

package reg

import "simd/archsimd"

// Hardware kernels for the register wrappers. Only operations whose
// instruction result is bit-identical to the portable kernel are replaced:
// IEEE add/sub/mul/div/sqrt, round-to-even, integer add/sub, bitwise ops and
// bit-pattern equality. Min/max, conversions and cross-lane operations keep
// the portable image because the instruction semantics differ on NaN,
// saturation or summation order.
//
// This init runs after the one in dispatch_amd64_simd.go (files initialize
// in name order), so currentLevel is already known.

func init() {
	if !hardwareKernels(currentLevel) {
		return
	}
	installF32x4()
	installI32x4()
	installU32x4()
	installI8x16()
	installI16x8()
	if currentLevel >= DispatchAVX2 {
		installF64x4()
		installI64x4()
	}
}

func loadF32x4(a [4]float32) archsimd.Float32x4 { return archsimd.LoadFloat32x4Slice(a[:]) }
func loadF64x4(a [4]float64) archsimd.Float64x4 { return archsimd.LoadFloat64x4Slice(a[:]) }
func loadI32x4(a [4]int32) archsimd.Int32x4 { return archsimd.LoadInt32x4Slice(a[:]) }
func loadU32x4(a [4]uint32) archsimd.Uint32x4 { return archsimd.LoadUint32x4Slice(a[:]) }
func loadI64x4(a [4]int64) archsimd.Int64x4 { return archsimd.LoadInt64x4Slice(a[:]) }
func loadI8x16(a [16]int8) archsimd.Int8x16 { return archsimd.LoadInt8x16Slice(a[:]) }
func loadI16x8(a [8]int16) archsimd.Int16x8 { return archsimd.LoadInt16x8Slice(a[:]) }

func installF32x4() {
	f32x4Ops.add = func(a, b [4]float32) (r [4]float32) {
		loadF32x4(a).Add(loadF32x4(b)).Store(&r)
		return r
	}
	f32x4Ops.sub = func(a, b [4]float32) (r [4]float32) {
		loadF32x4(a).Sub(loadF32x4(b)).Store(&r)
		return r
	}
	f32x4Ops.mul = func(a, b [4]float32) (r [4]float32) {
		loadF32x4(a).Mul(loadF32x4(b)).Store(&r)
		return r
	}
	f32x4Float.div = func(a, b [4]float32) (r [4]float32) {
		loadF32x4(a).Div(loadF32x4(b)).Store(&r)
		return r
	}
	f32x4Float.sqrt = func(a [4]float32) (r [4]float32) {
		loadF32x4(a).Sqrt().Store(&r)
		return r
	}
	// Bitwise ops go through the integer view of the register.
	f32x4Ops.and = func(a, b [4]float32) (r [4]float32) {
		loadF32x4(a).AsInt32x4().And(loadF32x4(b).AsInt32x4()).AsFloat32x4().Store(&r)
		return r
	}
	f32x4Ops.or = func(a, b [4]float32) (r [4]float32) {
		loadF32x4(a).AsInt32x4().Or(loadF32x4(b).AsInt32x4()).AsFloat32x4().Store(&r)
		return r
	}
	f32x4Ops.xor = func(a, b [4]float32) (r [4]float32) {
		loadF32x4(a).AsInt32x4().Xor(loadF32x4(b).AsInt32x4()).AsFloat32x4().Store(&r)
		return r
	}
	// Equality is on bit patterns, so compare the integer view.
	f32x4Ops.eq = func(a, b [4]float32) (r [4]float32) {
		m := loadF32x4(a).AsInt32x4().Equal(loadF32x4(b).AsInt32x4())
		archsimd.BroadcastInt32x4(-1).Merge(archsimd.BroadcastInt32x4(0), m).AsFloat32x4().Store(&r)
		return r
	}
	f32x4Float.round = func(a [4]float32, mode RoundMode) (r [4]float32) {
		v := loadF32x4(a)
		switch mode {
		case RoundDown:
			v = v.Floor()
		case RoundUp:
			v = v.Ceil()
		case RoundTowardZero:
			v = v.Trunc()
		default:
			v = v.RoundToEven()
		}
		v.Store(&r)
		return r
	}
}

func installF64x4() {
	f64x4Ops.add = func(a, b [4]float64) (r [4]float64) {
		loadF64x4(a).Add(loadF64x4(b)).Store(&r)
		return r
	}
	f64x4Ops.sub = func(a, b [4]float64) (r [4]float64) {
		loadF64x4(a).Sub(loadF64x4(b)).Store(&r)
		return r
	}
	f64x4Ops.mul = func(a, b [4]float64) (r [4]float64) {
		loadF64x4(a).Mul(loadF64x4(b)).Store(&r)
		return r
	}
	f64x4Float.div = func(a, b [4]float64) (r [4]float64) {
		loadF64x4(a).Div(loadF64x4(b)).Store(&r)
		return r
	}
	f64x4Float.sqrt = func(a [4]float64) (r [4]float64) {
		loadF64x4(a).Sqrt().Store(&r)
		return r
	}
	f64x4Ops.eq = func(a, b [4]float64) (r [4]float64) {
		m := loadF64x4(a).AsInt64x4().Equal(loadF64x4(b).AsInt64x4())
		archsimd.BroadcastInt64x4(-1).Merge(archsimd.BroadcastInt64x4(0), m).AsFloat64x4().Store(&r)
		return r
	}
}

func installI32x4() {
	i32x4Ops.add = func(a, b [4]int32) (r [4]int32) {
		loadI32x4(a).Add(loadI32x4(b)).Store(&r)
		return r
	}
	i32x4Ops.sub = func(a, b [4]int32) (r [4]int32) {
		loadI32x4(a).Sub(loadI32x4(b)).Store(&r)
		return r
	}
	i32x4Ops.and = func(a, b [4]int32) (r [4]int32) {
		loadI32x4(a).And(loadI32x4(b)).Store(&r)
		return r
	}
	i32x4Ops.or = func(a, b [4]int32) (r [4]int32) {
		loadI32x4(a).Or(loadI32x4(b)).Store(&r)
		return r
	}
	i32x4Ops.xor = func(a, b [4]int32) (r [4]int32) {
		loadI32x4(a).Xor(loadI32x4(b)).Store(&r)
		return r
	}
	// x.AndNot(y) is x &^ y, so swap the operands for (^a) & b.
	i32x4Ops.andNot = func(a, b [4]int32) (r [4]int32) {
		loadI32x4(b).AndNot(loadI32x4(a)).Store(&r)
		return r
	}
	i32x4Ops.eq = func(a, b [4]int32) (r [4]int32) {
		m := loadI32x4(a).Equal(loadI32x4(b))
		archsimd.BroadcastInt32x4(-1).Merge(archsimd.BroadcastInt32x4(0), m).Store(&r)
		return r
	}
	i32x4Ops.gt = func(a, b [4]int32) (r [4]int32) {
		m := loadI32x4(a).Greater(loadI32x4(b))
		archsimd.BroadcastInt32x4(-1).Merge(archsimd.BroadcastInt32x4(0), m).Store(&r)
		return r
	}
	i32x4Int.shl = func(a [4]int32, n uint) (r [4]int32) {
		loadI32x4(a).ShiftAllLeft(uint64(n)).Store(&r)
		return r
	}
}

func installU32x4() {
	u32x4Ops.add = func(a, b [4]uint32) (r [4]uint32) {
		loadU32x4(a).Add(loadU32x4(b)).Store(&r)
		return r
	}
	u32x4Ops.sub = func(a, b [4]uint32) (r [4]uint32) {
		loadU32x4(a).Sub(loadU32x4(b)).Store(&r)
		return r
	}
	u32x4Ops.and = func(a, b [4]uint32) (r [4]uint32) {
		loadU32x4(a).And(loadU32x4(b)).Store(&r)
		return r
	}
	u32x4Ops.or = func(a, b [4]uint32) (r [4]uint32) {
		loadU32x4(a).Or(loadU32x4(b)).Store(&r)
		return r
	}
	u32x4Ops.xor = func(a, b [4]uint32) (r [4]uint32) {
		loadU32x4(a).Xor(loadU32x4(b)).Store(&r)
		return r
	}
}

func installI64x4() {
	i64x4Ops.add = func(a, b [4]int64) (r [4]int64) {
		loadI64x4(a).Add(loadI64x4(b)).Store(&r)
		return r
	}
	i64x4Ops.sub = func(a, b [4]int64) (r [4]int64) {
		loadI64x4(a).Sub(loadI64x4(b)).Store(&r)
		return r
	}
	i64x4Ops.and = func(a, b [4]int64) (r [4]int64) {
		loadI64x4(a).And(loadI64x4(b)).Store(&r)
		return r
	}
	i64x4Ops.or = func(a, b [4]int64) (r [4]int64) {
		loadI64x4(a).Or(loadI64x4(b)).Store(&r)
		return r
	}
	i64x4Ops.xor = func(a, b [4]int64) (r [4]int64) {
		loadI64x4(a).Xor(loadI64x4(b)).Store(&r)
		return r
	}
	i64x4Ops.eq = func(a, b [4]int64) (r [4]int64) {
		m := loadI64x4(a).Equal(loadI64x4(b))
		archsimd.BroadcastInt64x4(-1).Merge(archsimd.BroadcastInt64x4(0), m).Store(&r)
		return r
	}
	i64x4Int.shl = func(a [4]int64, n uint) (r [4]int64) {
		loadI64x4(a).ShiftAllLeft(uint64(n)).Store(&r)
		return r
	}
}

func installI8x16() {
	i8x16Ops.add = func(a, b [16]int8) (r [16]int8) {
		loadI8x16(a).Add(loadI8x16(b)).Store(&r)
		return r
	}
	i8x16Ops.sub = func(a, b [16]int8) (r [16]int8) {
		loadI8x16(a).Sub(loadI8x16(b)).Store(&r)
		return r
	}
	i8x16Ops.and = func(a, b [16]int8) (r [16]int8) {
		loadI8x16(a).And(loadI8x16(b)).Store(&r)
		return r
	}
	i8x16Ops.or = func(a, b [16]int8) (r [16]int8) {
		loadI8x16(a).Or(loadI8x16(b)).Store(&r)
		return r
	}
	i8x16Ops.xor = func(a, b [16]int8) (r [16]int8) {
		loadI8x16(a).Xor(loadI8x16(b)).Store(&r)
		return r
	}
	i8x16Ops.eq = func(a, b [16]int8) (r [16]int8) {
		m := loadI8x16(a).Equal(loadI8x16(b))
		archsimd.BroadcastInt8x16(-1).Merge(archsimd.BroadcastInt8x16(0), m).Store(&r)
		return r
	}
}

func installI16x8() {
	i16x8Ops.add = func(a, b [8]int16) (r [8]int16) {
		loadI16x8(a).Add(loadI16x8(b)).Store(&r)
		return r
	}
	i16x8Ops.sub = func(a, b [8]int16) (r [8]int16) {
		loadI16x8(a).Sub(loadI16x8(b)).Store(&r)
		return r
	}
	i16x8Ops.mul = func(a, b [8]int16) (r [8]int16) {
		// PMULLW keeps the low 16 bits, same as wrapping multiply.
		loadI16x8(a).Mul(loadI16x8(b)).Store(&r)
		return r
	}
}
