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

import "github.com/hikogui/go-numeric/numeric/internal/lanes"

// Cross-type conversions between register wrappers. Each one corresponds to
// a single instruction on the targets that have it (CVTPS2PD, CVTDQ2PS,
// PMOVSXDQ, PACKSSDW, ...). Float to integer conversions round half away
// from zero and saturate; NaN converts to 0.

func convert[U, T Lanes, AU, AT any](a AT) AU {
	var r AU
	lanes.Convert(laneSlice[U](&r), laneSlice[T](&a))
	return r
}

var (
	cvtF32x4ToF64x4 = convert[float64, float32, [4]float64, [4]float32]
	cvtF64x4ToF32x4 = convert[float32, float64, [4]float32, [4]float64]
	cvtI32x4ToF32x4 = convert[float32, int32, [4]float32, [4]int32]
	cvtF32x4ToI32x4 = convert[int32, float32, [4]int32, [4]float32]
	cvtI32x4ToF64x4 = convert[float64, int32, [4]float64, [4]int32]
	cvtF64x4ToI32x4 = convert[int32, float64, [4]int32, [4]float64]
	cvtI32x4ToI64x4 = convert[int64, int32, [4]int64, [4]int32]
	cvtU32x4ToI64x4 = convert[int64, uint32, [4]int64, [4]uint32]
)

// F32x4ToF64x4 widens four float32 lanes to float64.
func F32x4ToF64x4(a F32x4) F64x4 { return F64x4{cvtF32x4ToF64x4(a.v)} }

// F64x4ToF32x4 narrows four float64 lanes to float32, rounding to nearest even.
func F64x4ToF32x4(a F64x4) F32x4 { return F32x4{cvtF64x4ToF32x4(a.v)} }

// I32x4ToF32x4 converts int32 lanes to float32, rounding to nearest even.
func I32x4ToF32x4(a I32x4) F32x4 { return F32x4{cvtI32x4ToF32x4(a.v)} }

// F32x4ToI32x4 converts float32 lanes to int32.
func F32x4ToI32x4(a F32x4) I32x4 { return I32x4{cvtF32x4ToI32x4(a.v)} }

// I32x4ToF64x4 converts int32 lanes to float64 exactly.
func I32x4ToF64x4(a I32x4) F64x4 { return F64x4{cvtI32x4ToF64x4(a.v)} }

// F64x4ToI32x4 converts float64 lanes to int32.
func F64x4ToI32x4(a F64x4) I32x4 { return I32x4{cvtF64x4ToI32x4(a.v)} }

// I32x4ToI64x4 sign-extends int32 lanes to int64.
func I32x4ToI64x4(a I32x4) I64x4 { return I64x4{cvtI32x4ToI64x4(a.v)} }

// U32x4ToI64x4 zero-extends uint32 lanes to int64.
func U32x4ToI64x4(a U32x4) I64x4 { return I64x4{cvtU32x4ToI64x4(a.v)} }

// I32x4AsU32x4 reinterprets the bits of a.
func I32x4AsU32x4(a I32x4) U32x4 {
	var r U32x4
	for i, x := range a.v {
		r.v[i] = uint32(x)
	}
	return r
}

// U32x4AsI32x4 reinterprets the bits of a.
func U32x4AsI32x4(a U32x4) I32x4 {
	var r I32x4
	for i, x := range a.v {
		r.v[i] = int32(x)
	}
	return r
}

// PackI32x4 narrows a (low half) and b (high half) to int16 with signed saturation.
func PackI32x4(a, b I32x4) I16x8 {
	var r I16x8
	lanes.PackSaturate(r.v[:], a.v[:], b.v[:])
	return r
}

// PackI16x8 narrows a (low half) and b (high half) to int8 with signed saturation.
func PackI16x8(a, b I16x8) I8x16 {
	var r I8x16
	lanes.PackSaturate(r.v[:], a.v[:], b.v[:])
	return r
}

// PackU32x4 narrows a (low half) and b (high half) to uint16 keeping the low bits.
func PackU32x4(a, b U32x4) U16x8 {
	var r U16x8
	lanes.PackTruncate(r.v[:], a.v[:], b.v[:])
	return r
}
