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

	"github.com/hikogui/go-numeric/numeric/internal/lanes"
	"github.com/hikogui/go-numeric/numeric/reg"
)

// Convert converts a lane-wise to an array of U with the same lane count.
// Float to integer conversion rounds half away from zero and saturates; NaN
// becomes 0. Every other conversion follows Go's conversion rules.
func Convert[U Lanes, SU Storage[U], T Lanes, S Storage[T]](a Array[T, S]) Array[U, SU] {
	var r Array[U, SU]
	if len(r.v) != len(a.v) {
		panic(fmt.Sprintf("Convert: %d lanes to %d lanes", len(a.v), len(r.v)))
	}
	if useRegisters {
		if v, ok := convertRegister[SU](a.v); ok {
			return Array[U, SU]{v}
		}
	}
	lanes.Convert(r.view(), a.view())
	return r
}

// convertRegister converts with a single register instruction when both
// wrappers are native.
func convertRegister[SU, S any](a S) (SU, bool) {
	var out any
	switch v := any(a).(type) {
	case [4]float32:
		if !reg.NativeF32x4 {
			break
		}
		x := reg.F32x4FromArray(v)
		switch any(*new(SU)).(type) {
		case [4]float64:
			if reg.NativeF64x4 {
				out = reg.F32x4ToF64x4(x).Array()
			}
		case [4]int32:
			out = reg.F32x4ToI32x4(x).Array()
		}
	case [4]float64:
		if !reg.NativeF64x4 {
			break
		}
		x := reg.F64x4FromArray(v)
		switch any(*new(SU)).(type) {
		case [4]float32:
			out = reg.F64x4ToF32x4(x).Array()
		case [4]int32:
			out = reg.F64x4ToI32x4(x).Array()
		}
	case [4]int32:
		if !reg.NativeI32x4 {
			break
		}
		x := reg.I32x4FromArray(v)
		switch any(*new(SU)).(type) {
		case [4]float32:
			out = reg.I32x4ToF32x4(x).Array()
		case [4]float64:
			if reg.NativeF64x4 {
				out = reg.I32x4ToF64x4(x).Array()
			}
		case [4]int64:
			if reg.NativeI64x4 {
				out = reg.I32x4ToI64x4(x).Array()
			}
		case [4]uint32:
			out = reg.I32x4AsU32x4(x).Array()
		}
	case [4]uint32:
		if !reg.NativeU32x4 {
			break
		}
		x := reg.U32x4FromArray(v)
		switch any(*new(SU)).(type) {
		case [4]int64:
			if reg.NativeI64x4 {
				out = reg.U32x4ToI64x4(x).Array()
			}
		case [4]int32:
			out = reg.U32x4AsI32x4(x).Array()
		}
	}
	if out == nil {
		var zero SU
		return zero, false
	}
	return out.(SU), true
}

func checkPack(op string, n, half int) {
	if n != 2*half {
		panic(fmt.Sprintf("%s: two %d-lane inputs for %d lanes", op, half, n))
	}
}

// PackSaturate narrows a into the low half and b into the high half of the
// result, clamping every lane to the range of U.
func PackSaturate[U Integers, SU Storage[U], T SignedInts, S Storage[T]](a, b Array[T, S]) Array[U, SU] {
	var r Array[U, SU]
	checkPack("PackSaturate", len(r.v), len(a.v))
	if useRegisters {
		switch x := any(a.v).(type) {
		case [4]int32:
			if _, ok := any(r.v).([8]int16); ok && reg.NativeI32x4 && reg.NativeI16x8 {
				y := any(b.v).([4]int32)
				p := reg.PackI32x4(reg.I32x4FromArray(x), reg.I32x4FromArray(y))
				return Array[U, SU]{any(p.Array()).(SU)}
			}
		case [8]int16:
			if _, ok := any(r.v).([16]int8); ok && reg.NativeI16x8 && reg.NativeI8x16 {
				y := any(b.v).([8]int16)
				p := reg.PackI16x8(reg.I16x8FromArray(x), reg.I16x8FromArray(y))
				return Array[U, SU]{any(p.Array()).(SU)}
			}
		}
	}
	lanes.PackSaturate(r.view(), a.view(), b.view())
	return r
}

// PackTruncate narrows a into the low half and b into the high half of the
// result, keeping the low bits of every lane.
func PackTruncate[U Integers, SU Storage[U], T Integers, S Storage[T]](a, b Array[T, S]) Array[U, SU] {
	var r Array[U, SU]
	checkPack("PackTruncate", len(r.v), len(a.v))
	if useRegisters && reg.NativeU32x4 && reg.NativeU16x8 {
		x, ok1 := any(a.v).([4]uint32)
		_, ok2 := any(r.v).([8]uint16)
		if ok1 && ok2 {
			y := any(b.v).([4]uint32)
			p := reg.PackU32x4(reg.U32x4FromArray(x), reg.U32x4FromArray(y))
			return Array[U, SU]{any(p.Array()).(SU)}
		}
	}
	lanes.PackTruncate(r.view(), a.view(), b.view())
	return r
}
