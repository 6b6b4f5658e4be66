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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		nan := float32(math.NaN())
		assert.Equal(t, NewI32x4(2, -3, 0, math.MaxInt32),
			Convert[int32, [4]int32](NewF32x4(1.5, -2.5, nan, 3e9)), "round half away, NaN to zero, saturate")
		assert.Equal(t, NewI32x4(-1, 0, math.MinInt32, 1),
			Convert[int32, [4]int32](NewF64x4(-0.5, 0.49, -1e12, 0.5)))

		f := Convert[float32, [4]float32](NewF64x4(0.1, 1e300, math.Copysign(0, -1)))
		assert.Equal(t, NewF32x4(0.1, float32(math.Inf(1)), 0, 0), f)
		assert.True(t, math.Signbit(float64(f.Z())), "negative zero survives")

		assert.Equal(t, NewF64x4(math.MinInt32, 7, 0, -1),
			Convert[float64, [4]float64](NewI32x4(math.MinInt32, 7, 0, -1)))
		assert.Equal(t, NewF32x4(-128, 127, 0, 5), Convert[float32, [4]float32](NewI8x4(-128, 127, 0, 5)))
		assert.Equal(t, NewI64x4(math.MaxUint32, 1), Convert[int64, [4]int64](NewU32x4(math.MaxUint32, 1)))
		assert.Equal(t, NewI64x4(-1, 1), Convert[int64, [4]int64](NewI32x4(-1, 1)))
		assert.Equal(t, NewU32x4(math.MaxUint32, 1), Convert[uint32, [4]uint32](NewI32x4(-1, 1)))
		assert.Equal(t, NewI32x4(-1, 1), Convert[int32, [4]int32](NewU32x4(math.MaxUint32, 1)))

		assert.Equal(t, NewU8x8(0, 255, 3, 0, 0, 255, 1, 1),
			Convert[uint8, [8]uint8](NewF32x8(-1, 300, 2.5, -0.4, nan, 255.5, 0.5, 1)))
		assert.Equal(t, NewI64x2(math.MaxInt64, math.MinInt64), Convert[int64, [2]int64](NewF64x2(1e19, -1e19)))

		assert.Panics(t, func() { Convert[float32, [8]float32](NewF32x4()) })
	})
}

func TestPack(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		assert.Equal(t, NewI16x8(32767, -32768, 5, -5, 32767, -32768, 32767, 0),
			PackSaturate[int16, [8]int16](NewI32x4(70000, -70000, 5, -5), NewI32x4(32767, -32768, 32768, 0)))
		assert.Equal(t, NewU16x8(0, 65535, 65535, 1, 0, 0, 0, 0),
			PackSaturate[uint16, [8]uint16](NewI32x4(-5, 70000, 65535, 1), NewI32x4()))
		assert.Equal(t, NewI8x16(127, -128, 127, -128, 1, 2, 3, 4, -128, 127, -127, 127, -1, -2, -3, -4),
			PackSaturate[int8, [16]int8](NewI16x8(200, -200, 127, -128, 1, 2, 3, 4), NewI16x8(-200, 200, -127, 128, -1, -2, -3, -4)))

		assert.Equal(t, NewU16x8(0x2345, 0xffff, 0, 1, 0x2345, 0xffff, 0, 1),
			PackTruncate[uint16, [8]uint16](NewU32x4(0x12345, 0xffff, 0x10000, 1), NewU32x4(0x12345, 0xffff, 0x10000, 1)))
		assert.Equal(t, NewU8x16(255, 0, 1, 128),
			PackTruncate[uint8, [16]uint8](NewI16x8(-1, 256, 257, 128), NewI16x8()))

		assert.Panics(t, func() { PackSaturate[int16, [4]int16](NewI32x4(), NewI32x4()) })
		assert.Panics(t, func() { PackTruncate[uint8, [4]uint8](NewU16x4(), NewU16x4()) })
	})
}
