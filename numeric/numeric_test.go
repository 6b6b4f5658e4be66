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
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hikogui/go-numeric/numeric/internal/lanes"
	"github.com/hikogui/go-numeric/numeric/swizzle"
)

// bothPaths runs f once on the reference kernels and once with register
// dispatch enabled.
func bothPaths(t *testing.T, f func(t *testing.T)) {
	for _, on := range []bool{false, true} {
		name := "reference"
		if on {
			name = "registers"
		}
		t.Run(name, func(t *testing.T) {
			saved := useRegisters
			useRegisters = on
			t.Cleanup(func() { useRegisters = saved })
			f(t)
		})
	}
}

func randomLane[T Lanes](rng *rand.Rand) T {
	if lanes.IsFloat[T]() {
		switch rng.IntN(8) {
		case 0:
			return T(math.NaN())
		case 1:
			return T(math.Inf(1 - 2*rng.IntN(2)))
		case 2:
			return T(math.Copysign(0, -1))
		default:
			return T(rng.NormFloat64() * 50)
		}
	}
	return lanes.FromBits[T](rng.Uint64())
}

func random[T Lanes, S Storage[T]](rng *rand.Rand) Array[T, S] {
	var a Array[T, S]
	for i := range a.Len() {
		a = a.Insert(i, randomLane[T](rng))
	}
	return a
}

func requireBits[T Lanes, S Storage[T]](t *testing.T, want, got Array[T, S], msgAndArgs ...any) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want %v, got %v %v", want, got, msgAndArgs)
}

func TestScenarios(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		t.Run("add", func(t *testing.T) {
			assert.Equal(t, NewF32x4(1, 4, 0, 6), NewF32x4(1, 2, 3, 4).Add(NewF32x4(0, 2, -3, 2)))
			assert.Equal(t, NewF64x4(1, 4, 0, 6), NewF64x4(1, 2, 3, 4).Add(NewF64x4(0, 2, -3, 2)))
			assert.Equal(t, NewI32x4(1, 4, 0, 6), NewI32x4(1, 2, 3, 4).Add(NewI32x4(0, 2, -3, 2)))
			assert.Equal(t, NewI16x4(1, 4, 0, 6), NewI16x4(1, 2, 3, 4).Add(NewI16x4(0, 2, -3, 2)))
			assert.Equal(t, NewI64x4(1, 4, 0, 6), NewI64x4(1, 2, 3, 4).Add(NewI64x4(0, 2, -3, 2)))
		})
		t.Run("dot_product", func(t *testing.T) {
			assert.Equal(t, Broadcast[float32, [4]float32](13),
				NewF32x4(1, 2, 3, 4).DotProduct(NewF32x4(3, 5, -3, -1), 0b0011))
			assert.Equal(t, Broadcast[float64, [4]float64](13),
				NewF64x4(1, 2, 3, 4).DotProduct(NewF64x4(3, 5, -3, -1), 0b0011))
			assert.Equal(t, Broadcast[int32, [4]int32](13),
				NewI32x4(1, 2, 3, 4).DotProduct(NewI32x4(3, 5, -3, -1), 0b0011))
		})
		t.Run("swizzle", func(t *testing.T) {
			wzyx, b := swizzle.Must("wzyx"), swizzle.Must("1b01")
			assert.Equal(t, NewF32x4(5, 4, 3, 2), NewF32x4(2, 3, 4, 5).Swizzle(wzyx))
			assert.Equal(t, NewF32x4(1, 3, 0, 1), NewF32x4(2, 3, 4, 5).Swizzle(b))
			assert.Equal(t, NewF64x4(5, 4, 3, 2), NewF64x4(2, 3, 4, 5).Swizzle(wzyx))
			assert.Equal(t, NewI32x4(1, 3, 0, 1), NewI32x4(2, 3, 4, 5).Swizzle(b))
			assert.Equal(t, NewU8x4(1, 3, 0, 1), NewU8x4(2, 3, 4, 5).Swizzle(b))
		})
		t.Run("horizontal_add", func(t *testing.T) {
			assert.Equal(t, NewF32x4(5, 9, 25, 29), NewF32x4(2, 3, 4, 5).HorizontalAdd(NewF32x4(12, 13, 14, 15)))
			assert.Equal(t, NewF64x4(5, 9, 25, 29), NewF64x4(2, 3, 4, 5).HorizontalAdd(NewF64x4(12, 13, 14, 15)))
			assert.Equal(t, NewI32x4(5, 9, 25, 29), NewI32x4(2, 3, 4, 5).HorizontalAdd(NewI32x4(12, 13, 14, 15)))
		})
		t.Run("shuffle", func(t *testing.T) {
			var src, idx, want [16]int8
			for i := range src {
				src[i] = int8(i)
				idx[i] = int8(i)
				want[i] = int8(i)
			}
			idx[15], want[15] = -1, 0
			got := Shuffle(FromLanes[int8, [16]int8](src), FromLanes[int8, [16]int8](idx))
			assert.Equal(t, FromLanes[int8, [16]int8](want), got)

			// The same control on a wider lane type.
			f := Shuffle(NewF32x4(1, 2, 3, 4), NewI32x4(3, -1, 0, 6))
			assert.Equal(t, NewF32x4(4, 0, 1, 3), f)
		})
	})
}

// checkProperties verifies the algebraic identities every instantiation must
// satisfy, on random inputs.
func checkProperties[T Lanes, S Storage[T]](t *testing.T) {
	rng := rand.New(rand.NewPCG(7, uint64(lanes.Size[T]())))
	var zero Array[T, S]
	n := zero.Len()
	full := lanes.MaskBits(n)
	for iter := 0; iter < 100; iter++ {
		a, b := random[T, S](rng), random[T, S](rng)
		m := rng.Uint64() & full

		requireBits(t, a, FromLanes[T, S](a.Lanes()), "round trip")
		requireBits(t, a, FromSlice[T, S](a.Slice()), "slice round trip")
		require.Equal(t, full, a.EqMask(a), "eq(a, a)")
		require.Equal(t, ^a.EqMask(b)&full, a.NeMask(b), "ne is the complement of eq")

		s := a.Get(0)
		for i := 1; i < n; i++ {
			s += a.Get(i)
		}
		require.Truef(t, sameLanes(Broadcast[T, S](s), a.HorizontalSum()), "horizontal sum of %v", a)
		require.Truef(t, sameLanes(a.Mul(b).SetZero(^m&full).HorizontalSum(), a.DotProduct(b, m)), "dot product of %v, %v", a, b)

		requireBits(t, a, a.Blend(b, 0))
		requireBits(t, b, a.Blend(b, full))
		blend, cleared := a.Blend(b, m), a.SetZero(m)
		for i := range n {
			want, wantZ := a.Get(i), a.Get(i)
			if m&(1<<i) != 0 {
				want, wantZ = b.Get(i), 0
			}
			require.Equal(t, lanes.ToBits(want), lanes.ToBits(blend.Get(i)), "blend lane %d", i)
			require.Equal(t, lanes.ToBits(wantZ), lanes.ToBits(cleared.Get(i)), "set_zero lane %d", i)
		}
		requireBits(t, a.Blend(b, m), a.Select(b, FromMask[T, S](m)), "select")

		if lanes.IsFloat[T]() || lanes.IsSigned[T]() {
			requireBits(t, a, a.Neg().Neg(), "double negation")
		}
		requireBits(t, a, BitCast[Array[T, S]](BitCast[S](a)), "bit cast round trip")
		requireBits(t, a, a.Not().Not(), "double not")
		requireBits(t, a.And(b), a.Not().AndNot(b), "and-not of not")
	}
}

func TestProperties(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		t.Run("F32x4", checkProperties[float32, [4]float32])
		t.Run("F32x8", checkProperties[float32, [8]float32])
		t.Run("F64x2", checkProperties[float64, [2]float64])
		t.Run("F64x4", checkProperties[float64, [4]float64])
		t.Run("I8x16", checkProperties[int8, [16]int8])
		t.Run("U8x32", checkProperties[uint8, [32]uint8])
		t.Run("I16x8", checkProperties[int16, [8]int16])
		t.Run("U16x8", checkProperties[uint16, [8]uint16])
		t.Run("I32x4", checkProperties[int32, [4]int32])
		t.Run("U32x4", checkProperties[uint32, [4]uint32])
		t.Run("I64x4", checkProperties[int64, [4]int64])
		t.Run("U64x2", checkProperties[uint64, [2]uint64])
		t.Run("I8x64", checkProperties[int8, [64]int8])
	})
}

// Register dispatch must agree with the reference kernels bit for bit.
func checkPathsAgree[T Lanes, S Storage[T]](t *testing.T) {
	rng := rand.New(rand.NewPCG(11, uint64(lanes.Size[T]())))
	var zero Array[T, S]
	full := lanes.MaskBits(zero.Len())
	ops := map[string]func(a, b Array[T, S], m uint64) Array[T, S]{
		"Add":           func(a, b Array[T, S], _ uint64) Array[T, S] { return a.Add(b) },
		"Sub":           func(a, b Array[T, S], _ uint64) Array[T, S] { return a.Sub(b) },
		"Mul":           func(a, b Array[T, S], _ uint64) Array[T, S] { return a.Mul(b) },
		"Min":           func(a, b Array[T, S], _ uint64) Array[T, S] { return a.Min(b) },
		"Max":           func(a, b Array[T, S], _ uint64) Array[T, S] { return a.Max(b) },
		"Lt":            func(a, b Array[T, S], _ uint64) Array[T, S] { return a.Lt(b) },
		"Ge":            func(a, b Array[T, S], _ uint64) Array[T, S] { return a.Ge(b) },
		"Eq":            func(a, b Array[T, S], _ uint64) Array[T, S] { return a.Eq(b) },
		"AndNot":        func(a, b Array[T, S], _ uint64) Array[T, S] { return a.AndNot(b) },
		"Abs":           func(a, _ Array[T, S], _ uint64) Array[T, S] { return a.Abs() },
		"HorizontalSub": func(a, b Array[T, S], _ uint64) Array[T, S] { return a.HorizontalSub(b) },
		"InterleaveLo":  func(a, b Array[T, S], _ uint64) Array[T, S] { return a.InterleaveLo(b) },
		"HorizontalSum": func(a, _ Array[T, S], _ uint64) Array[T, S] { return a.HorizontalSum() },
		"DotProduct":    func(a, b Array[T, S], m uint64) Array[T, S] { return a.DotProduct(b, m) },
		"Blend":         func(a, b Array[T, S], m uint64) Array[T, S] { return a.Blend(b, m) },
		"NegMask":       func(a, _ Array[T, S], m uint64) Array[T, S] { return a.NegMask(m) },
		"AddSub":        func(a, b Array[T, S], m uint64) Array[T, S] { return a.AddSub(b, m) },
		"Swizzle":       func(a, _ Array[T, S], _ uint64) Array[T, S] { return a.Swizzle(swizzle.Must("z1_x")) },
		"Permute":       func(a, _ Array[T, S], _ uint64) Array[T, S] { return a.Permute(swizzle.Must("wy0a")) },
	}
	for iter := 0; iter < 50; iter++ {
		a, b := random[T, S](rng), random[T, S](rng)
		m := rng.Uint64() & full
		for name, op := range ops {
			useRegisters = false
			want := op(a, b, m)
			useRegisters = true
			got := op(a, b, m)
			useRegisters = false
			if !sameLanes(want, got) {
				t.Fatalf("%s(%v, %v, %b): registers %v, reference %v", name, a, b, m, got, want)
			}
		}
	}
}

// sameLanes compares bit patterns but lets two NaNs with different payloads
// match, since instructions may choose either operand's NaN.
func sameLanes[T Lanes, S Storage[T]](a, b Array[T, S]) bool {
	for i := range a.Len() {
		x, y := a.Get(i), b.Get(i)
		if lanes.ToBits(x) != lanes.ToBits(y) && !(x != x && y != y) {
			return false
		}
	}
	return true
}

func TestPathsAgree(t *testing.T) {
	saved := useRegisters
	t.Cleanup(func() { useRegisters = saved })
	t.Run("F32x4", checkPathsAgree[float32, [4]float32])
	t.Run("F64x4", checkPathsAgree[float64, [4]float64])
	t.Run("I32x4", checkPathsAgree[int32, [4]int32])
	t.Run("U32x4", checkPathsAgree[uint32, [4]uint32])
	t.Run("I64x4", checkPathsAgree[int64, [4]int64])
	t.Run("I8x16", checkPathsAgree[int8, [16]int8])
	t.Run("I16x8", checkPathsAgree[int16, [8]int16])
	t.Run("U16x8", checkPathsAgree[uint16, [8]uint16])
}

func TestArithmetic(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		a, b := NewI32x4(7, -7, 100, math.MaxInt32), NewI32x4(2, 2, -3, 1)
		assert.Equal(t, NewI32x4(5, -9, 103, math.MaxInt32-1), a.Sub(b))
		assert.Equal(t, NewI32x4(14, -14, -300, math.MaxInt32), a.Mul(b))
		assert.Equal(t, NewI32x4(-2, -2, 0, math.MinInt32),
			NewI32x4(math.MaxInt32, math.MinInt32+1, math.MinInt32, math.MinInt32).Mul(NewI32x4(2, -2, 2, -1)), "multiplication wraps")
		assert.Equal(t, NewI32x4(3, -3, -33, math.MaxInt32), a.Div(b))
		assert.Equal(t, NewI32x4(1, -1, 1, 0), a.Mod(b))
		assert.Equal(t, NewI32x4(2, -7, -3, 1), NewI32x4(7, -7, -3, math.MaxInt32).Min(b))
		assert.Equal(t, NewI32x4(2, 2, 4, 5), NewI32x4(0, 2, 4, 9).Clamp(broadcastI32(2), broadcastI32(5)))
		assert.Equal(t, NewI32x4(7, 7, 100, math.MaxInt32), a.Abs())
		assert.Equal(t, NewI32x4(math.MinInt32), NewI32x4(math.MinInt32).Abs(), "abs of the minimum wraps")
		assert.Equal(t, NewI32x4(-7, -7, 100, -math.MaxInt32), a.NegMask(0b1001))
		assert.Equal(t, NewI32x4(9, -9, 103, math.MaxInt32-1), a.AddSub(b, 0b0001))
		assert.Equal(t, NewU32x4(0, math.MaxUint32), NewU32x4(1, 0).Sub(NewU32x4(1, 1)).SetZero(0b1100), "unsigned wraps")

		f := NewF32x4(1, float32(math.NaN()), -2, 3)
		g := NewF32x4(2, 1, float32(math.NaN()), 3)
		assert.Equal(t, "(1; 1; NaN; 3)", f.Min(g).String(), "min takes b when either lane is NaN")
		assert.Equal(t, "(2; 1; NaN; 3)", f.Max(g).String())
		assert.Equal(t, "(-1; NaN; 2; -3)", f.Neg().String())
		assert.Equal(t, math.Float32bits(float32(math.Copysign(0, -1))), math.Float32bits(NewF32x4().Neg().X()), "neg flips the sign of zero")
		assert.Equal(t, "(1; NaN; 2; 3)", f.Abs().String())
		assert.Equal(t, NewF32x4(-1, 2, 3.5, 5), NewF32x4(1, 2, 3, 4).AddSub(NewF32x4(2, 0, -0.5, 1), 0b1010))
		assert.Equal(t, NewF64x2(1, -0.5), NewF64x2(7, -5.5).Mod(NewF64x2(3, 1)))

		mustPanic(t, func() { a.NegMask(0b10000) })
		mustPanic(t, func() { a.Div(NewI32x4()) })
	})
}

func broadcastI32(x int32) I32x4 { return Broadcast[int32, [4]int32](x) }

func TestBitwiseAndShifts(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		a, b := NewU16x8(0xff00, 0x0f0f, 0xffff, 0), NewU16x8(0x0ff0, 0xffff, 0, 0xffff)
		assert.Equal(t, NewU16x8(0x0f00, 0x0f0f, 0, 0), a.And(b))
		assert.Equal(t, NewU16x8(0xfff0, 0xffff, 0xffff, 0xffff), a.Or(b))
		assert.Equal(t, NewU16x8(0xf0f0, 0xf0f0, 0xffff, 0xffff), a.Xor(b))
		assert.Equal(t, NewU16x8(0x00f0, 0xf0f0, 0, 0xffff), a.AndNot(b))
		assert.Equal(t, NewU16x8(0x00ff, 0xf0f0, 0, 0xffff, 0xffff, 0xffff, 0xffff, 0xffff), a.Not())

		f := NewF32x4(-1.5, 2)
		signs := Broadcast[float32, [4]float32](float32(math.Copysign(0, -1)))
		assert.Equal(t, NewF32x4(1.5, 2), signs.AndNot(f), "and-not clears the sign bit")

		i := NewI16x8(-4, 3, math.MinInt16, 1)
		assert.Equal(t, NewI16x8(-16, 12, 0, 4), ShiftLeft(i, 2))
		assert.Equal(t, NewI16x8(-1, 0, -8192, 0), ShiftRight(i, 2), "signed shift is arithmetic")
		u := NewU16x8(0x8001, 3)
		assert.Equal(t, NewU16x8(0x2000, 0), ShiftRight(u, 2), "unsigned shift is logical")
		assert.Equal(t, NewU16x8(0x0003, 6), Rotl(u, 1))
		assert.Equal(t, NewU16x8(0xc000, 0x8001), Rotr(u, 1))
		assert.Equal(t, ShiftLeft(i, 0), i)

		mustPanic(t, func() { ShiftLeft(i, 16) })
		mustPanic(t, func() { ShiftRight(NewU32x4(), 32) })
		mustPanic(t, func() { Rotl(u, 0) })
		mustPanic(t, func() { Rotr(u, 16) })
	})
}

func TestComparisons(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		nan := float32(math.NaN())
		a := NewF32x4(1, nan, 3, 0)
		b := NewF32x4(2, nan, 3, float32(math.Copysign(0, -1)))
		assert.Equal(t, uint64(0b0110), a.EqMask(b), "NaN equals itself bitwise")
		assert.Equal(t, uint64(0b0001), a.LtMask(b))
		assert.Equal(t, uint64(0b1101), a.LeMask(b), "0 <= -0")
		assert.Equal(t, uint64(0b1001), a.NeMask(b), "0 and -0 differ bitwise")
		assert.Equal(t, uint64(0), a.GtMask(b), "ordered compares are false on NaN")
		assert.Equal(t, uint64(0b1100), a.GeMask(b))
		assert.True(t, a.Eq(a).AllTrue())
		assert.False(t, a.Lt(a).AnyTrue())
		assert.True(t, NewI8x16(0, -1).AnyTrue())
		assert.Equal(t, NewI32x4(-1, 0, -1, 0), NewI32x4(1, 5, -3, 9).Lt(NewI32x4(2, 5, 0, 1)))
		assert.Equal(t, uint64(0b0101), NewU32x4(1, 5, 0, 9).LtMask(NewU32x4(2, 5, math.MaxUint32, 1)), "unsigned ordering")
	})
}

func TestSelection(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		a := NewF32x4(2, 3, 4, 5)
		assert.Equal(t, NewF32x4(5, 3, 2, 5), a.Permute(swizzle.Must("wyx")), "permute keeps lanes past the pattern")
		assert.Equal(t, NewF32x4(5, 3, 2, 0), a.Swizzle(swizzle.Must("wyx")), "swizzle zeroes lanes past the pattern")
		assert.Equal(t, NewF32x4(2, 3, 4, 5), a.Permute(swizzle.Must("0_1.")))
		assert.Equal(t, NewF32x4(0, 0, 1, 0), a.Swizzle(swizzle.Must("0_1.")))
		assert.Equal(t, NewF32x4(0, 2, 3, 4), a.ShiftLanesLeft(1))
		assert.Equal(t, NewF32x4(4, 5, 0, 0), a.ShiftLanesRight(2))
		assert.Equal(t, NewF32x4(), a.ShiftLanesRight(4))
		assert.Equal(t, NewF32x4(2, 3, 9, 5), a.InsertFrom(0, 2, NewF32x4(9), 0))
		assert.Equal(t, NewF32x4(0, 3, 9, 5), a.InsertFrom(0, 2, NewF32x4(9), 0b0001))
		assert.Equal(t, Broadcast[float32, [4]float32](2), a.BroadcastLane0())

		wide := NewI32x8(0, 1, 2, 3, 4, 5, 6, 7)
		assert.Equal(t, NewI32x8(7, 6, 5, 4, 3, 2, 1, 0), wide.Swizzle(swizzle.Must("hgfedcba")))
		assert.Equal(t, NewI32x8(1, 1, 2, 3, 4, 5, 6, 7), wide.Permute(swizzle.Must("b")))

		var src [16]int8
		for i := range src {
			src[i] = int8(10 + i)
		}
		bytes := FromLanes[int8, [16]int8](src)
		shifted := Shuffle(bytes, ByteSrlIndices(3))
		assert.Equal(t, int8(13), shifted.Get(0))
		assert.Equal(t, int8(0), shifted.Get(13))
		shifted = Shuffle(bytes, ByteSllIndices(3))
		assert.Equal(t, int8(0), shifted.Get(2))
		assert.Equal(t, int8(10), shifted.Get(3))

		mustPanic(t, func() { a.Blend(a, 0b10000) })
		mustPanic(t, func() { a.SetZero(1 << 63) })
		mustPanic(t, func() { a.Permute(swizzle.Must("e")) })
		mustPanic(t, func() { a.Swizzle(swizzle.Must("xyzwa")) })
		mustPanic(t, func() { Shuffle(a, NewI32x8()) })
	})
}

func TestHorizontal(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		a, b := NewF32x4(2, 3, 4, 5), NewF32x4(12, 13, 14, 15)
		assert.Equal(t, NewF32x4(-1, -1, -1, -1), a.HorizontalSub(b))
		assert.Equal(t, Broadcast[float32, [4]float32](14), a.HorizontalSum())
		assert.Equal(t, float32(14), a.Sum())
		assert.Equal(t, float32(2*12+5*15), a.Dot(b, 0b1001))
		assert.Equal(t, int8(-128+127), NewI8x16(-128, 127).Sum())
		assert.Equal(t, uint8(44), NewU8x2(200, 100).Sum(), "sum wraps")

		// Left-to-right order: 1e8 + 1 - 1e8 loses the 1 in float32.
		assert.Equal(t, float32(0), NewF32x4(1e8, 1, -1e8, 0).Sum())

		mustPanic(t, func() { NewF32x1(1).HorizontalAdd(NewF32x1(2)) })
		mustPanic(t, func() { a.DotProduct(b, 0b10000) })
	})
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	assert.Panics(t, f)
}

func TestInterleaveLo(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		assert.Equal(t, NewI32x4(1, 5, 2, 6), NewI32x4(1, 2, 3, 4).InterleaveLo(NewI32x4(5, 6, 7, 8)))
		assert.Equal(t, NewU32x4(1, 5, 2, 6), NewU32x4(1, 2, 3, 4).InterleaveLo(NewU32x4(5, 6, 7, 8)))
		assert.Equal(t, NewF32x4(1, -1, 2, -2), NewF32x4(1, 2, 3, 4).InterleaveLo(NewF32x4(-1, -2, -3, -4)))
		assert.Equal(t, NewF64x4(1, 5, 2, 6), NewF64x4(1, 2, 3, 4).InterleaveLo(NewF64x4(5, 6, 7, 8)))
		assert.Equal(t, NewI64x4(1, 5, 2, 6), NewI64x4(1, 2, 3, 4).InterleaveLo(NewI64x4(5, 6, 7, 8)))
		assert.Equal(t, NewU16x8(1, 11, 2, 12, 3, 13, 4, 14),
			NewU16x8(1, 2, 3, 4, 5, 6, 7, 8).InterleaveLo(NewU16x8(11, 12, 13, 14, 15, 16, 17, 18)))
		assert.Equal(t, NewI16x8(1, -1, 2, -2, 3, -3, 4, -4),
			NewI16x8(1, 2, 3, 4, 5, 6, 7, 8).InterleaveLo(NewI16x8(-1, -2, -3, -4, -5, -6, -7, -8)))
		assert.Equal(t, NewI8x16(1, -1, 2, -2, 3, -3, 4, -4, 5, -5, 6, -6, 7, -7, 8, -8),
			NewI8x16(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16).
				InterleaveLo(NewI8x16(-1, -2, -3, -4, -5, -6, -7, -8, -9, -10, -11, -12, -13, -14, -15, -16)))
		assert.Equal(t, NewF64x2(1, 3), NewF64x2(1, 2).InterleaveLo(NewF64x2(3, 4)))
		assert.Equal(t, NewU8x4(1, 3, 2, 4), NewU8x4(1, 2, 9, 9).InterleaveLo(NewU8x4(3, 4, 9, 9)))
		assert.Equal(t, NewF32x1(1), NewF32x1(1).InterleaveLo(NewF32x1(2)))
	})
}

func TestEpsilonToBool(t *testing.T) {
	minNormal32 := math.Float32frombits(0x0080_0000)
	nan32 := float32(math.NaN())

	assert.Equal(t, Broadcast[float32, [4]float32](minNormal32), Epsilon[float32, [4]float32]())
	assert.Equal(t, Broadcast[float64, [4]float64](0x1p-1022), Epsilon[float64, [4]float64]())
	assert.Equal(t, I32x4{}, Epsilon[int32, [4]int32]())

	bothPaths(t, func(t *testing.T) {
		floats := []struct {
			name string
			a    F32x4
			want bool
		}{
			{"zero", F32x4{}, false},
			{"signed zero and denormals", NewF32x4(0, float32(math.Copysign(0, -1)), math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32), false},
			{"nan", NewF32x4(nan32, 0, nan32, 0), false},
			{"epsilon itself", NewF32x4(0, 0, 0, -minNormal32), false},
			{"just above epsilon", NewF32x4(0, 0, 0, math.Nextafter32(minNormal32, 1)), true},
			{"negative", NewF32x4(0, -1, 0, 0), true},
			{"infinity", NewF32x4(float32(math.Inf(-1))), true},
		}
		for _, tt := range floats {
			assert.Equal(t, tt.want, tt.a.ToBool(), tt.name)
		}
		assert.True(t, NewF64x4(0, 0, 1e-300, 0).ToBool())
		assert.False(t, NewF64x4(0, 5e-324, 0, 0).ToBool())

		assert.False(t, I32x4{}.ToBool())
		assert.True(t, NewI32x4(0, 0, 0, -1).ToBool())
		assert.True(t, NewU16x8(0, 0, 0, 0, 0, 0, 0, 1).ToBool())
		assert.False(t, I8x16{}.ToBool())
		assert.True(t, NewI8x16(math.MinInt8).ToBool())
		assert.True(t, NewU64x2(0, 1).ToBool())
	})
}

func TestAlmostEqPaths(t *testing.T) {
	bothPaths(t, func(t *testing.T) {
		nan := math.NaN()
		tests := []struct {
			name string
			got  uint64
			want uint64
		}{
			{"F32x4", AlmostEq(NewF32x4(1, 2, 3, float32(nan)), NewF32x4(1.05, 2.5, 3, 0), 0.1).Mask(), 0b0101},
			{"F64x4", AlmostEq(NewF64x4(1, -1, 0, nan), NewF64x4(1+1e-9, -1.5, -0.0, nan), 1e-6).Mask(), 0b0101},
			{"F64x4 zero eps", AlmostEq(NewF64x4(1, 2, 3, 4), NewF64x4(1, 2, 3, 4), 0).Mask(), 0},
			{"F32x2", AlmostEq(NewF32x2(1, 2), NewF32x2(1.5, 2), 1).Mask(), 0b11},
		}
		for _, tt := range tests {
			assert.Equal(t, tt.want, tt.got, tt.name)
		}
	})
}
