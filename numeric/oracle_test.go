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
	"math/rand/v2"
	"testing"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viterin/vek/vek32"
)

// The tests below check the array algebra against independent vector
// libraries. They agree up to summation order, so reductions compare with a
// tolerance.

func TestDotMatchesVek(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 21))
	bothPaths(t, func(t *testing.T) {
		for i := 0; i < 100; i++ {
			a, b := make([]float32, 16), make([]float32, 16)
			for j := range a {
				a[j] = float32(rng.NormFloat64())
				b[j] = float32(rng.NormFloat64())
			}
			want := vek32.Dot(a, b)
			x, y := FromSlice[float32, [16]float32](a), FromSlice[float32, [16]float32](b)
			require.InDelta(t, want, x.Dot(y, 0xffff), 1e-4)

			lo := FromSlice[float32, [4]float32](a)
			require.InDelta(t, vek32.Dot(a[:4], b[:4]), lo.Dot(FromSlice[float32, [4]float32](b), 0b1111), 1e-5)
		}
	})
}

func TestMulMatchesVecmath(t *testing.T) {
	rng := rand.New(rand.NewPCG(22, 22))
	bothPaths(t, func(t *testing.T) {
		a, b, want := make([]float64, 8), make([]float64, 8), make([]float64, 8)
		for j := range a {
			a[j] = rng.NormFloat64() * 1e3
			b[j] = rng.NormFloat64()
		}
		vecmath.MulBlock(want, a, b)
		got := FromSlice[float64, [8]float64](a).Mul(FromSlice[float64, [8]float64](b))
		assert.Equal(t, want, got.Slice(), "lane-wise products are exact in both")

		x, y := FromSlice[float64, [4]float64](a), FromSlice[float64, [4]float64](b)
		assert.Equal(t, want[:4], x.Mul(y).Slice())
	})
}

func TestHypotMatchesVecmath(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 23))
	bothPaths(t, func(t *testing.T) {
		re, im, mag := make([]float64, 32), make([]float64, 32), make([]float64, 32)
		for j := range re {
			re[j] = rng.NormFloat64() * 10
			im[j] = rng.NormFloat64() * 10
		}
		vecmath.Magnitude(mag, re, im)
		for j := range re {
			assert.InDelta(t, mag[j], Hypot(NewF64x2(re[j], im[j]), 0b11), 1e-12)
		}
	})
}
