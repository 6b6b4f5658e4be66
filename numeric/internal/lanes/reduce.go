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

import (
	"fmt"
	"math"

	"github.com/hikogui/go-numeric/numeric/swizzle"
)

// Cross-lane kernels. dst must not overlap the inputs.

// HorizontalAdd adds adjacent pairs: the low half of dst holds the sums of a,
// the high half the sums of b.
func HorizontalAdd[T Lanes](dst, a, b []T) {
	half := checkPairs("HorizontalAdd", len(dst))
	for i := 0; i < half; i++ {
		dst[i] = a[2*i] + a[2*i+1]
		dst[half+i] = b[2*i] + b[2*i+1]
	}
}

// HorizontalSub subtracts adjacent pairs, even lane minus odd lane.
func HorizontalSub[T Lanes](dst, a, b []T) {
	half := checkPairs("HorizontalSub", len(dst))
	for i := 0; i < half; i++ {
		dst[i] = a[2*i] - a[2*i+1]
		dst[half+i] = b[2*i] - b[2*i+1]
	}
}

// InterleaveLo alternates the low halves of a and b: a0 b0 a1 b1 ...
func InterleaveLo[T Lanes](dst, a, b []T) {
	for i := range dst {
		if i%2 == 0 {
			dst[i] = a[i/2]
		} else {
			dst[i] = b[i/2]
		}
	}
}

func checkPairs(op string, n int) int {
	if n%2 != 0 {
		panic(fmt.Sprintf("%s: requires an even lane count, got %d", op, n))
	}
	return n / 2
}

// Sum adds the lanes strictly left to right, starting from lane 0.
func Sum[T Lanes](a []T) T {
	s := a[0]
	for _, x := range a[1:] {
		s += x
	}
	return s
}

// HorizontalSum broadcasts Sum(a).
func HorizontalSum[T Lanes](dst, a []T) {
	Broadcast(dst, Sum(a))
}

// Dot is Sum of a*b with the lanes outside m replaced by zero.
func Dot[T Lanes](a, b []T, m uint64) T {
	var s T
	for i := range a {
		var p T
		if m&(1<<uint(i)) != 0 {
			p = a[i] * b[i]
		}
		if i == 0 {
			s = p
		} else {
			s += p
		}
	}
	return s
}

// DotProduct broadcasts Dot(a, b, m).
func DotProduct[T Lanes](dst, a, b []T, m uint64) {
	Broadcast(dst, Dot(a, b, m))
}

// Permute reorders lanes by p; lanes p does not name keep their value.
func Permute[T Lanes](dst, a []T, p swizzle.Pattern) {
	checkPattern("Permute", p, len(a))
	for i := range dst {
		dst[i] = a[p.Index(i)]
	}
}

// Swizzle is Permute with literal lanes: '0', '1', keep characters and lanes
// past the end of p produce 0 or 1.
func Swizzle[T Lanes](dst, a []T, p swizzle.Pattern) {
	checkPattern("Swizzle", p, len(a))
	for i := range dst {
		switch s := p.SwizzleSource(i); s {
		case swizzle.Zero:
			dst[i] = 0
		case swizzle.One:
			dst[i] = 1
		default:
			dst[i] = a[s]
		}
	}
}

func checkPattern(op string, p swizzle.Pattern, n int) {
	if err := p.Validate(n); err != nil {
		panic(fmt.Sprintf("%s: %v", op, err))
	}
}

// Shuffle selects lane idx[i]&(len(a)-1) of a, or zero when idx[i] is negative.
// len(a) must be a power of two.
func Shuffle[T Lanes, I SignedInts](dst, a []T, idx []I) {
	wrap := len(a) - 1
	for i := range dst {
		if idx[i] < 0 {
			dst[i] = 0
		} else {
			dst[i] = a[int(idx[i])&wrap]
		}
	}
}

// Convert converts lane-wise. Float to integer conversion rounds half away
// from zero and saturates; NaN becomes 0. All other conversions follow Go.
func Convert[U, T Lanes](dst []U, a []T) {
	toInt := IsFloat[T]() && !IsFloat[U]()
	for i, x := range a {
		if toInt {
			dst[i] = FloatToInt[U](float64(x))
		} else {
			dst[i] = U(x)
		}
	}
}

// FloatToInt rounds f half away from zero and saturates it into U.
func FloatToInt[U Lanes](f float64) U {
	if f != f {
		return 0
	}
	r := math.Round(f)
	w := Width[U]()
	if IsSigned[U]() {
		limit := math.Ldexp(1, int(w)-1)
		switch {
		case r < -limit:
			return FromBits[U](signBit[U]())
		case r >= limit:
			return FromBits[U](signBit[U]() - 1)
		}
		return U(int64(r))
	}
	switch {
	case r < 0:
		return 0
	case r >= math.Ldexp(1, int(w)):
		return AllOnes[U]()
	}
	return U(uint64(r))
}

// PackSaturate narrows a then b into dst, clamping to U's range.
func PackSaturate[U Integers, T SignedInts](dst []U, a, b []T) {
	for i, x := range a {
		dst[i] = saturate[U](int64(x))
	}
	for i, x := range b {
		dst[len(a)+i] = saturate[U](int64(x))
	}
}

// PackTruncate narrows a then b into dst, keeping the low bits (modular).
func PackTruncate[U, T Integers](dst []U, a, b []T) {
	for i, x := range a {
		dst[i] = U(x)
	}
	for i, x := range b {
		dst[len(a)+i] = U(x)
	}
}

func saturate[U Integers](v int64) U {
	w := Width[U]()
	var lo, hi int64
	switch {
	case w == 64 && IsSigned[U]():
		return U(v)
	case w == 64:
		if v < 0 {
			return 0
		}
		return U(v)
	case IsSigned[U]():
		lo, hi = -(int64(1) << (w - 1)), int64(1)<<(w-1)-1
	default:
		lo, hi = 0, int64(1)<<w-1
	}
	switch {
	case v < lo:
		return U(lo)
	case v > hi:
		return U(hi)
	}
	return U(v)
}
