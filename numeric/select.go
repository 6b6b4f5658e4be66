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
	"github.com/hikogui/go-numeric/numeric/swizzle"
)

// Blend takes lane i from b when bit i of m is set, else from a.
func (a Array[T, S]) Blend(b Array[T, S], m uint64) Array[T, S] {
	lanes.CheckMask("Blend", m, len(a.v))
	return a.masked(b, m, opBlend, lanes.Blend[T])
}

// SetZero zeroes lane i when bit i of m is set.
func (a Array[T, S]) SetZero(m uint64) Array[T, S] {
	lanes.CheckMask("SetZero", m, len(a.v))
	if be := backendFor[T, S](); be != nil {
		return Array[T, S]{be.setZero(a.v, m)}
	}
	var r Array[T, S]
	lanes.SetZero(r.view(), a.view(), m)
	return r
}

// Select takes lane i from a when the sign bit of lane i of m is clear, else
// from b.
func (a Array[T, S]) Select(b, m Array[T, S]) Array[T, S] {
	return a.Blend(b, m.Mask())
}

// InterleaveLo alternates the low halves of a and b: a0 b0 a1 b1 ...
func (a Array[T, S]) InterleaveLo(b Array[T, S]) Array[T, S] {
	return a.binary(b, opInterleaveLo, lanes.InterleaveLo[T])
}

// Permute reorders lanes by p. Literal and keep characters, and lanes past the
// end of p, leave the lane unchanged. It panics when p selects a lane >= N.
func (a Array[T, S]) Permute(p swizzle.Pattern) Array[T, S] {
	if be := backendFor[T, S](); be != nil {
		return Array[T, S]{be.permute(a.v, p)}
	}
	var r Array[T, S]
	lanes.Permute(r.view(), a.view(), p)
	return r
}

// Swizzle reorders lanes by p and writes the literals '0' and '1'. Keep
// characters and lanes past the end of p become 0.
func (a Array[T, S]) Swizzle(p swizzle.Pattern) Array[T, S] {
	if be := backendFor[T, S](); be != nil {
		return Array[T, S]{be.swizzle(a.v, p)}
	}
	var r Array[T, S]
	lanes.Swizzle(r.view(), a.view(), p)
	return r
}

// Shuffle selects lane idx[i]&(N-1) of a for lane i, or zero when idx[i] is
// negative. a and idx must have the same lane count.
func Shuffle[T Lanes, S Storage[T], I SignedInts, SI Storage[I]](a Array[T, S], idx Array[I, SI]) Array[T, S] {
	if len(a.v) != len(idx.v) {
		panic(fmt.Sprintf("Shuffle: %d indices for %d lanes", len(idx.v), len(a.v)))
	}
	if useRegisters && reg.NativeI8x16 {
		av, ok1 := any(a.v).([16]int8)
		iv, ok2 := any(idx.v).([16]int8)
		if ok1 && ok2 {
			r := reg.I8x16FromArray(av).Shuffle(reg.I8x16FromArray(iv))
			return Array[T, S]{any(r.Array()).(S)}
		}
	}
	var r Array[T, S]
	lanes.Shuffle(r.view(), a.view(), idx.view())
	return r
}

// ByteSrlIndices returns the Shuffle control that moves every byte k lanes
// towards lane 0 and fills the top with zeros.
func ByteSrlIndices(k uint) I8x16 {
	return FromLanes[int8, [16]int8](reg.ByteSrlIndices(k).Array())
}

// ByteSllIndices returns the Shuffle control that moves every byte k lanes
// away from lane 0 and fills the bottom with zeros.
func ByteSllIndices(k uint) I8x16 {
	return FromLanes[int8, [16]int8](reg.ByteSllIndices(k).Array())
}

// ShiftLanesLeft moves lane i to lane i+k; the low k lanes become zero.
func (a Array[T, S]) ShiftLanesLeft(k int) Array[T, S] {
	var r Array[T, S]
	for i := k; i < len(a.v); i++ {
		if i >= 0 {
			r.v[i] = a.v[i-k]
		}
	}
	return r
}

// ShiftLanesRight moves lane i+k to lane i; the high k lanes become zero.
func (a Array[T, S]) ShiftLanesRight(k int) Array[T, S] {
	var r Array[T, S]
	for i := 0; i+k < len(a.v); i++ {
		if i+k >= 0 {
			r.v[i] = a.v[i+k]
		}
	}
	return r
}

// Combine concatenates lo and hi into an array of twice their lane count.
func Combine[T Lanes, S Storage[T], H Storage[T]](lo, hi Array[T, H]) Array[T, S] {
	var r Array[T, S]
	if len(r.v) != 2*len(lo.v) {
		panic(fmt.Sprintf("Combine: two %d-lane halves for %d lanes", len(lo.v), len(r.v)))
	}
	v := r.view()
	copy(v, lo.view())
	copy(v[len(lo.v):], hi.view())
	return r
}

// Split returns the low and high halves of a.
func Split[T Lanes, H Storage[T], S Storage[T]](a Array[T, S]) (lo, hi Array[T, H]) {
	if 2*len(lo.v) != len(a.v) {
		panic(fmt.Sprintf("Split: %d lanes into %d-lane halves", len(a.v), len(lo.v)))
	}
	v := a.view()
	copy(lo.view(), v)
	copy(hi.view(), v[len(lo.v):])
	return lo, hi
}
