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

var i8x16Shuffle = func(a, idx [16]int8) [16]int8 {
	var r [16]int8
	lanes.Shuffle(r[:], a[:], idx[:])
	return r
}

// Shuffle is the byte shuffle (PSHUFB): lane i is a[idx[i]&15], or zero when
// idx[i] is negative.
func (a I8x16) Shuffle(idx I8x16) I8x16 {
	return I8x16{i8x16Shuffle(a.v, idx.v)}
}

// ByteSrlIndices returns the Shuffle control that moves every byte k lanes
// towards lane 0, filling the top with zeros (a whole-register right shift).
func ByteSrlIndices(k uint) I8x16 {
	var r I8x16
	for i := range r.v {
		if j := uint(i) + k; j < 16 {
			r.v[i] = int8(j)
		} else {
			r.v[i] = -1
		}
	}
	return r
}

// ByteSllIndices returns the Shuffle control that moves every byte k lanes
// away from lane 0, filling the bottom with zeros (a whole-register left shift).
func ByteSllIndices(k uint) I8x16 {
	var r I8x16
	for i := range r.v {
		if uint(i) >= k {
			r.v[i] = int8(uint(i) - k)
		} else {
			r.v[i] = -1
		}
	}
	return r
}

// TransposeF32x4 transposes the 4x4 matrix whose columns are c0..c3
// (_MM_TRANSPOSE4_PS).
func TransposeF32x4(c0, c1, c2, c3 F32x4) (r0, r1, r2, r3 F32x4) {
	// unpacklo/unpackhi then movelh/movehl.
	t0 := F32x4{[4]float32{c0.v[0], c1.v[0], c0.v[1], c1.v[1]}}
	t1 := F32x4{[4]float32{c2.v[0], c3.v[0], c2.v[1], c3.v[1]}}
	t2 := F32x4{[4]float32{c0.v[2], c1.v[2], c0.v[3], c1.v[3]}}
	t3 := F32x4{[4]float32{c2.v[2], c3.v[2], c2.v[3], c3.v[3]}}
	r0 = F32x4{[4]float32{t0.v[0], t0.v[1], t1.v[0], t1.v[1]}}
	r1 = F32x4{[4]float32{t0.v[2], t0.v[3], t1.v[2], t1.v[3]}}
	r2 = F32x4{[4]float32{t2.v[0], t2.v[1], t3.v[0], t3.v[1]}}
	r3 = F32x4{[4]float32{t2.v[2], t2.v[3], t3.v[2], t3.v[3]}}
	return r0, r1, r2, r3
}
