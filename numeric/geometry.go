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

	"github.com/hikogui/go-numeric/numeric/reg"
	"github.com/hikogui/go-numeric/numeric/swizzle"
)

var (
	yzxw = swizzle.Must("yzxw")
	zxyw = swizzle.Must("zxyw")
	wwww = swizzle.Must("wwww")
	xyz1 = swizzle.Must("xyz1")
	www1 = swizzle.Must("www1")
)

func requireLanes(op string, n, want int) {
	if n != want {
		panic(fmt.Sprintf("%s: requires %d lanes, have %d", op, want, n))
	}
}

// IsPoint reports whether the last lane is non-zero (a homogeneous point).
func (a Array[T, S]) IsPoint() bool {
	return a.v[len(a.v)-1] != 0
}

// IsVector reports whether the last lane is zero (a homogeneous direction).
func (a Array[T, S]) IsVector() bool {
	return a.v[len(a.v)-1] == 0
}

// IsOpaque reports whether the alpha lane is 1.
func (a Array[T, S]) IsOpaque() bool {
	return a.A() == 1
}

// IsTransparent reports whether the alpha lane is 0.
func (a Array[T, S]) IsTransparent() bool {
	return a.A() == 0
}

// Orthogonal2D rotates the 2D vector v a quarter turn: (-v.y, v.x). The other
// lanes are zero.
func Orthogonal2D[T Floats, S Storage[T]](v Array[T, S]) Array[T, S] {
	var r Array[T, S]
	return r.Insert(0, -v.Y()).Insert(1, v.X())
}

// Cross2D is the 2D cross product a.x*b.y - a.y*b.x.
func Cross2D[T Floats, S Storage[T]](a, b Array[T, S]) T {
	return a.X()*b.Y() - a.Y()*b.X()
}

// Normal2D is the unit normal of the 2D vector v.
func Normal2D[T Floats, S Storage[T]](v Array[T, S]) Array[T, S] {
	return Normalize(Orthogonal2D(v), 0b0011)
}

// Cross3D is the cross product of the xyz lanes of two 4-lane arrays. The w
// lane of the result is zero.
func Cross3D[T Floats, S Storage[T]](a, b Array[T, S]) Array[T, S] {
	requireLanes("Cross3D", len(a.v), 4)
	l := a.Permute(yzxw).Mul(b.Permute(zxyw))
	r := a.Permute(zxyw).Mul(b.Permute(yzxw))
	return l.Sub(r).SetZero(0b1000)
}

// Midpoint is the point halfway between p and q.
func Midpoint[T Floats, S Storage[T]](p, q Array[T, S]) Array[T, S] {
	return p.Add(q).Mul(Broadcast[T, S](0.5))
}

// Reflect mirrors p through anchor.
func Reflect[T Lanes, S Storage[T]](p, anchor Array[T, S]) Array[T, S] {
	return anchor.Sub(p.Sub(anchor))
}

// Composit places the straight-alpha RGBA color over on top of under.
func Composit[T Floats, S Storage[T]](under, over Array[T, S]) Array[T, S] {
	requireLanes("Composit", len(over.v), 4)
	switch a := over.A(); {
	case a <= 0:
		return under
	case a >= 1:
		return over
	}
	overAlpha := over.Swizzle(wwww)
	underAlpha := under.Swizzle(wwww)
	one := Broadcast[T, S](1)
	c := over.Swizzle(xyz1).Mul(overAlpha).
		Add(under.Swizzle(xyz1).Mul(underAlpha).Mul(one.Sub(overAlpha)))
	return c.Div(c.Swizzle(www1))
}

// Transpose returns the transpose of the NxN matrix whose columns are cols.
// It panics unless len(cols) is N.
func Transpose[T Floats, S Storage[T]](cols ...Array[T, S]) []Array[T, S] {
	r := make([]Array[T, S], len(cols))
	TransposeInto(r, cols)
	return r
}

// TransposeInto writes the transpose of cols into dst. dst and cols must both
// hold N columns and must not overlap.
func TransposeInto[T Floats, S Storage[T]](dst, cols []Array[T, S]) {
	var zero S
	n := len(zero)
	if len(cols) != n || len(dst) != n {
		panic(fmt.Sprintf("Transpose: %d columns into %d for %d lanes", len(cols), len(dst), n))
	}
	if useRegisters && reg.NativeF32x4 {
		if _, ok := any(zero).([4]float32); ok {
			c := func(i int) reg.F32x4 { return reg.F32x4FromArray(any(cols[i].v).([4]float32)) }
			r0, r1, r2, r3 := reg.TransposeF32x4(c(0), c(1), c(2), c(3))
			for i, r := range [4]reg.F32x4{r0, r1, r2, r3} {
				dst[i] = Array[T, S]{any(r.Array()).(S)}
			}
			return
		}
	}
	for i := range n {
		for j := range n {
			dst[i].v[j] = cols[j].v[i]
		}
	}
}
