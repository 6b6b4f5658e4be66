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
	"github.com/hikogui/go-numeric/numeric/internal/lanes"
)

// Comparisons set lane i to all ones when the predicate holds, else zero.
// Eq and Ne compare bit patterns, so a NaN equals itself; the ordered
// comparisons are false when either operand is NaN.

func (a Array[T, S]) Eq(b Array[T, S]) Array[T, S] { return a.binary(b, opEq, lanes.Eq[T]) }
func (a Array[T, S]) Ne(b Array[T, S]) Array[T, S] { return a.binary(b, opNe, lanes.Ne[T]) }
func (a Array[T, S]) Lt(b Array[T, S]) Array[T, S] { return a.binary(b, opLt, lanes.Lt[T]) }
func (a Array[T, S]) Gt(b Array[T, S]) Array[T, S] { return a.binary(b, opGt, lanes.Gt[T]) }
func (a Array[T, S]) Le(b Array[T, S]) Array[T, S] { return a.binary(b, opLe, lanes.Le[T]) }
func (a Array[T, S]) Ge(b Array[T, S]) Array[T, S] { return a.binary(b, opGe, lanes.Ge[T]) }

// Mask gathers the sign bit of every lane; bit i is lane i.
func (a Array[T, S]) Mask() uint64 {
	if be := backendFor[T, S](); be != nil {
		return be.mask(a.v)
	}
	return lanes.Mask(a.view())
}

func (a Array[T, S]) EqMask(b Array[T, S]) uint64 { return a.Eq(b).Mask() }
func (a Array[T, S]) NeMask(b Array[T, S]) uint64 { return a.Ne(b).Mask() }
func (a Array[T, S]) LtMask(b Array[T, S]) uint64 { return a.Lt(b).Mask() }
func (a Array[T, S]) GtMask(b Array[T, S]) uint64 { return a.Gt(b).Mask() }
func (a Array[T, S]) LeMask(b Array[T, S]) uint64 { return a.Le(b).Mask() }
func (a Array[T, S]) GeMask(b Array[T, S]) uint64 { return a.Ge(b).Mask() }

// AllTrue reports whether the sign bit of every lane is set, as it is for a
// comparison result where the predicate held on all lanes.
func (a Array[T, S]) AllTrue() bool {
	return a.Mask() == lanes.MaskBits(len(a.v))
}

// AnyTrue reports whether the sign bit of any lane is set.
func (a Array[T, S]) AnyTrue() bool {
	return a.Mask() != 0
}

// Epsilon broadcasts the smallest positive normal value of T; for integers
// it is zero.
func Epsilon[T Lanes, S Storage[T]]() Array[T, S] {
	return Broadcast[T, S](lanes.MinNormal[T]())
}

// ToBool reports whether a is distinguishable from zero. A float lane counts
// when it lies outside [-Epsilon, Epsilon], so denormals, -0 and NaN do not;
// an integer lane counts when it is non-zero.
func (a Array[T, S]) ToBool() bool {
	if !lanes.IsFloat[T]() {
		var zero Array[T, S]
		return a.Ne(zero).AnyTrue()
	}
	ep := Epsilon[T, S]()
	return ep.Neg().Gt(a).Or(a.Gt(ep)).AnyTrue()
}
