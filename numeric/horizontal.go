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

// Reductions add strictly left to right, starting from lane 0. The register
// paths follow the same order, so results are identical on every host.

// HorizontalAdd returns the pairwise sums of a in the low half and of b in the
// high half. It panics on a 1-lane array.
func (a Array[T, S]) HorizontalAdd(b Array[T, S]) Array[T, S] {
	return a.binary(b, opHorizontalAdd, lanes.HorizontalAdd[T])
}

// HorizontalSub returns the pairwise differences (even minus odd lane) of a in
// the low half and of b in the high half.
func (a Array[T, S]) HorizontalSub(b Array[T, S]) Array[T, S] {
	return a.binary(b, opHorizontalSub, lanes.HorizontalSub[T])
}

// HorizontalSum broadcasts the sum of all lanes.
func (a Array[T, S]) HorizontalSum() Array[T, S] {
	return a.unary(opHorizontalSum, lanes.HorizontalSum[T])
}

// DotProduct broadcasts the sum of a[i]*b[i] over the lanes selected by m.
func (a Array[T, S]) DotProduct(b Array[T, S], m uint64) Array[T, S] {
	lanes.CheckMask("DotProduct", m, len(a.v))
	return a.masked(b, m, opDotProduct, lanes.DotProduct[T])
}

// Sum returns the sum of all lanes.
func (a Array[T, S]) Sum() T {
	return a.HorizontalSum().v[0]
}

// Dot returns the sum of a[i]*b[i] over the lanes selected by m.
func (a Array[T, S]) Dot(b Array[T, S], m uint64) T {
	return a.DotProduct(b, m).v[0]
}
