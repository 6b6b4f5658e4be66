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

// Package numeric provides fixed-length numeric arrays with a SIMD-style
// algebra: arithmetic, bitwise, comparison, reduction, shuffle, permute,
// blend, bit-cast and small-vector geometry.
//
// The value type is Array[T, S], N lanes of T stored in the array type S.
// Named aliases cover the common shapes:
//
//	v := numeric.NewF32x4(1, 2, 3, 4)
//	w := v.Add(numeric.NewF32x4(0, 2, -3, 2))      // (1; 4; 0; 6)
//	d := v.DotProduct(w, 0b0011)                    // broadcast of a.x*b.x + a.y*b.y
//	s := v.Swizzle(swizzle.Must("wzyx"))           // (4; 3; 2; 1)
//
// Every operation is defined by a scalar reference kernel. When the build
// target has a register wrapper for (T, N) (see package reg) and the runtime
// dispatch level is not scalar, the operation runs on the wrapper instead;
// both paths produce bit-identical results.
//
// Caller errors (lane index or mask out of range, shift count not below the
// lane width, mismatched sizes) panic. Nothing in this package allocates on
// the operation paths or keeps mutable global state.
package numeric

//go:generate go run ../cmd/numgen -output aliases.go
