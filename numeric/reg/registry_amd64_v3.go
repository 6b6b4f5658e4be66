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

//go:build amd64.v3

package reg

// GOAMD64=v3 guarantees AVX2, so the 256-bit wrappers are native too.
const (
	nativeF32x4 = true
	nativeI32x4 = true
	nativeU32x4 = true
	nativeI8x16 = true
	nativeI16x8 = true
	nativeU16x8 = true
	nativeF64x4 = true
	nativeI64x4 = true
)
