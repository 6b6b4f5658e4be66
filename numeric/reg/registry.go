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

import (
	"fmt"

	"github.com/hikogui/go-numeric/numeric/internal/lanes"
)

// Build-time capability constants, one per wrapper. Dispatch sites branch on
// them so code for wrappers the target lacks is compiled out.
const (
	NativeF32x4 = nativeF32x4
	NativeF64x4 = nativeF64x4
	NativeI32x4 = nativeI32x4
	NativeU32x4 = nativeU32x4
	NativeI64x4 = nativeI64x4
	NativeI8x16 = nativeI8x16
	NativeI16x8 = nativeI16x8
	NativeU16x8 = nativeU16x8
)

// Info describes one register wrapper.
type Info struct {
	// Name is the wrapper type name, e.g. "F32x4".
	Name string
	// Elem is the lane type name, e.g. "float32".
	Elem string
	// Lanes is the number of lanes.
	Lanes int
	// Bits is the register width in bits.
	Bits int
	// Native reports whether this build dispatches to the wrapper.
	Native bool
}

func (i Info) String() string {
	return fmt.Sprintf("%s(%dx%s, %d-bit)", i.Name, i.Lanes, i.Elem, i.Bits)
}

// wrappers lists every register wrapper in this package. Native comes from
// the per-architecture registry_*.go constants.
var wrappers = []Info{
	{Name: "F32x4", Elem: "float32", Lanes: 4, Bits: 128, Native: nativeF32x4},
	{Name: "F64x4", Elem: "float64", Lanes: 4, Bits: 256, Native: nativeF64x4},
	{Name: "I32x4", Elem: "int32", Lanes: 4, Bits: 128, Native: nativeI32x4},
	{Name: "U32x4", Elem: "uint32", Lanes: 4, Bits: 128, Native: nativeU32x4},
	{Name: "I64x4", Elem: "int64", Lanes: 4, Bits: 256, Native: nativeI64x4},
	{Name: "I8x16", Elem: "int8", Lanes: 16, Bits: 128, Native: nativeI8x16},
	{Name: "I16x8", Elem: "int16", Lanes: 8, Bits: 128, Native: nativeI16x8},
	{Name: "U16x8", Elem: "uint16", Lanes: 8, Bits: 128, Native: nativeU16x8},
}

// ElemName returns the Go name of the underlying lane type of T.
func ElemName[T Lanes]() string {
	prefix := "uint"
	switch {
	case lanes.IsFloat[T]():
		prefix = "float"
	case lanes.IsSigned[T]():
		prefix = "int"
	}
	return fmt.Sprintf("%s%d", prefix, lanes.Width[T]())
}

// Lookup returns the register wrapper for n lanes of T, if this package has one.
func Lookup[T Lanes](n int) (Info, bool) {
	elem := ElemName[T]()
	for _, w := range wrappers {
		if w.Elem == elem && w.Lanes == n {
			return w, true
		}
	}
	return Info{}, false
}

// Native reports whether a register wrapper for n lanes of T exists and is
// enabled by the build target. It does not consult the runtime dispatch level.
func Native[T Lanes](n int) bool {
	w, ok := Lookup[T](n)
	return ok && w.Native
}

// All returns every register wrapper, native or not.
func All() []Info {
	return append([]Info(nil), wrappers...)
}

// Registered returns the wrappers that are native on this build.
func Registered() []Info {
	var out []Info
	for _, w := range wrappers {
		if w.Native {
			out = append(out, w)
		}
	}
	return out
}
