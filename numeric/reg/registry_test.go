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
	"strconv"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		lookup func() (Info, bool)
		want   string
		ok     bool
	}{
		{"float32x4", func() (Info, bool) { return Lookup[float32](4) }, "F32x4", true},
		{"float64x4", func() (Info, bool) { return Lookup[float64](4) }, "F64x4", true},
		{"int8x16", func() (Info, bool) { return Lookup[int8](16) }, "I8x16", true},
		{"uint16x8", func() (Info, bool) { return Lookup[uint16](8) }, "U16x8", true},
		{"float32x8", func() (Info, bool) { return Lookup[float32](8) }, "", false},
		{"uint8x16", func() (Info, bool) { return Lookup[uint8](16) }, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := tt.lookup()
			if ok != tt.ok || info.Name != tt.want {
				t.Errorf("got %q, %v; want %q, %v", info.Name, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestElemName(t *testing.T) {
	got := []string{ElemName[float32](), ElemName[float64](), ElemName[int8](), ElemName[uint64]()}
	want := []string{"float32", "float64", "int8", "uint64"}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("ElemName #%d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryConsistency(t *testing.T) {
	natives := map[string]bool{
		"F32x4": NativeF32x4, "F64x4": NativeF64x4, "I32x4": NativeI32x4, "U32x4": NativeU32x4,
		"I64x4": NativeI64x4, "I8x16": NativeI8x16, "I16x8": NativeI16x8, "U16x8": NativeU16x8,
	}
	all := All()
	if len(all) != len(natives) {
		t.Fatalf("All: got %d wrappers, want %d", len(all), len(natives))
	}
	registered := 0
	for _, info := range all {
		if info.Native != natives[info.Name] {
			t.Errorf("%s: Native = %v, constant says %v", info.Name, info.Native, natives[info.Name])
		}
		if info.Native {
			registered++
		}
		if !strings.HasSuffix(info.Elem, strconv.Itoa(info.Bits/info.Lanes)) {
			t.Errorf("%s: %d lanes of %s do not fill %d bits", info.Name, info.Lanes, info.Elem, info.Bits)
		}
	}
	if got := len(Registered()); got != registered {
		t.Errorf("Registered: got %d, want %d", got, registered)
	}
	if Native[float32](4) != NativeF32x4 || Native[float32](8) {
		t.Errorf("Native[float32] disagrees with NativeF32x4")
	}

	// All returns a copy.
	all[0].Name = "changed"
	if All()[0].Name == "changed" {
		t.Error("All exposes the registry slice")
	}
}

func TestInfoString(t *testing.T) {
	info, _ := Lookup[float64](4)
	if got, want := info.String(), "F64x4(4xfloat64, 256-bit)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDispatchLevel(t *testing.T) {
	tests := []struct {
		level   DispatchLevel
		name    string
		width   int
		kernels bool
	}{
		{DispatchScalar, "scalar", 16, false},
		{DispatchSSE2, "sse2", 16, false},
		{DispatchSSE3, "sse3", 16, false},
		{DispatchSSSE3, "ssse3", 16, false},
		{DispatchSSE41, "sse4.1", 16, false},
		{DispatchAVX, "avx", 32, true},
		{DispatchAVX2, "avx2", 32, true},
		{DispatchNEON, "neon", 16, false},
		{DispatchLevel(99), "unknown", 16, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.String(); got != tt.name {
				t.Errorf("String: got %q, want %q", got, tt.name)
			}
			if got := tt.level.Width(); got != tt.width {
				t.Errorf("Width: got %d, want %d", got, tt.width)
			}
			if got := hardwareKernels(tt.level); got != tt.kernels {
				t.Errorf("hardwareKernels: got %v, want %v", got, tt.kernels)
			}
		})
	}
	if CurrentName() != CurrentLevel().String() {
		t.Errorf("CurrentName %q does not match CurrentLevel %v", CurrentName(), CurrentLevel())
	}
	if CurrentWidth() != CurrentLevel().Width() {
		t.Errorf("CurrentWidth %d does not match level", CurrentWidth())
	}
	if Features().Architecture == "" {
		t.Error("Features().Architecture is empty")
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("NUMERIC_NO_SIMD", tt.value)
			if got := NoSimdEnv(); got != tt.want {
				t.Errorf("NoSimdEnv() with %q: got %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
