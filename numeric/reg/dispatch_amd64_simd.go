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

//go:build amd64 && goexperiment.simd

package reg

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode("amd64")
		return
	}

	detectCPUFeatures()
	currentLevel = levelFromFeatures(features)
	currentName = currentLevel.String()
	features.Kernels = true
}

func detectCPUFeatures() {
	// archsimd knows whether the OS saves the wide register state; x/sys/cpu
	// covers the SSE family it does not expose.
	features = FeatureSet{
		Architecture: "amd64",
		HasSSE2:      cpu.X86.HasSSE2,
		HasSSE3:      cpu.X86.HasSSE3,
		HasSSSE3:     cpu.X86.HasSSSE3,
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX:       archsimd.X86.AVX(),
		HasAVX2:      archsimd.X86.AVX2(),
		HasFMA:       cpu.X86.HasFMA,
	}
}

// levelFromFeatures picks the highest level whose prerequisites are all present.
func levelFromFeatures(f FeatureSet) DispatchLevel {
	switch {
	case f.HasAVX2 && f.HasAVX && f.HasSSE41:
		return DispatchAVX2
	case f.HasAVX && f.HasSSE41:
		return DispatchAVX
	case f.HasSSE41 && f.HasSSSE3:
		return DispatchSSE41
	case f.HasSSSE3 && f.HasSSE3:
		return DispatchSSSE3
	case f.HasSSE3:
		return DispatchSSE3
	default:
		// SSE2 is baseline for amd64
		return DispatchSSE2
	}
}
