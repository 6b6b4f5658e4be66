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
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set the register kernels target.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD: register wrappers are not used by the
	// numeric array and every kernel is the portable one.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline).
	DispatchSSE2

	// DispatchSSE3 indicates SSE3 (horizontal add/sub).
	DispatchSSE3

	// DispatchSSSE3 indicates SSSE3 (byte shuffle, integer abs).
	DispatchSSSE3

	// DispatchSSE41 indicates SSE4.1 (blend, insert, round, dot product).
	DispatchSSE41

	// DispatchAVX indicates AVX (256-bit float registers).
	DispatchAVX

	// DispatchAVX2 indicates AVX2 (256-bit integer registers).
	DispatchAVX2

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE3:
		return "sse3"
	case DispatchSSSE3:
		return "ssse3"
	case DispatchSSE41:
		return "sse4.1"
	case DispatchAVX:
		return "avx"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the widest register in bytes available at this level.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX, DispatchAVX2:
		return 32
	default:
		return 16
	}
}

// hardwareKernels reports whether the archsimd kernels may run at level d.
// They are all VEX encoded, so every level below AVX keeps the portable ones.
func hardwareKernels(d DispatchLevel) bool {
	return d == DispatchAVX || d == DispatchAVX2
}

// FeatureSet lists the individual ISA extensions seen on the host.
type FeatureSet struct {
	Architecture string
	HasSSE2      bool
	HasSSE3      bool
	HasSSSE3     bool
	HasSSE41     bool
	HasAVX       bool
	HasAVX2      bool
	HasFMA       bool
	HasNEON      bool

	// Kernels reports whether hardware register kernels are installed
	// (GOEXPERIMENT=simd on amd64). Otherwise the wrappers run the portable
	// register image.
	Kernels bool
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// features is filled in by init() in dispatch_*.go files.
var features FeatureSet

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the widest register in bytes for the current level.
func CurrentWidth() int {
	return currentLevel.Width()
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// Features returns the ISA extensions detected on the host. With
// NUMERIC_NO_SIMD set every flag is false.
func Features() FeatureSet {
	return features
}

// NoSimdEnv checks if the NUMERIC_NO_SIMD environment variable is set.
// When set, the numeric array uses its scalar reference path regardless of
// CPU capabilities. This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("NUMERIC_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode(arch string) {
	currentLevel = DispatchScalar
	currentName = "scalar"
	features = FeatureSet{Architecture: arch}
}
