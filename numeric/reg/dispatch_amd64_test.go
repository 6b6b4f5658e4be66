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

//go:build amd64

package reg

import "testing"

func TestLevelFromFeatures(t *testing.T) {
	tests := []struct {
		name     string
		features FeatureSet
		want     DispatchLevel
	}{
		{"baseline", FeatureSet{HasSSE2: true}, DispatchSSE2},
		{"sse3", FeatureSet{HasSSE2: true, HasSSE3: true}, DispatchSSE3},
		{"ssse3", FeatureSet{HasSSE2: true, HasSSE3: true, HasSSSE3: true}, DispatchSSSE3},
		{"sse4.1", FeatureSet{HasSSE2: true, HasSSE3: true, HasSSSE3: true, HasSSE41: true}, DispatchSSE41},
		{"sse4.1+fma", FeatureSet{HasSSE2: true, HasSSE3: true, HasSSSE3: true, HasSSE41: true, HasFMA: true}, DispatchSSE41},
		{"avx", FeatureSet{HasSSE2: true, HasSSE3: true, HasSSSE3: true, HasSSE41: true, HasAVX: true}, DispatchAVX},
		{"avx2", FeatureSet{HasSSE2: true, HasSSE3: true, HasSSSE3: true, HasSSE41: true, HasAVX: true, HasAVX2: true}, DispatchAVX2},
		{"avx2 without os support for avx", FeatureSet{HasSSE2: true, HasSSE3: true, HasSSSE3: true, HasSSE41: true, HasAVX2: true}, DispatchSSE41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := levelFromFeatures(tt.features)
			if level != tt.want {
				t.Fatalf("levelFromFeatures: got %v, want %v", level, tt.want)
			}
			// Hardware kernels are VEX encoded: without AVX they must stay out.
			if got, want := hardwareKernels(level), tt.features.HasAVX; got != want {
				t.Errorf("hardwareKernels(%v): got %v, want %v", level, got, want)
			}
		})
	}
}

func TestKernelsRequireAVX(t *testing.T) {
	f := Features()
	if f.Kernels && hardwareKernels(CurrentLevel()) && !f.HasAVX {
		t.Errorf("hardware kernels enabled at %v without AVX", CurrentLevel())
	}
}
