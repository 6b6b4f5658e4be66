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

package swizzle

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sources(p Pattern, lanes int) []Source {
	out := make([]Source, lanes)
	for i := range out {
		out[i] = p.Source(i)
	}
	return out
}

func TestCompileSources(t *testing.T) {
	tests := []struct {
		pattern string
		lanes   int
		want    []Source
	}{
		{"wzyx", 4, []Source{3, 2, 1, 0}},
		{"dcba", 4, []Source{3, 2, 1, 0}},
		{"1b01", 4, []Source{One, 1, Zero, One}},
		{"xy", 4, []Source{0, 1, Keep, Keep}},
		{"x_z.", 4, []Source{0, Keep, 2, Keep}},
		{"ponmlkjihgfedcba", 16, []Source{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{"", 2, []Source{Keep, Keep}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p, err := Compile(tt.pattern)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.pattern, err)
			}
			if diff := cmp.Diff(tt.want, sources(p, tt.lanes)); diff != "" {
				t.Errorf("sources mismatch (-want +got):\n%s", diff)
			}
			if p.String() != tt.pattern || p.Len() != len(tt.pattern) {
				t.Errorf("String/Len: got %q/%d", p.String(), p.Len())
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, s := range []string{"xq", "abcv", "a\x01", "a\xff", strings.Repeat("a", MaxLen+1)} {
		if _, err := Compile(s); !errors.Is(err, ErrInvalidPattern) {
			t.Errorf("Compile(%q): got %v, want ErrInvalidPattern", s, err)
		}
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must(\"q\") did not panic")
		}
	}()
	Must("q")
}

func TestMasks(t *testing.T) {
	tests := []struct {
		pattern  string
		lanes    int
		ones     uint64
		zeros    uint64
		strategy Strategy
	}{
		{"wzyx", 4, 0b0000, 0b0000, StrategyPermute},
		{"1b01", 4, 0b1001, 0b0100, StrategyPermuteBlend},
		{"x0z0", 4, 0b0000, 0b1010, StrategyPermuteZero},
		{"xy", 4, 0b0000, 0b1100, StrategyPermuteZero},
		{"0110", 4, 0b0110, 0b1001, StrategyConstant},
		{"", 4, 0, 0b1111, StrategyConstant},
		{"a_", 2, 0, 0b10, StrategyPermuteZero},
		{"ab", 64, 0, ^uint64(0) &^ 0b11, StrategyPermuteZero},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := Must(tt.pattern)
			if got := p.OnesMask(tt.lanes); got != tt.ones {
				t.Errorf("OnesMask: got %b, want %b", got, tt.ones)
			}
			if got := p.ZerosMask(tt.lanes); got != tt.zeros {
				t.Errorf("ZerosMask: got %b, want %b", got, tt.zeros)
			}
			if got := p.Strategy(tt.lanes); got != tt.strategy {
				t.Errorf("Strategy: got %v, want %v", got, tt.strategy)
			}
		})
	}
}

func TestOrder(t *testing.T) {
	// "wzyx" is the classic _MM_SHUFFLE(0,1,2,3) immediate.
	if got := Must("wzyx").Order(2, 4); got != 0b00_01_10_11 {
		t.Errorf("Order(wzyx): got %08b, want 00011011", got)
	}
	// Literals and keep characters select their own lane.
	if got := Must("1b0_").Order(2, 4); got != 0b11_10_01_00 {
		t.Errorf("Order(1b0_): got %08b, want 11100100", got)
	}
	got := Must("ponmlkjihgfedcba").Order(4, 16)
	want := uint64(0x0123456789abcdef)
	if got != want {
		t.Errorf("Order(16 lanes): got %016x, want %016x", got, want)
	}
}

func TestOrderOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Order(4, 32) did not panic")
		}
	}()
	Must("a").Order(4, 32)
}

func TestValidate(t *testing.T) {
	if err := Must("wzyx").Validate(4); err != nil {
		t.Errorf("Validate(wzyx, 4): %v", err)
	}
	if err := Must("xyzw").Validate(2); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Validate(xyzw, 2): got %v, want ErrInvalidPattern", err)
	}
	if err := Must("xe").Validate(4); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("Validate(xe, 4): got %v, want ErrInvalidPattern", err)
	}
}

func TestIndexAndSwizzleSource(t *testing.T) {
	p := Must("1c")
	want := []int{0, 2, 2, 3}
	for i, w := range want {
		if got := p.Index(i); got != w {
			t.Errorf("Index(%d): got %d, want %d", i, got, w)
		}
	}
	if p.SwizzleSource(3) != Zero || p.SwizzleSource(0) != One {
		t.Errorf("SwizzleSource: got %d %d", p.SwizzleSource(0), p.SwizzleSource(3))
	}
}
