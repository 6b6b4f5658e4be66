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

// Package swizzle compiles lane-selection patterns such as "wzyx" or "xy01"
// into the encodings used by permute, swizzle and blend operations.
//
// Pattern alphabet, one character per destination lane:
//
//	'a'..'p'         select source lane 0..15
//	'x' 'y' 'z' 'w'  aliases for 'a' 'b' 'c' 'd'
//	'0'              the literal 0
//	'1'              the literal 1
//	other ASCII      keep the destination lane (permute only)
//
// Bit i of every mask produced by this package refers to lane i.
package swizzle

import (
	"errors"
	"fmt"
)

// MaxLen is the longest pattern accepted, matching the widest array (64 lanes).
const MaxLen = 64

// MaxIndex is the highest source lane a letter can select ('p').
const MaxIndex = 15

// ErrInvalidPattern is wrapped by every error returned from Compile and Validate.
var ErrInvalidPattern = errors.New("swizzle: invalid pattern")

// Source describes where a destination lane gets its value from.
// Non-negative values are source lane indices.
type Source int8

const (
	// Zero writes the literal 0.
	Zero Source = -1
	// One writes the literal 1.
	One Source = -2
	// Keep leaves the destination lane untouched (permute) or zero (swizzle).
	Keep Source = -3
)

// Strategy is the instruction sequence a register wrapper uses to implement a
// swizzle for a given lane count.
type Strategy int

const (
	// StrategyConstant: every lane is a literal, materialize the constant.
	StrategyConstant Strategy = iota
	// StrategyPermute: no literals, one permute.
	StrategyPermute
	// StrategyPermuteZero: letters and zeros, permute then set_zero.
	StrategyPermuteZero
	// StrategyPermuteBlend: permute, then blend with the literal vector.
	StrategyPermuteBlend
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyConstant:
		return "constant"
	case StrategyPermute:
		return "permute"
	case StrategyPermuteZero:
		return "permute+zero"
	case StrategyPermuteBlend:
		return "permute+blend"
	default:
		return "unknown"
	}
}

// Pattern is a compiled swizzle pattern. The zero value is the empty pattern,
// which swizzles every lane to zero and permutes nothing.
type Pattern struct {
	text string
	src  [MaxLen]Source
	n    int
}

// Compile parses s into a Pattern.
func Compile(s string) (Pattern, error) {
	var p Pattern
	if len(s) > MaxLen {
		return p, fmt.Errorf("%w: %q is %d characters, at most %d allowed", ErrInvalidPattern, s, len(s), MaxLen)
	}
	for i := 0; i < len(s); i++ {
		src, err := parseChar(s[i])
		if err != nil {
			return Pattern{}, fmt.Errorf("%w: %q position %d: %v", ErrInvalidPattern, s, i, err)
		}
		p.src[i] = src
	}
	p.text = s
	p.n = len(s)
	return p, nil
}

// Must is like Compile but panics on error. It simplifies initialization of
// package-level patterns.
func Must(s string) Pattern {
	p, err := Compile(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseChar(c byte) (Source, error) {
	switch {
	case c >= 'a' && c <= 'p':
		return Source(c - 'a'), nil
	case c == 'x':
		return 0, nil
	case c == 'y':
		return 1, nil
	case c == 'z':
		return 2, nil
	case c == 'w':
		return 3, nil
	case c == '0':
		return Zero, nil
	case c == '1':
		return One, nil
	case c >= 'q' && c <= 'v':
		return 0, fmt.Errorf("lane selector %q is beyond 'p'", c)
	case c < 0x20 || c >= 0x7f:
		return 0, fmt.Errorf("non-printable byte 0x%02x", c)
	default:
		return Keep, nil
	}
}

// String returns the source text of the pattern.
func (p Pattern) String() string {
	return p.text
}

// Len returns the number of characters in the pattern.
func (p Pattern) Len() int {
	return p.n
}

// Source returns the source of destination lane i. Lanes past the end of the
// pattern report Keep; swizzle treats them as Zero.
func (p Pattern) Source(i int) Source {
	if i < 0 || i >= p.n {
		return Keep
	}
	return p.src[i]
}

// SwizzleSource is Source with swizzle semantics: Keep and missing lanes become Zero.
func (p Pattern) SwizzleSource(i int) Source {
	s := p.Source(i)
	if s == Keep {
		return Zero
	}
	return s
}

// Index returns the permute lane index for destination lane i. Positions that
// do not name a source lane select themselves, which leaves them unchanged.
func (p Pattern) Index(i int) int {
	if s := p.Source(i); s >= 0 {
		return int(s)
	}
	return i
}

// Order packs Index(i) for the first lanes destination lanes, bitsPerLane bits
// each, lane 0 in the low bits. It is the immediate of a shuffle instruction
// (2 bits for 4 lanes, 4 bits for 16 lanes).
func (p Pattern) Order(bitsPerLane uint, lanes int) uint64 {
	if bitsPerLane == 0 || uint(lanes)*bitsPerLane > 64 {
		panic(fmt.Sprintf("swizzle: Order(%d, %d) does not fit in 64 bits", bitsPerLane, lanes))
	}
	fieldMask := uint64(1)<<bitsPerLane - 1
	var order uint64
	for i := 0; i < lanes; i++ {
		order |= (uint64(p.Index(i)) & fieldMask) << (uint(i) * bitsPerLane)
	}
	return order
}

// OnesMask has bit i set when destination lane i is the literal '1'.
func (p Pattern) OnesMask(lanes int) uint64 {
	var m uint64
	for i := 0; i < lanes && i < 64; i++ {
		if p.SwizzleSource(i) == One {
			m |= 1 << uint(i)
		}
	}
	return m
}

// ZerosMask has bit i set when destination lane i is the literal '0' under
// swizzle semantics, including lanes past the end of the pattern.
func (p Pattern) ZerosMask(lanes int) uint64 {
	var m uint64
	for i := 0; i < lanes && i < 64; i++ {
		if p.SwizzleSource(i) == Zero {
			m |= 1 << uint(i)
		}
	}
	return m
}

// Strategy selects the instruction sequence for a swizzle over lanes lanes.
func (p Pattern) Strategy(lanes int) Strategy {
	ones, zeros := p.OnesMask(lanes), p.ZerosMask(lanes)
	literals := ones | zeros
	switch {
	case literals == laneMask(lanes):
		return StrategyConstant
	case literals == 0:
		return StrategyPermute
	case ones == 0:
		return StrategyPermuteZero
	default:
		return StrategyPermuteBlend
	}
}

// Validate reports whether p can be applied to an array of lanes lanes: the
// pattern must not be longer than the array and every letter must select an
// existing lane.
func (p Pattern) Validate(lanes int) error {
	if p.n > lanes {
		return fmt.Errorf("%w: %q is longer than %d lanes", ErrInvalidPattern, p.text, lanes)
	}
	for i := 0; i < p.n; i++ {
		if s := p.src[i]; s >= 0 && int(s) >= lanes {
			return fmt.Errorf("%w: %q position %d selects lane %d of %d", ErrInvalidPattern, p.text, i, s, lanes)
		}
	}
	return nil
}

func laneMask(lanes int) uint64 {
	if lanes >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(lanes) - 1
}
