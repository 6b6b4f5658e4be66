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
	"strings"
	"unsafe"

	"github.com/hikogui/go-numeric/numeric/internal/lanes"
	"github.com/hikogui/go-numeric/numeric/swizzle"
)

// Every wrapper keeps its register image in a fixed-size array A of T and
// routes each operation through a kernel table. The tables start out as the
// portable kernels below; kernels_amd64_simd.go replaces entries with
// hardware instructions in init() when the detected level allows it.

// laneSlice views the lanes of a register image.
func laneSlice[T Lanes, A any](p *A) []T {
	var zero T
	return unsafe.Slice((*T)(unsafe.Pointer(p)), unsafe.Sizeof(*p)/unsafe.Sizeof(zero))
}

// ops is the kernel table shared by every wrapper.
type ops[T Lanes, A any] struct {
	add, sub, mul, min, max func(a, b A) A
	and, or, xor, andNot    func(a, b A) A
	eq, ne, lt, gt, le, ge  func(a, b A) A
	hadd, hsub, ilo         func(a, b A) A
	neg, abs, not, hsum     func(a A) A
	dot, blend              func(a, b A, m uint64) A
	setZero                 func(a A, m uint64) A
	permute                 func(a A, p swizzle.Pattern) A
	mask                    func(a A) uint64
}

// floatOps holds the kernels only floating-point wrappers have.
type floatOps[T Floats, A any] struct {
	div                           func(a, b A) A
	sqrt, floor, ceil, rcp, rsqrt func(a A) A
	round                         func(a A, mode RoundMode) A
	almostEq                      func(a, b A, eps T) A
}

// intOps holds the kernels only integer wrappers have.
type intOps[T Integers, A any] struct {
	shl, shr func(a A, n uint) A
}

func binary[T Lanes, A any](k func(dst, a, b []T)) func(a, b A) A {
	return func(a, b A) A {
		var r A
		k(laneSlice[T](&r), laneSlice[T](&a), laneSlice[T](&b))
		return r
	}
}

func unary[T Lanes, A any](k func(dst, a []T)) func(a A) A {
	return func(a A) A {
		var r A
		k(laneSlice[T](&r), laneSlice[T](&a))
		return r
	}
}

func masked[T Lanes, A any](k func(dst, a, b []T, m uint64)) func(a, b A, m uint64) A {
	return func(a, b A, m uint64) A {
		var r A
		k(laneSlice[T](&r), laneSlice[T](&a), laneSlice[T](&b), m)
		return r
	}
}

func portable[T Lanes, A any]() ops[T, A] {
	return ops[T, A]{
		add:    binary[T, A](lanes.Add[T]),
		sub:    binary[T, A](lanes.Sub[T]),
		mul:    binary[T, A](lanes.Mul[T]),
		min:    binary[T, A](lanes.Min[T]),
		max:    binary[T, A](lanes.Max[T]),
		and:    binary[T, A](lanes.And[T]),
		or:     binary[T, A](lanes.Or[T]),
		xor:    binary[T, A](lanes.Xor[T]),
		andNot: binary[T, A](lanes.AndNot[T]),
		eq:     binary[T, A](lanes.Eq[T]),
		ne:     binary[T, A](lanes.Ne[T]),
		lt:     binary[T, A](lanes.Lt[T]),
		gt:     binary[T, A](lanes.Gt[T]),
		le:     binary[T, A](lanes.Le[T]),
		ge:     binary[T, A](lanes.Ge[T]),
		hadd:   binary[T, A](lanes.HorizontalAdd[T]),
		hsub:   binary[T, A](lanes.HorizontalSub[T]),
		ilo:    binary[T, A](lanes.InterleaveLo[T]),
		neg:    unary[T, A](lanes.Neg[T]),
		abs:    unary[T, A](lanes.Abs[T]),
		not:    unary[T, A](lanes.Not[T]),
		hsum:   unary[T, A](lanes.HorizontalSum[T]),
		dot:    masked[T, A](lanes.DotProduct[T]),
		blend:  masked[T, A](lanes.Blend[T]),
		setZero: func(a A, m uint64) A {
			var r A
			lanes.SetZero(laneSlice[T](&r), laneSlice[T](&a), m)
			return r
		},
		permute: func(a A, p swizzle.Pattern) A {
			var r A
			lanes.Permute(laneSlice[T](&r), laneSlice[T](&a), p)
			return r
		},
		mask: func(a A) uint64 {
			return lanes.Mask(laneSlice[T](&a))
		},
	}
}

func portableFloat[T Floats, A any]() floatOps[T, A] {
	return floatOps[T, A]{
		div:   binary[T, A](lanes.Div[T]),
		sqrt:  unary[T, A](lanes.Sqrt[T]),
		floor: unary[T, A](lanes.Floor[T]),
		ceil:  unary[T, A](lanes.Ceil[T]),
		rcp:   unary[T, A](lanes.Rcp[T]),
		rsqrt: unary[T, A](lanes.Rsqrt[T]),
		round: func(a A, mode RoundMode) A {
			var r A
			lanes.Round(laneSlice[T](&r), laneSlice[T](&a), mode)
			return r
		},
		almostEq: func(a, b A, eps T) A {
			var r A
			lanes.AlmostEq(laneSlice[T](&r), laneSlice[T](&a), laneSlice[T](&b), eps)
			return r
		},
	}
}

func portableInt[T Integers, A any]() intOps[T, A] {
	return intOps[T, A]{
		shl: func(a A, n uint) A {
			var r A
			lanes.ShiftLeft(laneSlice[T](&r), laneSlice[T](&a), n)
			return r
		},
		shr: func(a A, n uint) A {
			var r A
			lanes.ShiftRight(laneSlice[T](&r), laneSlice[T](&a), n)
			return r
		},
	}
}

// selector is the subset of a wrapper's surface swizzle is built from.
type selector[R any] interface {
	Permute(p swizzle.Pattern) R
	SetZero(m uint64) R
	Blend(b R, m uint64) R
}

// swizzleWith implements swizzle for an n-lane wrapper with the instruction
// sequence the pattern's strategy calls for. one is the wrapper broadcast of 1.
func swizzleWith[R selector[R]](a R, p swizzle.Pattern, n int, one R) R {
	var zero R
	ones, zeros := p.OnesMask(n), p.ZerosMask(n)
	switch p.Strategy(n) {
	case swizzle.StrategyConstant:
		if err := p.Validate(n); err != nil {
			panic(fmt.Sprintf("Swizzle: %v", err))
		}
		return zero.Blend(one, ones)
	case swizzle.StrategyPermute:
		return a.Permute(p)
	case swizzle.StrategyPermuteZero:
		return a.Permute(p).SetZero(zeros)
	default:
		return a.Permute(p).Blend(zero.Blend(one, ones), ones|zeros)
	}
}

func fill[T Lanes](op string, dst, v []T) {
	if len(v) > len(dst) {
		panic(fmt.Sprintf("%s: %d values for %d lanes", op, len(v), len(dst)))
	}
	copy(dst, v)
}

func load[T Lanes](op string, dst, s []T) {
	if len(s) < len(dst) {
		panic(fmt.Sprintf("%s: slice too short (%d < %d)", op, len(s), len(dst)))
	}
	copy(dst, s)
}

func store[T Lanes](op string, dst, s []T) {
	if len(dst) < len(s) {
		panic(fmt.Sprintf("%s: slice too short (%d < %d)", op, len(dst), len(s)))
	}
	copy(dst, s)
}

func format[T Lanes](v []T) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range v {
		if i != 0 {
			sb.WriteString("; ")
		}
		fmt.Fprint(&sb, x)
	}
	sb.WriteByte(')')
	return sb.String()
}
