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

// Package lanes holds the scalar reference kernels shared by the numeric
// array and the portable register wrappers. Every kernel walks a lane slice
// in ascending order and defines the bit-exact result of its operation.
package lanes

import (
	"fmt"
	"unsafe"
)

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for every type that can occupy a lane.
type Lanes interface {
	Floats | Integers
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Lanes]() bool {
	one := T(1)
	return one/2 != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Lanes]() bool {
	var zero T
	return zero-1 < zero
}

// Size returns sizeof(T) in bytes.
func Size[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Width returns the bit width of T.
func Width[T Lanes]() uint {
	return uint(Size[T]()) * 8
}

// ToBits returns the bit pattern of x, zero-extended to 64 bits.
func ToBits[T Lanes](x T) uint64 {
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}

// FromBits returns the T whose bit pattern is the low bits of b.
func FromBits[T Lanes](b uint64) T {
	var x T
	p := unsafe.Pointer(&x)
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(p) = uint8(b)
	case 2:
		*(*uint16)(p) = uint16(b)
	case 4:
		*(*uint32)(p) = uint32(b)
	default:
		*(*uint64)(p) = b
	}
	return x
}

// AllOnes returns the T with every bit set.
func AllOnes[T Lanes]() T {
	return FromBits[T](^uint64(0))
}

// MinNormal returns the smallest positive normal value of a float type, and
// 0 for integers.
func MinNormal[T Lanes]() T {
	switch {
	case !IsFloat[T]():
		return 0
	case Size[T]() == 4:
		return FromBits[T](0x0080_0000)
	default:
		return FromBits[T](0x0010_0000_0000_0000)
	}
}

func signBit[T Lanes]() uint64 {
	return uint64(1) << (Width[T]() - 1)
}

// SignBit reports whether the most significant bit of x is set.
func SignBit[T Lanes](x T) bool {
	return ToBits(x)&signBit[T]() != 0
}

// MaskBits returns the mask with the low n bits set.
func MaskBits(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(n) - 1
}

// CheckMask panics when m selects lanes at or beyond n.
func CheckMask(op string, m uint64, n int) {
	if m&^MaskBits(n) != 0 {
		panic(fmt.Sprintf("%s: lane mask %#b out of range for %d lanes", op, m, n))
	}
}

// CheckLane panics when i is not a lane index of an n-lane value.
func CheckLane(op string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("%s: lane %d out of range for %d lanes", op, i, n))
	}
}

// CheckShift panics when a shift count is not smaller than the lane width.
func CheckShift[T Integers](op string, n uint) {
	if n >= Width[T]() {
		panic(fmt.Sprintf("%s: shift count %d out of range for %d-bit lanes", op, n, Width[T]()))
	}
}
