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

import "github.com/hikogui/go-numeric/numeric/internal/lanes"

// Floats is a constraint for floating-point lane types.
type Floats = lanes.Floats

// SignedInts is a constraint for signed integer lane types.
type SignedInts = lanes.SignedInts

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts = lanes.UnsignedInts

// Integers is a constraint for all integer lane types.
type Integers = lanes.Integers

// Lanes is a constraint for every type a register can hold.
type Lanes = lanes.Lanes

// RoundMode selects the rounding direction of Round.
type RoundMode = lanes.RoundMode

// Rounding modes.
const (
	RoundCurrent     = lanes.RoundCurrent
	RoundNearestEven = lanes.RoundNearestEven
	RoundDown        = lanes.RoundDown
	RoundUp          = lanes.RoundUp
	RoundTowardZero  = lanes.RoundTowardZero
)
