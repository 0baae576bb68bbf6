// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package version

import "strconv"

// fieldState tags how a Field slot was specified.
type fieldState int

const (
	stateUnassigned fieldState = iota
	stateValue
	stateWildcard
)

// Field is a single version component: a concrete non-negative integer,
// the wildcard marker, or unassigned (the component was omitted).
// The zero value is an unassigned Field.
type Field struct {
	num   int
	state fieldState
}

// Value returns a Field holding the concrete number n.
// Components are non-negative by definition; negative input is clamped to 0.
func Value(n int) Field {
	if n < 0 {
		n = 0
	}
	return Field{num: n, state: stateValue}
}

// Wildcard returns the wildcard Field, written "*". A wildcard matches any
// value at its position and every less-significant position.
func Wildcard() Field {
	return Field{state: stateWildcard}
}

// Unassigned returns an omitted Field. Unassigned components compare as 0
// and are left out of the canonical string.
func Unassigned() Field {
	return Field{}
}

// IsWildcard reports whether f is the wildcard.
func (f Field) IsWildcard() bool { return f.state == stateWildcard }

// Specified reports whether f was given at all, as either a concrete
// value or the wildcard.
func (f Field) Specified() bool { return f.state != stateUnassigned }

// Num returns the concrete value of f, or 0 for wildcard and unassigned
// fields.
func (f Field) Num() int {
	if f.state == stateValue {
		return f.num
	}
	return 0
}

// String returns "*" for the wildcard, the decimal value for a concrete
// field, and the empty string for an unassigned field.
func (f Field) String() string {
	switch f.state {
	case stateWildcard:
		return "*"
	case stateValue:
		return strconv.Itoa(f.num)
	default:
		return ""
	}
}

// Component identifies one of the four version positions, in decreasing
// significance.
type Component int

// Component constants for the four version positions.
const (
	Major Component = iota
	Minor
	Patch
	Build

	numComponents = 4
)

// String returns the lowercase component name.
func (c Component) String() string {
	switch c {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	case Build:
		return "build"
	default:
		return "unknown"
	}
}
