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

import (
	"errors"
	"strconv"
	"strings"
)

// Error kinds surfaced by this package. Call sites wrap detail around
// these sentinels with %w; match them with errors.Is.
var (
	// ErrInvalidVersionString reports a malformed version string: empty or
	// non-numeric fields, more than four fields, a misplaced or repeated
	// wildcard, or trailing garbage.
	ErrInvalidVersionString = errors.New("invalid version string")
	// ErrWildcardCompare reports an ordering attempt whose left-hand
	// operand carries a wildcard.
	ErrWildcardCompare = errors.New("cannot order a version containing a wildcard")
	// ErrCannotIncrementWildcard reports an increment attempt on a version
	// that carries a wildcard.
	ErrCannotIncrementWildcard = errors.New("cannot increment a version containing a wildcard")
	// ErrInvalidRange reports range construction with wildcard endpoints
	// or out-of-order bounds.
	ErrInvalidRange = errors.New("invalid version range")
)

// Version is a numeric software version of up to four components
// (major.minor.patch.build), where the least-significant component
// present may be the wildcard. The zero value is the version "0".
//
// Versions are immutable: every deriving operation returns a new value.
// Two Versions with equal normalized fields are indistinguishable, so ==
// on the struct is exact field-for-field identity.
type Version struct {
	fields [numComponents]Field
}

// New builds a Version from up to four fields in decreasing significance;
// missing fields are unassigned and arguments beyond the fourth are
// ignored. Input is normalized: every field after the first wildcard or
// unassigned field collapses to unassigned, so at most one wildcard
// survives and it is always the last specified field.
func New(fields ...Field) Version {
	var v Version
	for i := 0; i < numComponents && i < len(fields); i++ {
		v.fields[i] = fields[i]
	}
	return v.normalize()
}

// normalize enforces the wildcard-propagation invariant: nothing may
// follow the first wildcard or unassigned field.
func (v Version) normalize() Version {
	for i := 0; i < numComponents; i++ {
		if !v.fields[i].Specified() || v.fields[i].IsWildcard() {
			for j := i + 1; j < numComponents; j++ {
				v.fields[j] = Field{}
			}
			break
		}
	}
	return v
}

// Field returns the component at position c. Positions outside
// Major..Build return an unassigned Field.
func (v Version) Field(c Component) Field {
	if c < Major || c > Build {
		return Field{}
	}
	return v.fields[c]
}

// HasWildcard reports whether any component of v is the wildcard.
func (v Version) HasWildcard() bool {
	for _, f := range v.fields {
		if f.IsWildcard() {
			return true
		}
	}
	return false
}

// String returns the canonical dotted form. The major component is always
// emitted, as 0 when the whole value is unassigned; each further
// specified component follows after a dot and the wildcard renders as
// "*". Per the normalization invariant the output is always a well-formed
// prefix of the four components.
func (v Version) String() string {
	var b strings.Builder
	if v.fields[Major].IsWildcard() {
		b.WriteByte('*')
	} else {
		b.WriteString(strconv.Itoa(v.fields[Major].Num()))
	}
	for i := Minor; i <= Build; i++ {
		f := v.fields[i]
		if !f.Specified() {
			break
		}
		b.WriteByte('.')
		b.WriteString(f.String())
	}
	return b.String()
}
