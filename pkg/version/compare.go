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

import "fmt"

// Equals reports whether v and other match under the wildcard-absorbing
// equality relation: a wildcard on either side matches that component and
// everything less significant unconditionally; otherwise components must
// be equal number-for-number, with unassigned components counting as 0.
//
// The relation is symmetric but deliberately not transitive: 4.* equals
// 4.5 and 4.* equals 4.6, yet 4.5 does not equal 4.6.
func (v Version) Equals(other Version) bool {
	for i := 0; i < numComponents; i++ {
		if v.fields[i].IsWildcard() || other.fields[i].IsWildcard() {
			return true
		}
		if v.fields[i].Num() != other.fields[i].Num() {
			return false
		}
	}
	return true
}

// Compare orders v against other: -1 if v is older, 0 if they are the
// same, 1 if v is newer. Unassigned components compare as 0.
//
// The receiver must be wildcard-free; ErrWildcardCompare is returned
// otherwise. A wildcard on the right-hand side at the position under
// comparison ends the walk immediately with v reported newer (+1).
func (v Version) Compare(other Version) (int, error) {
	if v.HasWildcard() {
		return 0, fmt.Errorf("%w: %s", ErrWildcardCompare, v)
	}
	for i := 0; i < numComponents; i++ {
		if other.fields[i].IsWildcard() {
			return 1, nil
		}
		a, b := v.fields[i].Num(), other.fields[i].Num()
		if a < b {
			return -1, nil
		}
		if a > b {
			return 1, nil
		}
	}
	return 0, nil
}

// IsNewer reports whether v orders strictly after other.
// It is false whenever Compare fails, i.e. when v carries a wildcard.
func (v Version) IsNewer(other Version) bool {
	c, err := v.Compare(other)
	return err == nil && c > 0
}

// IsOlder reports whether v orders strictly before other.
// It is false whenever Compare fails.
func (v Version) IsOlder(other Version) bool {
	c, err := v.Compare(other)
	return err == nil && c < 0
}

// EqualsOrNewer reports whether v orders at or after other.
// It is false whenever Compare fails.
func (v Version) EqualsOrNewer(other Version) bool {
	c, err := v.Compare(other)
	return err == nil && c >= 0
}

// EqualsOrOlder reports whether v orders at or before other.
// It is false whenever Compare fails.
func (v Version) EqualsOrOlder(other Version) bool {
	c, err := v.Compare(other)
	return err == nil && c <= 0
}

// Contains reports whether v, possibly a wildcard pattern, matches or
// covers the version other. The relation is asymmetric: a patterned other
// is never contained, while a patterned v absorbs everything from its
// wildcard position down. A concrete other is contained when it matches v
// under Equals or orders after v; an exact match is always contained.
func (v Version) Contains(other Version) bool {
	if other.HasWildcard() {
		return false
	}
	if v.Equals(other) {
		return true
	}
	c, err := other.Compare(v)
	return err == nil && c > 0
}
