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

// Increment returns a copy of v with component c bumped by one and every
// less-significant component reset to unassigned. An unassigned c counts
// as 0 before the bump, and unassigned components above c materialize as
// concrete 0 so that the result is a well-formed prefix: incrementing
// build on "1.2" yields "1.2.0.1".
//
// Versions carrying a wildcard cannot be incremented;
// ErrCannotIncrementWildcard is returned.
func (v Version) Increment(c Component) (Version, error) {
	return v.increment(c, true)
}

// IncrementKeepingLower is Increment without the reset: components less
// significant than c keep their original values, so incrementing minor on
// "10.4.3.1000" yields "10.5.3.1000".
func (v Version) IncrementKeepingLower(c Component) (Version, error) {
	return v.increment(c, false)
}

func (v Version) increment(c Component, zeroLower bool) (Version, error) {
	if c < Major || c > Build {
		return Version{}, fmt.Errorf("unknown version component %d", c)
	}
	if v.HasWildcard() {
		return Version{}, fmt.Errorf("%w: %s", ErrCannotIncrementWildcard, v)
	}

	var out Version
	for i := Major; i < c; i++ {
		out.fields[i] = Value(v.fields[i].Num())
	}
	out.fields[c] = Value(v.fields[c].Num() + 1)
	if !zeroLower {
		for i := c + 1; i <= Build; i++ {
			out.fields[i] = v.fields[i]
		}
	}
	return out.normalize(), nil
}
