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

// Range is the predicate shared by all range shapes in this package.
type Range interface {
	Contains(v Version) bool
}

var (
	_ Range = Through{}
	_ Range = UpTo{}
	_ Range = AtOrAfter{}
	_ Range = Before{}
)

// Through is the inclusive range [lower, upper]. Construct it with
// NewThrough; the zero value contains nothing but the zero version.
type Through struct {
	lower Version
	upper Version
}

// NewThrough builds the inclusive range [lower, upper]. Both endpoints
// must be wildcard-free and lower must order strictly before upper;
// anything else fails with ErrInvalidRange, so an invalid range value is
// never observable.
func NewThrough(lower, upper Version) (Through, error) {
	if err := checkBounds(lower, upper); err != nil {
		return Through{}, err
	}
	return Through{lower: lower, upper: upper}, nil
}

// Contains reports whether lower <= v <= upper under the strict ordering.
// A wildcarded v is never contained, since it cannot be ordered.
func (r Through) Contains(v Version) bool {
	return v.EqualsOrNewer(r.lower) && r.upper.EqualsOrNewer(v)
}

// String returns the range in interval notation.
func (r Through) String() string {
	return fmt.Sprintf("[%s, %s]", r.lower, r.upper)
}

// UpTo is the half-open range [lower, upper). Construct it with NewUpTo.
//
// The upper-bound exclusion uses the wildcard-absorbing equality, so it
// inherits that relation's behavior for patterned input rather than
// adding a rule of its own.
type UpTo struct {
	lower Version
	upper Version
}

// NewUpTo builds the half-open range [lower, upper) under the same
// endpoint rules as NewThrough.
func NewUpTo(lower, upper Version) (UpTo, error) {
	if err := checkBounds(lower, upper); err != nil {
		return UpTo{}, err
	}
	return UpTo{lower: lower, upper: upper}, nil
}

// Contains reports whether lower <= v < upper: v must not equal the upper
// bound and must order inside the bounds.
func (r UpTo) Contains(v Version) bool {
	return !v.Equals(r.upper) && v.EqualsOrNewer(r.lower) && r.upper.EqualsOrNewer(v)
}

// String returns the range in interval notation.
func (r UpTo) String() string {
	return fmt.Sprintf("[%s, %s)", r.lower, r.upper)
}

// AtOrAfter is the open-ended range of every version at or after its
// bound. Construct it with NewAtOrAfter.
type AtOrAfter struct {
	lower Version
}

// NewAtOrAfter builds the open-ended range [lower, ...). The bound must
// be wildcard-free.
func NewAtOrAfter(lower Version) (AtOrAfter, error) {
	if err := checkEndpoint(lower); err != nil {
		return AtOrAfter{}, err
	}
	return AtOrAfter{lower: lower}, nil
}

// Contains reports whether v >= lower.
func (r AtOrAfter) Contains(v Version) bool {
	return v.EqualsOrNewer(r.lower)
}

// String returns the range in interval notation.
func (r AtOrAfter) String() string {
	return fmt.Sprintf("[%s, ...)", r.lower)
}

// Before is the open-ended range of every version below its bound,
// optionally including the bound itself. Construct it with NewBefore or
// NewAtOrBefore.
type Before struct {
	upper     Version
	inclusive bool
}

// NewBefore builds the range of versions strictly older than upper. The
// bound must be wildcard-free.
func NewBefore(upper Version) (Before, error) {
	if err := checkEndpoint(upper); err != nil {
		return Before{}, err
	}
	return Before{upper: upper}, nil
}

// NewAtOrBefore builds the range of versions at or older than upper. The
// bound must be wildcard-free.
func NewAtOrBefore(upper Version) (Before, error) {
	if err := checkEndpoint(upper); err != nil {
		return Before{}, err
	}
	return Before{upper: upper, inclusive: true}, nil
}

// Contains reports whether v < upper, or v <= upper for the inclusive
// variant.
func (r Before) Contains(v Version) bool {
	if r.inclusive {
		return v.EqualsOrOlder(r.upper)
	}
	return v.IsOlder(r.upper)
}

// String returns the range in interval notation.
func (r Before) String() string {
	if r.inclusive {
		return fmt.Sprintf("(..., %s]", r.upper)
	}
	return fmt.Sprintf("(..., %s)", r.upper)
}

func checkEndpoint(v Version) error {
	if v.HasWildcard() {
		return fmt.Errorf("%w: wildcard endpoint %s", ErrInvalidRange, v)
	}
	return nil
}

func checkBounds(lower, upper Version) error {
	if err := checkEndpoint(lower); err != nil {
		return err
	}
	if err := checkEndpoint(upper); err != nil {
		return err
	}
	if lower.EqualsOrNewer(upper) {
		return fmt.Errorf("%w: lower bound %s is not below upper bound %s", ErrInvalidRange, lower, upper)
	}
	return nil
}
