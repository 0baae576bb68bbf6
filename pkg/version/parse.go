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
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a dotted version string into a Version. The input is
// trimmed of surrounding whitespace and must then consist of one to four
// dot-separated fields, each a run of decimal digits or the literal "*".
// At most one field may be the wildcard and it must be the last field
// present; nothing may precede or follow the match. Every failure wraps
// ErrInvalidVersionString.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("%w: empty input", ErrInvalidVersionString)
	}

	parts := strings.Split(s, ".")
	if len(parts) > numComponents {
		return Version{}, fmt.Errorf("%w: more than %d fields in %q", ErrInvalidVersionString, numComponents, s)
	}
	if strings.Count(s, "*") > 1 {
		return Version{}, fmt.Errorf("%w: multiple wildcards in %q", ErrInvalidVersionString, s)
	}

	fields := make([]Field, 0, len(parts))
	for i, part := range parts {
		switch {
		case part == "*":
			if i != len(parts)-1 {
				return Version{}, fmt.Errorf("%w: wildcard must be the last field in %q", ErrInvalidVersionString, s)
			}
			fields = append(fields, Wildcard())
		case part == "":
			return Version{}, fmt.Errorf("%w: empty field in %q", ErrInvalidVersionString, s)
		default:
			if !allDigits(part) {
				return Version{}, fmt.Errorf("%w: non-numeric field %q in %q", ErrInvalidVersionString, part, s)
			}
			n, err := strconv.Atoi(part)
			if err != nil {
				// Digits only, so the only way here is integer overflow.
				return Version{}, fmt.Errorf("%w: field %q out of range in %q", ErrInvalidVersionString, part, s)
			}
			fields = append(fields, Value(n))
		}
	}

	// The grammar already forces wildcards to be rightmost; normalization
	// through New guards the invariant regardless.
	return New(fields...), nil
}

// MustParse parses s and panics if parsing fails. Use it only for
// hardcoded strings and test data; runtime input goes through Parse.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("version.MustParse: %v", err))
	}
	return v
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
