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
	"encoding"

	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = Version{}
	_ encoding.TextUnmarshaler = (*Version)(nil)
	_ yaml.Marshaler           = Version{}
	_ yaml.Unmarshaler         = (*Version)(nil)
)

// MarshalText encodes v as its canonical dotted string. encoding/json and
// encoding/xml both honor this, so a Version marshals as exactly that
// string in either format.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes the canonical dotted string through Parse. A
// parse failure is surfaced as the decode error; the receiver is left
// untouched rather than defaulted.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes v as its canonical dotted string. yaml.v3 does not
// consult TextMarshaler, so the YAML hooks are implemented explicitly.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML decodes a YAML scalar through Parse, surfacing a parse
// failure as the decode error.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
