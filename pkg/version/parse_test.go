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
	"testing"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Version
	}{
		{"major only", "1", New(Value(1))},
		{"major.minor", "1.2", New(Value(1), Value(2))},
		{"three fields", "1.2.3", New(Value(1), Value(2), Value(3))},
		{"four fields", "1.2.3.4", New(Value(1), Value(2), Value(3), Value(4))},
		{"zeros", "0.0.0.0", New(Value(0), Value(0), Value(0), Value(0))},
		{"large build", "10.4.3.1000", New(Value(10), Value(4), Value(3), Value(1000))},
		{"bare wildcard", "*", New(Wildcard())},
		{"minor wildcard", "4.*", New(Value(4), Wildcard())},
		{"patch wildcard", "4.4.*", New(Value(4), Value(4), Wildcard())},
		{"build wildcard", "4.4.5.*", New(Value(4), Value(4), Value(5), Wildcard())},
		{"surrounding whitespace", "   1.2   ", New(Value(1), Value(2))},
		{"tab and newline", "\t14.5.0\n", New(Value(14), Value(5), Value(0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"empty middle field", "1..2"},
		{"trailing dot", "1."},
		{"leading dot", ".2.3.4"},
		{"multiple wildcards", "1.*.*"},
		{"wildcard not last", "1.*.2"},
		{"leading wildcard with more", "*.2"},
		{"five fields", "1.2.3.4.5"},
		{"letters", "abc"},
		{"mixed field", "1.2a.3"},
		{"negative field", "-1.2"},
		{"plus sign", "+1.2"},
		{"inner space", "1. 2.3"},
		{"v prefix", "v1.2.3"},
		{"trailing garbage", "1.2.3rc1"},
		{"double wildcard field", "1.**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.input, v)
			}
			if !errors.Is(err, ErrInvalidVersionString) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidVersionString", tt.input, err)
			}
		})
	}
}

func TestParseTrimmedEquivalence(t *testing.T) {
	a, err := Parse("   1.2   ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, err := Parse("1.2")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if a != b {
		t.Fatalf("padded and bare inputs parse differently: %+v != %+v", a, b)
	}
}

func TestMustParse(t *testing.T) {
	if got := MustParse("1.2.3").String(); got != "1.2.3" {
		t.Errorf("MustParse(\"1.2.3\").String() = %q, want %q", got, "1.2.3")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse on invalid input did not panic")
		}
	}()
	MustParse("not a version")
}
