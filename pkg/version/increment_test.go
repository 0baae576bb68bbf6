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

func TestIncrement(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		component Component
		want      string
	}{
		{"build on two-field version", "1.2", Build, "1.2.0.1"},
		{"patch zeroes build", "1.2.0.1", Patch, "1.2.1"},
		{"minor zeroes patch and build", "10.4.3.1000", Minor, "10.5"},
		{"major zeroes everything", "10.4.3.1000", Major, "11"},
		{"patch on bare major", "2", Patch, "2.0.1"},
		{"unassigned patch counts as zero", "2.4", Patch, "2.4.1"},
		{"increment present major", "9", Major, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.input).Increment(tt.component)
			if err != nil {
				t.Fatalf("Increment(%s) on %q failed: %v", tt.component, tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("Increment(%s) on %q = %q, want %q", tt.component, tt.input, got, tt.want)
			}
		})
	}
}

func TestIncrementKeepingLower(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		component Component
		want      string
	}{
		{"minor keeps patch and build", "10.4.3.1000", Minor, "10.5.3.1000"},
		{"major keeps all", "1.2.3.4", Major, "2.2.3.4"},
		{"build has nothing below", "1.2.3.4", Build, "1.2.3.5"},
		{"unassigned lower stays unassigned", "1.2", Minor, "1.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MustParse(tt.input).IncrementKeepingLower(tt.component)
			if err != nil {
				t.Fatalf("IncrementKeepingLower(%s) on %q failed: %v", tt.component, tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("IncrementKeepingLower(%s) on %q = %q, want %q", tt.component, tt.input, got, tt.want)
			}
		})
	}
}

func TestIncrementWildcard(t *testing.T) {
	v := MustParse("10.4.3.*")

	if _, err := v.Increment(Minor); !errors.Is(err, ErrCannotIncrementWildcard) {
		t.Errorf("Increment error = %v, want ErrCannotIncrementWildcard", err)
	}
	if _, err := v.IncrementKeepingLower(Minor); !errors.Is(err, ErrCannotIncrementWildcard) {
		t.Errorf("IncrementKeepingLower error = %v, want ErrCannotIncrementWildcard", err)
	}
}

func TestIncrementUnknownComponent(t *testing.T) {
	if _, err := MustParse("1.2").Increment(Component(9)); err == nil {
		t.Error("Increment(Component(9)) did not fail")
	}
}

// Increment never mutates its receiver.
func TestIncrementLeavesSourceUntouched(t *testing.T) {
	src := MustParse("1.2.3")
	if _, err := src.Increment(Minor); err != nil {
		t.Fatalf("Increment failed: %v", err)
	}
	if src.String() != "1.2.3" {
		t.Fatalf("source mutated to %q", src)
	}
}
