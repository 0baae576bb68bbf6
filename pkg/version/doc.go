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

// Package version implements a numeric software-version value type of up
// to four components: major.minor.patch.build. The least-significant
// component present may be the wildcard "*", which matches any value at
// its position and everything below it.
//
// Parse and format:
//
//	v, err := version.Parse("4.4.*")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(v) // "4.4.*"
//
// Compare and range-check:
//
//	concrete := version.MustParse("4.4.5")
//	if v.Contains(concrete) {
//	    // 4.4.* covers 4.4.5
//	}
//
//	r, err := version.NewThrough(version.MustParse("4"), version.MustParse("5"))
//	if err != nil {
//	    return err
//	}
//	r.Contains(concrete) // true
//
// Two distinct relations are exposed and their asymmetry is part of the
// contract. Equals is symmetric and wildcard-absorbing on either side,
// which makes it deliberately non-transitive: 4.* equals 4.5 and 4.*
// equals 4.6, yet 4.5 does not equal 4.6. Compare and the IsNewer family
// require a wildcard-free receiver and report an error (or false)
// otherwise.
//
// Version values are immutable. Every deriving operation (Increment,
// normalization, parsing) returns a new value, so concurrent readers are
// safe without coordination.
//
// The sole wire format is the canonical dotted string: Version implements
// encoding.TextMarshaler/TextUnmarshaler (picked up by encoding/json and
// encoding/xml) and the yaml.v3 marshal hooks.
package version
