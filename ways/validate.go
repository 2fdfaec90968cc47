// Copyright 2025 go-coinways Authors
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

package ways

import "math"

// ValidateInputs checks values arriving from outside Go (CLI arguments,
// wasm guests) before they are passed to Solve: target and maxCoins must be
// non-negative and fit in an int, and every coin must be positive.
// The returned error is an *InputError.
func ValidateInputs(target, maxCoins int64, coins []int64) error {
	for _, dim := range []struct {
		name string
		v    int64
	}{{"target", target}, {"max_coins", maxCoins}} {
		if dim.v < 0 {
			return &InputError{Field: dim.name, Index: -1, Value: dim.v, Reason: "must be non-negative"}
		}
		if uint64(dim.v) > math.MaxInt {
			return &InputError{Field: dim.name, Index: -1, Value: dim.v, Reason: "does not fit in int"}
		}
	}
	for i, c := range coins {
		if c <= 0 {
			return &InputError{Field: "coins", Index: i, Value: c, Reason: "must be positive"}
		}
	}
	return nil
}
