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

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels for errors.Is.
var (
	ErrAllocation   = errors.New("ways: table allocation failed")
	ErrInvalidInput = errors.New("ways: invalid input")
	ErrFold         = errors.New("ways: fold step failed")
)

// AllocationError reports a table that cannot be built for the requested
// dimensions: a negative dimension, a cell count that overflows, or a cell
// count above the solver's limit.
type AllocationError struct {
	Reason   string
	Target   int
	MaxCoins int
	Limit    uint64
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("ways: cannot allocate table for target=%d max_coins=%d: %s",
		e.Target, e.MaxCoins, e.Reason)
}

func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

// InputError is returned by ValidateInputs. The kernel itself never returns
// it; adapters call ValidateInputs before handing values to a Solver.
type InputError struct {
	Field  string
	Reason string
	Value  int64
	Index  int
}

func (e *InputError) Error() string {
	var b strings.Builder
	b.WriteString("ways: invalid ")
	b.WriteString(e.Field)
	if e.Index >= 0 {
		fmt.Fprintf(&b, "[%d]", e.Index)
	}
	fmt.Fprintf(&b, " = %d: %s", e.Value, e.Reason)
	return b.String()
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// FoldError reports a fold step that did not complete. The table is
// unusable afterwards and no count is produced.
type FoldError struct {
	Cause error
	Mode  Mode
	Coin  int64
}

func (e *FoldError) Error() string {
	return fmt.Sprintf("ways: %s fold of coin %d failed: %v", e.Mode, e.Coin, e.Cause)
}

func (e *FoldError) Unwrap() error {
	return e.Cause
}

func (e *FoldError) Is(target error) bool {
	return target == ErrFold
}
