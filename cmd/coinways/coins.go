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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// parseInts parses a comma-separated list of integers, ignoring blank
// entries. Every malformed entry is reported.
func parseInts(s string) ([]int64, error) {
	fields := lo.FilterMap(strings.Split(s, ","), func(f string, _ int) (string, bool) {
		f = strings.TrimSpace(f)
		return f, f != ""
	})

	var errs error
	values := lo.Map(fields, func(f string, i int) int64 {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %d (%q): %w", i, f, err))
		}
		return v
	})
	if errs != nil {
		return nil, errs
	}
	return values, nil
}

// parseInt parses one integer field of a form.
func parseInt(name, s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
