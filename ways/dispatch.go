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
	"os"
	"strconv"
	"sync"

	"github.com/ajroetker/go-coinways/ways/workerpool"
)

// currentMode is the fold mode used by Solve and solvers created without
// WithFolder. Set by init() in dispatch_*.go files.
var currentMode Mode

// currentWorkers is the size of the shared pool for ModeParallel.
// Set by init() in dispatch_*.go files.
var currentWorkers int

// CurrentMode returns the default fold mode for this build and environment.
func CurrentMode() Mode {
	return currentMode
}

// CurrentName returns the name of the default fold mode.
func CurrentName() string {
	return currentMode.String()
}

// CurrentWorkers returns the number of workers the default folder uses.
func CurrentWorkers() int {
	return currentWorkers
}

// SequentialEnv checks if the COINWAYS_SEQUENTIAL environment variable is
// set. When set, the default folder is sequential regardless of the build.
func SequentialEnv() bool {
	val := os.Getenv("COINWAYS_SEQUENTIAL")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// WorkersEnv returns the value of COINWAYS_WORKERS, or 0 when it is unset or
// not a positive integer.
func WorkersEnv() int {
	n, err := strconv.Atoi(os.Getenv("COINWAYS_WORKERS"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

var (
	sharedPool     *workerpool.Pool
	sharedPoolOnce sync.Once
)

// DefaultFolder returns the folder selected for this build: a
// SequentialFolder, or a ParallelFolder on a process-wide pool that is
// created on first use and never closed.
func DefaultFolder() Folder {
	if currentMode != ModeParallel {
		return SequentialFolder{}
	}
	sharedPoolOnce.Do(func() {
		sharedPool = workerpool.New(currentWorkers)
	})
	return &ParallelFolder{Pool: sharedPool}
}
