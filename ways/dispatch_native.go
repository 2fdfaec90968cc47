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

//go:build !wasm

package ways

import "runtime"

func init() {
	currentWorkers = WorkersEnv()
	if currentWorkers == 0 {
		currentWorkers = runtime.GOMAXPROCS(0)
	}

	if SequentialEnv() || currentWorkers == 1 {
		currentMode = ModeSequential
		currentWorkers = 1
		return
	}
	currentMode = ModeParallel
}
