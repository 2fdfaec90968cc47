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
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// fallbackCacheLine is used where x/sys/cpu has no cache line size (wasm).
const fallbackCacheLine = 64

// CPUInfo describes the host as seen by the kernel.
type CPUInfo struct {
	Arch          string
	Features      []string
	CacheLineSize int
	NumCPU        int
}

// Capabilities reports the host's cache line size and the vector features
// relevant to the fold's row addition.
func Capabilities() CPUInfo {
	info := CPUInfo{
		Arch:          runtime.GOARCH,
		CacheLineSize: cacheLineSize(),
		NumCPU:        runtime.NumCPU(),
	}

	add := func(name string, ok bool) {
		if ok {
			info.Features = append(info.Features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add("sse2", cpu.X86.HasSSE2)
		add("avx2", cpu.X86.HasAVX2)
		add("avx512f", cpu.X86.HasAVX512F)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("sve", cpu.ARM64.HasSVE)
	}
	return info
}

func cacheLineSize() int {
	if n := int(unsafe.Sizeof(cpu.CacheLinePad{})); n > 0 {
		return n
	}
	return fallbackCacheLine
}
