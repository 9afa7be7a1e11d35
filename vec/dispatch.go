// Copyright 2026 libgeodecomp-go Authors
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

package vec

import (
	"os"
	"strconv"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// registerWidth is the widest SIMD register the hardware sustains, in
// bytes. It only advises lane-count choices; all operations in this
// package work at any width.
var registerWidth = probeWidth()

func probeWidth() int {
	if noVecEnv() {
		return 8
	}
	switch {
	case cpu.X86.HasAVX512F:
		return 64
	case cpu.X86.HasAVX2:
		return 32
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return 16
	}
	return 16
}

// noVecEnv checks the LGD_NO_VEC environment variable. Any value that
// does not parse as false forces the scalar advisory width, which is
// useful for comparing kernel variants in tests.
func noVecEnv() bool {
	val := os.Getenv("LGD_NO_VEC")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// RegisterWidth returns the probed SIMD register width in bytes.
func RegisterWidth() int {
	return registerWidth
}

// MaxLanes returns how many lanes of T fit in one hardware register.
// For example with AVX2 (32 bytes): 8 lanes of float32, 4 of float64.
func MaxLanes[T Float]() int {
	var dummy T
	return registerWidth / int(unsafe.Sizeof(dummy))
}
