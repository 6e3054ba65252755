// Copyright 2026 The colorprim Authors
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

package colorprim

import (
	"fmt"
	"os"
	"strconv"
)

// DispatchLevel identifies the instruction-set tier the conversion kernels
// were selected for.
type DispatchLevel int

const (
	// DispatchScalar is the portable per-pixel implementation used when no
	// instruction-set extension is usable.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 selects the block kernels on x86-64 baseline hardware.
	DispatchSSE2

	// DispatchAVX2 selects the block kernels tuned for 256-bit SIMD.
	DispatchAVX2

	// DispatchAVX512 selects the block kernels tuned for 512-bit SIMD.
	DispatchAVX512

	// DispatchNEON selects the block kernels on ARM64 hardware.
	DispatchNEON
)

// String returns the tier name in the form used by DescribeAcceleration.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "None"
	case DispatchSSE2:
		return "Sse2"
	case DispatchAVX2:
		return "Avx2"
	case DispatchAVX512:
		return "Avx512"
	case DispatchNEON:
		return "Neon"
	default:
		return "Unknown"
	}
}

// Process-wide capability state. Written exactly once by Initialize and
// immutable afterwards; conversion calls only read it.
var (
	initialized   bool
	currentLevel  DispatchLevel
	currentVendor string
	activeKernels map[conversionKey]convertFunc
)

// noSimdEnv reports whether the COLORPRIM_NO_SIMD environment variable
// requests the scalar tier regardless of processor capabilities. Any
// non-empty value that does not parse as false enables it.
func noSimdEnv() bool {
	val := os.Getenv("COLORPRIM_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Initialize probes the running processor once and selects the conversion
// kernel set that is most appropriate for it. It must be called before any
// other function of this package.
//
// Initialization is idempotent but not synchronized: no other function of
// this package may run, from any goroutine, while a first call to
// Initialize is in progress. Keeping the hot conversion path lock-free is
// the point of this contract.
func Initialize() {
	if initialized {
		return
	}

	level, vendor := detectCPU()
	if noSimdEnv() {
		level = DispatchScalar
	}

	currentLevel = level
	currentVendor = vendor
	activeKernels = selectKernels(level)
	initialized = true
}

// DescribeAcceleration returns a description of the kernel tier selected
// for the running processor, in the form
//
//	{cpu-manufacturer:X86,instruction-set:Avx2}
//
// It returns ErrNotInitialized when Initialize was never called.
func DescribeAcceleration() (string, error) {
	if !initialized {
		return "", ErrNotInitialized
	}
	return fmt.Sprintf("{cpu-manufacturer:%s,instruction-set:%s}",
		currentVendor, currentLevel), nil
}

// CurrentLevel returns the instruction-set tier selected by Initialize.
// Before Initialize it returns DispatchScalar.
func CurrentLevel() DispatchLevel {
	return currentLevel
}
