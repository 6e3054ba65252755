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

//go:build arm64

package colorprim

import "golang.org/x/sys/cpu"

// detectCPU probes the ARM64 extensions. NEON (ASIMD) is part of the
// ARMv8-A base architecture; the cpu package check is kept for symmetry
// with future scalable-vector tiers.
func detectCPU() (DispatchLevel, string) {
	if cpu.ARM64.HasASIMD {
		return DispatchNEON, "Arm"
	}
	return DispatchScalar, "Arm"
}
