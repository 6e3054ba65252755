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

//go:build amd64

package colorprim

import "golang.org/x/sys/cpu"

// detectCPU probes the x86-64 instruction-set extensions in priority order,
// most capable first. SSE2 is architectural baseline on amd64, so scalar is
// never selected here.
func detectCPU() (DispatchLevel, string) {
	switch {
	case cpu.X86.HasAVX512:
		return DispatchAVX512, "X86"
	case cpu.X86.HasAVX2:
		return DispatchAVX2, "X86"
	default:
		return DispatchSSE2, "X86"
	}
}
