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

// Package colorprim performs image pixel-format and color-model conversion
// directly on caller-supplied buffers.
//
// It converts between the following pixel formats:
//
//	source pixel format | destination pixel formats
//	--------------------|--------------------------
//	ARGB                | I420, I444, NV12
//	BGR                 | I420, I444, NV12
//	BGRA                | I420, I444, NV12, RGB
//	I420                | BGRA
//	I444                | BGRA
//	NV12                | BGRA
//	P010                | BGRA, BGRA30, RGBA30
//	P410                | BGRA, BGRA30, RGBA30
//	RGB                 | BGRA
//
// The supported color models are linear RGB and YCbCr under ITU-R
// Recommendations BT.601 and BT.709.
//
// Call Initialize once before any other function; it probes the processor
// and selects the kernel set best suited to the available instruction-set
// extensions. Initialization must not overlap with any other call, from any
// goroutine. Once initialized, every function is safe for concurrent use on
// disjoint buffers: the library holds no mutable state beyond the one-time
// capability selection, never allocates on the conversion path, and writes
// only to destination buffers.
//
//	colorprim.Initialize()
//
//	src := &colorprim.ImageFormat{
//		PixelFormat: colorprim.PixelFormatBGRA,
//		ColorSpace:  colorprim.ColorSpaceLinearRGB,
//		NumPlanes:   1,
//	}
//	dst := &colorprim.ImageFormat{
//		PixelFormat: colorprim.PixelFormatNV12,
//		ColorSpace:  colorprim.ColorSpaceBT601,
//		NumPlanes:   1,
//	}
//
//	sizes := make([]int, 1)
//	if err := colorprim.GetBuffersSize(w, h, dst, nil, sizes); err != nil {
//		return err
//	}
//	out := make([]byte, sizes[0])
//	err := colorprim.ConvertImage(w, h,
//		src, nil, [][]byte{in},
//		dst, nil, [][]byte{out})
package colorprim

// StrideAuto selects the tightly packed stride for a plane when used in a
// strides array.
const StrideAuto = 0

// MaxNumPlanes is the largest logical plane count across all pixel
// formats, and so the largest useful length of any stride or buffer array.
const MaxNumPlanes = 3
