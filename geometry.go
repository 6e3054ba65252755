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

// planeGeometry returns the tightly packed row width in bytes and the number
// of rows of the given logical plane.
//
// Plane 0 is the packed plane or the luma plane at full resolution. Chroma
// planes are scaled down by the format's subsampling factors; the NV12 UV
// plane interleaves two samples per chroma position, so its row width stays
// equal to the image width.
func planeGeometry(pf PixelFormat, plane int, width, height uint32) (rowBytes, rows int) {
	spec := pf.spec()
	if spec.packedBytes > 0 {
		return int(width) * spec.packedBytes, int(height)
	}

	sampleBytes := 1
	if spec.bitDepth > 8 {
		sampleBytes = 2
	}
	if plane == 0 {
		return int(width) * sampleBytes, int(height)
	}

	rowBytes = int(width) / spec.subX * sampleBytes
	if pf == PixelFormatNV12 {
		rowBytes *= 2
	}
	return rowBytes, int(height) / spec.subY
}

// resolvePlaneStrides computes one stride per logical plane of the format.
// A missing or StrideAuto entry selects the tightly packed stride; an
// explicit stride smaller than the packed row width is rejected. When the
// caller addresses several logical planes through a single buffer
// (format.NumPlanes < logical planes), the strides array covers only the
// planes the caller sees and the inner planes fall back to auto.
func resolvePlaneStrides(format *ImageFormat, width, height uint32, strides []int) ([MaxNumPlanes]int, error) {
	var out [MaxNumPlanes]int
	for i := 0; i < format.PixelFormat.spec().numPlanes; i++ {
		rowBytes, _ := planeGeometry(format.PixelFormat, i, width, height)
		stride := StrideAuto
		if i < len(strides) {
			stride = strides[i]
		}
		if stride == StrideAuto {
			stride = rowBytes
		} else if stride < rowBytes {
			return out, errInvalidValuef(
				"stride %d of plane %d is smaller than the packed row width %d",
				stride, i, rowBytes)
		}
		out[i] = stride
	}
	return out, nil
}

// GetBuffersSize computes the number of bytes required to store an image of
// the given format and dimensions, optionally honoring caller strides.
//
// One size per plane is written to buffersSize in the canonical plane order
// of the format (for example Y, U, V for I420 and Y, UV for NV12). When the
// format stores several logical planes in a single buffer (NumPlanes lower
// than the logical plane count), the single reported size covers all of
// them.
//
// strides may be nil, meaning every plane is tightly packed; individual
// entries may hold StrideAuto with the same meaning. A nil buffersSize, a
// strides or buffersSize array shorter than format.NumPlanes, or a format
// that fails validation all yield ErrInvalidValue.
func GetBuffersSize(width, height uint32, format *ImageFormat, strides []int, buffersSize []int) error {
	if format == nil {
		return errInvalidValuef("format is nil")
	}
	if buffersSize == nil {
		return errInvalidValuef("buffersSize is nil")
	}
	if err := validateFormat(format, width, height); err != nil {
		return err
	}
	if strides != nil && len(strides) < format.NumPlanes {
		return errInvalidValuef("strides array holds %d entries, format has %d planes",
			len(strides), format.NumPlanes)
	}
	if len(buffersSize) < format.NumPlanes {
		return errInvalidValuef("buffersSize array holds %d entries, format has %d planes",
			len(buffersSize), format.NumPlanes)
	}

	planeStrides, err := resolvePlaneStrides(format, width, height, strides)
	if err != nil {
		return err
	}

	numLogical := format.PixelFormat.spec().numPlanes
	if format.NumPlanes == numLogical {
		for i := 0; i < numLogical; i++ {
			_, rows := planeGeometry(format.PixelFormat, i, width, height)
			buffersSize[i] = planeStrides[i] * rows
		}
		return nil
	}

	// Single buffer holding every logical plane back to back.
	total := 0
	for i := 0; i < numLogical; i++ {
		_, rows := planeGeometry(format.PixelFormat, i, width, height)
		total += planeStrides[i] * rows
	}
	buffersSize[0] = total
	return nil
}
