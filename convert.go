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

import "fmt"

// conversionKey identifies a registered kernel by the ordered pair of
// source and destination pixel formats. Color space and bit depth select a
// coefficient set inside the kernel, never a different kernel.
type conversionKey struct {
	src, dst PixelFormat
}

// planeView is a borrowed window over one image plane. It never owns the
// memory; it aliases a caller buffer for the duration of a single call.
type planeView struct {
	data   []byte
	stride int
}

// row returns the bytes of row y, starting at the row origin.
func (p *planeView) row(y int) []byte {
	return p.data[y*p.stride:]
}

// conversionJob carries the validated inputs of one conversion: the image
// dimensions, the color space of the YCbCr endpoint (which selects the
// BT.601 or BT.709 coefficient set), and one view per logical plane on each
// side.
type conversionJob struct {
	width, height int
	colorSpace    ColorSpace
	src, dst      [MaxNumPlanes]planeView
}

// convertFunc is a conversion kernel. It runs only after full validation
// and writes nothing but destination plane bytes.
type convertFunc func(job *conversionJob)

// selectKernels returns the kernel set for a dispatch tier: the portable
// base set, with the block variants layered on top for every tier that
// benefits from wide row processing.
func selectKernels(level DispatchLevel) map[conversionKey]convertFunc {
	active := make(map[conversionKey]convertFunc, len(baseKernels))
	for key, fn := range baseKernels {
		active[key] = fn
	}
	if level > DispatchScalar {
		for key, fn := range blockKernels {
			active[key] = fn
		}
	}
	return active
}

// resolvePlanes validates strides and buffer lengths for one side of a
// conversion and expands them into per-logical-plane views. For formats
// addressed through fewer buffers than logical planes (single-buffer NV12
// or I422), the later planes are carved out of the first buffer, each plane
// starting right after the previous one ends.
func resolvePlanes(format *ImageFormat, width, height uint32, strides []int, buffers [][]byte) ([MaxNumPlanes]planeView, error) {
	var views [MaxNumPlanes]planeView

	planeStrides, err := resolvePlaneStrides(format, width, height, strides)
	if err != nil {
		return views, err
	}

	numLogical := format.PixelFormat.spec().numPlanes
	if format.NumPlanes == numLogical {
		for i := 0; i < numLogical; i++ {
			rowBytes, rows := planeGeometry(format.PixelFormat, i, width, height)
			need := planeStrides[i]*(rows-1) + rowBytes
			if len(buffers[i]) < need {
				return views, errNotEnoughDataf("plane %d holds %d bytes, needs %d",
					i, len(buffers[i]), need)
			}
			views[i] = planeView{data: buffers[i], stride: planeStrides[i]}
		}
		return views, nil
	}

	buf := buffers[0]
	offset := 0
	for i := 0; i < numLogical; i++ {
		rowBytes, rows := planeGeometry(format.PixelFormat, i, width, height)
		need := offset + planeStrides[i]*(rows-1) + rowBytes
		if len(buf) < need {
			return views, errNotEnoughDataf("buffer holds %d bytes, plane %d ends at %d",
				len(buf), i, need)
		}
		views[i] = planeView{data: buf[offset:], stride: planeStrides[i]}
		offset += planeStrides[i] * rows
	}
	return views, nil
}

// ConvertImage converts an image from one format to another, applying
// chroma downsampling or upsampling as needed to match the destination.
//
// Strides may be nil (every plane tightly packed) or hold StrideAuto
// entries with the same per-plane meaning. Buffer and stride arrays must
// hold at least NumPlanes entries for their respective formats; shorter
// arrays are rejected with ErrInvalidValue, and plane buffers smaller than
// the sizes reported by GetBuffersSize are rejected with ErrNotEnoughData.
//
// All validation happens before the first destination write: on error the
// destination buffers are untouched.
func ConvertImage(
	width, height uint32,
	srcFormat *ImageFormat, srcStrides []int, srcBuffers [][]byte,
	dstFormat *ImageFormat, dstStrides []int, dstBuffers [][]byte,
) error {
	if !initialized {
		return ErrNotInitialized
	}
	if srcFormat == nil || dstFormat == nil {
		return errInvalidValuef("source and destination formats are required")
	}
	if len(srcBuffers) == 0 || len(dstBuffers) == 0 {
		return errInvalidValuef("source and destination buffers are required")
	}
	if err := validateFormat(srcFormat, width, height); err != nil {
		return err
	}
	if err := validateFormat(dstFormat, width, height); err != nil {
		return err
	}

	kernel, ok := activeKernels[conversionKey{srcFormat.PixelFormat, dstFormat.PixelFormat}]
	if !ok {
		return fmt.Errorf("%w: no conversion from %s to %s",
			ErrInvalidOperation, srcFormat.PixelFormat, dstFormat.PixelFormat)
	}

	if srcStrides != nil && len(srcStrides) < srcFormat.NumPlanes {
		return errInvalidValuef("source strides array holds %d entries, format has %d planes",
			len(srcStrides), srcFormat.NumPlanes)
	}
	if dstStrides != nil && len(dstStrides) < dstFormat.NumPlanes {
		return errInvalidValuef("destination strides array holds %d entries, format has %d planes",
			len(dstStrides), dstFormat.NumPlanes)
	}
	if len(srcBuffers) < srcFormat.NumPlanes {
		return errInvalidValuef("source buffers array holds %d entries, format has %d planes",
			len(srcBuffers), srcFormat.NumPlanes)
	}
	if len(dstBuffers) < dstFormat.NumPlanes {
		return errInvalidValuef("destination buffers array holds %d entries, format has %d planes",
			len(dstBuffers), dstFormat.NumPlanes)
	}

	job := conversionJob{
		width:  int(width),
		height: int(height),
	}
	// Exactly one endpoint of every registered conversion is YCbCr except
	// the pure channel reorders, which never read the coefficient set.
	if srcFormat.PixelFormat.spec().ycbcr {
		job.colorSpace = srcFormat.ColorSpace
	} else {
		job.colorSpace = dstFormat.ColorSpace
	}

	var err error
	if job.src, err = resolvePlanes(srcFormat, width, height, srcStrides, srcBuffers); err != nil {
		return err
	}
	if job.dst, err = resolvePlanes(dstFormat, width, height, dstStrides, dstBuffers); err != nil {
		return err
	}

	kernel(&job)
	return nil
}
