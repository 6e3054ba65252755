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

// Block kernel variants for the matrix-heavy conversion families. They use
// the same fixed-point arithmetic as the base set and produce
// byte-identical output, but walk each row in strips of eight luma pixels
// over slices with hoisted bounds, the shape the compiler keeps free of
// per-element bounds checks. Installed for every dispatch tier above
// scalar.
//
// The channel permutations (algorithms 3 and 4) and the 10-bit family are
// not overridden: the former are memory-bound copies and the latter spends
// its time in the 16-bit sample loads, so strip-mining buys nothing there.

const blockWidth = 8

// rgbToI420Block is the strip-mined variant of rgbToI420Base.
func rgbToI420Block(job *conversionJob, layout packedLayout) {
	fc := forwardFor(job.colorSpace)
	w := job.width
	wide := w &^ (blockWidth - 1)
	rowBytes := w * layout.bpp
	for y := 0; y < job.height; y += 2 {
		row0 := job.src[0].row(y)[:rowBytes:rowBytes]
		row1 := job.src[0].row(y + 1)[:rowBytes:rowBytes]
		luma0 := job.dst[0].row(y)[:w:w]
		luma1 := job.dst[0].row(y + 1)[:w:w]
		uRow := job.dst[1].row(y >> 1)[: w>>1 : w>>1]
		vRow := job.dst[2].row(y >> 1)[: w>>1 : w>>1]

		for x := 0; x < wide; x += blockWidth {
			for i := x; i < x+blockWidth; i += 2 {
				convertPair420(fc, layout, row0, row1, luma0, luma1, i,
					&uRow[i>>1], &vRow[i>>1])
			}
		}
		for x := wide; x < w; x += 2 {
			convertPair420(fc, layout, row0, row1, luma0, luma1, x,
				&uRow[x>>1], &vRow[x>>1])
		}
	}
}

// rgbToNV12Block is the strip-mined variant of rgbToNV12Base.
func rgbToNV12Block(job *conversionJob, layout packedLayout) {
	fc := forwardFor(job.colorSpace)
	w := job.width
	wide := w &^ (blockWidth - 1)
	rowBytes := w * layout.bpp
	for y := 0; y < job.height; y += 2 {
		row0 := job.src[0].row(y)[:rowBytes:rowBytes]
		row1 := job.src[0].row(y + 1)[:rowBytes:rowBytes]
		luma0 := job.dst[0].row(y)[:w:w]
		luma1 := job.dst[0].row(y + 1)[:w:w]
		uvRow := job.dst[1].row(y >> 1)[:w:w]

		for x := 0; x < wide; x += blockWidth {
			for i := x; i < x+blockWidth; i += 2 {
				convertPair420(fc, layout, row0, row1, luma0, luma1, i,
					&uvRow[i], &uvRow[i+1])
			}
		}
		for x := wide; x < w; x += 2 {
			convertPair420(fc, layout, row0, row1, luma0, luma1, x,
				&uvRow[x], &uvRow[x+1])
		}
	}
}

// convertPair420 handles one 2x2 luma block: four luma samples plus one
// chroma pair computed from the block average.
func convertPair420(fc *forwardCoeffs, layout packedLayout, row0, row1, luma0, luma1 []byte, x int, cbOut, crOut *byte) {
	o0 := x * layout.bpp
	o1 := o0 + layout.bpp
	r00, g00, b00 := int32(row0[o0+layout.r]), int32(row0[o0+layout.g]), int32(row0[o0+layout.b])
	r01, g01, b01 := int32(row0[o1+layout.r]), int32(row0[o1+layout.g]), int32(row0[o1+layout.b])
	r10, g10, b10 := int32(row1[o0+layout.r]), int32(row1[o0+layout.g]), int32(row1[o0+layout.b])
	r11, g11, b11 := int32(row1[o1+layout.r]), int32(row1[o1+layout.g]), int32(row1[o1+layout.b])

	luma0[x] = lumaOf(fc, r00, g00, b00)
	luma0[x+1] = lumaOf(fc, r01, g01, b01)
	luma1[x] = lumaOf(fc, r10, g10, b10)
	luma1[x+1] = lumaOf(fc, r11, g11, b11)

	*cbOut, *crOut = blockChromaOf(fc,
		r00+r01+r10+r11, g00+g01+g10+g11, b00+b01+b10+b11)
}

// rgbToI444Block is the strip-mined variant of rgbToI444Base.
func rgbToI444Block(job *conversionJob, layout packedLayout) {
	fc := forwardFor(job.colorSpace)
	w := job.width
	wide := w &^ (blockWidth - 1)
	rowBytes := w * layout.bpp
	for y := 0; y < job.height; y++ {
		row := job.src[0].row(y)[:rowBytes:rowBytes]
		luma := job.dst[0].row(y)[:w:w]
		uRow := job.dst[1].row(y)[:w:w]
		vRow := job.dst[2].row(y)[:w:w]

		for x := 0; x < wide; x += blockWidth {
			for i := x; i < x+blockWidth; i++ {
				o := i * layout.bpp
				r, g, b := int32(row[o+layout.r]), int32(row[o+layout.g]), int32(row[o+layout.b])
				luma[i] = lumaOf(fc, r, g, b)
				uRow[i], vRow[i] = chromaOf(fc, r, g, b)
			}
		}
		for x := wide; x < w; x++ {
			o := x * layout.bpp
			r, g, b := int32(row[o+layout.r]), int32(row[o+layout.g]), int32(row[o+layout.b])
			luma[x] = lumaOf(fc, r, g, b)
			uRow[x], vRow[x] = chromaOf(fc, r, g, b)
		}
	}
}

// i420ToBGRABlock is the strip-mined variant of i420ToBGRABase. Each strip
// covers four chroma pairs, so the chroma loads are hoisted out of the
// per-pixel body.
func i420ToBGRABlock(job *conversionJob) {
	ic := inverseFor(job.colorSpace)
	w := job.width
	wide := w &^ (blockWidth - 1)
	for y := 0; y < job.height; y++ {
		yRow := job.src[0].row(y)[:w:w]
		uRow := job.src[1].row(y >> 1)
		vRow := job.src[2].row(y >> 1)
		out := job.dst[0].row(y)[: 4*w : 4*w]

		for x := 0; x < wide; x += blockWidth {
			for i := x; i < x+blockWidth; i += 2 {
				cb := int32(uRow[i>>1])
				cr := int32(vRow[i>>1])
				storeBGRA(out[4*i:], ic, int32(yRow[i]), cb, cr)
				storeBGRA(out[4*i+4:], ic, int32(yRow[i+1]), cb, cr)
			}
		}
		for x := wide; x < w; x++ {
			storeBGRA(out[4*x:], ic,
				int32(yRow[x]), int32(uRow[x>>1]), int32(vRow[x>>1]))
		}
	}
}

// i444ToBGRABlock is the strip-mined variant of i444ToBGRABase.
func i444ToBGRABlock(job *conversionJob) {
	ic := inverseFor(job.colorSpace)
	w := job.width
	wide := w &^ (blockWidth - 1)
	for y := 0; y < job.height; y++ {
		yRow := job.src[0].row(y)[:w:w]
		uRow := job.src[1].row(y)[:w:w]
		vRow := job.src[2].row(y)[:w:w]
		out := job.dst[0].row(y)[: 4*w : 4*w]

		for x := 0; x < wide; x += blockWidth {
			for i := x; i < x+blockWidth; i++ {
				storeBGRA(out[4*i:], ic,
					int32(yRow[i]), int32(uRow[i]), int32(vRow[i]))
			}
		}
		for x := wide; x < w; x++ {
			storeBGRA(out[4*x:], ic,
				int32(yRow[x]), int32(uRow[x]), int32(vRow[x]))
		}
	}
}

// nv12ToBGRABlock is the strip-mined variant of nv12ToBGRABase.
func nv12ToBGRABlock(job *conversionJob) {
	ic := inverseFor(job.colorSpace)
	w := job.width
	wide := w &^ (blockWidth - 1)
	for y := 0; y < job.height; y++ {
		yRow := job.src[0].row(y)[:w:w]
		uvRow := job.src[1].row(y >> 1)
		out := job.dst[0].row(y)[: 4*w : 4*w]

		for x := 0; x < wide; x += blockWidth {
			for i := x; i < x+blockWidth; i += 2 {
				cb := int32(uvRow[i])
				cr := int32(uvRow[i+1])
				storeBGRA(out[4*i:], ic, int32(yRow[i]), cb, cr)
				storeBGRA(out[4*i+4:], ic, int32(yRow[i+1]), cb, cr)
			}
		}
		for x := wide; x < w; x++ {
			uv := x &^ 1
			storeBGRA(out[4*x:], ic,
				int32(yRow[x]), int32(uvRow[uv]), int32(uvRow[uv+1]))
		}
	}
}

// blockKernels overrides the base set for the tiers above scalar.
var blockKernels = map[conversionKey]convertFunc{
	{PixelFormatARGB, PixelFormatI420}: func(j *conversionJob) { rgbToI420Block(j, layoutARGB) },
	{PixelFormatBGRA, PixelFormatI420}: func(j *conversionJob) { rgbToI420Block(j, layoutBGRA) },
	{PixelFormatBGR, PixelFormatI420}:  func(j *conversionJob) { rgbToI420Block(j, layoutBGR) },

	{PixelFormatARGB, PixelFormatI444}: func(j *conversionJob) { rgbToI444Block(j, layoutARGB) },
	{PixelFormatBGRA, PixelFormatI444}: func(j *conversionJob) { rgbToI444Block(j, layoutBGRA) },
	{PixelFormatBGR, PixelFormatI444}:  func(j *conversionJob) { rgbToI444Block(j, layoutBGR) },

	{PixelFormatARGB, PixelFormatNV12}: func(j *conversionJob) { rgbToNV12Block(j, layoutARGB) },
	{PixelFormatBGRA, PixelFormatNV12}: func(j *conversionJob) { rgbToNV12Block(j, layoutBGRA) },
	{PixelFormatBGR, PixelFormatNV12}:  func(j *conversionJob) { rgbToNV12Block(j, layoutBGR) },

	{PixelFormatI420, PixelFormatBGRA}: i420ToBGRABlock,
	{PixelFormatI444, PixelFormatBGRA}: i444ToBGRABlock,
	{PixelFormatNV12, PixelFormatBGRA}: nv12ToBGRABlock,
}
