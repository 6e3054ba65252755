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

import "encoding/binary"

// packedLayout locates the color channels inside one packed pixel. alpha is
// -1 when the format carries none.
type packedLayout struct {
	r, g, b, alpha, bpp int
}

var (
	layoutARGB = packedLayout{r: 1, g: 2, b: 3, alpha: 0, bpp: 4}
	layoutBGRA = packedLayout{r: 2, g: 1, b: 0, alpha: 3, bpp: 4}
	layoutBGR  = packedLayout{r: 2, g: 1, b: 0, alpha: -1, bpp: 3}
	layoutRGB  = packedLayout{r: 0, g: 1, b: 2, alpha: -1, bpp: 3}
)

// lumaOf applies the forward luma row of the matrix to one RGB sample.
func lumaOf(fc *forwardCoeffs, r, g, b int32) byte {
	return clamp8(((fc.yR*r+fc.yG*g+fc.yB*b+fixHalf)>>fixBits) + 16)
}

// chromaOf applies the forward chroma rows to one RGB sample.
func chromaOf(fc *forwardCoeffs, r, g, b int32) (cb, cr byte) {
	cb = clamp8(((fc.cbR*r+fc.cbG*g+fc.cbB*b+fixHalf)>>fixBits) + 128)
	cr = clamp8(((fc.crR*r+fc.crG*g+fc.crB*b+fixHalf)>>fixBits) + 128)
	return
}

// blockChromaOf applies the forward chroma rows to the sum of a 2x2 RGB
// block, folding the /4 average into the fixed-point rounding shift.
func blockChromaOf(fc *forwardCoeffs, rs, gs, bs int32) (cb, cr byte) {
	cb = clamp8(((fc.cbR*rs+fc.cbG*gs+fc.cbB*bs+blockHalf)>>blockBits) + 128)
	cr = clamp8(((fc.crR*rs+fc.crG*gs+fc.crB*bs+blockHalf)>>blockBits) + 128)
	return
}

// storeBGRA converts one 8-bit YCbCr sample and writes a BGRA pixel with
// opaque alpha.
func storeBGRA(dst []byte, ic *inverseCoeffs, y, cb, cr int32) {
	c := ic.y * (y - 16)
	cb -= 128
	cr -= 128
	dst[0] = clamp8((c + ic.bCb*cb + fixHalf) >> fixBits)
	dst[1] = clamp8((c - ic.gCb*cb - ic.gCr*cr + fixHalf) >> fixBits)
	dst[2] = clamp8((c + ic.rCr*cr + fixHalf) >> fixBits)
	dst[3] = 255
}

// rgb10Of converts one 10-bit YCbCr sample to unclamped 10-bit RGB.
func rgb10Of(ic *inverseCoeffs, y, cb, cr int32) (r, g, b int32) {
	c := ic.y * (y - 64)
	cb -= 512
	cr -= 512
	r = (c + ic.rCr*cr + fixHalf) >> fixBits
	g = (c - ic.gCb*cb - ic.gCr*cr + fixHalf) >> fixBits
	b = (c + ic.bCb*cb + fixHalf) >> fixBits
	return
}

// sample10 reads the 10-bit sample at index i of a two-byte little-endian
// sample row. Bits 15:10 are ignored.
func sample10(row []byte, i int) int32 {
	return (int32(row[2*i+1])<<8 | int32(row[2*i])) & 0x3FF
}

// rgbToI420Base converts packed 8-bit RGB to I420. Luma is computed per
// pixel; chroma once per 2x2 block from the block average.
func rgbToI420Base(job *conversionJob, layout packedLayout) {
	fc := forwardFor(job.colorSpace)
	for y := 0; y < job.height; y += 2 {
		row0 := job.src[0].row(y)
		row1 := job.src[0].row(y + 1)
		luma0 := job.dst[0].row(y)
		luma1 := job.dst[0].row(y + 1)
		uRow := job.dst[1].row(y >> 1)
		vRow := job.dst[2].row(y >> 1)
		for x := 0; x < job.width; x += 2 {
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

			cb, cr := blockChromaOf(fc,
				r00+r01+r10+r11, g00+g01+g10+g11, b00+b01+b10+b11)
			uRow[x>>1] = cb
			vRow[x>>1] = cr
		}
	}
}

// rgbToNV12Base converts packed 8-bit RGB to NV12. Identical to the I420
// path except chroma lands interleaved in a single UV plane.
func rgbToNV12Base(job *conversionJob, layout packedLayout) {
	fc := forwardFor(job.colorSpace)
	for y := 0; y < job.height; y += 2 {
		row0 := job.src[0].row(y)
		row1 := job.src[0].row(y + 1)
		luma0 := job.dst[0].row(y)
		luma1 := job.dst[0].row(y + 1)
		uvRow := job.dst[1].row(y >> 1)
		for x := 0; x < job.width; x += 2 {
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

			cb, cr := blockChromaOf(fc,
				r00+r01+r10+r11, g00+g01+g10+g11, b00+b01+b10+b11)
			uvRow[x] = cb
			uvRow[x+1] = cr
		}
	}
}

// rgbToI444Base converts packed 8-bit RGB to I444. Chroma is full
// resolution, computed per pixel.
func rgbToI444Base(job *conversionJob, layout packedLayout) {
	fc := forwardFor(job.colorSpace)
	for y := 0; y < job.height; y++ {
		row := job.src[0].row(y)
		luma := job.dst[0].row(y)
		uRow := job.dst[1].row(y)
		vRow := job.dst[2].row(y)
		for x := 0; x < job.width; x++ {
			o := x * layout.bpp
			r, g, b := int32(row[o+layout.r]), int32(row[o+layout.g]), int32(row[o+layout.b])
			luma[x] = lumaOf(fc, r, g, b)
			uRow[x], vRow[x] = chromaOf(fc, r, g, b)
		}
	}
}

// i420ToBGRABase converts I420 to BGRA. Sub-sampled chroma is upsampled by
// nearest-neighbor replication: each chroma sample covers its 2x2 luma
// footprint.
func i420ToBGRABase(job *conversionJob) {
	ic := inverseFor(job.colorSpace)
	for y := 0; y < job.height; y++ {
		yRow := job.src[0].row(y)
		uRow := job.src[1].row(y >> 1)
		vRow := job.src[2].row(y >> 1)
		out := job.dst[0].row(y)
		for x := 0; x < job.width; x++ {
			storeBGRA(out[4*x:], ic,
				int32(yRow[x]), int32(uRow[x>>1]), int32(vRow[x>>1]))
		}
	}
}

// i444ToBGRABase converts I444 to BGRA; chroma is already full resolution.
func i444ToBGRABase(job *conversionJob) {
	ic := inverseFor(job.colorSpace)
	for y := 0; y < job.height; y++ {
		yRow := job.src[0].row(y)
		uRow := job.src[1].row(y)
		vRow := job.src[2].row(y)
		out := job.dst[0].row(y)
		for x := 0; x < job.width; x++ {
			storeBGRA(out[4*x:], ic,
				int32(yRow[x]), int32(uRow[x]), int32(vRow[x]))
		}
	}
}

// nv12ToBGRABase converts NV12 to BGRA with the same replication policy as
// the I420 path; chroma pairs are read from the interleaved UV plane.
func nv12ToBGRABase(job *conversionJob) {
	ic := inverseFor(job.colorSpace)
	for y := 0; y < job.height; y++ {
		yRow := job.src[0].row(y)
		uvRow := job.src[1].row(y >> 1)
		out := job.dst[0].row(y)
		for x := 0; x < job.width; x++ {
			uv := x &^ 1
			storeBGRA(out[4*x:], ic,
				int32(yRow[x]), int32(uvRow[uv]), int32(uvRow[uv+1]))
		}
	}
}

// rgbToBGRABase reorders RGB to BGRA, synthesizing opaque alpha.
func rgbToBGRABase(job *conversionJob) {
	for y := 0; y < job.height; y++ {
		src := job.src[0].row(y)
		dst := job.dst[0].row(y)
		for x := 0; x < job.width; x++ {
			s := 3 * x
			d := 4 * x
			dst[d] = src[s+2]
			dst[d+1] = src[s+1]
			dst[d+2] = src[s]
			dst[d+3] = 255
		}
	}
}

// bgraToRGBBase reorders BGRA to RGB, dropping alpha.
func bgraToRGBBase(job *conversionJob) {
	for y := 0; y < job.height; y++ {
		src := job.src[0].row(y)
		dst := job.dst[0].row(y)
		for x := 0; x < job.width; x++ {
			s := 4 * x
			d := 3 * x
			dst[d] = src[s+2]
			dst[d+1] = src[s+1]
			dst[d+2] = src[s]
		}
	}
}

// packed10Kind selects the destination encoding of the 10-bit kernels.
type packed10Kind int

const (
	packedBGRA8 packed10Kind = iota
	packedBGRA30
	packedRGBA30
)

// storePacked10 writes one RGB sample produced from 10-bit YCbCr at the
// destination's native depth. 8-bit targets shift down with rounding and
// force alpha to 255; 10-bit targets keep full precision and set the 2-bit
// alpha field to its maximum.
func storePacked10(dst []byte, kind packed10Kind, r, g, b int32) {
	switch kind {
	case packedBGRA8:
		dst[0] = clamp8((b + 2) >> 2)
		dst[1] = clamp8((g + 2) >> 2)
		dst[2] = clamp8((r + 2) >> 2)
		dst[3] = 255
	case packedBGRA30:
		binary.LittleEndian.PutUint32(dst,
			clamp10(b)|clamp10(g)<<10|clamp10(r)<<20|3<<30)
	case packedRGBA30:
		binary.LittleEndian.PutUint32(dst,
			clamp10(r)|clamp10(g)<<10|clamp10(b)<<20|3<<30)
	}
}

// p010ToPackedBase converts P010 to an 8- or 10-bit packed RGB format.
// Chroma upsampling replicates each sample over its 2x2 footprint, same
// policy as the 8-bit kernels.
func p010ToPackedBase(job *conversionJob, kind packed10Kind) {
	ic := inverseFor(job.colorSpace)
	for y := 0; y < job.height; y++ {
		yRow := job.src[0].row(y)
		uRow := job.src[1].row(y >> 1)
		vRow := job.src[2].row(y >> 1)
		out := job.dst[0].row(y)
		for x := 0; x < job.width; x++ {
			r, g, b := rgb10Of(ic,
				sample10(yRow, x), sample10(uRow, x>>1), sample10(vRow, x>>1))
			storePacked10(out[4*x:], kind, r, g, b)
		}
	}
}

// p410ToPackedBase converts P410 to an 8- or 10-bit packed RGB format.
func p410ToPackedBase(job *conversionJob, kind packed10Kind) {
	ic := inverseFor(job.colorSpace)
	for y := 0; y < job.height; y++ {
		yRow := job.src[0].row(y)
		uRow := job.src[1].row(y)
		vRow := job.src[2].row(y)
		out := job.dst[0].row(y)
		for x := 0; x < job.width; x++ {
			r, g, b := rgb10Of(ic,
				sample10(yRow, x), sample10(uRow, x), sample10(vRow, x))
			storePacked10(out[4*x:], kind, r, g, b)
		}
	}
}

// baseKernels is the portable kernel set, one entry per supported
// (source, destination) pixel format pair.
var baseKernels = map[conversionKey]convertFunc{
	{PixelFormatARGB, PixelFormatI420}: func(j *conversionJob) { rgbToI420Base(j, layoutARGB) },
	{PixelFormatBGRA, PixelFormatI420}: func(j *conversionJob) { rgbToI420Base(j, layoutBGRA) },
	{PixelFormatBGR, PixelFormatI420}:  func(j *conversionJob) { rgbToI420Base(j, layoutBGR) },

	{PixelFormatARGB, PixelFormatI444}: func(j *conversionJob) { rgbToI444Base(j, layoutARGB) },
	{PixelFormatBGRA, PixelFormatI444}: func(j *conversionJob) { rgbToI444Base(j, layoutBGRA) },
	{PixelFormatBGR, PixelFormatI444}:  func(j *conversionJob) { rgbToI444Base(j, layoutBGR) },

	{PixelFormatARGB, PixelFormatNV12}: func(j *conversionJob) { rgbToNV12Base(j, layoutARGB) },
	{PixelFormatBGRA, PixelFormatNV12}: func(j *conversionJob) { rgbToNV12Base(j, layoutBGRA) },
	{PixelFormatBGR, PixelFormatNV12}:  func(j *conversionJob) { rgbToNV12Base(j, layoutBGR) },

	{PixelFormatI420, PixelFormatBGRA}: i420ToBGRABase,
	{PixelFormatI444, PixelFormatBGRA}: i444ToBGRABase,
	{PixelFormatNV12, PixelFormatBGRA}: nv12ToBGRABase,

	{PixelFormatRGB, PixelFormatBGRA}: rgbToBGRABase,
	{PixelFormatBGRA, PixelFormatRGB}: bgraToRGBBase,

	{PixelFormatP010, PixelFormatBGRA}:   func(j *conversionJob) { p010ToPackedBase(j, packedBGRA8) },
	{PixelFormatP010, PixelFormatBGRA30}: func(j *conversionJob) { p010ToPackedBase(j, packedBGRA30) },
	{PixelFormatP010, PixelFormatRGBA30}: func(j *conversionJob) { p010ToPackedBase(j, packedRGBA30) },

	{PixelFormatP410, PixelFormatBGRA}:   func(j *conversionJob) { p410ToPackedBase(j, packedBGRA8) },
	{PixelFormatP410, PixelFormatBGRA30}: func(j *conversionJob) { p410ToPackedBase(j, packedBGRA30) },
	{PixelFormatP410, PixelFormatRGBA30}: func(j *conversionJob) { p410ToPackedBase(j, packedRGBA30) },
}
