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

// PixelFormat identifies how pixel data is laid out in memory.
type PixelFormat int

const (
	// PixelFormatARGB is packed 8-bit RGB with the alpha channel first.
	//
	// Each pixel is a four-byte little-endian value.
	// A, R, G and B are found in bits 7:0, 15:8, 23:16 and 31:24 respectively.
	PixelFormatARGB PixelFormat = iota

	// PixelFormatBGRA is packed 8-bit reverse RGB with the alpha channel last.
	//
	// Each pixel is a four-byte little-endian value.
	// B, G, R and A are found in bits 7:0, 15:8, 23:16 and 31:24 respectively.
	PixelFormatBGRA

	// PixelFormatBGR is packed 8-bit reverse RGB without an alpha channel.
	// 24 bits per pixel.
	PixelFormatBGR

	// PixelFormatRGBA is packed 8-bit RGB with the alpha channel last.
	//
	// Each pixel is a four-byte little-endian value.
	// R, G, B and A are found in bits 7:0, 15:8, 23:16 and 31:24 respectively.
	PixelFormatRGBA

	// PixelFormatRGB is packed 8-bit RGB without an alpha channel.
	// 24 bits per pixel.
	PixelFormatRGB

	// PixelFormatBGRA30 is packed 10-bit reverse RGB with a 2-bit alpha
	// channel last.
	//
	// Each pixel is a four-byte little-endian value.
	// B, G, R and A are found in bits 9:0, 19:10, 29:20 and 31:30 respectively.
	PixelFormatBGRA30

	// PixelFormatRGBA30 is packed 10-bit RGB with a 2-bit alpha channel last.
	//
	// Each pixel is a four-byte little-endian value.
	// R, G, B and A are found in bits 9:0, 19:10, 29:20 and 31:30 respectively.
	PixelFormatRGBA30

	// PixelFormatI444 is planar 8-bit YCbCr with one luma plane Y then two
	// chroma planes U and V. Chroma planes are not sub-sampled.
	PixelFormatI444

	// PixelFormatI422 is planar 8-bit YCbCr with one luma plane Y then two
	// chroma planes U and V, sub-sampled horizontally by a factor of two.
	PixelFormatI422

	// PixelFormatI420 is planar 8-bit YCbCr with one luma plane Y then two
	// chroma planes U and V, sub-sampled by a factor of two in both
	// dimensions.
	PixelFormatI420

	// PixelFormatNV12 is planar 8-bit YCbCr with one luma plane Y then one
	// plane of interleaved U and V samples, sub-sampled by a factor of two
	// in both dimensions.
	//
	// Samples in the UV plane are two-byte little-endian values.
	// U and V are found in bits 7:0 and 15:8 respectively.
	PixelFormatNV12

	// PixelFormatP410 is planar 10-bit YCbCr with one luma plane Y then two
	// chroma planes U and V. Chroma planes are not sub-sampled.
	//
	// Each sample is a two-byte little-endian value.
	// The sample is found in bits 9:0, with bits 15:10 ignored.
	PixelFormatP410

	// PixelFormatP010 is planar 10-bit YCbCr with one luma plane Y then two
	// chroma planes U and V, sub-sampled by a factor of two in both
	// dimensions.
	//
	// Each sample is a two-byte little-endian value.
	// The sample is found in bits 9:0, with bits 15:10 ignored.
	PixelFormatP010

	numPixelFormats = iota
)

// String returns the conventional name of the pixel format.
func (pf PixelFormat) String() string {
	switch pf {
	case PixelFormatARGB:
		return "argb"
	case PixelFormatBGRA:
		return "bgra"
	case PixelFormatBGR:
		return "bgr"
	case PixelFormatRGBA:
		return "rgba"
	case PixelFormatRGB:
		return "rgb"
	case PixelFormatBGRA30:
		return "bgra30"
	case PixelFormatRGBA30:
		return "rgba30"
	case PixelFormatI444:
		return "i444"
	case PixelFormatI422:
		return "i422"
	case PixelFormatI420:
		return "i420"
	case PixelFormatNV12:
		return "nv12"
	case PixelFormatP410:
		return "p410"
	case PixelFormatP010:
		return "p010"
	default:
		return "unknown"
	}
}

// ColorSpace identifies the color model pixel values are expressed in.
type ColorSpace int

const (
	// ColorSpaceLinearRGB is linear RGB. Valid only with packed RGB pixel
	// formats.
	ColorSpaceLinearRGB ColorSpace = iota

	// ColorSpaceBT601 is YCbCr per ITU-R Recommendation BT.601 (standard
	// definition video). Valid only with YCbCr pixel formats.
	ColorSpaceBT601

	// ColorSpaceBT709 is YCbCr per ITU-R Recommendation BT.709 (high
	// definition video). Valid only with YCbCr pixel formats.
	ColorSpaceBT709

	numColorSpaces = iota
)

// String returns the conventional name of the color space.
func (cs ColorSpace) String() string {
	switch cs {
	case ColorSpaceLinearRGB:
		return "lrgb"
	case ColorSpaceBT601:
		return "bt601"
	case ColorSpaceBT709:
		return "bt709"
	default:
		return "unknown"
	}
}

// ImageFormat describes how image data is laid out in memory and which color
// space its values belong to.
//
// Not every combination is valid: LinearRGB pairs only with the packed RGB
// formats, BT601/BT709 only with the YCbCr formats, and each pixel format
// accepts a fixed set of plane counts:
//
//	pixel format                | planes
//	----------------------------|--------
//	ARGB BGRA BGR RGBA RGB      | 1
//	BGRA30 RGBA30               | 1
//	I444 I420 P410 P010         | 3
//	I422                        | 1 or 3
//	NV12                        | 1 or 2
//
// A plane count lower than the format's logical plane count means all
// logical planes are stored back to back in a single buffer.
type ImageFormat struct {
	PixelFormat PixelFormat
	ColorSpace  ColorSpace
	NumPlanes   int
}

// pixelFormatSpec is the immutable metadata attached to each PixelFormat.
type pixelFormatSpec struct {
	bitDepth    int // bits per sample, 8 or 10
	packedBytes int // bytes per pixel, packed formats only
	numPlanes   int // logical plane count of the canonical layout
	subX, subY  int // chroma subsampling factors, 1 when not sub-sampled
	hasAlpha    bool
	ycbcr       bool
}

var pixelFormatSpecs = [numPixelFormats]pixelFormatSpec{
	PixelFormatARGB:   {bitDepth: 8, packedBytes: 4, numPlanes: 1, subX: 1, subY: 1, hasAlpha: true},
	PixelFormatBGRA:   {bitDepth: 8, packedBytes: 4, numPlanes: 1, subX: 1, subY: 1, hasAlpha: true},
	PixelFormatBGR:    {bitDepth: 8, packedBytes: 3, numPlanes: 1, subX: 1, subY: 1},
	PixelFormatRGBA:   {bitDepth: 8, packedBytes: 4, numPlanes: 1, subX: 1, subY: 1, hasAlpha: true},
	PixelFormatRGB:    {bitDepth: 8, packedBytes: 3, numPlanes: 1, subX: 1, subY: 1},
	PixelFormatBGRA30: {bitDepth: 10, packedBytes: 4, numPlanes: 1, subX: 1, subY: 1, hasAlpha: true},
	PixelFormatRGBA30: {bitDepth: 10, packedBytes: 4, numPlanes: 1, subX: 1, subY: 1, hasAlpha: true},
	PixelFormatI444:   {bitDepth: 8, numPlanes: 3, subX: 1, subY: 1, ycbcr: true},
	PixelFormatI422:   {bitDepth: 8, numPlanes: 3, subX: 2, subY: 1, ycbcr: true},
	PixelFormatI420:   {bitDepth: 8, numPlanes: 3, subX: 2, subY: 2, ycbcr: true},
	PixelFormatNV12:   {bitDepth: 8, numPlanes: 2, subX: 2, subY: 2, ycbcr: true},
	PixelFormatP410:   {bitDepth: 10, numPlanes: 3, subX: 1, subY: 1, ycbcr: true},
	PixelFormatP010:   {bitDepth: 10, numPlanes: 3, subX: 2, subY: 2, ycbcr: true},
}

func (pf PixelFormat) valid() bool {
	return pf >= 0 && pf < numPixelFormats
}

func (pf PixelFormat) spec() *pixelFormatSpec {
	return &pixelFormatSpecs[pf]
}

// planesCompatible reports whether numPlanes is one of the plane counts
// permitted for pf. Either the canonical logical plane count is used, or a
// single buffer holds every logical plane; the latter is accepted only for
// the formats whose single-buffer layout is well defined (packed formats
// trivially, I422 and NV12 among the planar ones).
func planesCompatible(pf PixelFormat, numPlanes int) bool {
	spec := pf.spec()
	if numPlanes == spec.numPlanes {
		return true
	}
	if numPlanes != 1 {
		return false
	}
	return pf == PixelFormatI422 || pf == PixelFormatNV12
}

// colorSpaceCompatible reports whether cs may describe data in pf.
func colorSpaceCompatible(pf PixelFormat, cs ColorSpace) bool {
	if cs < 0 || cs >= numColorSpaces {
		return false
	}
	if pf.spec().ycbcr {
		return cs == ColorSpaceBT601 || cs == ColorSpaceBT709
	}
	return cs == ColorSpaceLinearRGB
}

// validateFormat checks an image format against the compatibility rules and
// the dimension alignment its pixel format imposes. The first failing check
// wins; every failure is ErrInvalidValue.
func validateFormat(format *ImageFormat, width, height uint32) error {
	if !format.PixelFormat.valid() {
		return errInvalidValuef("unknown pixel format %d", int(format.PixelFormat))
	}
	if !colorSpaceCompatible(format.PixelFormat, format.ColorSpace) {
		return errInvalidValuef("color space %s is not valid for pixel format %s",
			format.ColorSpace, format.PixelFormat)
	}
	if !planesCompatible(format.PixelFormat, format.NumPlanes) {
		return errInvalidValuef("%d planes are not valid for pixel format %s",
			format.NumPlanes, format.PixelFormat)
	}
	spec := format.PixelFormat.spec()
	if width == 0 || height == 0 ||
		width%uint32(spec.subX) != 0 || height%uint32(spec.subY) != 0 {
		return errInvalidValuef("dimensions %dx%d violate the %s size constraints",
			width, height, format.PixelFormat)
	}
	return nil
}
