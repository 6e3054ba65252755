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

// Fixed-point parameters shared by every conversion kernel. Matrix
// coefficients are pre-scaled by 2^fixBits and rounded; kernels add fixHalf
// before shifting so results round to nearest. Chroma values produced from
// a 2x2 block of summed RGB samples shift by two extra bits to fold the
// averaging into the same rounding step.
const (
	fixBits = 8
	fixHalf = 1 << (fixBits - 1)

	blockBits = fixBits + 2
	blockHalf = 1 << (blockBits - 1)
)

// forwardCoeffs is an RGB to YCbCr matrix in 8-bit fixed point.
//
//	Y  = ( yR*R  + yG*G  + yB*B ) >> 8 + 16
//	Cb = (cbR*R + cbG*G + cbB*B) >> 8 + 128
//	Cr = (crR*R + crG*G + crB*B) >> 8 + 128
type forwardCoeffs struct {
	yR, yG, yB    int32
	cbR, cbG, cbB int32
	crR, crG, crB int32
}

// inverseCoeffs is a YCbCr to RGB matrix in 8-bit fixed point.
//
//	R = (y*(Y-16) + rCr*(Cr-128)) >> 8
//	G = (y*(Y-16) - gCb*(Cb-128) - gCr*(Cr-128)) >> 8
//	B = (y*(Y-16) + bCb*(Cb-128)) >> 8
//
// For 10-bit sources the offsets scale to 64 and 512.
type inverseCoeffs struct {
	y        int32
	rCr      int32
	gCb, gCr int32
	bCb      int32
}

// ITU-R BT.601 studio-swing matrices:
//
//	y  =  0.257*r + 0.504*g + 0.098*b + 16
//	cb = -0.148*r - 0.291*g + 0.439*b + 128
//	cr =  0.439*r - 0.368*g - 0.071*b + 128
//
//	r = 1.164*(y-16) + 1.596*(cr-128)
//	g = 1.164*(y-16) - 0.813*(cr-128) - 0.392*(cb-128)
//	b = 1.164*(y-16) + 2.017*(cb-128)
var (
	forwardBT601 = forwardCoeffs{
		yR: 66, yG: 129, yB: 25,
		cbR: -38, cbG: -74, cbB: 112,
		crR: 112, crG: -94, crB: -18,
	}
	inverseBT601 = inverseCoeffs{y: 298, rCr: 409, gCb: 100, gCr: 208, bCb: 516}
)

// ITU-R BT.709 matrices:
//
//	y  =  0.213*r + 0.715*g + 0.072*b + 16
//	cb = -0.117*r - 0.394*g + 0.511*b + 128
//	cr =  0.511*r - 0.464*g - 0.047*b + 128
//
//	r = 1.164*(y-16) + 1.793*(cr-128)
//	g = 1.164*(y-16) - 0.534*(cr-128) - 0.213*(cb-128)
//	b = 1.164*(y-16) + 2.115*(cb-128)
var (
	forwardBT709 = forwardCoeffs{
		yR: 55, yG: 183, yB: 18,
		cbR: -30, cbG: -101, cbB: 131,
		crR: 131, crG: -119, crB: -12,
	}
	inverseBT709 = inverseCoeffs{y: 298, rCr: 459, gCb: 55, gCr: 137, bCb: 541}
)

// forwardFor selects the RGB to YCbCr coefficient set for a color space.
// Callers guarantee cs is one of the YCbCr spaces.
func forwardFor(cs ColorSpace) *forwardCoeffs {
	if cs == ColorSpaceBT709 {
		return &forwardBT709
	}
	return &forwardBT601
}

// inverseFor selects the YCbCr to RGB coefficient set for a color space.
func inverseFor(cs ColorSpace) *inverseCoeffs {
	if cs == ColorSpaceBT709 {
		return &inverseBT709
	}
	return &inverseBT601
}

// clamp8 clamps v to [0, 255] and narrows to a byte.
func clamp8(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// clamp10 clamps v to [0, 1023].
func clamp10(v int32) uint32 {
	if v < 0 {
		return 0
	}
	if v > 1023 {
		return 1023
	}
	return uint32(v)
}
