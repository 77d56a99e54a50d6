// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "encoding/binary"

// FloatBytes is the number of bytes in the binary form of a float32
// component, as uploaded to the GPU.
const FloatBytes = 4

// appendFloatBytes appends the little-endian IEEE 754 bytes of fs to dst.
// This is the byte layout a GL implementation expects for uniform
// and vertex buffer data on all supported (little-endian) platforms.
func appendFloatBytes(dst []byte, fs ...float32) []byte {
	for _, f := range fs {
		dst = binary.LittleEndian.AppendUint32(dst, Float32bits(f))
	}
	return dst
}

// FloatsFromBytes decodes little-endian IEEE 754 float32 values
// from b into dst, returning the number of values decoded, which is
// the lesser of len(dst) and len(b) / [FloatBytes].
func FloatsFromBytes(dst []float32, b []byte) int {
	n := min(len(dst), len(b)/FloatBytes)
	for i := range n {
		dst[i] = Float32frombits(binary.LittleEndian.Uint32(b[i*FloatBytes:]))
	}
	return n
}

// safeRatio returns num / den, or 0 if den is 0.
func safeRatio(num, den float32) float32 {
	if den == 0 {
		return 0
	}
	return num / den
}
