// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// coverageByte converts an accumulated signed area into 8-bit coverage:
// absolute value, clamped to one, scaled to 255.
func coverageByte(acc float32) uint8 {
	y := acc
	if y < 0 {
		y = -y
	}
	if y > 1 {
		y = 1
	}
	return uint8(255 * y)
}

// accumulate integrates the signed deltas in src into coverage bytes.
// The running sum is carried across row boundaries on purpose: deltas
// that spill past a row's right edge land at the start of the next row
// and cancel there.
func accumulate(dst []byte, src []float32) {
	acc := float32(0)
	for i, c := range src {
		acc += c
		dst[i] = coverageByte(acc)
	}
}

// accumulateUnrolled is accumulate with the sum unrolled four wide. The
// additions stay strictly sequential, so the output matches accumulate
// bit for bit.
func accumulateUnrolled(dst []byte, src []float32) {
	acc := float32(0)
	i := 0
	for ; i+4 <= len(src); i += 4 {
		a0 := acc + src[i]
		a1 := a0 + src[i+1]
		a2 := a1 + src[i+2]
		a3 := a2 + src[i+3]
		dst[i] = coverageByte(a0)
		dst[i+1] = coverageByte(a1)
		dst[i+2] = coverageByte(a2)
		dst[i+3] = coverageByte(a3)
		acc = a3
	}
	for ; i < len(src); i++ {
		acc += src[i]
		dst[i] = coverageByte(acc)
	}
}
