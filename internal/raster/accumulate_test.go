// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math/rand"
	"testing"
)

// TestAccumulateUnrolled_MatchesReference checks the unrolled prefix
// sum against the plain loop on lengths around the unroll width.
func TestAccumulateUnrolled_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 3, 4, 5, 8, 31, 127, 1023} {
		src := make([]float32, n)
		for i := range src {
			src[i] = rng.Float32()*3 - 1.5
		}

		want := make([]byte, n)
		accumulate(want, src)
		got := make([]byte, n)
		accumulateUnrolled(got, src)

		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("n=%d: byte %d = %d, want %d", n, i, got[i], want[i])
			}
		}
	}
}

// TestCoverageByte tests saturation and sign handling.
func TestCoverageByte(t *testing.T) {
	tests := []struct {
		name string
		acc  float32
		want uint8
	}{
		{"zero", 0, 0},
		{"half", 0.5, 127},
		{"full", 1, 255},
		{"over full clamps", 1.7, 255},
		{"negative winding counts", -0.5, 127},
		{"negative saturates", -3, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coverageByte(tt.acc); got != tt.want {
				t.Errorf("coverageByte(%g) = %d, want %d", tt.acc, got, tt.want)
			}
		})
	}
}
