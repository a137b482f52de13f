// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"math"
	"testing"
)

// TestBitmap_Triangle checks exact coverage for a right triangle whose
// hypotenuse crosses two pixels diagonally.
func TestBitmap_Triangle(t *testing.T) {
	r := New(2, 2)
	r.DrawLine(Point{0, 0}, Point{2, 2})
	r.DrawLine(Point{2, 2}, Point{2, 0})
	r.DrawLine(Point{2, 0}, Point{0, 0})

	got := r.Bitmap(nil)
	want := []byte{127, 255, 0, 127}
	if len(got) != len(want) {
		t.Fatalf("bitmap length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pixel %d = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestBitmap_FullSquare fills the whole image; coverage must saturate
// regardless of contour orientation.
func TestBitmap_FullSquare(t *testing.T) {
	for _, clockwise := range []bool{false, true} {
		r := New(2, 2)
		if clockwise {
			r.DrawLine(Point{0, 0}, Point{0, 2})
			r.DrawLine(Point{0, 2}, Point{2, 2})
			r.DrawLine(Point{2, 2}, Point{2, 0})
			r.DrawLine(Point{2, 0}, Point{0, 0})
		} else {
			r.DrawLine(Point{0, 0}, Point{2, 0})
			r.DrawLine(Point{2, 0}, Point{2, 2})
			r.DrawLine(Point{2, 2}, Point{0, 2})
			r.DrawLine(Point{0, 2}, Point{0, 0})
		}
		for i, v := range r.Bitmap(nil) {
			if v != 255 {
				t.Fatalf("clockwise=%v: pixel %d = %d, want 255", clockwise, i, v)
			}
		}
	}
}

// TestDrawLine_MassConservation checks that the deltas a line deposits
// sum to its signed vertical extent, for every branch of the span code.
func TestDrawLine_MassConservation(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
	}{
		{"vertical", Point{2, 1}, Point{2, 7}},
		{"vertical reversed", Point{2, 7}, Point{2, 1}},
		{"steep", Point{1.3, 0.7}, Point{2.1, 6.6}},
		{"diagonal across columns", Point{0.1, 0.1}, Point{7.9, 6.9}},
		{"shallow across columns", Point{0.2, 3.1}, Point{7.8, 3.9}},
		{"shallow reversed", Point{7.8, 3.9}, Point{0.2, 3.1}},
		{"horizontal contributes nothing", Point{1, 4}, Point{7, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(8, 8)
			r.DrawLine(tt.p0, tt.p1)
			var sum float64
			for _, v := range r.a {
				sum += float64(v)
			}
			want := float64(tt.p1.Y - tt.p0.Y)
			if math.Abs(sum-want) > 1e-4 {
				t.Errorf("delta sum = %g, want %g", sum, want)
			}
		})
	}
}

// TestDrawLine_NegativeXSpanRegression replays a contour whose float
// rounding lands a span fractionally left of the image on row zero.
// The draw must clip that span instead of indexing before the buffer.
func TestDrawLine_NegativeXSpanRegression(t *testing.T) {
	r := New(6, 16)
	r.DrawLine(Point{5.54, 14.299999}, Point{3.7399998, 13.799999})
	r.DrawLine(Point{3.7399998, 13.799999}, Point{3.7399998, 0.0})
	r.DrawLine(Point{3.7399998, 0.0}, Point{0.0, 0.10000038})

	if got := r.Bitmap(nil); len(got) != 6*16 {
		t.Fatalf("bitmap length = %d, want %d", len(got), 6*16)
	}
}

// TestDrawQuad_FlatCurveMatchesLine checks that a quad whose control
// point sits on the chord degenerates to a single line.
func TestDrawQuad_FlatCurveMatchesLine(t *testing.T) {
	quad := New(8, 8)
	quad.DrawQuad(Point{1, 1}, Point{4, 4}, Point{7, 7})

	line := New(8, 8)
	line.DrawLine(Point{1, 1}, Point{7, 7})

	for i := range line.a {
		if quad.a[i] != line.a[i] {
			t.Fatalf("delta %d = %g, want %g", i, quad.a[i], line.a[i])
		}
	}
}

// TestDrawQuad_Convergence compares adaptive flattening against a fixed
// 256-chord reference. The coverage difference stays within the
// flattening tolerance.
func TestDrawQuad_Convergence(t *testing.T) {
	const size = 64
	p0 := Point{0, size}
	p1 := Point{size, size}
	p2 := Point{size, 0}

	adaptive := New(size, size)
	adaptive.DrawQuad(p0, p1, p2)
	adaptive.DrawLine(p2, Point{0, 0})
	adaptive.DrawLine(Point{0, 0}, p0)

	reference := New(size, size)
	const chords = 256
	prev := p0
	for i := 1; i <= chords; i++ {
		u := float32(i) / chords
		next := lerp(u, lerp(u, p0, p1), lerp(u, p1, p2))
		reference.DrawLine(prev, next)
		prev = next
	}
	reference.DrawLine(p2, Point{0, 0})
	reference.DrawLine(Point{0, 0}, p0)

	got := adaptive.Bitmap(nil)
	want := reference.Bitmap(nil)
	var maxDiff, total int
	for i := range want {
		diff := int(got[i]) - int(want[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > maxDiff {
			maxDiff = diff
		}
		total += diff
	}
	if maxDiff > 48 {
		t.Errorf("max coverage difference = %d, want <= 48", maxDiff)
	}
	if mean := float64(total) / float64(len(want)); mean > 2 {
		t.Errorf("mean coverage difference = %g, want <= 2", mean)
	}
}

// TestRaster_Reset checks that a reused raster renders the same bitmap
// as a fresh one.
func TestRaster_Reset(t *testing.T) {
	drawTriangle := func(r *Raster) {
		r.DrawLine(Point{0, 0}, Point{2, 2})
		r.DrawLine(Point{2, 2}, Point{2, 0})
		r.DrawLine(Point{2, 0}, Point{0, 0})
	}

	r := New(4, 4)
	r.DrawLine(Point{0, 0}, Point{4, 4})
	r.DrawLine(Point{4, 4}, Point{4, 0})
	r.DrawLine(Point{4, 0}, Point{0, 0})

	r.Reset(2, 2)
	if w, h := r.Size(); w != 2 || h != 2 {
		t.Fatalf("Size after Reset = (%d, %d), want (2, 2)", w, h)
	}
	drawTriangle(r)

	fresh := New(2, 2)
	drawTriangle(fresh)

	got := r.Bitmap(nil)
	want := fresh.Bitmap(nil)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pixel %d = %d, want %d", i, got[i], want[i])
		}
	}

	// Growing past the original allocation must also work.
	r.Reset(16, 16)
	if got := r.Bitmap(nil); len(got) != 256 {
		t.Fatalf("bitmap length after growth = %d, want 256", len(got))
	}
}

// TestBitmap_ReusesDst checks that a destination with enough capacity
// is written in place.
func TestBitmap_ReusesDst(t *testing.T) {
	r := New(2, 2)
	r.DrawLine(Point{0, 0}, Point{2, 2})

	buf := make([]byte, 4)
	got := r.Bitmap(buf)
	if &got[0] != &buf[0] {
		t.Error("Bitmap reallocated despite sufficient capacity")
	}

	small := make([]byte, 1)
	got = r.Bitmap(small)
	if len(got) != 4 {
		t.Errorf("bitmap length = %d, want 4", len(got))
	}
}
