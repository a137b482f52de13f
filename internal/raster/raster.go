// Package raster provides antialiased scanline rasterization for glyph
// outlines. Based on font-rs's accumulation rasterizer: each line or
// quadratic segment deposits signed winding deltas into a per-pixel
// accumulation buffer, and a single prefix sum pass converts the buffer
// into 8-bit coverage.
package raster

import "math"

// Point is a position in device space.
type Point struct {
	X, Y float32
}

func lerp(t float32, a, b Point) Point {
	return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

// Raster accumulates signed area deltas for one image. Segments must
// stay within the image's horizontal extent; the buffer carries a few
// cells of slack so that deltas at the right edge spill into the next
// row's start, where the prefix sum absorbs them.
type Raster struct {
	w, h int
	a    []float32
}

// New returns a Raster for a w by h pixel image.
func New(w, h int) *Raster {
	return &Raster{w: w, h: h, a: make([]float32, w*h+4)}
}

// Reset clears the accumulation buffer and resizes it to w by h pixels,
// reusing the existing allocation when it is large enough.
func (r *Raster) Reset(w, h int) {
	n := w*h + 4
	r.w, r.h = w, h
	if cap(r.a) >= n {
		r.a = r.a[:n]
		clear(r.a)
		return
	}
	r.a = make([]float32, n)
}

// Size returns the image dimensions in pixels.
func (r *Raster) Size() (w, h int) { return r.w, r.h }

// DrawLine accumulates winding deltas for a line from p0 to p1.
// Horizontal lines change no winding and are skipped.
func (r *Raster) DrawLine(p0, p1 Point) {
	if p0.Y == p1.Y {
		return
	}
	dir := float32(1)
	if p0.Y >= p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	dxdy := (p1.X - p0.X) / (p1.Y - p0.Y)
	x := p0.X
	y0 := int(p0.Y)
	if p0.Y < 0 {
		x -= p0.Y * dxdy
		y0 = 0
	}
	yMax := int(math.Ceil(float64(p1.Y)))
	if yMax > r.h {
		yMax = r.h
	}
	for y := y0; y < yMax; y++ {
		linestart := y * r.w
		dy := min(float32(y+1), p1.Y) - max(float32(y), p0.Y)
		xnext := x + dxdy*dy
		d := dy * dir
		x0, x1 := x, xnext
		if x >= xnext {
			x0, x1 = xnext, x
		}
		x0floor := float32(math.Floor(float64(x0)))
		x0i := int(x0floor)
		x1ceil := float32(math.Ceil(float64(x1)))
		x1i := int(x1ceil)
		if x1i <= x0i+1 {
			// The segment fits in one pixel column.
			xmf := 0.5*(x+xnext) - x0floor
			i0 := linestart + x0i
			if i0 < 0 {
				// Rounding can nudge a segment endpoint just left of
				// the image on row zero.
				x = xnext
				continue
			}
			r.a[i0] += d - d*xmf
			r.a[i0+1] += d * xmf
		} else {
			s := 1 / (x1 - x0)
			x0f := x0 - x0floor
			a0 := 0.5 * s * (1 - x0f) * (1 - x0f)
			x1f := x1 - x1ceil + 1
			am := 0.5 * s * x1f * x1f
			i0 := linestart + x0i
			if i0 < 0 {
				x = xnext
				continue
			}
			r.a[i0] += d * a0
			if x1i == x0i+2 {
				r.a[i0+1] += d * (1 - a0 - am)
			} else {
				a1 := s * (1.5 - x0f)
				r.a[i0+1] += d * (a1 - a0)
				for xi := x0i + 2; xi < x1i-1; xi++ {
					r.a[linestart+xi] += d * s
				}
				a2 := a1 + float32(x1i-x0i-3)*s
				r.a[linestart+x1i-1] += d * (1 - a2 - am)
			}
			r.a[linestart+x1i] += d * am
		}
		x = xnext
	}
}

// DrawQuad accumulates winding deltas for a quadratic bezier from p0
// through control point p1 to p2. The curve is flattened into chords;
// the subdivision count grows with the curve's deviation from a
// straight line, keeping the flattening error roughly constant.
func (r *Raster) DrawQuad(p0, p1, p2 Point) {
	devx := p0.X - 2*p1.X + p2.X
	devy := p0.Y - 2*p1.Y + p2.Y
	devsq := devx*devx + devy*devy
	if devsq < 0.333 {
		r.DrawLine(p0, p2)
		return
	}
	const tol = 3.0
	n := 1 + int(math.Floor(math.Sqrt(math.Sqrt(tol*float64(devsq)))))
	p := p0
	nrecip := 1 / float32(n)
	t := float32(0)
	for i := 0; i < n-1; i++ {
		t += nrecip
		pn := lerp(t, lerp(t, p0, p1), lerp(t, p1, p2))
		r.DrawLine(p, pn)
		p = pn
	}
	r.DrawLine(p, p2)
}

// Bitmap converts the accumulated deltas into 8-bit coverage, one byte
// per pixel in row-major order. dst is reused when it has the capacity
// and the result is returned.
func (r *Raster) Bitmap(dst []byte) []byte {
	n := r.w * r.h
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	accumulateUnrolled(dst, r.a[:n])
	return dst
}
