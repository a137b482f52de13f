package truetype

// GlyphKind classifies a glyph outline record.
type GlyphKind uint8

const (
	// GlyphEmpty is a glyph with no outline, such as a space.
	GlyphEmpty GlyphKind = iota
	// GlyphSimple is a glyph whose record carries its own contours.
	GlyphSimple
	// GlyphCompound is a glyph assembled from transformed components.
	GlyphCompound
)

// glyphHeaderLen covers numberOfContours and the bounding box. Records
// shorter than this are rejected outright.
const glyphHeaderLen = 10

// Simple glyph flag bits. The short-vector and same-or-positive bits
// combine to select the delta encoding per coordinate: a set short bit
// reads one byte whose sign comes from the positive bit, a clear short
// bit reads a two-byte signed delta unless the same bit repeats the
// previous coordinate.
const (
	flagOnCurve   = 1 << 0
	flagXShort    = 1 << 1
	flagYShort    = 1 << 2
	flagRepeat    = 1 << 3
	flagXPositive = 1 << 4 // "same x" when flagXShort is clear
	flagYPositive = 1 << 5 // "same y" when flagYShort is clear
)

// Compound glyph component flag bits.
const (
	flagArgsAreWords   = 1 << 0
	flagWeHaveScale    = 1 << 3
	flagMoreComponents = 1 << 5
	flagWeHaveXYScale  = 1 << 6
	flagWeHaveTwoByTwo = 1 << 7
)

// Glyph is one glyph's outline record. The cursor accessors interpret
// the record per Kind: ContourSizes, Points, and Segments for simple
// glyphs, Components for compound glyphs.
type Glyph struct {
	Kind GlyphKind
	data []byte
}

// NumContours returns the contour count from the record header. It is
// negative for compound glyphs and zero for empty ones.
func (g Glyph) NumContours() int {
	n, ok := readI16(g.data, 0)
	if !ok {
		return 0
	}
	return int(n)
}

// BBox returns the glyph's bounding box in font units.
func (g Glyph) BBox() (xMin, yMin, xMax, yMax int, ok bool) {
	x0, ok0 := readI16(g.data, 2)
	y0, ok1 := readI16(g.data, 4)
	x1, ok2 := readI16(g.data, 6)
	y1, ok3 := readI16(g.data, 8)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, 0, false
	}
	return int(x0), int(y0), int(x1), int(y1), true
}

// ContourSizes iterates the per-contour point counts of a simple glyph.
type ContourSizes struct {
	data   []byte
	n      int
	ix     int
	offset int // previous contour's last point index, starts at -1
}

// ContourSizes returns a cursor over the glyph's contour point counts.
func (g Glyph) ContourSizes() ContourSizes {
	return ContourSizes{data: g.data, n: g.NumContours(), offset: -1}
}

// Next returns the point count of the next contour. A decreasing
// end-point index ends the iteration early.
func (cs *ContourSizes) Next() (int, bool) {
	if cs.ix >= cs.n {
		return 0, false
	}
	endPt, ok := readU16(cs.data, glyphHeaderLen+cs.ix*2)
	if !ok {
		return 0, false
	}
	size := int(endPt) - cs.offset
	cs.offset = int(endPt)
	cs.ix++
	if size < 0 {
		return 0, false
	}
	return size, true
}

// Point is one outline point in font units.
type Point struct {
	X, Y    int32
	OnCurve bool
}

// Points iterates the points of a simple glyph. Coordinates are stored
// as deltas and accumulate from (0, 0); flags may carry a repeat count.
type Points struct {
	data      []byte
	remaining int
	x, y      int32

	flagIx  int
	flag    byte
	repeats int

	xIx, yIx int
}

// Points returns a cursor over the glyph's points. The constructor
// walks the flags array once to locate the coordinate arrays and verify
// that they fit inside the record; a malformed record yields an empty
// cursor.
func (g Glyph) Points() Points {
	data := g.data
	n := g.NumContours()
	if n < 0 {
		return Points{}
	}
	insnLenOff := glyphHeaderLen + 2*n
	lastPt, ok := readU16(data, insnLenOff-2)
	if !ok {
		return Points{}
	}
	nPoints := int(lastPt) + 1
	insnLen, ok := readU16(data, insnLenOff)
	if !ok {
		return Points{}
	}
	flagsIx := insnLenOff + int(insnLen) + 2
	ix := flagsIx
	xSize, ySize := 0, 0
	for remaining := nPoints; remaining > 0; {
		if ix >= len(data) {
			return Points{}
		}
		flag := data[ix]
		ix++
		count := 1
		if flag&flagRepeat != 0 {
			if ix >= len(data) {
				return Points{}
			}
			count += int(data[ix])
			ix++
		}
		// A final run whose repeat count overshoots the point total is
		// clamped rather than rejected; the spare repeats go unread.
		if count > remaining {
			count = remaining
		}
		remaining -= count
		switch flag & (flagXShort | flagXPositive) {
		case flagXShort, flagXShort | flagXPositive:
			xSize += count
		case 0:
			xSize += 2 * count
		}
		switch flag & (flagYShort | flagYPositive) {
		case flagYShort, flagYShort | flagYPositive:
			ySize += count
		case 0:
			ySize += 2 * count
		}
	}
	if ix+xSize+ySize > len(data) {
		return Points{}
	}
	return Points{
		data:      data,
		remaining: nPoints,
		flagIx:    flagsIx,
		xIx:       ix,
		yIx:       ix + xSize,
	}
}

// Next returns the next point. The constructor already verified the
// flag and coordinate extents, so reads here are unchecked.
func (p *Points) Next() (Point, bool) {
	if p.remaining == 0 {
		return Point{}, false
	}
	if p.repeats > 0 {
		p.repeats--
	} else {
		p.flag = p.data[p.flagIx]
		p.flagIx++
		if p.flag&flagRepeat != 0 {
			p.repeats = int(p.data[p.flagIx])
			p.flagIx++
		}
	}
	switch p.flag & (flagXShort | flagXPositive) {
	case flagXShort:
		p.x -= int32(p.data[p.xIx])
		p.xIx++
	case flagXShort | flagXPositive:
		p.x += int32(p.data[p.xIx])
		p.xIx++
	case 0:
		p.x += int32(int16(uint16(p.data[p.xIx])<<8 | uint16(p.data[p.xIx+1])))
		p.xIx += 2
	}
	switch p.flag & (flagYShort | flagYPositive) {
	case flagYShort:
		p.y -= int32(p.data[p.yIx])
		p.yIx++
	case flagYShort | flagYPositive:
		p.y += int32(p.data[p.yIx])
		p.yIx++
	case 0:
		p.y += int32(int16(uint16(p.data[p.yIx])<<8 | uint16(p.data[p.yIx+1])))
		p.yIx += 2
	}
	p.remaining--
	return Point{X: p.x, Y: p.y, OnCurve: p.flag&flagOnCurve != 0}, true
}

// Component is one entry of a compound glyph: a glyph index plus an
// affine transform mapping the component's outline into the parent's
// coordinate space as x' = A*x + C*y + E, y' = B*x + D*y + F.
type Component struct {
	GlyphID          uint16
	A, B, C, D, E, F float64
}

// Components iterates the component entries of a compound glyph.
type Components struct {
	data []byte
	off  int
	more bool
}

// Components returns a cursor over the glyph's component entries. A
// truncated entry ends the iteration.
func (g Glyph) Components() Components {
	return Components{data: g.data, off: glyphHeaderLen, more: true}
}

// Next returns the next component.
func (c *Components) Next() (Component, bool) {
	if !c.more {
		return Component{}, false
	}
	flags, ok := readU16(c.data, c.off)
	if !ok {
		c.more = false
		return Component{}, false
	}
	glyphID, ok := readU16(c.data, c.off+2)
	if !ok {
		c.more = false
		return Component{}, false
	}
	off := c.off + 4
	comp := Component{GlyphID: glyphID, A: 1, D: 1}
	if flags&flagArgsAreWords != 0 {
		e, ok0 := readI16(c.data, off)
		f, ok1 := readI16(c.data, off+2)
		if !ok0 || !ok1 {
			c.more = false
			return Component{}, false
		}
		comp.E = float64(e)
		comp.F = float64(f)
		off += 4
	} else {
		// Byte args are zero-extended, not sign-extended.
		if off+2 > len(c.data) {
			c.more = false
			return Component{}, false
		}
		comp.E = float64(c.data[off])
		comp.F = float64(c.data[off+1])
		off += 2
	}
	switch {
	case flags&flagWeHaveTwoByTwo != 0:
		a, ok0 := readF2Dot14(c.data, off)
		b, ok1 := readF2Dot14(c.data, off+2)
		cc, ok2 := readF2Dot14(c.data, off+4)
		d, ok3 := readF2Dot14(c.data, off+6)
		if !ok0 || !ok1 || !ok2 || !ok3 {
			c.more = false
			return Component{}, false
		}
		comp.A, comp.B, comp.C, comp.D = a, b, cc, d
		off += 8
	case flags&flagWeHaveXYScale != 0:
		a, ok0 := readF2Dot14(c.data, off)
		d, ok1 := readF2Dot14(c.data, off+2)
		if !ok0 || !ok1 {
			c.more = false
			return Component{}, false
		}
		comp.A, comp.D = a, d
		off += 4
	case flags&flagWeHaveScale != 0:
		s, ok0 := readF2Dot14(c.data, off)
		if !ok0 {
			c.more = false
			return Component{}, false
		}
		comp.A, comp.D = s, s
		off += 2
	}
	c.off = off
	c.more = flags&flagMoreComponents != 0
	return comp, true
}
