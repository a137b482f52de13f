package truetype

// SegmentOp identifies one outline drawing operation.
type SegmentOp uint8

const (
	// MoveTo starts a new contour at P.
	MoveTo SegmentOp = iota
	// LineTo draws a straight line to P.
	LineTo
	// QuadTo draws a quadratic bezier through control point Ctrl to P.
	QuadTo
)

// Pt is a point in font units. Outline points are integers, but implied
// on-curve points fall on half-unit midpoints, so segments carry floats.
type Pt struct {
	X, Y float64
}

func midpoint(a, b Pt) Pt {
	return Pt{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Segment is one outline drawing operation. Ctrl is meaningful only for
// QuadTo. Contours are implicitly closed: the final segment of each
// contour ends at its starting point.
type Segment struct {
	Op   SegmentOp
	Ctrl Pt
	P    Pt
}

// Segments walks a simple glyph's contours and yields them as move,
// line, and quadratic bezier segments. Runs of consecutive off-curve
// points get implied on-curve points at their midpoints, per the
// TrueType outline convention, and each contour is closed back to its
// first on-curve point.
type Segments struct {
	points Points
	sizes  ContourSizes

	remaining int // points left in the current contour

	firstOn      Pt
	haveFirstOn  bool
	firstOff     Pt
	haveFirstOff bool
	lastOff      Pt
	haveLastOff  bool

	closing bool
	done    bool
}

// Segments returns a cursor over the glyph's outline segments.
func (g Glyph) Segments() Segments {
	return Segments{points: g.Points(), sizes: g.ContourSizes()}
}

// Next returns the next outline segment.
func (s *Segments) Next() (Segment, bool) {
	for !s.done {
		if s.closing {
			if seg, ok := s.closeContour(); ok {
				return seg, true
			}
			continue
		}
		if s.remaining == 0 {
			n, ok := s.sizes.Next()
			if !ok {
				s.done = true
				break
			}
			s.remaining = n
			continue
		}
		pt, ok := s.points.Next()
		if !ok {
			s.done = true
			break
		}
		s.remaining--
		if s.remaining == 0 {
			s.closing = true
		}
		if seg, ok := s.consume(Pt{X: float64(pt.X), Y: float64(pt.Y)}, pt.OnCurve); ok {
			return seg, true
		}
	}
	return Segment{}, false
}

// consume feeds one point into the state machine, possibly emitting a
// segment. Until the contour's starting on-curve point is known, points
// are buffered; a contour opening with two off-curve points starts at
// their implied midpoint.
func (s *Segments) consume(p Pt, onCurve bool) (Segment, bool) {
	if !s.haveFirstOn {
		if onCurve {
			s.firstOn = p
			s.haveFirstOn = true
			return Segment{Op: MoveTo, P: p}, true
		}
		if !s.haveFirstOff {
			s.firstOff = p
			s.haveFirstOff = true
			return Segment{}, false
		}
		mid := midpoint(s.firstOff, p)
		s.firstOn = mid
		s.haveFirstOn = true
		s.lastOff = p
		s.haveLastOff = true
		return Segment{Op: MoveTo, P: mid}, true
	}
	if !s.haveLastOff {
		if onCurve {
			return Segment{Op: LineTo, P: p}, true
		}
		s.lastOff = p
		s.haveLastOff = true
		return Segment{}, false
	}
	if onCurve {
		seg := Segment{Op: QuadTo, Ctrl: s.lastOff, P: p}
		s.haveLastOff = false
		return seg, true
	}
	seg := Segment{Op: QuadTo, Ctrl: s.lastOff, P: midpoint(s.lastOff, p)}
	s.lastOff = p
	return seg, true
}

// closeContour emits the segments that join the contour's last point
// back to its first on-curve point, then resets for the next contour.
func (s *Segments) closeContour() (Segment, bool) {
	if !s.haveFirstOn {
		// A contour of nothing but buffered off-curve points draws nothing.
		s.finishContour()
		return Segment{}, false
	}
	switch {
	case !s.haveFirstOff && !s.haveLastOff:
		seg := Segment{Op: LineTo, P: s.firstOn}
		s.finishContour()
		return seg, true
	case !s.haveFirstOff:
		seg := Segment{Op: QuadTo, Ctrl: s.lastOff, P: s.firstOn}
		s.finishContour()
		return seg, true
	case !s.haveLastOff:
		seg := Segment{Op: QuadTo, Ctrl: s.firstOff, P: s.firstOn}
		s.finishContour()
		return seg, true
	default:
		// Both ends are off-curve: bridge through their midpoint first,
		// then close through firstOff on the next call.
		seg := Segment{Op: QuadTo, Ctrl: s.lastOff, P: midpoint(s.lastOff, s.firstOff)}
		s.haveLastOff = false
		return seg, true
	}
}

func (s *Segments) finishContour() {
	s.closing = false
	s.haveFirstOn = false
	s.haveFirstOff = false
	s.haveLastOff = false
}
