package typeface

import (
	"fmt"
	"math"

	"github.com/gogpu/typeface/internal/raster"
	"github.com/gogpu/typeface/internal/truetype"
)

// GlyphID identifies a glyph by its index in the font. Index 0 is the
// font's .notdef glyph by TrueType convention.
type GlyphID uint16

// maxCompositeDepth bounds recursion through nested composite glyphs.
// Real fonts nest a level or two; anything deeper is malformed.
const maxCompositeDepth = 8

// GlyphKind classifies a glyph's outline record.
type GlyphKind uint8

const (
	// GlyphEmpty is a glyph with no outline data, such as a space.
	GlyphEmpty GlyphKind = iota
	// GlyphSimple is a glyph whose record carries its own contours.
	GlyphSimple
	// GlyphCompound is a glyph assembled from transformed components.
	GlyphCompound
)

// String returns the kind's name.
func (k GlyphKind) String() string {
	switch k {
	case GlyphEmpty:
		return "empty"
	case GlyphSimple:
		return "simple"
	case GlyphCompound:
		return "compound"
	}
	return "unknown"
}

// TableInfo describes one entry of the font's table directory.
type TableInfo struct {
	Tag      string
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// EncodingRecord describes one cmap encoding record together with the
// declared format of the subtable it points at. Format is -1 when the
// subtable header is unreadable.
type EncodingRecord struct {
	PlatformID uint16
	EncodingID uint16
	Offset     uint32
	Format     int
}

// Font is a parsed TrueType font. A Font is immutable once parsed and
// safe for concurrent use from multiple goroutines.
type Font struct {
	fnt *truetype.Font
}

// Parse parses TrueType (SFNT) font data. The returned Font keeps data
// as its backing store without copying, so the caller must not modify
// it while the Font is in use.
//
// Malformed font data yields an error wrapping [ErrInvalidFont].
func Parse(data []byte) (*Font, error) {
	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFont, err)
	}
	Logger().Debug("font parsed",
		"tables", len(fnt.Tables()),
		"glyphs", fnt.NumGlyphs(),
		"unitsPerEm", fnt.UnitsPerEm())
	return &Font{fnt: fnt}, nil
}

// Version returns the sfnt version value from the offset subtable,
// 0x00010000 for TrueType outlines.
func (f *Font) Version() uint32 { return f.fnt.Version() }

// NumGlyphs returns the number of glyphs in the font. Valid glyph
// indexes are 0 through NumGlyphs()-1.
func (f *Font) NumGlyphs() int { return f.fnt.NumGlyphs() }

// UnitsPerEm returns the size of the font's design grid, the divisor
// that relates font units to the em square.
func (f *Font) UnitsPerEm() int { return int(f.fnt.UnitsPerEm()) }

// Tables returns the font's table directory in file order.
func (f *Font) Tables() []TableInfo {
	src := f.fnt.Tables()
	tables := make([]TableInfo, len(src))
	for i, t := range src {
		tables[i] = TableInfo(t)
	}
	return tables
}

// EncodingRecords returns the font's cmap encoding records, or nil
// when the font has no readable cmap table.
func (f *Font) EncodingRecords() []EncodingRecord {
	src := f.fnt.EncodingRecords()
	if src == nil {
		return nil
	}
	recs := make([]EncodingRecord, len(src))
	for i, r := range src {
		recs[i] = EncodingRecord(r)
	}
	return recs
}

// LookupGlyphID maps a code point to its glyph index through the font's
// format 4 character map. It reports false when the font has no usable
// character map or the code point is unmapped.
func (f *Font) LookupGlyphID(r rune) (GlyphID, bool) {
	if r < 0 {
		return 0, false
	}
	id, ok := f.fnt.LookupGlyphID(uint32(r))
	return GlyphID(id), ok
}

// GlyphKind classifies the glyph's outline record. It reports false
// when id is out of range or the outline tables are missing or
// unreadable for the glyph.
func (f *Font) GlyphKind(id GlyphID) (GlyphKind, bool) {
	g, ok := f.fnt.Glyph(int(id))
	if !ok {
		return 0, false
	}
	switch g.Kind {
	case truetype.GlyphSimple:
		return GlyphSimple, true
	case truetype.GlyphCompound:
		return GlyphCompound, true
	}
	return GlyphEmpty, true
}

// scale returns the font-unit-to-pixel factor for a pixel size.
func (f *Font) scale(size float64) float64 {
	return size / float64(f.fnt.UnitsPerEm())
}

// VMetrics returns the font's vertical metrics scaled to the given
// pixel size. It returns an error wrapping [ErrMissingTable] when the
// font has no hhea table.
func (f *Font) VMetrics(size float64) (VMetrics, error) {
	ascent, descent, lineGap, ok := f.fnt.VMetricsRaw()
	if !ok {
		return VMetrics{}, fmt.Errorf("%w: hhea", ErrMissingTable)
	}
	s := f.scale(size)
	return VMetrics{
		Ascent:  float64(ascent) * s,
		Descent: float64(descent) * s,
		LineGap: float64(lineGap) * s,
	}, nil
}

// HMetrics returns the glyph's horizontal metrics scaled to the given
// pixel size. It returns an error wrapping [ErrNotFound] when id is out
// of range, or [ErrMissingTable] when the font lacks usable hhea and
// hmtx tables.
func (f *Font) HMetrics(id GlyphID, size float64) (HMetrics, error) {
	if int(id) >= f.fnt.NumGlyphs() {
		return HMetrics{}, fmt.Errorf("%w: glyph %d of %d", ErrNotFound, id, f.fnt.NumGlyphs())
	}
	advance, lsb, ok := f.fnt.HMetricsRaw(int(id))
	if !ok {
		return HMetrics{}, fmt.Errorf("%w: hhea and hmtx", ErrMissingTable)
	}
	s := f.scale(size)
	return HMetrics{
		AdvanceWidth:    float64(advance) * s,
		LeftSideBearing: float64(lsb) * s,
	}, nil
}

// RenderGlyph renders a glyph's outline at the given pixel size into an
// antialiased coverage bitmap. Size is in pixels per em and must not be
// negative. The bitmap is tightly cropped to the glyph's bounding box;
// its Left and Top fields place it relative to the glyph origin.
//
// Glyphs with no outline, such as the space, yield a zero-area bitmap
// and no error. An id with no readable outline yields an error wrapping
// [ErrNotFound]; a font without glyf and loca tables yields one
// wrapping [ErrMissingTable].
func (f *Font) RenderGlyph(id GlyphID, size float64) (*GlyphBitmap, error) {
	if size < 0 {
		return nil, fmt.Errorf("typeface: negative render size %g", size)
	}
	if !f.fnt.HasOutlines() {
		return nil, fmt.Errorf("%w: glyf and loca", ErrMissingTable)
	}
	g, ok := f.fnt.Glyph(int(id))
	if !ok {
		return nil, fmt.Errorf("%w: glyph %d of %d", ErrNotFound, id, f.fnt.NumGlyphs())
	}
	if g.Kind == truetype.GlyphEmpty {
		return &GlyphBitmap{}, nil
	}
	xMin, yMin, xMax, yMax, ok := g.BBox()
	if !ok {
		return nil, fmt.Errorf("%w: glyph %d outline unreadable", ErrNotFound, id)
	}
	if xMin > xMax || yMin > yMax {
		return nil, fmt.Errorf("%w: glyph %d bounding box inverted", ErrNotFound, id)
	}

	// Pixel bounds of the scaled outline. Y flips here: font units have
	// y up, raster rows have y down.
	s := f.scale(size)
	left := int(math.Floor(float64(xMin) * s))
	top := int(math.Floor(float64(yMax) * -s))
	right := int(math.Ceil(float64(xMax) * s))
	bottom := int(math.Ceil(float64(yMin) * -s))
	w, h := right-left, bottom-top

	ras := raster.New(w, h)
	z := Affine{A: s, D: -s, E: float64(-left), F: float64(-top)}
	f.renderOutline(ras, g, z, 0)
	Logger().Debug("glyph rendered",
		"glyph", id,
		"size", size,
		"width", w,
		"height", h)
	return &GlyphBitmap{
		Width:  w,
		Height: h,
		Left:   left,
		Top:    top,
		Data:   ras.Bitmap(nil),
	}, nil
}

// renderOutline rasterizes a glyph under the transform z, recursing
// through composite components. Unreadable components are skipped so
// one bad entry does not discard the rest of the glyph.
func (f *Font) renderOutline(ras *raster.Raster, g truetype.Glyph, z Affine, depth int) {
	switch g.Kind {
	case truetype.GlyphSimple:
		drawSegments(ras, g, z)
	case truetype.GlyphCompound:
		if depth >= maxCompositeDepth {
			Logger().Warn("composite glyph nested too deep, truncating", "depth", depth)
			return
		}
		for comps := g.Components(); ; {
			c, ok := comps.Next()
			if !ok {
				return
			}
			sub, ok := f.fnt.Glyph(int(c.GlyphID))
			if !ok {
				Logger().Warn("composite component unreadable, skipping", "glyph", c.GlyphID)
				continue
			}
			cz := z.Concat(Affine{A: c.A, B: c.B, C: c.C, D: c.D, E: c.E, F: c.F})
			f.renderOutline(ras, sub, cz, depth+1)
		}
	}
}

// drawSegments feeds a simple glyph's outline segments to the
// rasterizer, transforming each point into raster space.
func drawSegments(ras *raster.Raster, g truetype.Glyph, z Affine) {
	var pen raster.Point
	for segs := g.Segments(); ; {
		seg, ok := segs.Next()
		if !ok {
			return
		}
		p := devicePt(z, seg.P)
		switch seg.Op {
		case truetype.MoveTo:
			pen = p
		case truetype.LineTo:
			ras.DrawLine(pen, p)
			pen = p
		case truetype.QuadTo:
			ras.DrawQuad(pen, devicePt(z, seg.Ctrl), p)
			pen = p
		}
	}
}

// devicePt maps a font-unit outline point into raster space.
func devicePt(z Affine, p truetype.Pt) raster.Point {
	q := z.Apply(Point{X: p.X, Y: p.Y})
	return raster.Point{X: float32(q.X), Y: float32(q.Y)}
}
