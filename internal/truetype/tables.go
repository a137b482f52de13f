package truetype

// Minimum table lengths covering every field this package reads.
const (
	minHeadLen = 52 // through indexToLocFormat
	minMaxpLen = 6  // through numGlyphs
)

// headTable is the font header table.
type headTable []byte

func (t headTable) unitsPerEm() (uint16, bool) {
	return readU16(t, 18)
}

func (t headTable) indexToLocFormat() (int16, bool) {
	return readI16(t, 50)
}

// maxpTable is the maximum profile table.
type maxpTable []byte

func (t maxpTable) numGlyphs() (uint16, bool) {
	return readU16(t, 4)
}

// locaTable maps glyph indexes to byte offsets into the glyf table.
// The short format stores half-offsets as uint16 values, the long
// format stores byte offsets as uint32 values.
type locaTable struct {
	data []byte
	long bool
}

func (t locaTable) offset(ix int) (int, bool) {
	if t.long {
		v, ok := readU32(t.data, ix*4)
		return int(v), ok
	}
	v, ok := readU16(t.data, ix*2)
	return int(v) * 2, ok
}

// hheaTable is the horizontal header table.
type hheaTable []byte

func (t hheaTable) ascent() (int16, bool)  { return readI16(t, 4) }
func (t hheaTable) descent() (int16, bool) { return readI16(t, 6) }
func (t hheaTable) lineGap() (int16, bool) { return readI16(t, 8) }

func (t hheaTable) numLongMetrics() (uint16, bool) {
	return readU16(t, 34)
}

// hmtxTable holds per-glyph horizontal metrics. Glyphs at or past
// numLong share the last full entry's advance width and store only a
// left side bearing.
type hmtxTable []byte

func (t hmtxTable) metrics(ix, numLong int) (advance uint16, lsb int16, ok bool) {
	if ix < numLong {
		advance, ok = readU16(t, 4*ix)
		if !ok {
			return 0, 0, false
		}
		lsb, ok = readI16(t, 4*ix+2)
		if !ok {
			return 0, 0, false
		}
		return advance, lsb, true
	}
	advance, ok = readU16(t, 4*(numLong-1))
	if !ok {
		return 0, 0, false
	}
	lsb, ok = readI16(t, 4*numLong+2*(ix-numLong))
	if !ok {
		return 0, 0, false
	}
	return advance, lsb, true
}
