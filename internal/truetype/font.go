// Package truetype reads glyph outlines and metrics from TrueType (SFNT)
// font data. It parses the table directory once up front and then resolves
// glyphs, character mappings, and metrics lazily with bounds-checked reads,
// so malformed font files surface as errors or lookup misses rather than
// panics.
package truetype

import (
	"errors"
	"fmt"
)

// SFNT layout constants.
const (
	headerLen   = 12 // offset subtable: version, numTables, search fields
	dirEntryLen = 16 // directory entry: tag, checksum, offset, length
)

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

// Font provides access to the tables of a parsed font. It retains the
// raw table bytes and reads fields on demand; the backing data must not
// be modified while the Font is in use.
type Font struct {
	version uint32
	tables  []TableInfo

	head headTable
	maxp maxpTable
	loca locaTable
	glyf []byte
	cmap cmapTable
	hhea hheaTable
	hmtx hmtxTable

	fmt4 format4 // first format 4 cmap subtable, nil when absent

	numGlyphs  int
	unitsPerEm uint16
}

// Parse reads the SFNT table directory of data and returns a Font backed
// by it. The head and maxp tables are required and validated here; all
// other tables are optional and checked at point of use.
func Parse(data []byte) (*Font, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("font data too short: %d bytes", len(data))
	}
	version, _ := readU32(data, 0)
	numTables16, _ := readU16(data, 4)
	numTables := int(numTables16)
	if headerLen+numTables*dirEntryLen > len(data) {
		return nil, fmt.Errorf("table directory truncated: %d tables in %d bytes", numTables, len(data))
	}
	f := &Font{
		version: version,
		tables:  make([]TableInfo, 0, numTables),
	}
	for i := 0; i < numTables; i++ {
		entry := headerLen + i*dirEntryLen
		tag := string(data[entry : entry+4])
		checksum, _ := readU32(data, entry+4)
		offset, _ := readU32(data, entry+8)
		length, _ := readU32(data, entry+12)
		if uint64(offset)+uint64(length) > uint64(len(data)) {
			return nil, fmt.Errorf("table %q out of bounds: offset %d length %d", tag, offset, length)
		}
		body := data[offset : offset+length]
		f.tables = append(f.tables, TableInfo{Tag: tag, Checksum: checksum, Offset: offset, Length: length})
		switch tag {
		case "head":
			f.head = headTable(body)
		case "maxp":
			f.maxp = maxpTable(body)
		case "loca":
			f.loca.data = body
		case "glyf":
			f.glyf = body
		case "cmap":
			f.cmap = cmapTable(body)
		case "hhea":
			f.hhea = hheaTable(body)
		case "hmtx":
			f.hmtx = hmtxTable(body)
		}
	}
	if f.head == nil {
		return nil, errors.New("missing head table")
	}
	if len(f.head) < minHeadLen {
		return nil, fmt.Errorf("head table too short: %d bytes", len(f.head))
	}
	if f.maxp == nil {
		return nil, errors.New("missing maxp table")
	}
	if len(f.maxp) < minMaxpLen {
		return nil, fmt.Errorf("maxp table too short: %d bytes", len(f.maxp))
	}
	n, _ := f.maxp.numGlyphs()
	f.numGlyphs = int(n)
	f.unitsPerEm, _ = f.head.unitsPerEm()
	if f.unitsPerEm == 0 {
		return nil, errors.New("head table reports zero units per em")
	}
	locFormat, _ := f.head.indexToLocFormat()
	f.loca.long = locFormat != 0
	if f.cmap != nil {
		f.fmt4, _ = f.cmap.findFormat4()
	}
	return f, nil
}

// Version returns the sfnt version value from the offset subtable.
func (f *Font) Version() uint32 { return f.version }

// NumGlyphs returns the glyph count from the maxp table.
func (f *Font) NumGlyphs() int { return f.numGlyphs }

// UnitsPerEm returns the em square size from the head table.
func (f *Font) UnitsPerEm() uint16 { return f.unitsPerEm }

// Tables returns the font's table directory in file order.
func (f *Font) Tables() []TableInfo { return f.tables }

// HasOutlines reports whether the font carries the loca and glyf tables
// needed to read glyph outlines.
func (f *Font) HasOutlines() bool {
	return f.loca.data != nil && f.glyf != nil
}

// HasCmapFormat4 reports whether a format 4 character mapping subtable
// was found.
func (f *Font) HasCmapFormat4() bool { return f.fmt4 != nil }

// LookupGlyphID maps a Unicode code point to a glyph index through the
// format 4 cmap subtable. It reports false when the font has no usable
// subtable or the code point is unmapped.
func (f *Font) LookupGlyphID(codePoint uint32) (uint16, bool) {
	if f.fmt4 == nil {
		return 0, false
	}
	return f.fmt4.lookup(codePoint)
}

// EncodingRecords lists the cmap encoding records, for inspection.
func (f *Font) EncodingRecords() []EncodingRecord {
	if f.cmap == nil {
		return nil
	}
	n, ok := readU16(f.cmap, 2)
	if !ok {
		return nil
	}
	recs := make([]EncodingRecord, 0, n)
	for i := 0; i < int(n); i++ {
		base := 4 + i*8
		pid, ok1 := readU16(f.cmap, base)
		eid, ok2 := readU16(f.cmap, base+2)
		offset, ok3 := readU32(f.cmap, base+4)
		if !ok1 || !ok2 || !ok3 {
			break
		}
		rec := EncodingRecord{PlatformID: pid, EncodingID: eid, Offset: offset, Format: -1}
		if v, ok := readU16(f.cmap, int(offset)); ok {
			rec.Format = int(v)
		}
		recs = append(recs, rec)
	}
	return recs
}

// VMetricsRaw returns the ascent, descent, and line gap from the hhea
// table in font units.
func (f *Font) VMetricsRaw() (ascent, descent, lineGap int16, ok bool) {
	if f.hhea == nil {
		return 0, 0, 0, false
	}
	ascent, ok = f.hhea.ascent()
	if !ok {
		return 0, 0, 0, false
	}
	descent, ok = f.hhea.descent()
	if !ok {
		return 0, 0, 0, false
	}
	lineGap, ok = f.hhea.lineGap()
	if !ok {
		return 0, 0, 0, false
	}
	return ascent, descent, lineGap, true
}

// HMetricsRaw returns the advance width and left side bearing for the
// glyph at index ix in font units.
func (f *Font) HMetricsRaw(ix int) (advance uint16, lsb int16, ok bool) {
	if ix < 0 || ix >= f.numGlyphs {
		return 0, 0, false
	}
	if f.hhea == nil || f.hmtx == nil {
		return 0, 0, false
	}
	numLong, ok := f.hhea.numLongMetrics()
	if !ok || numLong == 0 {
		return 0, 0, false
	}
	return f.hmtx.metrics(ix, int(numLong))
}

// Glyph returns the outline record for the glyph at index ix. It reports
// false when ix is out of range, the outline tables are missing, or the
// loca entries for the glyph are unusable. A well-formed glyph with no
// outline data yields GlyphEmpty.
func (f *Font) Glyph(ix int) (Glyph, bool) {
	if ix < 0 || ix >= f.numGlyphs {
		return Glyph{}, false
	}
	if !f.HasOutlines() {
		return Glyph{}, false
	}
	off0, ok := f.loca.offset(ix)
	if !ok {
		return Glyph{}, false
	}
	off1, ok := f.loca.offset(ix + 1)
	if !ok {
		return Glyph{}, false
	}
	if off0 == off1 {
		return Glyph{Kind: GlyphEmpty}, true
	}
	if off0 > off1 || off1 > len(f.glyf) || off1-off0 < glyphHeaderLen {
		return Glyph{}, false
	}
	data := f.glyf[off0:off1]
	if n, _ := readI16(data, 0); n >= 0 {
		return Glyph{Kind: GlyphSimple, data: data}, true
	}
	return Glyph{Kind: GlyphCompound, data: data}, true
}
