package truetype

// cmapTable is the character-to-glyph mapping table. Only format 4
// subtables are consulted; other formats are listed by EncodingRecords
// but never searched.
type cmapTable []byte

// findFormat4 scans the encoding records in order and returns the first
// subtable that declares format 4. An unreadable record aborts the scan.
func (t cmapTable) findFormat4() (format4, bool) {
	numRecords, ok := readU16(t, 2)
	if !ok {
		return nil, false
	}
	for i := 0; i < int(numRecords); i++ {
		offset32, ok := readU32(t, 4+i*8+4)
		if !ok {
			return nil, false
		}
		offset := int(offset32)
		format, ok := readU16(t, offset)
		if !ok {
			return nil, false
		}
		if format != 4 {
			continue
		}
		length, ok := readU16(t, offset+2)
		if !ok {
			return nil, false
		}
		if offset+int(length) > len(t) {
			return nil, false
		}
		return format4(t[offset : offset+int(length)]), true
	}
	return nil, false
}

// format4 is a segment-mapped cmap subtable covering the Basic
// Multilingual Plane. Segments are sorted by ascending end code, so
// lookup is a binary search over the segment arrays.
type format4 []byte

// Segment array layout, relative to the subtable start: endCode[] at 14,
// then a pad word, then startCode[], idDelta[], and idRangeOffset[],
// each segCount words long.
const fmt4EndCodes = 14

func (t format4) lookup(codePoint uint32) (uint16, bool) {
	segCountX2, ok := readU16(t, 6)
	if !ok {
		return 0, false
	}
	segCount := int(segCountX2) / 2
	start, end := 0, segCount
	for start < end {
		index := (start + end) / 2
		endValue, ok := readU16(t, fmt4EndCodes+index*2)
		if !ok {
			return 0, false
		}
		if uint32(endValue) >= codePoint {
			startValue, ok := readU16(t, fmt4EndCodes+2+segCount*2+index*2)
			if !ok {
				return 0, false
			}
			if uint32(startValue) > codePoint {
				end = index
			} else {
				return t.glyphForSegment(segCount, index, codePoint, startValue)
			}
		} else {
			start = index + 1
		}
	}
	return 0, false
}

// glyphForSegment resolves codePoint within segment index. A zero
// idRangeOffset maps the code point directly through idDelta; otherwise
// the offset points into the glyph index array, where a stored zero
// means the code point is unmapped.
func (t format4) glyphForSegment(segCount, index int, codePoint uint32, startValue uint16) (uint16, bool) {
	idDelta, ok := readU16(t, fmt4EndCodes+2+segCount*4+index*2)
	if !ok {
		return 0, false
	}
	rangeOffsetPos := fmt4EndCodes + 2 + segCount*6 + index*2
	idRangeOffset, ok := readU16(t, rangeOffsetPos)
	if !ok {
		return 0, false
	}
	if idRangeOffset == 0 {
		return uint16(codePoint) + idDelta, true
	}
	glyphPos := rangeOffsetPos + int(idRangeOffset) + 2*(int(codePoint)-int(startValue))
	value, ok := readU16(t, glyphPos)
	if !ok {
		return 0, false
	}
	if value == 0 {
		return 0, false
	}
	return value + idDelta, true
}
