package truetype

// Big-endian field readers. Every read is bounds-checked and reports
// failure through the second return value so that truncated or
// malformed font data surfaces as a miss instead of a panic.

// readU16 reads a big-endian uint16 at off.
func readU16(data []byte, off int) (uint16, bool) {
	if off < 0 || off+2 > len(data) {
		return 0, false
	}
	return uint16(data[off])<<8 | uint16(data[off+1]), true
}

// readI16 reads a big-endian int16 at off.
func readI16(data []byte, off int) (int16, bool) {
	v, ok := readU16(data, off)
	return int16(v), ok
}

// readU32 reads a big-endian uint32 at off.
func readU32(data []byte, off int) (uint32, bool) {
	if off < 0 || off+4 > len(data) {
		return 0, false
	}
	return uint32(data[off])<<24 | uint32(data[off+1])<<16 | uint32(data[off+2])<<8 | uint32(data[off+3]), true
}

// readF2Dot14 reads a signed 2.14 fixed-point value at off.
func readF2Dot14(data []byte, off int) (float64, bool) {
	v, ok := readI16(data, off)
	return float64(v) / 16384, ok
}
