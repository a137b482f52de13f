package truetype

import (
	"encoding/binary"
	"testing"
)

// TestLocaTable_Offset tests both index-to-location formats.
func TestLocaTable_Offset(t *testing.T) {
	tests := []struct {
		name   string
		loca   locaTable
		ix     int
		want   int
		wantOK bool
	}{
		{
			name:   "short format doubles the stored value",
			loca:   locaTable{data: []byte{0x00, 0x00, 0x00, 0x64}},
			ix:     1,
			want:   200,
			wantOK: true,
		},
		{
			name:   "long format stores byte offsets",
			loca:   locaTable{data: []byte{0x00, 0x00, 0x00, 0xc8}, long: true},
			ix:     0,
			want:   200,
			wantOK: true,
		},
		{
			name:   "short format out of range",
			loca:   locaTable{data: []byte{0x00, 0x00}},
			ix:     1,
			wantOK: false,
		},
		{
			name:   "long format out of range",
			loca:   locaTable{data: []byte{0x00, 0x00, 0x00, 0x00}, long: true},
			ix:     1,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.loca.offset(tt.ix)
			if ok != tt.wantOK {
				t.Fatalf("offset(%d) ok = %v, want %v", tt.ix, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("offset(%d) = %d, want %d", tt.ix, got, tt.want)
			}
		})
	}
}

// TestHmtxTable_Metrics tests full entries and the shared trailing
// advance for glyphs past numLong.
func TestHmtxTable_Metrics(t *testing.T) {
	// Two full entries (advance, lsb) followed by two bare left side
	// bearings; 0xffec is -20.
	var b []byte
	for _, v := range []uint16{500, 10, 620, 0xffec, 15, 25} {
		b = binary.BigEndian.AppendUint16(b, v)
	}
	hmtx := hmtxTable(b)

	tests := []struct {
		name        string
		ix          int
		wantAdvance uint16
		wantLSB     int16
		wantOK      bool
	}{
		{"first full entry", 0, 500, 10, true},
		{"second full entry", 1, 620, -20, true},
		{"first shared advance", 2, 620, 15, true},
		{"second shared advance", 3, 620, 25, true},
		{"past the table", 4, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advance, lsb, ok := hmtx.metrics(tt.ix, 2)
			if ok != tt.wantOK {
				t.Fatalf("metrics(%d, 2) ok = %v, want %v", tt.ix, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if advance != tt.wantAdvance || lsb != tt.wantLSB {
				t.Errorf("metrics(%d, 2) = (%d, %d), want (%d, %d)",
					tt.ix, advance, lsb, tt.wantAdvance, tt.wantLSB)
			}
		})
	}
}

// TestHeadTable tests field extraction from a minimal head table.
func TestHeadTable(t *testing.T) {
	head := make(headTable, minHeadLen)
	binary.BigEndian.PutUint16(head[18:], 2048)
	binary.BigEndian.PutUint16(head[50:], 1)

	upem, ok := head.unitsPerEm()
	if !ok || upem != 2048 {
		t.Errorf("unitsPerEm = %d, %v; want 2048, true", upem, ok)
	}
	format, ok := head.indexToLocFormat()
	if !ok || format != 1 {
		t.Errorf("indexToLocFormat = %d, %v; want 1, true", format, ok)
	}

	if _, ok := headTable(head[:50]).indexToLocFormat(); ok {
		t.Error("indexToLocFormat succeeded on truncated table")
	}
}
