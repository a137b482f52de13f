package typeface

import (
	"fmt"
	"image"
	"io"
)

// GlyphBitmap is an 8-bit coverage bitmap produced by rendering a glyph.
// Each byte in Data is the antialiased coverage of one pixel, from 0
// (outside the outline) to 255 (fully covered), in row-major order.
type GlyphBitmap struct {
	// Width and Height are the bitmap dimensions in pixels.
	Width, Height int

	// Left and Top place the bitmap's top-left corner relative to the
	// glyph origin on the baseline: Left pixels to the right and Top
	// pixels down. Top is typically negative because glyphs extend
	// above the baseline.
	Left, Top int

	// Data holds Width*Height coverage bytes in row-major order.
	Data []byte
}

// Alpha returns the bitmap as an image.Alpha suitable for use as a
// draw mask or for PNG encoding. The returned image shares the
// underlying coverage data rather than copying it.
func (b *GlyphBitmap) Alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    b.Data,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// WritePGM writes the bitmap as a binary PGM (P5) grayscale image, a
// minimal format readable by most image viewers.
func (b *GlyphBitmap) WritePGM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", b.Width, b.Height); err != nil {
		return err
	}
	_, err := w.Write(b.Data)
	return err
}
