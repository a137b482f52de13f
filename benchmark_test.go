package typeface

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

var (
	benchFont   *Font
	benchBitmap *GlyphBitmap
)

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		f, err := Parse(goregular.TTF)
		if err != nil {
			b.Fatal(err)
		}
		benchFont = f
	}
}

func benchmarkRenderGlyph(b *testing.B, r rune, size float64) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		b.Fatal(err)
	}
	id, ok := f.LookupGlyphID(r)
	if !ok {
		b.Fatalf("%q is not mapped", r)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bm, err := f.RenderGlyph(id, size)
		if err != nil {
			b.Fatal(err)
		}
		benchBitmap = bm
	}
}

func BenchmarkRenderGlyph32(b *testing.B)  { benchmarkRenderGlyph(b, 'g', 32) }
func BenchmarkRenderGlyph400(b *testing.B) { benchmarkRenderGlyph(b, 'A', 400) }

func BenchmarkRenderGlyphs(b *testing.B) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		b.Fatal(err)
	}
	var reqs []GlyphRequest
	for _, r := range "the quick brown fox jumps over the lazy dog" {
		if id, ok := f.LookupGlyphID(r); ok {
			reqs = append(reqs, GlyphRequest{ID: id, Size: 64})
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		results := f.RenderGlyphs(reqs)
		benchBitmap = results[0].Bitmap
	}
}
