// Package typeface parses TrueType fonts and renders antialiased glyph
// coverage bitmaps.
//
// # Overview
//
// typeface is a pure Go font engine for the GoGPU ecosystem. A Font is
// parsed once from raw font bytes and then queried: map code points to
// glyph indexes, read metrics, and render glyph outlines at any pixel
// size into 8-bit coverage bitmaps suitable for texture upload or
// software compositing.
//
// # Quick Start
//
//	import "github.com/gogpu/typeface"
//
//	font, err := typeface.Parse(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	id, ok := font.LookupGlyphID('A')
//	if !ok {
//		log.Fatal("glyph not mapped")
//	}
//
//	// Render at 64 pixels per em.
//	bitmap, err := font.RenderGlyph(id, 64)
//
// # Rendering Model
//
// Rendering walks the glyph's quadratic bezier outline and rasterizes
// it by signed-area accumulation: segments deposit winding deltas into
// a float buffer and one prefix-sum pass converts the buffer to
// coverage. Hinting instructions are ignored; quality comes from exact
// per-pixel area antialiasing.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Font, GlyphBitmap, VMetrics, HMetrics, Affine, Point
//   - Internal: truetype (table parsing), raster (accumulation
//     rasterizer), parallel (worker pool for batch rendering)
//
// # Coordinate System
//
// Font units follow the TrueType convention with y increasing upward.
// Rendered bitmaps use raster coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// The Left and Top fields of a GlyphBitmap place it relative to the
// glyph origin on the baseline.
package typeface

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
