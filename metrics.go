package typeface

// VMetrics holds font-wide vertical metrics scaled to a pixel size.
type VMetrics struct {
	// Ascent is the distance from the baseline to the typographic top.
	Ascent float64

	// Descent is the distance from the baseline to the typographic
	// bottom, negative for glyphs extending below the baseline.
	Descent float64

	// LineGap is the recommended extra spacing between lines.
	LineGap float64
}

// LineHeight returns the recommended baseline-to-baseline distance.
func (m VMetrics) LineHeight() float64 {
	return m.Ascent - m.Descent + m.LineGap
}

// HMetrics holds per-glyph horizontal metrics scaled to a pixel size.
type HMetrics struct {
	// AdvanceWidth is the horizontal pen advance after drawing the glyph.
	AdvanceWidth float64

	// LeftSideBearing is the distance from the pen position to the left
	// edge of the glyph's bounding box.
	LeftSideBearing float64
}
