package typeface

// Affine represents a 2D affine transformation matrix.
// It uses the column-vector convention of TrueType and PostScript:
//
//	| A  C  E |
//	| B  D  F |
//
// This represents the transformation:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translate creates a translation transformation.
func Translate(x, y float64) Affine {
	return Affine{A: 1, D: 1, E: x, F: y}
}

// Scale creates a scaling transformation.
func Scale(x, y float64) Affine {
	return Affine{A: x, D: y}
}

// Concat returns the composition of two transformations: the result
// applies w first, then z.
func (z Affine) Concat(w Affine) Affine {
	return Affine{
		A: z.A*w.A + z.C*w.B,
		B: z.B*w.A + z.D*w.B,
		C: z.A*w.C + z.C*w.D,
		D: z.B*w.C + z.D*w.D,
		E: z.A*w.E + z.C*w.F + z.E,
		F: z.B*w.E + z.D*w.F + z.F,
	}
}

// Apply applies the transformation to a point.
func (z Affine) Apply(p Point) Point {
	return Point{
		X: z.A*p.X + z.C*p.Y + z.E,
		Y: z.B*p.X + z.D*p.Y + z.F,
	}
}

// IsIdentity returns true if the transformation is the identity.
func (z Affine) IsIdentity() bool {
	return z.A == 1 && z.B == 0 && z.C == 0 &&
		z.D == 1 && z.E == 0 && z.F == 0
}
