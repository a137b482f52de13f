package typeface

import "errors"

// Font parsing and rendering errors.
var (
	// ErrInvalidFont indicates the font data is malformed or truncated.
	ErrInvalidFont = errors.New("typeface: invalid font data")

	// ErrNotFound indicates the requested glyph does not exist or its
	// outline could not be read.
	ErrNotFound = errors.New("typeface: glyph not found")

	// ErrMissingTable indicates the font lacks a table required for
	// the operation, such as glyf or loca for outline rendering.
	ErrMissingTable = errors.New("typeface: required table missing")
)
