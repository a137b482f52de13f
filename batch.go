package typeface

import "github.com/gogpu/typeface/internal/parallel"

// GlyphRequest names one glyph to render in a batch.
type GlyphRequest struct {
	ID   GlyphID
	Size float64
}

// GlyphResult is the outcome of one batch entry: a bitmap on success,
// an error otherwise.
type GlyphResult struct {
	Bitmap *GlyphBitmap
	Err    error
}

// RenderGlyphs renders a batch of glyphs across a pool of worker
// goroutines and returns the results in request order. Each entry
// succeeds or fails independently, so callers must check every
// GlyphResult.Err.
//
// The worker count defaults to GOMAXPROCS; override it with
// [WithWorkers]. The Font is safe to share, so workers render
// concurrently without locking.
func (f *Font) RenderGlyphs(reqs []GlyphRequest, opts ...RenderOption) []GlyphResult {
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	results := make([]GlyphResult, len(reqs))
	if len(reqs) == 0 {
		return results
	}

	pool := parallel.New(o.workers)
	defer pool.Close()

	tasks := make([]func(), len(reqs))
	for i := range reqs {
		i := i
		tasks[i] = func() {
			bm, err := f.RenderGlyph(reqs[i].ID, reqs[i].Size)
			results[i] = GlyphResult{Bitmap: bm, Err: err}
		}
	}
	pool.Run(tasks)
	return results
}
